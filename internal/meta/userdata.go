package meta

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// UserDataFromRequest pulls the identifying signals the Conversions API can
// match on out of the inbound request: client IP, user agent and the browser
// pixel cookies. A bare fbclid query parameter is promoted to an fbc value in
// the format the API expects.
func UserDataFromRequest(c *gin.Context) UserData {
	data := UserData{
		ClientIPAddress: c.ClientIP(),
		ClientUserAgent: c.Request.UserAgent(),
	}

	if fbp, err := c.Cookie("_fbp"); err == nil {
		data.Fbp = fbp
	}
	if fbc, err := c.Cookie("_fbc"); err == nil {
		data.Fbc = fbc
	}
	if data.Fbc == "" {
		if fbclid := strings.TrimSpace(c.Query("fbclid")); fbclid != "" {
			data.Fbc = fmt.Sprintf("fb.1.%d.%s", time.Now().UnixMilli(), fbclid)
		}
	}
	return data
}

// WithContact attaches hashed email/phone identifiers when the client
// reported them.
func (u UserData) WithContact(email, phone string) UserData {
	if email = strings.TrimSpace(email); email != "" {
		u.Email = hashIdentifier(email)
	}
	if phone = strings.TrimSpace(phone); phone != "" {
		u.Phone = hashIdentifier(phone)
	}
	return u
}

// hashIdentifier normalizes then sha256-hashes a personal identifier, per the
// Conversions API matching contract.
func hashIdentifier(value string) string {
	normalized := strings.ToLower(strings.TrimSpace(value))
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}
