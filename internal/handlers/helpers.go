package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"backend/internal/logger"
)

// validate checks the same `binding` tags gin uses for bound bodies, so
// strict-decoded requests obey one set of constraint tags.
var validate = func() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}()

func handlePanic(c *gin.Context, route string) {
	if r := recover(); r != nil {
		logger.Log.Error("panic recovered",
			zap.String("route", route),
			zap.Any("panic", r),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func respondWithError(c *gin.Context, status int, route string, message string) {
	logger.Log.Warn("returning error",
		zap.String("route", route),
		zap.Int("status", status),
		zap.String("message", message),
	)
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

func respondWithDBError(c *gin.Context, route string, err error) {
	logger.Log.Error("db error", zap.String("route", route), zap.Error(err))
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "db error"})
}

// parseIDParam rejects non-numeric path ids before anything touches the
// datastore.
func parseIDParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id")
	}
	return id, nil
}

// decodeStrict binds a JSON body into a pointer-field request struct,
// rejecting unknown fields and type mismatches, then checks the struct's
// `binding` constraint tags.
func decodeStrict(c *gin.Context, dst interface{}) error {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("unreadable body")
	}
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body")
	}
	if err := validate.Struct(dst); err != nil {
		return fmt.Errorf("invalid request body")
	}
	return nil
}
