package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"backend/internal/models"
)

// The storefront document lives under this fixed natural key.
const (
	contentSection = "site"
	contentKey     = "content"
	contentLang    = "bn"
)

type WebsiteContentPutRequest struct {
	Content json.RawMessage `json:"content"`
}

// GetWebsiteContent returns the most recently updated content row across the
// whole table, not filtered by the natural key. If a second (section, key,
// lang) ever appears with a later timestamp, GET and PUT will disagree on
// "the" current content; intentionally left as-is pending a product decision.
func GetWebsiteContent(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/website-content"
		defer handlePanic(c, route)

		var content models.WebsiteContent
		err := db.WithContext(c.Request.Context()).
			Order("updated_at DESC").
			First(&content).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				respondWithError(c, http.StatusNotFound, route, "website content not found")
				return
			}
			respondWithDBError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, content)
	}
}

// PutWebsiteContent upserts by the fixed natural key: find the row, update it
// when present, insert it otherwise.
func PutWebsiteContent(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /admin/website-content"
		defer handlePanic(c, route)

		var req WebsiteContentPutRequest
		if err := decodeStrict(c, &req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}
		if len(req.Content) == 0 {
			respondWithError(c, http.StatusBadRequest, route, "content is required")
			return
		}

		ctx := c.Request.Context()

		var existing models.WebsiteContent
		err := db.WithContext(ctx).
			Where("section = ? AND key = ? AND lang = ?", contentSection, contentKey, contentLang).
			First(&existing).Error

		switch {
		case err == nil:
			updateErr := db.WithContext(ctx).Model(&existing).Updates(map[string]interface{}{
				"content":    models.JSONText(req.Content),
				"updated_at": time.Now(),
			}).Error
			if updateErr != nil {
				respondWithDBError(c, route, updateErr)
				return
			}
			c.JSON(http.StatusOK, existing)

		case errors.Is(err, gorm.ErrRecordNotFound):
			content := models.WebsiteContent{
				Section: contentSection,
				Key:     contentKey,
				Lang:    contentLang,
				Content: models.JSONText(req.Content),
			}
			if createErr := db.WithContext(ctx).Create(&content).Error; createErr != nil {
				respondWithDBError(c, route, createErr)
				return
			}
			c.JSON(http.StatusOK, content)

		default:
			respondWithDBError(c, route, err)
		}
	}
}
