package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"backend/internal/logger"
	"backend/internal/models"
)

// defaultSections keeps the landing page renderable before any content has
// been published from the admin panel.
var defaultSections = map[string]interface{}{
	"hero": map[string]interface{}{
		"title":    "স্বাগতম",
		"subtitle": "বিশ্বস্ত অনলাইন শপ",
		"cta":      "অর্ডার করুন",
	},
	"features":     []interface{}{},
	"testimonials": []interface{}{},
	"faq":          []interface{}{},
	"footer": map[string]interface{}{
		"note": "সারা দেশে ক্যাশ অন ডেলিভারি",
	},
}

// Home renders the marketing landing page from the current website-content
// document. Missing or unreadable content falls back to defaults; the page
// itself never 500s.
func Home(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /"
		defer handlePanic(c, route)

		sections := map[string]interface{}{}
		for key, value := range defaultSections {
			sections[key] = value
		}

		var content models.WebsiteContent
		err := db.WithContext(c.Request.Context()).
			Order("updated_at DESC").
			First(&content).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Log.Warn("storefront content query failed",
				zap.String("route", route),
				zap.Error(err),
			)
		}
		if err == nil && len(content.Content) > 0 {
			var published map[string]interface{}
			if jsonErr := json.Unmarshal(content.Content, &published); jsonErr == nil {
				for key, value := range published {
					sections[key] = value
				}
			}
		}

		var activeProducts []models.Product
		err = db.WithContext(c.Request.Context()).
			Where("is_active = ?", true).
			Order("created_at DESC").
			Limit(8).
			Find(&activeProducts).Error
		if err != nil {
			logger.Log.Warn("storefront products query failed",
				zap.String("route", route),
				zap.Error(err),
			)
		}

		c.HTML(http.StatusOK, "storefront/index.html", gin.H{
			"sections": sections,
			"products": activeProducts,
		})
	}
}
