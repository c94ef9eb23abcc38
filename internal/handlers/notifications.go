package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"backend/internal/models"
)

type NotificationUpdateRequest struct {
	IsRead *bool `json:"is_read"`
}

func GetNotifications(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/notifications"
		defer handlePanic(c, route)

		page, pageSize := parsePageParams(c.Query("page"), c.Query("pageSize"))

		query := db.WithContext(c.Request.Context()).Model(&models.Notification{})
		if c.Query("unread") == "true" {
			query = query.Where("is_read = ?", false)
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			respondWithDBError(c, route, err)
			return
		}

		var notifications []models.Notification
		err := query.
			Order("created_at DESC").
			Offset((page - 1) * pageSize).
			Limit(pageSize).
			Find(&notifications).Error
		if err != nil {
			respondWithDBError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"notifications": notifications,
			"total":         total,
			"page":          page,
			"pageSize":      pageSize,
		})
	}
}

func GetNotification(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/notifications/:id"
		defer handlePanic(c, route)

		id, err := parseIDParam(c)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		var notification models.Notification
		if err := db.WithContext(c.Request.Context()).First(&notification, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				respondWithError(c, http.StatusNotFound, route, "notification not found")
				return
			}
			respondWithDBError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, notification)
	}
}

// UpdateNotification merges the allowed fields and stamps updated_at.
func UpdateNotification(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PATCH /admin/notifications/:id"
		defer handlePanic(c, route)

		id, err := parseIDParam(c)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		var req NotificationUpdateRequest
		if err := decodeStrict(c, &req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}
		if req.IsRead == nil {
			respondWithError(c, http.StatusBadRequest, route, "no updatable fields in body")
			return
		}

		ctx := c.Request.Context()

		var notification models.Notification
		if err := db.WithContext(ctx).First(&notification, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				respondWithError(c, http.StatusNotFound, route, "notification not found")
				return
			}
			respondWithDBError(c, route, err)
			return
		}

		err = db.WithContext(ctx).Model(&notification).Updates(map[string]interface{}{
			"is_read":    *req.IsRead,
			"updated_at": time.Now(),
		}).Error
		if err != nil {
			respondWithDBError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, notification)
	}
}

func DeleteNotification(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /admin/notifications/:id"
		defer handlePanic(c, route)

		id, err := parseIDParam(c)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		ctx := c.Request.Context()

		var notification models.Notification
		if err := db.WithContext(ctx).First(&notification, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				respondWithError(c, http.StatusNotFound, route, "notification not found")
				return
			}
			respondWithDBError(c, route, err)
			return
		}

		if err := db.WithContext(ctx).Delete(&models.Notification{}, id).Error; err != nil {
			respondWithDBError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "notification deleted"})
	}
}

func MarkAllNotificationsRead(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/notifications/read-all"
		defer handlePanic(c, route)

		result := db.WithContext(c.Request.Context()).
			Model(&models.Notification{}).
			Where("is_read = ?", false).
			Updates(map[string]interface{}{
				"is_read":    true,
				"updated_at": time.Now(),
			})
		if result.Error != nil {
			respondWithDBError(c, route, result.Error)
			return
		}

		c.JSON(http.StatusOK, gin.H{"updated": result.RowsAffected})
	}
}
