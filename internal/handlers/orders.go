package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"backend/internal/models"
)

type OrderUpdateRequest struct {
	Status      *string  `json:"status"`
	Notes       *string  `json:"notes"`
	TotalAmount *float64 `json:"total_amount" binding:"omitempty,gte=0"`
}

func GetOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/orders"
		defer handlePanic(c, route)

		page, pageSize := parsePageParams(c.Query("page"), c.Query("pageSize"))

		query := db.WithContext(c.Request.Context()).Model(&models.Order{})
		if status := strings.TrimSpace(c.Query("status")); status != "" {
			query = query.Where("status = ?", status)
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			respondWithDBError(c, route, err)
			return
		}

		var orders []models.Order
		err := query.
			Order("created_at DESC").
			Offset((page - 1) * pageSize).
			Limit(pageSize).
			Find(&orders).Error
		if err != nil {
			respondWithDBError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"orders":   orders,
			"total":    total,
			"page":     page,
			"pageSize": pageSize,
		})
	}
}

func GetOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/orders/:id"
		defer handlePanic(c, route)

		id, err := parseIDParam(c)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		var order models.Order
		if err := db.WithContext(c.Request.Context()).First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				respondWithError(c, http.StatusNotFound, route, "order not found")
				return
			}
			respondWithDBError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

func UpdateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /admin/orders/:id"
		defer handlePanic(c, route)

		id, err := parseIDParam(c)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		var req OrderUpdateRequest
		if err := decodeStrict(c, &req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		updates := map[string]interface{}{}
		if req.Status != nil {
			updates["status"] = *req.Status
		}
		if req.Notes != nil {
			updates["notes"] = *req.Notes
		}
		if req.TotalAmount != nil {
			updates["total_amount"] = *req.TotalAmount
		}
		if len(updates) == 0 {
			respondWithError(c, http.StatusBadRequest, route, "no updatable fields in body")
			return
		}

		ctx := c.Request.Context()

		var order models.Order
		if err := db.WithContext(ctx).First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				respondWithError(c, http.StatusNotFound, route, "order not found")
				return
			}
			respondWithDBError(c, route, err)
			return
		}

		if err := db.WithContext(ctx).Model(&order).Updates(updates).Error; err != nil {
			respondWithDBError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

func DeleteOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /admin/orders/:id"
		defer handlePanic(c, route)

		id, err := parseIDParam(c)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		ctx := c.Request.Context()

		var order models.Order
		if err := db.WithContext(ctx).First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				respondWithError(c, http.StatusNotFound, route, "order not found")
				return
			}
			respondWithDBError(c, route, err)
			return
		}

		if err := db.WithContext(ctx).Delete(&models.Order{}, id).Error; err != nil {
			respondWithDBError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "order deleted"})
	}
}
