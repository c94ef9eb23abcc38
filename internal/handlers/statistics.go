package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"backend/internal/models"
)

func GetStatistics(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/statistics"
		defer handlePanic(c, route)

		ctx := c.Request.Context()

		var totalOrders int64
		if err := db.WithContext(ctx).Model(&models.Order{}).Count(&totalOrders).Error; err != nil {
			respondWithDBError(c, route, err)
			return
		}

		var totalRevenue float64
		err := db.WithContext(ctx).Model(&models.Order{}).
			Select("COALESCE(SUM(total_amount), 0)").
			Scan(&totalRevenue).Error
		if err != nil {
			respondWithDBError(c, route, err)
			return
		}

		var pendingOrders int64
		err = db.WithContext(ctx).Model(&models.Order{}).
			Where("status = ?", "pending").
			Count(&pendingOrders).Error
		if err != nil {
			respondWithDBError(c, route, err)
			return
		}

		var totalCustomers int64
		if err := db.WithContext(ctx).Model(&models.Customer{}).Count(&totalCustomers).Error; err != nil {
			respondWithDBError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"total_orders":    totalOrders,
			"total_revenue":   totalRevenue,
			"pending_orders":  pendingOrders,
			"total_customers": totalCustomers,
		})
	}
}
