package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"backend/internal/models"
	"backend/internal/notify"
)

type OrderCreateRequest struct {
	CustomerName string `json:"customer_name" binding:"required"`
	Mobile       string `json:"mobile" binding:"required"`
	Address      string `json:"address"`
	ProductID    *int64 `json:"product_id" binding:"required"`
	Quantity     int    `json:"quantity" binding:"omitempty,gte=1"`
	Notes        string `json:"notes"`
}

// CreateOrder takes a storefront order: resolves the product, creates the
// customer on their first order or bumps their aggregates on a repeat one,
// writes the order row and emits the order-placed notification. The
// notification outcome never changes the response.
func CreateOrder(db *gorm.DB, notifier notify.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /orders"
		defer handlePanic(c, route)

		var req OrderCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		req.CustomerName = strings.TrimSpace(req.CustomerName)
		req.Mobile = strings.TrimSpace(req.Mobile)
		if req.CustomerName == "" || req.Mobile == "" {
			respondWithError(c, http.StatusBadRequest, route, "customer_name and mobile are required")
			return
		}
		if req.Quantity < 1 {
			req.Quantity = 1
		}

		ctx := c.Request.Context()

		var product models.Product
		if err := db.WithContext(ctx).First(&product, *req.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				respondWithError(c, http.StatusBadRequest, route, "unknown product")
				return
			}
			respondWithDBError(c, route, err)
			return
		}
		if !product.IsActive {
			respondWithError(c, http.StatusBadRequest, route, "product is not available")
			return
		}

		total := product.Price*float64(req.Quantity) + product.ShippingCharge

		now := time.Now()
		isNewCustomer := false

		var customer models.Customer
		err := db.WithContext(ctx).Where("mobile = ?", req.Mobile).First(&customer).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			isNewCustomer = true
			customer = models.Customer{
				Name:          req.CustomerName,
				Mobile:        req.Mobile,
				Address:       req.Address,
				LastOrderDate: &now,
				TotalOrders:   1,
			}
			if createErr := db.WithContext(ctx).Create(&customer).Error; createErr != nil {
				respondWithDBError(c, route, createErr)
				return
			}
		case err != nil:
			respondWithDBError(c, route, err)
			return
		default:
			updateErr := db.WithContext(ctx).Model(&customer).Updates(map[string]interface{}{
				"last_order_date": now,
				"total_orders":    gorm.Expr("total_orders + 1"),
			}).Error
			if updateErr != nil {
				respondWithDBError(c, route, updateErr)
				return
			}
			customer.TotalOrders++
		}

		order := models.Order{
			CustomerName:   req.CustomerName,
			CustomerMobile: req.Mobile,
			Address:        req.Address,
			ProductName:    product.Name,
			Quantity:       req.Quantity,
			Status:         "pending",
			TotalAmount:    total,
			Notes:          req.Notes,
		}
		if err := db.WithContext(ctx).Create(&order).Error; err != nil {
			respondWithDBError(c, route, err)
			return
		}

		title, message := notify.OrderPlaced(notify.OrderEvent{
			CustomerName:   req.CustomerName,
			CustomerMobile: req.Mobile,
			ProductName:    product.Name,
			Quantity:       req.Quantity,
			TotalAmount:    total,
			Address:        req.Address,
			IsNewCustomer:  isNewCustomer,
			OrderCount:     customer.TotalOrders,
		})
		notifier.Create(ctx, models.NotificationTypeOrder, title, message, gin.H{"order": order})

		c.JSON(http.StatusCreated, order)
	}
}
