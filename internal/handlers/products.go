package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"backend/internal/models"
	"backend/internal/notify"
)

// ProductUpdateRequest enumerates the only fields a product PATCH may carry.
// Anything else, or a type mismatch, fails decoding and never reaches the
// datastore.
type ProductUpdateRequest struct {
	Name           *string  `json:"name" binding:"omitempty,min=1"`
	Description    *string  `json:"description"`
	Price          *float64 `json:"price" binding:"omitempty,gte=0"`
	ShippingCharge *float64 `json:"shipping_charge" binding:"omitempty,gte=0"`
	IsActive       *bool    `json:"is_active"`
	ImageURL       *string  `json:"image_url"`
	StockQuantity  *int     `json:"stock_quantity" binding:"omitempty,gte=0"`
}

type ProductCreateRequest struct {
	Name           *string  `json:"name" binding:"required,min=1"`
	Description    *string  `json:"description"`
	Price          *float64 `json:"price" binding:"required,gte=0"`
	ShippingCharge *float64 `json:"shipping_charge" binding:"omitempty,gte=0"`
	IsActive       *bool    `json:"is_active"`
	ImageURL       *string  `json:"image_url"`
	StockQuantity  *int     `json:"stock_quantity" binding:"omitempty,gte=0"`
}

func (r *ProductUpdateRequest) updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Name != nil {
		updates["name"] = strings.TrimSpace(*r.Name)
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	if r.Price != nil {
		updates["price"] = *r.Price
	}
	if r.ShippingCharge != nil {
		updates["shipping_charge"] = *r.ShippingCharge
	}
	if r.IsActive != nil {
		updates["is_active"] = *r.IsActive
	}
	if r.ImageURL != nil {
		updates["image_url"] = *r.ImageURL
	}
	if r.StockQuantity != nil {
		updates["stock_quantity"] = *r.StockQuantity
	}
	return updates
}

func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/products"
		defer handlePanic(c, route)

		page, pageSize := parsePageParams(c.Query("page"), c.Query("pageSize"))

		query := db.WithContext(c.Request.Context()).Model(&models.Product{})
		if search := strings.TrimSpace(c.Query("search")); search != "" {
			like := "%" + search + "%"
			query = query.Where("name ILIKE ? OR description ILIKE ?", like, like)
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			respondWithDBError(c, route, err)
			return
		}

		var products []models.Product
		err := query.
			Order("created_at DESC").
			Offset((page - 1) * pageSize).
			Limit(pageSize).
			Find(&products).Error
		if err != nil {
			respondWithDBError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"products": products,
			"total":    total,
			"page":     page,
			"pageSize": pageSize,
		})
	}
}

func GetProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/products/:id"
		defer handlePanic(c, route)

		id, err := parseIDParam(c)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		var product models.Product
		if err := db.WithContext(c.Request.Context()).First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				respondWithError(c, http.StatusNotFound, route, "product not found")
				return
			}
			respondWithDBError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

func CreateProduct(db *gorm.DB, notifier notify.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/products"
		defer handlePanic(c, route)

		var req ProductCreateRequest
		if err := decodeStrict(c, &req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}
		if strings.TrimSpace(*req.Name) == "" {
			respondWithError(c, http.StatusBadRequest, route, "name is required")
			return
		}

		product := models.Product{
			Name:     strings.TrimSpace(*req.Name),
			Price:    *req.Price,
			IsActive: true,
		}
		if req.Description != nil {
			product.Description = *req.Description
		}
		if req.ShippingCharge != nil {
			product.ShippingCharge = *req.ShippingCharge
		}
		if req.IsActive != nil {
			product.IsActive = *req.IsActive
		}
		if req.ImageURL != nil {
			product.ImageURL = *req.ImageURL
		}
		if req.StockQuantity != nil {
			product.StockQuantity = *req.StockQuantity
		}

		ctx := c.Request.Context()
		if err := db.WithContext(ctx).Create(&product).Error; err != nil {
			respondWithDBError(c, route, err)
			return
		}

		title, message := notify.ProductEvent("created", product.Name, product.Price, product.StockQuantity)
		notifier.Create(ctx, models.NotificationTypeProduct, title, message, gin.H{"product": product})

		c.JSON(http.StatusCreated, product)
	}
}

func UpdateProduct(db *gorm.DB, notifier notify.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PATCH /admin/products/:id"
		defer handlePanic(c, route)

		id, err := parseIDParam(c)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		var req ProductUpdateRequest
		if err := decodeStrict(c, &req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}
		if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
			respondWithError(c, http.StatusBadRequest, route, "name must not be empty")
			return
		}
		updates := req.updates()
		if len(updates) == 0 {
			respondWithError(c, http.StatusBadRequest, route, "no updatable fields in body")
			return
		}

		ctx := c.Request.Context()

		var before models.Product
		if err := db.WithContext(ctx).First(&before, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				respondWithError(c, http.StatusNotFound, route, "product not found")
				return
			}
			respondWithDBError(c, route, err)
			return
		}

		after := before
		if err := db.WithContext(ctx).Model(&after).Updates(updates).Error; err != nil {
			respondWithDBError(c, route, err)
			return
		}

		title, message := notify.ProductEvent("updated", after.Name, after.Price, after.StockQuantity)
		notifier.Create(ctx, models.NotificationTypeProduct, title, message, gin.H{
			"before": before,
			"after":  after,
		})

		c.JSON(http.StatusOK, after)
	}
}

func DeleteProduct(db *gorm.DB, notifier notify.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /admin/products/:id"
		defer handlePanic(c, route)

		id, err := parseIDParam(c)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		ctx := c.Request.Context()

		var product models.Product
		if err := db.WithContext(ctx).First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				respondWithError(c, http.StatusNotFound, route, "product not found")
				return
			}
			respondWithDBError(c, route, err)
			return
		}

		if err := db.WithContext(ctx).Delete(&models.Product{}, id).Error; err != nil {
			respondWithDBError(c, route, err)
			return
		}

		title, message := notify.ProductEvent("deleted", product.Name, product.Price, product.StockQuantity)
		notifier.Create(ctx, models.NotificationTypeProduct, title, message, gin.H{"product": product})

		c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
	}
}
