package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"backend/internal/models"
)

type CustomerUpdateRequest struct {
	Name     *string `json:"name"`
	Mobile   *string `json:"mobile"`
	Address  *string `json:"address"`
	District *string `json:"district"`
	Thana    *string `json:"thana"`
}

// GetCustomers lists customers, most recently active first: customers with
// orders sort by last order date descending, order-less (new) customers come
// after, newest first.
func GetCustomers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/customers"
		defer handlePanic(c, route)

		page, pageSize := parsePageParams(c.Query("page"), c.Query("pageSize"))

		query := db.WithContext(c.Request.Context()).Model(&models.Customer{})

		if q := strings.TrimSpace(c.Query("q")); q != "" {
			like := "%" + q + "%"
			query = query.Where(
				"name ILIKE ? OR mobile ILIKE ? OR address ILIKE ?",
				like, like, like,
			)
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			respondWithDBError(c, route, err)
			return
		}

		var customers []models.Customer
		err := query.
			Order("last_order_date DESC NULLS LAST").
			Order("created_at DESC").
			Offset((page - 1) * pageSize).
			Limit(pageSize).
			Find(&customers).Error
		if err != nil {
			respondWithDBError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"customers": customers,
			"total":     total,
			"page":      page,
			"pageSize":  pageSize,
		})
	}
}

func GetCustomer(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/customers/:id"
		defer handlePanic(c, route)

		id, err := parseIDParam(c)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		var customer models.Customer
		if err := db.WithContext(c.Request.Context()).First(&customer, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				respondWithError(c, http.StatusNotFound, route, "customer not found")
				return
			}
			respondWithDBError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, customer)
	}
}

func UpdateCustomer(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PATCH /admin/customers/:id"
		defer handlePanic(c, route)

		id, err := parseIDParam(c)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		var req CustomerUpdateRequest
		if err := decodeStrict(c, &req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		updates := map[string]interface{}{}
		if req.Name != nil {
			updates["name"] = *req.Name
		}
		if req.Mobile != nil {
			updates["mobile"] = *req.Mobile
		}
		if req.Address != nil {
			updates["address"] = *req.Address
		}
		if req.District != nil {
			updates["district"] = *req.District
		}
		if req.Thana != nil {
			updates["thana"] = *req.Thana
		}
		if len(updates) == 0 {
			respondWithError(c, http.StatusBadRequest, route, "no updatable fields in body")
			return
		}

		ctx := c.Request.Context()

		var customer models.Customer
		if err := db.WithContext(ctx).First(&customer, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				respondWithError(c, http.StatusNotFound, route, "customer not found")
				return
			}
			respondWithDBError(c, route, err)
			return
		}

		if err := db.WithContext(ctx).Model(&customer).Updates(updates).Error; err != nil {
			respondWithDBError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, customer)
	}
}

func DeleteCustomer(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /admin/customers/:id"
		defer handlePanic(c, route)

		id, err := parseIDParam(c)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		ctx := c.Request.Context()

		var customer models.Customer
		if err := db.WithContext(ctx).First(&customer, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				respondWithError(c, http.StatusNotFound, route, "customer not found")
				return
			}
			respondWithDBError(c, route, err)
			return
		}

		if err := db.WithContext(ctx).Delete(&models.Customer{}, id).Error; err != nil {
			respondWithDBError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "customer deleted"})
	}
}

// GetCustomerAddresses returns the customer's addresses default-first.
func GetCustomerAddresses(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/customers/:id/addresses"
		defer handlePanic(c, route)

		id, err := parseIDParam(c)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		var addresses []models.CustomerAddress
		err = db.WithContext(c.Request.Context()).
			Where("customer_id = ?", id).
			Order("is_default DESC").
			Find(&addresses).Error
		if err != nil {
			respondWithDBError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"addresses": addresses})
	}
}
