package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"backend/internal/models"
)

type CustomerNoteCreateRequest struct {
	Content   *string `json:"content" binding:"required,min=1"`
	CreatedBy *string `json:"created_by"`
}

func GetCustomerNotes(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/customers/:id/notes"
		defer handlePanic(c, route)

		id, err := parseIDParam(c)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		var notes []models.CustomerNote
		err = db.WithContext(c.Request.Context()).
			Where("customer_id = ?", id).
			Order("created_at DESC").
			Find(&notes).Error
		if err != nil {
			respondWithDBError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"notes": notes})
	}
}

func CreateCustomerNote(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/customers/:id/notes"
		defer handlePanic(c, route)

		id, err := parseIDParam(c)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		var req CustomerNoteCreateRequest
		if err := decodeStrict(c, &req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}
		if strings.TrimSpace(*req.Content) == "" {
			respondWithError(c, http.StatusBadRequest, route, "content is required")
			return
		}

		note := models.CustomerNote{
			CustomerID: id,
			Content:    strings.TrimSpace(*req.Content),
		}
		if req.CreatedBy != nil {
			note.CreatedBy = strings.TrimSpace(*req.CreatedBy)
		}

		if err := db.WithContext(c.Request.Context()).Create(&note).Error; err != nil {
			respondWithDBError(c, route, err)
			return
		}

		c.JSON(http.StatusCreated, note)
	}
}
