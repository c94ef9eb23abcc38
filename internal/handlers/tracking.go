package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"backend/internal/logger"
	"backend/internal/meta"
)

type LeadRequest struct {
	EventSourceURL string `json:"event_source_url"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
}

type PurchaseRequest struct {
	Value          *float64 `json:"value" binding:"required"`
	Currency       string   `json:"currency"`
	OrderID        string   `json:"order_id"`
	ProductName    string   `json:"product_name"`
	Quantity       int      `json:"quantity"`
	EventSourceURL string   `json:"event_source_url"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
}

type VitalsReport struct {
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
	ID     string  `json:"id"`
	Rating string  `json:"rating"`
}

func sourceURL(c *gin.Context, fromBody string) string {
	if url := strings.TrimSpace(fromBody); url != "" {
		return url
	}
	return c.Request.Referer()
}

// TrackLead forwards a Lead event to the Conversions API. One attempt; a
// forwarder failure surfaces as a 500 carrying the forwarder's message.
func TrackLead(client *meta.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /tracking/lead"
		defer handlePanic(c, route)

		var req LeadRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "internal server error")
			return
		}

		event := meta.Event{
			EventName:      "Lead",
			EventTime:      time.Now().Unix(),
			EventID:        uuid.NewString(),
			EventSourceURL: sourceURL(c, req.EventSourceURL),
			ActionSource:   "website",
			UserData:       meta.UserDataFromRequest(c).WithContact(req.Email, req.Phone),
		}

		if err := client.SendEvent(c.Request.Context(), event); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, err.Error())
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// TrackPurchase forwards a Purchase event. Value is required; currency
// defaults to BDT and quantity to 1.
func TrackPurchase(client *meta.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /tracking/purchase"
		defer handlePanic(c, route)

		var req PurchaseRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "internal server error")
			return
		}

		currency := strings.TrimSpace(req.Currency)
		if currency == "" {
			currency = "BDT"
		}
		quantity := req.Quantity
		if quantity < 1 {
			quantity = 1
		}

		event := meta.Event{
			EventName:      "Purchase",
			EventTime:      time.Now().Unix(),
			EventID:        uuid.NewString(),
			EventSourceURL: sourceURL(c, req.EventSourceURL),
			ActionSource:   "website",
			UserData:       meta.UserDataFromRequest(c).WithContact(req.Email, req.Phone),
			CustomData: &meta.CustomData{
				Value:       *req.Value,
				Currency:    currency,
				OrderID:     req.OrderID,
				ContentName: req.ProductName,
				NumItems:    quantity,
			},
		}

		if err := client.SendEvent(c.Request.Context(), event); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, err.Error())
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// TrackVitals receives Core Web Vitals beacons from the storefront and logs
// them; nothing downstream depends on a beacon landing.
func TrackVitals() gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /tracking/vitals"
		defer handlePanic(c, route)

		var report VitalsReport
		if err := c.ShouldBindJSON(&report); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid report")
			return
		}

		logger.Log.Info("web vitals",
			zap.String("metric", report.Name),
			zap.Float64("value", report.Value),
			zap.String("rating", report.Rating),
			zap.String("metric_id", report.ID),
		)
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
