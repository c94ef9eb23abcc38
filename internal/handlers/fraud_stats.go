package handlers

import (
	"fmt"
	"math"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"backend/internal/models"
)

// Orders at or above this score count as high-risk in the summary.
const highRiskScore = 70.0

type fraudSummary struct {
	TotalOrders    int64 `json:"total_orders"`
	FlaggedOrders  int64 `json:"flagged_orders"`
	HighRiskOrders int64 `json:"high_risk_orders"`
	BlockedOrders  int64 `json:"blocked_orders"`
}

type ReasonCount struct {
	Reason string `json:"reason"`
	Count  int    `json:"count"`
}

type HourlyBucket struct {
	Hour          string `json:"hour"`
	OrderCount    int    `json:"order_count"`
	FlaggedCount  int    `json:"flagged_count"`
	AvgFraudScore int    `json:"avg_fraud_score"`
}

// tallyFraudReasons splits each comma-separated reasons string on ", ",
// counts distinct reasons and returns the topN by count descending. Ties
// break alphabetically so the output is stable.
func tallyFraudReasons(reasonStrings []string, topN int) []ReasonCount {
	counts := map[string]int{}
	for _, raw := range reasonStrings {
		for _, reason := range strings.Split(raw, ", ") {
			if reason == "" {
				continue
			}
			counts[reason]++
		}
	}

	tallied := make([]ReasonCount, 0, len(counts))
	for reason, count := range counts {
		tallied = append(tallied, ReasonCount{Reason: reason, Count: count})
	}
	sort.Slice(tallied, func(i, j int) bool {
		if tallied[i].Count != tallied[j].Count {
			return tallied[i].Count > tallied[j].Count
		}
		return tallied[i].Reason < tallied[j].Reason
	})

	if len(tallied) > topN {
		tallied = tallied[:topN]
	}
	return tallied
}

// hourlyWindowStart returns the start of the oldest hourly bucket. The fetch
// predicate uses the same boundary so every fetched order lands in a bucket
// and the buckets sum to the fetched order count.
func hourlyWindowStart(now time.Time) time.Time {
	return now.Truncate(time.Hour).Add(-23 * time.Hour)
}

// buildHourlyBuckets distributes orders into 24 fixed hour buckets anchored
// to now, oldest first: bucket i covers the hour starting 23-i hours before
// the current hour. Empty buckets report zero for every field.
func buildHourlyBuckets(now time.Time, orders []models.Order) []HourlyBucket {
	anchor := now.Truncate(time.Hour)
	buckets := make([]HourlyBucket, 24)
	scoreSums := make([]float64, 24)
	scoreCounts := make([]int, 24)

	for i := range buckets {
		start := anchor.Add(time.Duration(i-23) * time.Hour)
		buckets[i].Hour = start.Format("15:00")
	}

	for _, order := range orders {
		offset := int(order.CreatedAt.Truncate(time.Hour).Sub(anchor) / time.Hour)
		idx := 23 + offset
		if idx < 0 || idx > 23 {
			continue
		}
		buckets[idx].OrderCount++
		if order.IsFlagged {
			buckets[idx].FlaggedCount++
		}
		if order.FraudScore != nil {
			scoreSums[idx] += *order.FraudScore
			scoreCounts[idx]++
		}
	}

	for i := range buckets {
		if scoreCounts[i] > 0 {
			buckets[i].AvgFraudScore = int(math.Round(scoreSums[i] / float64(scoreCounts[i])))
		}
	}
	return buckets
}

// GetFraudStats produces the fraud dashboard in one response: an aggregate
// summary over the requested timeframe, the most-detected active patterns,
// the most frequent fraud reasons, and an hourly distribution over the
// trailing 24 hours regardless of the requested timeframe. A failure in any
// query fails the whole request; there is no partial result.
func GetFraudStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/fake-orders/stats"
		defer handlePanic(c, route)

		timeframe := 24
		if raw := strings.TrimSpace(c.Query("timeframe")); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
				timeframe = parsed
			}
		}

		ctx := c.Request.Context()
		now := time.Now()
		cutoff := now.Add(-time.Duration(timeframe) * time.Hour)

		var summary fraudSummary
		err := db.WithContext(ctx).Raw(`
			SELECT
				COUNT(*) AS total_orders,
				COUNT(*) FILTER (WHERE is_flagged) AS flagged_orders,
				COUNT(*) FILTER (WHERE fraud_score >= ?) AS high_risk_orders,
				COUNT(*) FILTER (WHERE is_blocked) AS blocked_orders
			FROM orders
			WHERE created_at >= ?`,
			highRiskScore, cutoff,
		).Scan(&summary).Error
		if err != nil {
			respondWithDBError(c, route, err)
			return
		}

		fraudRate := 0.0
		if summary.TotalOrders > 0 {
			fraudRate = float64(summary.FlaggedOrders) / float64(summary.TotalOrders) * 100
		}

		var patterns []models.FraudPattern
		err = db.WithContext(ctx).
			Where("is_active = ?", true).
			Order("detection_count DESC").
			Limit(10).
			Find(&patterns).Error
		if err != nil {
			respondWithDBError(c, route, err)
			return
		}

		var reasonStrings []string
		err = db.WithContext(ctx).Model(&models.Order{}).
			Where("created_at >= ? AND fraud_reasons IS NOT NULL", cutoff).
			Pluck("fraud_reasons", &reasonStrings).Error
		if err != nil {
			respondWithDBError(c, route, err)
			return
		}

		var hourlyOrders []models.Order
		err = db.WithContext(ctx).
			Select("created_at", "is_flagged", "fraud_score").
			Where("created_at >= ?", hourlyWindowStart(now)).
			Find(&hourlyOrders).Error
		if err != nil {
			respondWithDBError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"summary": gin.H{
				"total_orders":     summary.TotalOrders,
				"flagged_orders":   summary.FlaggedOrders,
				"high_risk_orders": summary.HighRiskOrders,
				"blocked_orders":   summary.BlockedOrders,
				"fraud_rate":       fmt.Sprintf("%.2f", fraudRate),
			},
			"patterns":    patterns,
			"top_reasons": tallyFraudReasons(reasonStrings, 5),
			"hourly":      buildHourlyBuckets(now, hourlyOrders),
		})
	}
}

// GetFraudUnblockHistory pages through the unblock audit records.
func GetFraudUnblockHistory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/fake-orders/unblock-history"
		defer handlePanic(c, route)

		limit := 50
		if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 200 {
				limit = parsed
			}
		}
		offset := 0
		if raw := strings.TrimSpace(c.Query("offset")); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
				offset = parsed
			}
		}

		var history []models.FraudUnblockHistory
		err := db.WithContext(c.Request.Context()).
			Order("created_at DESC").
			Offset(offset).
			Limit(limit).
			Find(&history).Error
		if err != nil {
			respondWithDBError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"history": history})
	}
}
