package handlers

import (
	"testing"
	"time"

	"backend/internal/models"
)

func TestTallyFraudReasonsCountsAndOrders(t *testing.T) {
	reasons := []string{
		"nid mismatch, repeat cancel",
		"nid mismatch",
		"nid mismatch, courier return",
		"repeat cancel",
		"courier return",
		"address unverifiable",
	}

	got := tallyFraudReasons(reasons, 5)
	if len(got) != 4 {
		t.Fatalf("expected 4 distinct reasons, got %d: %+v", len(got), got)
	}
	if got[0].Reason != "nid mismatch" || got[0].Count != 3 {
		t.Fatalf("expected nid mismatch x3 first, got %+v", got[0])
	}
	// tie between repeat cancel and courier return breaks alphabetically
	if got[1].Reason != "courier return" || got[2].Reason != "repeat cancel" {
		t.Fatalf("expected alphabetical tie-break, got %+v", got)
	}
	if got[3].Count != 1 {
		t.Fatalf("expected singleton reason last, got %+v", got[3])
	}
}

func TestTallyFraudReasonsTruncatesToTopN(t *testing.T) {
	reasons := []string{"a, b, c, d, e, f, g"}
	got := tallyFraudReasons(reasons, 5)
	if len(got) != 5 {
		t.Fatalf("expected top 5, got %d", len(got))
	}
}

func TestTallyFraudReasonsEmptyInput(t *testing.T) {
	if got := tallyFraudReasons(nil, 5); len(got) != 0 {
		t.Fatalf("expected empty tally, got %+v", got)
	}
}

func TestBuildHourlyBucketsDistribution(t *testing.T) {
	now := time.Date(2024, 6, 1, 14, 35, 12, 0, time.Local)
	score80 := 80.0
	score60 := 60.0

	orders := []models.Order{
		{CreatedAt: now.Add(-10 * time.Minute), IsFlagged: true, FraudScore: &score80},
		{CreatedAt: now.Add(-15 * time.Minute), FraudScore: &score60},
		{CreatedAt: now.Add(-3 * time.Hour)},
		{CreatedAt: now.Add(-23*time.Hour - 30*time.Minute)},
		// outside the window, must be ignored
		{CreatedAt: now.Add(-30 * time.Hour)},
	}

	buckets := buildHourlyBuckets(now, orders)
	if len(buckets) != 24 {
		t.Fatalf("expected 24 buckets, got %d", len(buckets))
	}

	total := 0
	for _, b := range buckets {
		total += b.OrderCount
	}
	if total != 4 {
		t.Fatalf("expected 4 orders inside window, got %d", total)
	}

	last := buckets[23]
	if last.Hour != "14:00" {
		t.Fatalf("expected newest bucket labelled 14:00, got %s", last.Hour)
	}
	if last.OrderCount != 2 || last.FlaggedCount != 1 {
		t.Fatalf("expected 2 orders / 1 flagged in current hour, got %+v", last)
	}
	if last.AvgFraudScore != 70 {
		t.Fatalf("expected mean score 70, got %d", last.AvgFraudScore)
	}

	if buckets[20].OrderCount != 1 {
		t.Fatalf("expected 1 order three hours back, got %+v", buckets[20])
	}
}

func TestBuildHourlyBucketsEmptyReportsZeros(t *testing.T) {
	buckets := buildHourlyBuckets(time.Now(), nil)
	for i, b := range buckets {
		if b.OrderCount != 0 || b.FlaggedCount != 0 || b.AvgFraudScore != 0 {
			t.Fatalf("bucket %d not zeroed: %+v", i, b)
		}
	}
}

func TestHourlyWindowMatchesBuckets(t *testing.T) {
	now := time.Date(2024, 6, 1, 14, 35, 12, 0, time.Local)

	start := hourlyWindowStart(now)
	if want := time.Date(2024, 5, 31, 15, 0, 0, 0, time.Local); !start.Equal(want) {
		t.Fatalf("window start = %v, want %v", start, want)
	}

	// An order from 23h50m ago falls before the oldest bucket's hour and is
	// excluded by the fetch predicate instead of being dropped after fetch.
	if old := now.Add(-23*time.Hour - 50*time.Minute); !old.Before(start) {
		t.Fatalf("order at %v should be outside the window starting %v", old, start)
	}

	// Every order inside the window lands in a bucket, including ones in the
	// partial oldest hour, so the buckets sum to the fetched count.
	var orders []models.Order
	for ts := start; !ts.After(now); ts = ts.Add(50 * time.Minute) {
		orders = append(orders, models.Order{CreatedAt: ts})
	}
	buckets := buildHourlyBuckets(now, orders)

	total := 0
	for _, b := range buckets {
		total += b.OrderCount
	}
	if total != len(orders) {
		t.Fatalf("bucketed %d orders, want all %d in window", total, len(orders))
	}
	if buckets[0].OrderCount == 0 {
		t.Fatal("oldest bucket should hold the order at the window start")
	}
}
