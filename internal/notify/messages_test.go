package notify

import (
	"strings"
	"testing"
)

func TestOrderPlacedNewCustomer(t *testing.T) {
	title, message := OrderPlaced(OrderEvent{
		CustomerName:   "রহিম উদ্দিন",
		CustomerMobile: "01711111111",
		ProductName:    "হারবাল তেল",
		Quantity:       2,
		TotalAmount:    1590,
		Address:        "মিরপুর, ঢাকা",
		IsNewCustomer:  true,
	})
	if title == "" {
		t.Fatal("expected non-empty title")
	}
	if !strings.Contains(message, "01711111111") {
		t.Fatalf("expected mobile in message, got %s", message)
	}
	if !strings.Contains(message, "নতুন কাস্টমার") {
		t.Fatalf("expected new-customer marker, got %s", message)
	}
	if strings.Contains(message, "পুরনো") {
		t.Fatalf("new customer message must not mention returning, got %s", message)
	}
}

func TestOrderPlacedReturningCustomerIncludesOrderCount(t *testing.T) {
	_, message := OrderPlaced(OrderEvent{
		CustomerName:   "করিম",
		CustomerMobile: "01822222222",
		ProductName:    "মধু",
		Quantity:       1,
		TotalAmount:    990,
		IsNewCustomer:  false,
		OrderCount:     4,
	})
	if !strings.Contains(message, "4টি") {
		t.Fatalf("expected order count in returning-customer message, got %s", message)
	}
}

func TestProductEventActions(t *testing.T) {
	tests := []struct {
		action    string
		wantTitle string
	}{
		{"created", "নতুন পণ্য যোগ হয়েছে"},
		{"updated", "পণ্য আপডেট হয়েছে"},
		{"deleted", "পণ্য মুছে ফেলা হয়েছে"},
	}
	for _, tt := range tests {
		title, message := ProductEvent(tt.action, "হারবাল তেল", 795, 30)
		if title != tt.wantTitle {
			t.Fatalf("action %s: expected title %q, got %q", tt.action, tt.wantTitle, title)
		}
		if !strings.Contains(message, "হারবাল তেল") {
			t.Fatalf("action %s: expected product name in message, got %s", tt.action, message)
		}
	}
}

func TestUserEventSubstitutesMissingFields(t *testing.T) {
	_, message := UserEvent("created", "", "  ")
	if !strings.Contains(message, unknownField) {
		t.Fatalf("expected placeholder for missing fields, got %s", message)
	}
}
