package notify

import (
	"fmt"
	"strings"
)

// unknownField substitutes for missing admin-user fields in composed messages.
const unknownField = "অজানা"

// OrderEvent carries what the order-placed notification needs to say.
type OrderEvent struct {
	CustomerName   string
	CustomerMobile string
	ProductName    string
	Quantity       int
	TotalAmount    float64
	Address        string
	IsNewCustomer  bool
	OrderCount     int
}

// OrderPlaced composes the Bengali title/message pair for a new order.
func OrderPlaced(e OrderEvent) (string, string) {
	title := "নতুন অর্ডার এসেছে!"

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s) %s অর্ডার করেছেন।", e.CustomerName, e.CustomerMobile, e.ProductName)
	fmt.Fprintf(&b, " পরিমাণ: %dটি, মোট: ৳%.2f।", e.Quantity, e.TotalAmount)
	if e.Address != "" {
		fmt.Fprintf(&b, " ঠিকানা: %s।", e.Address)
	}
	if e.IsNewCustomer {
		b.WriteString(" ইনি নতুন কাস্টমার।")
	} else {
		fmt.Fprintf(&b, " ইনি পুরনো কাস্টমার (মোট %dটি অর্ডার)।", e.OrderCount)
	}
	return title, b.String()
}

// ProductEvent composes the pair for a product lifecycle change. action is one
// of "created", "updated", "deleted".
func ProductEvent(action, name string, price float64, stock int) (string, string) {
	switch action {
	case "created":
		return "নতুন পণ্য যোগ হয়েছে",
			fmt.Sprintf("\"%s\" পণ্যটি যোগ করা হয়েছে। দাম: ৳%.2f, স্টক: %dটি।", name, price, stock)
	case "deleted":
		return "পণ্য মুছে ফেলা হয়েছে",
			fmt.Sprintf("\"%s\" পণ্যটি মুছে ফেলা হয়েছে।", name)
	default:
		return "পণ্য আপডেট হয়েছে",
			fmt.Sprintf("\"%s\" পণ্যটি আপডেট করা হয়েছে। বর্তমান দাম: ৳%.2f, স্টক: %dটি।", name, price, stock)
	}
}

// UserEvent composes the pair for an admin-user lifecycle change, tolerating
// missing name/email.
func UserEvent(action, name, email string) (string, string) {
	if strings.TrimSpace(name) == "" {
		name = unknownField
	}
	if strings.TrimSpace(email) == "" {
		email = unknownField
	}
	switch action {
	case "created":
		return "নতুন ইউজার তৈরি হয়েছে",
			fmt.Sprintf("%s (%s) নামে নতুন ইউজার তৈরি করা হয়েছে।", name, email)
	case "deleted":
		return "ইউজার মুছে ফেলা হয়েছে",
			fmt.Sprintf("%s (%s) ইউজারটি মুছে ফেলা হয়েছে।", name, email)
	default:
		return "ইউজার আপডেট হয়েছে",
			fmt.Sprintf("%s (%s) ইউজারের তথ্য আপডেট করা হয়েছে।", name, email)
	}
}
