package models

import "time"

// Order rows carry fraud fields written by an external scoring process; this
// service only reads them.
type Order struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerName   string    `gorm:"size:255" json:"customer_name"`
	CustomerMobile string    `gorm:"size:32" json:"customer_mobile"`
	Address        string    `json:"address"`
	ProductName    string    `gorm:"size:255" json:"product_name"`
	Quantity       int       `json:"quantity"`
	Status         string    `gorm:"size:32;index" json:"status"`
	TotalAmount    float64   `json:"total_amount"`
	Notes          string    `json:"notes"`
	FraudScore     *float64  `json:"fraud_score"`
	IsFlagged      bool      `json:"is_flagged"`
	FraudReasons   *string   `json:"fraud_reasons"` // comma-separated, e.g. "nid mismatch, repeat cancel"
	IsBlocked      bool      `json:"is_blocked"`
	CreatedAt      time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
