package models

import "time"

type Customer struct {
	ID            int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string     `gorm:"size:255" json:"name"`
	Mobile        string     `gorm:"size:32;index" json:"mobile"`
	Address       string     `json:"address"`
	District      string     `gorm:"size:128" json:"district"`
	Thana         string     `gorm:"size:128" json:"thana"`
	LastOrderDate *time.Time `json:"last_order_date"`
	TotalOrders   int        `json:"total_orders"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

type CustomerAddress struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID int64     `gorm:"index;not null" json:"customer_id"`
	Address    string    `json:"address"`
	District   string    `gorm:"size:128" json:"district"`
	Thana      string    `gorm:"size:128" json:"thana"`
	IsDefault  bool      `json:"is_default"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// CustomerNote is append-only; there is no update or delete path.
type CustomerNote struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID int64     `gorm:"index;not null" json:"customer_id"`
	Content    string    `gorm:"not null" json:"content"`
	CreatedBy  string    `gorm:"size:128" json:"created_by"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}
