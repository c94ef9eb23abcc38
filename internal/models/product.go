package models

import "time"

type Product struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string    `gorm:"size:255;not null" json:"name"`
	Description    string    `json:"description"`
	Price          float64   `json:"price"`
	ShippingCharge float64   `json:"shipping_charge"`
	IsActive       bool      `json:"is_active"`
	ImageURL       string    `gorm:"size:1024" json:"image_url"`
	StockQuantity  int       `json:"stock_quantity"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
