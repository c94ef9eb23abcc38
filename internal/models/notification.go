package models

import "time"

const (
	NotificationTypeOrder   = "order"
	NotificationTypeProduct = "product"
	NotificationTypeUser    = "user"
)

type Notification struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Type      string    `gorm:"size:32;index" json:"type"`
	Title     string    `gorm:"size:512" json:"title"`
	Message   string    `json:"message"`
	Data      JSONText  `json:"data"`
	IsRead    bool      `gorm:"index" json:"is_read"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
