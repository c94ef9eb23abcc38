package models

import "time"

// WebsiteContent holds at most one row per (section, key, lang) natural key.
// The live storefront document lives under ("site", "content", "bn").
type WebsiteContent struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Section   string    `gorm:"size:64;uniqueIndex:idx_content_natural_key" json:"section"`
	Key       string    `gorm:"size:64;uniqueIndex:idx_content_natural_key" json:"key"`
	Lang      string    `gorm:"size:8;uniqueIndex:idx_content_natural_key" json:"lang"`
	Content   JSONText  `json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
