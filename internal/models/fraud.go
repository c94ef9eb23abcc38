package models

import "time"

// FraudPattern and FraudUnblockHistory are produced by the external fraud
// subsystem; the admin API only reads and paginates them.

type FraudPattern struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Pattern        string    `gorm:"size:255" json:"pattern"`
	Description    string    `json:"description"`
	DetectionCount int       `json:"detection_count"`
	IsActive       bool      `gorm:"index" json:"is_active"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type FraudUnblockHistory struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Mobile      string    `gorm:"size:32;index" json:"mobile"`
	UnblockedBy string    `gorm:"size:128" json:"unblocked_by"`
	Reason      string    `json:"reason"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (FraudUnblockHistory) TableName() string {
	return "fraud_unblock_history"
}
