// Package notify writes admin-panel notifications. Writes are best-effort: a
// failed insert is logged and swallowed, never surfaced to the caller, so the
// primary operation's outcome stays independent of the notification outcome.
package notify

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"backend/internal/models"
)

type Notifier interface {
	// Create persists one notification row. Returns nil when the write
	// failed; callers must not assume the row exists.
	Create(ctx context.Context, typ, title, message string, data interface{}) *models.Notification
}

type dbNotifier struct {
	db  *gorm.DB
	log *zap.Logger
}

func New(db *gorm.DB, log *zap.Logger) Notifier {
	return &dbNotifier{db: db, log: log}
}

func (n *dbNotifier) Create(ctx context.Context, typ, title, message string, data interface{}) *models.Notification {
	notification := models.Notification{
		Type:    typ,
		Title:   title,
		Message: message,
	}

	if data != nil {
		payload, err := json.Marshal(data)
		if err != nil {
			n.log.Warn("notification payload not serializable",
				zap.String("type", typ),
				zap.Error(err),
			)
		} else {
			notification.Data = models.JSONText(payload)
		}
	}

	if err := n.db.WithContext(ctx).Create(&notification).Error; err != nil {
		n.log.Error("notification write failed",
			zap.String("type", typ),
			zap.String("title", title),
			zap.Error(err),
		)
		return nil
	}
	return &notification
}
