package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type NotificationType string

const (
	NotificationNewMatch      NotificationType = "NEW_MATCH"
	NotificationNewMessage    NotificationType = "NEW_MESSAGE"
	NotificationSuperLike     NotificationType = "SUPER_LIKE"
	NotificationSwapCompleted NotificationType = "SWAP_COMPLETED"
	NotificationEventReminder NotificationType = "EVENT_REMINDER"
	NotificationSystem        NotificationType = "SYSTEM"
)

// Payload is an opaque JSON object column; the backend never interprets it
// beyond round-tripping it to clients.
type Payload map[string]any

func (p Payload) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}
	return json.Marshal(p)
}

func (p *Payload) Scan(src any) error {
	if src == nil {
		*p = nil
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("payload: unsupported source type %T", src)
	}
	return json.Unmarshal(raw, p)
}

type Notification struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	UserID    uint             `gorm:"not null;index:idx_notifications_user_created,priority:1" json:"user_id"`
	Type      NotificationType `gorm:"size:32;not null" json:"type"`
	Title     string           `gorm:"size:120;not null" json:"title"`
	Body      string           `gorm:"not null" json:"body"`
	Data      Payload          `gorm:"type:text" json:"data,omitempty"`
	IsRead    bool             `gorm:"not null;default:false;index" json:"is_read"`
	ReadAt    *time.Time       `json:"read_at,omitempty"`
	CreatedAt time.Time        `gorm:"index:idx_notifications_user_created,priority:2" json:"created_at"`
}
