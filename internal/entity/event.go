package entity

import "time"

type EventStatus string

const (
	EventUpcoming  EventStatus = "UPCOMING"
	EventActive    EventStatus = "ACTIVE"
	EventFinished  EventStatus = "FINISHED"
	EventCancelled EventStatus = "CANCELLED"
)

type Event struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	Title           string      `gorm:"size:120;not null" json:"title"`
	Description     string      `json:"description,omitempty"`
	Type            string      `gorm:"size:32" json:"type,omitempty"`
	StartTime       time.Time   `gorm:"not null;index" json:"start_time"`
	EndTime         *time.Time  `json:"end_time,omitempty"`
	IsVirtual       bool        `gorm:"not null;default:false" json:"is_virtual"`
	Address         string      `json:"address,omitempty"`
	MeetingURL      string      `json:"meeting_url,omitempty"`
	MaxParticipants *int        `json:"max_participants,omitempty"`
	ImageURL        string      `json:"image_url,omitempty"`
	Status          EventStatus `gorm:"size:16;not null;default:UPCOMING;index" json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`

	// Filled by queries, not stored.
	ParticipantCount int64 `gorm:"-" json:"participant_count"`
}

// EventRegistration joins users to events; unique per (event, user).
type EventRegistration struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	EventID   uint      `gorm:"not null;uniqueIndex:idx_event_registrations_event_user,priority:1" json:"event_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_event_registrations_event_user,priority:2" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
