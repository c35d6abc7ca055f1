package entity

import "time"

// Conversation is owned 1:1 by its match and is only ever created together
// with it, inside the same transaction.
type Conversation struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	MatchID       uint       `gorm:"not null;uniqueIndex" json:"match_id"`
	LastMessageAt *time.Time `json:"last_message_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type MessageType string

const (
	MessageText  MessageType = "TEXT"
	MessageImage MessageType = "IMAGE"
	MessageOffer MessageType = "OFFER"
)

type Message struct {
	ID             uint        `gorm:"primaryKey" json:"id"`
	ConversationID uint        `gorm:"not null;index:idx_messages_conversation_created,priority:1" json:"conversation_id"`
	SenderID       uint        `gorm:"not null" json:"sender_id"`
	Content        string      `gorm:"not null" json:"content"`
	Type           MessageType `gorm:"size:16;not null;default:TEXT" json:"type"`
	IsRead         bool        `gorm:"not null;default:false" json:"is_read"`
	CreatedAt      time.Time   `gorm:"index:idx_messages_conversation_created,priority:2" json:"created_at"`
}
