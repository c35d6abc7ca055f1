package chatRepo

import (
	"context"
	"time"

	"github.com/cristiannav/swapstyle-backend/internal/entity"
	"gorm.io/gorm"
)

type IChatRepo interface {
	GetConversationByID(ctx context.Context, id uint) (*entity.Conversation, error)
	GetConversationByMatchID(ctx context.Context, matchID uint) (*entity.Conversation, error)
	Messages(ctx context.Context, conversationID uint, page, limit int) ([]entity.Message, int64, error)
	CreateMessage(ctx context.Context, message *entity.Message) (*entity.Message, error)
	MarkMessagesRead(ctx context.Context, conversationID, readerID uint) error
	TouchLastMessage(ctx context.Context, conversationID uint, at time.Time) error
}

type ChatRepo struct {
	db *gorm.DB
}

func New(db *gorm.DB) IChatRepo {
	return &ChatRepo{db: db}
}

func (r *ChatRepo) GetConversationByID(ctx context.Context, id uint) (*entity.Conversation, error) {
	var conversation entity.Conversation
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&conversation)
	return &conversation, result.Error
}

func (r *ChatRepo) GetConversationByMatchID(ctx context.Context, matchID uint) (*entity.Conversation, error) {
	var conversation entity.Conversation
	result := r.db.WithContext(ctx).Where("match_id = ?", matchID).First(&conversation)
	return &conversation, result.Error
}

func (r *ChatRepo) Messages(ctx context.Context, conversationID uint, page, limit int) ([]entity.Message, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&entity.Message{}).
		Where("conversation_id = ?", conversationID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var messages []entity.Message
	err := query.
		Order("created_at DESC, id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&messages).Error

	return messages, total, err
}

func (r *ChatRepo) CreateMessage(ctx context.Context, message *entity.Message) (*entity.Message, error) {
	result := r.db.WithContext(ctx).Create(message)
	return message, result.Error
}

// MarkMessagesRead flags every message in the conversation that the reader
// did not send.
func (r *ChatRepo) MarkMessagesRead(ctx context.Context, conversationID, readerID uint) error {
	return r.db.WithContext(ctx).
		Model(&entity.Message{}).
		Where("conversation_id = ? AND sender_id <> ? AND is_read = ?", conversationID, readerID, false).
		Update("is_read", true).Error
}

func (r *ChatRepo) TouchLastMessage(ctx context.Context, conversationID uint, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&entity.Conversation{}).
		Where("id = ?", conversationID).
		Update("last_message_at", at).Error
}
