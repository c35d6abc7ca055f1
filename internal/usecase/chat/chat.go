// Package chat implements conversation access and messaging on top of
// matches. Every operation authorizes through the conversation's match: only
// its two participants may read or write.
package chat

import (
	"context"

	"github.com/cristiannav/swapstyle-backend/internal/apperror"
	"github.com/cristiannav/swapstyle-backend/internal/entity"
	"github.com/cristiannav/swapstyle-backend/internal/logger"
	"github.com/cristiannav/swapstyle-backend/internal/notifier"
	chatRepo "github.com/cristiannav/swapstyle-backend/internal/repository/chat"
	matchRepo "github.com/cristiannav/swapstyle-backend/internal/repository/match"
)

const notifyBodyLimit = 100

type IChatUseCase interface {
	GetConversation(ctx context.Context, userID, conversationID uint) (*entity.Conversation, error)
	GetConversationByMatch(ctx context.Context, userID, matchID uint) (*entity.Conversation, error)
	Messages(ctx context.Context, userID, conversationID uint, page, limit int) (*entity.Page[entity.Message], error)
	SendMessage(ctx context.Context, userID, conversationID uint, req *entity.SendMessageRequest) (*entity.Message, error)
}

type chatUseCase struct {
	chatRepo  chatRepo.IChatRepo
	matchRepo matchRepo.IMatchRepo
	sink      notifier.Sink
}

func New(chatRepo chatRepo.IChatRepo, matchRepo matchRepo.IMatchRepo, sink notifier.Sink) IChatUseCase {
	return &chatUseCase{
		chatRepo:  chatRepo,
		matchRepo: matchRepo,
		sink:      sink,
	}
}

func (u *chatUseCase) GetConversation(ctx context.Context, userID, conversationID uint) (*entity.Conversation, error) {
	conversation, _, err := u.authorizedConversation(ctx, userID, conversationID)
	return conversation, err
}

func (u *chatUseCase) GetConversationByMatch(ctx context.Context, userID, matchID uint) (*entity.Conversation, error) {
	match, err := u.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, apperror.FromStore(err, "Match not found", "")
	}

	if !match.HasParticipant(userID) {
		return nil, apperror.Forbidden("Not authorized to view this conversation")
	}

	conversation, err := u.chatRepo.GetConversationByMatchID(ctx, matchID)
	if err != nil {
		return nil, apperror.FromStore(err, "Conversation not found", "")
	}
	return conversation, nil
}

// Messages returns a page of the conversation history, newest first, and
// marks the other side's messages read as a side effect of the read.
func (u *chatUseCase) Messages(ctx context.Context, userID, conversationID uint, page, limit int) (*entity.Page[entity.Message], error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 50
	}

	_, _, err := u.authorizedConversation(ctx, userID, conversationID)
	if err != nil {
		return nil, err
	}

	messages, total, err := u.chatRepo.Messages(ctx, conversationID, page, limit)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if err := u.chatRepo.MarkMessagesRead(ctx, conversationID, userID); err != nil {
		logger.Warn("mark messages read failed", "conversation_id", conversationID, "err", err)
	}

	return &entity.Page[entity.Message]{
		Items: messages,
		Meta:  entity.NewPaginationMeta(total, page, limit),
	}, nil
}

func (u *chatUseCase) SendMessage(ctx context.Context, userID, conversationID uint, req *entity.SendMessageRequest) (*entity.Message, error) {
	_, match, err := u.authorizedConversation(ctx, userID, conversationID)
	if err != nil {
		return nil, err
	}

	if match.Status.Terminal() && match.Status != entity.MatchCompleted {
		return nil, apperror.BadRequest("This match is no longer active")
	}

	messageType := entity.MessageType(req.Type)
	switch messageType {
	case entity.MessageText, entity.MessageImage, entity.MessageOffer:
	case "":
		messageType = entity.MessageText
	default:
		return nil, apperror.BadRequest("Unknown message type")
	}

	message := &entity.Message{
		ConversationID: conversationID,
		SenderID:       userID,
		Content:        req.Content,
		Type:           messageType,
	}

	if _, err := u.chatRepo.CreateMessage(ctx, message); err != nil {
		return nil, apperror.Internal(err)
	}

	if err := u.chatRepo.TouchLastMessage(ctx, conversationID, message.CreatedAt); err != nil {
		logger.Warn("conversation timestamp update failed", "conversation_id", conversationID, "err", err)
	}

	body := req.Content
	if len(body) > notifyBodyLimit {
		body = body[:notifyBodyLimit]
	}
	u.sink.Publish(notifier.Notice{
		UserID: match.Counterpart(userID),
		Type:   entity.NotificationNewMessage,
		Title:  "New message",
		Body:   body,
		Data:   entity.Payload{"conversation_id": conversationID, "message_id": message.ID},
	})

	return message, nil
}

func (u *chatUseCase) authorizedConversation(ctx context.Context, userID, conversationID uint) (*entity.Conversation, *entity.Match, error) {
	conversation, err := u.chatRepo.GetConversationByID(ctx, conversationID)
	if err != nil {
		return nil, nil, apperror.FromStore(err, "Conversation not found", "")
	}

	match, err := u.matchRepo.GetByID(ctx, conversation.MatchID)
	if err != nil {
		return nil, nil, apperror.FromStore(err, "Match not found", "")
	}

	if !match.HasParticipant(userID) {
		return nil, nil, apperror.Forbidden("Not authorized to view this conversation")
	}

	return conversation, match, nil
}
