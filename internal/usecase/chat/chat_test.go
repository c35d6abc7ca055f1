package chat_test

import (
	"context"
	"testing"

	"github.com/cristiannav/swapstyle-backend/internal/apperror"
	"github.com/cristiannav/swapstyle-backend/internal/entity"
	chatRepo "github.com/cristiannav/swapstyle-backend/internal/repository/chat"
	matchRepo "github.com/cristiannav/swapstyle-backend/internal/repository/match"
	"github.com/cristiannav/swapstyle-backend/internal/testutil"
	"github.com/cristiannav/swapstyle-backend/internal/usecase/chat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db   *gorm.DB
	uc   chat.IChatUseCase
	sink *testutil.CaptureSink
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db := testutil.OpenDB(t)
	sink := &testutil.CaptureSink{}
	uc := chat.New(chatRepo.New(db), matchRepo.New(db), sink)
	return &fixture{db: db, uc: uc, sink: sink}
}

func (f *fixture) seedConversation(t *testing.T, status entity.MatchStatus) *entity.Conversation {
	t.Helper()
	m := &entity.Match{User1ID: 1, User2ID: 2, Garment1ID: 10, Status: status}
	require.NoError(t, f.db.Create(m).Error)
	conversation := &entity.Conversation{MatchID: m.ID}
	require.NoError(t, f.db.Create(conversation).Error)
	return conversation
}

func TestGetConversationParticipantOnly(t *testing.T) {
	f := setup(t)
	conversation := f.seedConversation(t, entity.MatchPending)

	got, err := f.uc.GetConversation(context.Background(), 1, conversation.ID)
	require.NoError(t, err)
	assert.Equal(t, conversation.ID, got.ID)

	_, err = f.uc.GetConversation(context.Background(), 3, conversation.ID)
	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))

	_, err = f.uc.GetConversation(context.Background(), 1, 999)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestGetConversationByMatch(t *testing.T) {
	f := setup(t)
	conversation := f.seedConversation(t, entity.MatchPending)

	got, err := f.uc.GetConversationByMatch(context.Background(), 2, conversation.MatchID)
	require.NoError(t, err)
	assert.Equal(t, conversation.ID, got.ID)

	_, err = f.uc.GetConversationByMatch(context.Background(), 3, conversation.MatchID)
	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))
}

func TestSendMessage(t *testing.T) {
	f := setup(t)
	conversation := f.seedConversation(t, entity.MatchAccepted)

	message, err := f.uc.SendMessage(context.Background(), 1, conversation.ID, &entity.SendMessageRequest{
		Content: "Would you trade for my coat?",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MessageText, message.Type)
	assert.Equal(t, uint(1), message.SenderID)

	var stored entity.Conversation
	require.NoError(t, f.db.First(&stored, conversation.ID).Error)
	require.NotNil(t, stored.LastMessageAt)

	// the counterpart gets the push, not the sender
	notices := f.sink.ByType(entity.NotificationNewMessage)
	require.Len(t, notices, 1)
	assert.Equal(t, uint(2), notices[0].UserID)
	assert.Equal(t, "Would you trade for my coat?", notices[0].Body)
}

func TestSendMessageUnknownType(t *testing.T) {
	f := setup(t)
	conversation := f.seedConversation(t, entity.MatchAccepted)

	_, err := f.uc.SendMessage(context.Background(), 1, conversation.ID, &entity.SendMessageRequest{
		Content: "hello", Type: "VIDEO",
	})
	assert.Equal(t, apperror.KindBadRequest, apperror.KindOf(err))
}

func TestSendMessageCancelledMatch(t *testing.T) {
	f := setup(t)
	conversation := f.seedConversation(t, entity.MatchCancelled)

	_, err := f.uc.SendMessage(context.Background(), 1, conversation.ID, &entity.SendMessageRequest{
		Content: "anyone there?",
	})
	assert.Equal(t, apperror.KindBadRequest, apperror.KindOf(err))
}

func TestSendMessageCompletedMatchStillOpen(t *testing.T) {
	f := setup(t)
	conversation := f.seedConversation(t, entity.MatchCompleted)

	_, err := f.uc.SendMessage(context.Background(), 2, conversation.ID, &entity.SendMessageRequest{
		Content: "thanks for the swap!",
	})
	assert.NoError(t, err)
}

func TestMessagesMarksIncomingRead(t *testing.T) {
	f := setup(t)
	conversation := f.seedConversation(t, entity.MatchAccepted)

	_, err := f.uc.SendMessage(context.Background(), 1, conversation.ID, &entity.SendMessageRequest{Content: "hi"})
	require.NoError(t, err)
	_, err = f.uc.SendMessage(context.Background(), 2, conversation.ID, &entity.SendMessageRequest{Content: "hey"})
	require.NoError(t, err)

	page, err := f.uc.Messages(context.Background(), 1, conversation.ID, 1, 10)
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)

	// user2's message is now read; user1's own stays as the counterpart left it
	var fromUser2 entity.Message
	require.NoError(t, f.db.Where("sender_id = ?", 2).First(&fromUser2).Error)
	assert.True(t, fromUser2.IsRead)

	var fromUser1 entity.Message
	require.NoError(t, f.db.Where("sender_id = ?", 1).First(&fromUser1).Error)
	assert.False(t, fromUser1.IsRead)
}
