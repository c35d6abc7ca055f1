package notification_test

import (
	"context"
	"testing"
	"time"

	"github.com/cristiannav/swapstyle-backend/internal/entity"
	notificationRepo "github.com/cristiannav/swapstyle-backend/internal/repository/notification"
	"github.com/cristiannav/swapstyle-backend/internal/testutil"
	"github.com/cristiannav/swapstyle-backend/internal/usecase/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db   *gorm.DB
	repo notificationRepo.INotificationRepo
	uc   notification.INotificationUseCase
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db := testutil.OpenDB(t)
	rdb, _ := testutil.OpenRedis(t)
	repo := notificationRepo.New(db, rdb)
	return &fixture{db: db, repo: repo, uc: notification.New(repo)}
}

func (f *fixture) seed(t *testing.T, userID uint, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := f.repo.Create(context.Background(), &entity.Notification{
			UserID: userID, Type: entity.NotificationSystem, Title: "t", Body: "b",
		})
		require.NoError(t, err)
	}
}

func TestListAndUnreadCount(t *testing.T) {
	f := setup(t)
	f.seed(t, 1, 3)
	f.seed(t, 2, 1)

	page, err := f.uc.List(context.Background(), 1, 1, 10)
	require.NoError(t, err)
	assert.Len(t, page.Items, 3)
	assert.Equal(t, int64(3), page.Meta.Total)

	count, err := f.uc.UnreadCount(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count.Count)
}

func TestMarkReadInvalidatesCount(t *testing.T) {
	f := setup(t)
	f.seed(t, 1, 2)

	// warm the cache
	count, err := f.uc.UnreadCount(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, int64(2), count.Count)

	var first entity.Notification
	require.NoError(t, f.db.Where("user_id = ?", 1).First(&first).Error)
	require.NoError(t, f.uc.MarkRead(context.Background(), first.ID, 1))

	count, err = f.uc.UnreadCount(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count.Count)
}

func TestMarkReadScopedToOwner(t *testing.T) {
	f := setup(t)
	f.seed(t, 1, 1)

	var n entity.Notification
	require.NoError(t, f.db.Where("user_id = ?", 1).First(&n).Error)

	// another user's mark-read touches nothing
	require.NoError(t, f.uc.MarkRead(context.Background(), n.ID, 2))

	require.NoError(t, f.db.First(&n, n.ID).Error)
	assert.False(t, n.IsRead)
}

func TestMarkAllRead(t *testing.T) {
	f := setup(t)
	f.seed(t, 1, 3)

	require.NoError(t, f.uc.MarkAllRead(context.Background(), 1))

	count, err := f.uc.UnreadCount(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count.Count)
}

func TestDelete(t *testing.T) {
	f := setup(t)
	f.seed(t, 1, 1)

	var n entity.Notification
	require.NoError(t, f.db.Where("user_id = ?", 1).First(&n).Error)
	require.NoError(t, f.uc.Delete(context.Background(), n.ID, 1))

	var count int64
	require.NoError(t, f.db.Model(&entity.Notification{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestPruneExpiredKeepsUnread(t *testing.T) {
	f := setup(t)
	f.seed(t, 1, 2)

	old := time.Now().Add(-120 * 24 * time.Hour)
	require.NoError(t, f.db.Model(&entity.Notification{}).
		Where("user_id = ?", 1).
		Update("created_at", old).Error)

	// only one of the two is read
	var first entity.Notification
	require.NoError(t, f.db.Where("user_id = ?", 1).First(&first).Error)
	require.NoError(t, f.uc.MarkRead(context.Background(), first.ID, 1))

	require.NoError(t, f.uc.PruneExpired(context.Background()))

	var count int64
	require.NoError(t, f.db.Model(&entity.Notification{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
