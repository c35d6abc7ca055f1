package notifier_test

import (
	"context"
	"testing"
	"time"

	"github.com/cristiannav/swapstyle-backend/internal/entity"
	"github.com/cristiannav/swapstyle-backend/internal/notifier"
	"github.com/cristiannav/swapstyle-backend/internal/realtime"
	notificationRepo "github.com/cristiannav/swapstyle-backend/internal/repository/notification"
	"github.com/cristiannav/swapstyle-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherPersistsAndPushes(t *testing.T) {
	db := testutil.OpenDB(t)
	rdb, _ := testutil.OpenRedis(t)
	repo := notificationRepo.New(db, rdb)

	hub := realtime.NewHub()
	defer hub.Close()

	ch, unsubscribe := hub.Subscribe(7)
	defer unsubscribe()

	dispatcher := notifier.NewDispatcher(repo, hub)

	dispatcher.Publish(notifier.Notice{
		UserID: 7,
		Type:   entity.NotificationNewMatch,
		Title:  "New match!",
		Body:   "You matched on a garment you like",
		Data:   entity.Payload{"match_id": float64(3)},
	})

	select {
	case env := <-ch:
		assert.Equal(t, entity.NotificationNewMatch, env.Type)
	case <-time.After(2 * time.Second):
		t.Fatal("push never arrived")
	}

	assert.Eventually(t, func() bool {
		var count int64
		return db.Model(&entity.Notification{}).Where("user_id = ?", 7).Count(&count).Error == nil && count == 1
	}, 2*time.Second, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, dispatcher.Shutdown(ctx))
}

func TestDispatcherShutdownDrains(t *testing.T) {
	db := testutil.OpenDB(t)
	rdb, _ := testutil.OpenRedis(t)
	repo := notificationRepo.New(db, rdb)

	dispatcher := notifier.NewDispatcher(repo, nil)

	for i := 0; i < 20; i++ {
		dispatcher.Publish(notifier.Notice{
			UserID: 1,
			Type:   entity.NotificationSystem,
			Title:  "t",
			Body:   "b",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, dispatcher.Shutdown(ctx))

	var count int64
	require.NoError(t, db.Model(&entity.Notification{}).Count(&count).Error)
	assert.Equal(t, int64(20), count)
}

func TestDispatcherPublishAfterShutdown(t *testing.T) {
	db := testutil.OpenDB(t)
	rdb, _ := testutil.OpenRedis(t)
	repo := notificationRepo.New(db, rdb)

	dispatcher := notifier.NewDispatcher(repo, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, dispatcher.Shutdown(ctx))
	require.NoError(t, dispatcher.Shutdown(ctx))

	// a late publish is dropped, not a send on a closed channel
	dispatcher.Publish(notifier.Notice{UserID: 4, Type: entity.NotificationSystem, Title: "t", Body: "b"})

	var count int64
	require.NoError(t, db.Model(&entity.Notification{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestDispatcherSkipsPushWhenDisconnected(t *testing.T) {
	db := testutil.OpenDB(t)
	rdb, _ := testutil.OpenRedis(t)
	repo := notificationRepo.New(db, rdb)

	hub := realtime.NewHub()
	defer hub.Close()

	dispatcher := notifier.NewDispatcher(repo, hub)

	dispatcher.Publish(notifier.Notice{UserID: 9, Type: entity.NotificationSuperLike, Title: "t", Body: "b"})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, dispatcher.Shutdown(ctx))

	// persisted even though nobody was listening
	var stored entity.Notification
	require.NoError(t, db.Where("user_id = ?", 9).First(&stored).Error)
	assert.False(t, stored.IsRead)
}
