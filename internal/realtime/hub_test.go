package realtime_test

import (
	"testing"

	"github.com/cristiannav/swapstyle-backend/internal/entity"
	"github.com/cristiannav/swapstyle-backend/internal/realtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribePublish(t *testing.T) {
	hub := realtime.NewHub()
	defer hub.Close()

	ch, unsubscribe := hub.Subscribe(1)
	defer unsubscribe()

	assert.True(t, hub.Connected(1))
	assert.False(t, hub.Connected(2))

	hub.Publish(1, realtime.Envelope{Type: entity.NotificationNewMatch})

	env := <-ch
	assert.Equal(t, entity.NotificationNewMatch, env.Type)
}

func TestPublishToDisconnectedUser(t *testing.T) {
	hub := realtime.NewHub()
	defer hub.Close()

	// no subscriber; must not block or panic
	hub.Publish(42, realtime.Envelope{Type: entity.NotificationSystem})
}

func TestMultipleConnectionsPerUser(t *testing.T) {
	hub := realtime.NewHub()
	defer hub.Close()

	first, stopFirst := hub.Subscribe(1)
	second, stopSecond := hub.Subscribe(1)
	defer stopFirst()
	defer stopSecond()

	hub.Publish(1, realtime.Envelope{Type: entity.NotificationNewMessage})

	assert.Equal(t, entity.NotificationNewMessage, (<-first).Type)
	assert.Equal(t, entity.NotificationNewMessage, (<-second).Type)
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	hub := realtime.NewHub()
	defer hub.Close()

	ch, unsubscribe := hub.Subscribe(1)
	unsubscribe()

	_, open := <-ch
	assert.False(t, open)
	assert.False(t, hub.Connected(1))

	// double unsubscribe is a no-op
	unsubscribe()
}

func TestPublishNeverBlocksOnFullBuffer(t *testing.T) {
	hub := realtime.NewHub()
	defer hub.Close()

	_, unsubscribe := hub.Subscribe(1)
	defer unsubscribe()

	// nobody draining; well past any buffer size
	for i := 0; i < 100; i++ {
		hub.Publish(1, realtime.Envelope{Type: entity.NotificationSystem})
	}
}

func TestCloseTearsDownSubscribers(t *testing.T) {
	hub := realtime.NewHub()

	ch, _ := hub.Subscribe(1)
	hub.Close()

	_, open := <-ch
	require.False(t, open)
	assert.False(t, hub.Connected(1))

	// post-close subscribe yields a closed channel
	late, _ := hub.Subscribe(2)
	_, open = <-late
	assert.False(t, open)
}
