// Package notifier is the asynchronous notification sink. Use cases publish
// after their primary transaction commits; persistence and push both happen
// on a worker goroutine and their failure never propagates back into the
// operation that triggered them.
package notifier

import (
	"context"
	"sync"
	"time"

	"github.com/cristiannav/swapstyle-backend/internal/entity"
	"github.com/cristiannav/swapstyle-backend/internal/logger"
	notificationRepo "github.com/cristiannav/swapstyle-backend/internal/repository/notification"
	"github.com/cristiannav/swapstyle-backend/internal/realtime"
)

// Notice is the sink contract: create(userId, type, title, body, data).
type Notice struct {
	UserID uint
	Type   entity.NotificationType
	Title  string
	Body   string
	Data   entity.Payload
}

type Sink interface {
	Publish(notice Notice)
}

// Dispatcher persists notices and forwards them to connected clients.
// Best-effort by design: a full queue drops the notice with a log line.
type Dispatcher struct {
	repo  notificationRepo.INotificationRepo
	hub   *realtime.Hub
	queue chan Notice
	done  chan struct{}

	mu     sync.Mutex
	closed bool
}

func NewDispatcher(repo notificationRepo.INotificationRepo, hub *realtime.Hub) *Dispatcher {
	d := &Dispatcher{
		repo:  repo,
		hub:   hub,
		queue: make(chan Notice, 256),
		done:  make(chan struct{}),
	}
	go d.run()
	return d
}

func (d *Dispatcher) Publish(notice Notice) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		logger.Warn("notification dispatcher stopped, dropping notice",
			"user_id", notice.UserID, "type", notice.Type)
		return
	}

	select {
	case d.queue <- notice:
	default:
		logger.Warn("notification queue full, dropping notice",
			"user_id", notice.UserID, "type", notice.Type)
	}
}

func (d *Dispatcher) run() {
	defer close(d.done)

	for notice := range d.queue {
		d.deliver(notice)
	}
}

func (d *Dispatcher) deliver(notice Notice) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := d.repo.Create(ctx, &entity.Notification{
		UserID: notice.UserID,
		Type:   notice.Type,
		Title:  notice.Title,
		Body:   notice.Body,
		Data:   notice.Data,
	})
	if err != nil {
		logger.Error("notification persist failed",
			"user_id", notice.UserID, "type", notice.Type, "err", err)
		return
	}

	if d.hub != nil && d.hub.Connected(notice.UserID) {
		d.hub.Publish(notice.UserID, realtime.Envelope{Type: notice.Type, Data: notice.Data})
	}
}

// Shutdown stops accepting notices and drains the queue. Safe to call once;
// later publishes are dropped instead of panicking on the closed channel.
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()
	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
