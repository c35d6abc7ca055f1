// Package realtime holds the process-wide connected-user registry. It is an
// explicit state object constructed in the server and injected where needed,
// never package-level state.
package realtime

import (
	"sync"

	"github.com/cristiannav/swapstyle-backend/internal/entity"
)

// Envelope is what a connected client receives over its push channel.
type Envelope struct {
	Type entity.NotificationType `json:"type"`
	Data entity.Payload          `json:"data,omitempty"`
}

type subscriber struct {
	id uint64
	ch chan Envelope
}

// Hub fans out envelopes to a user's active connections. Publish never
// blocks: a subscriber whose buffer is full misses the envelope, which is
// acceptable for a best-effort push channel.
type Hub struct {
	mu      sync.RWMutex
	nextID  uint64
	closed  bool
	byUser  map[uint][]subscriber
	bufSize int
}

func NewHub() *Hub {
	return &Hub{
		byUser:  make(map[uint][]subscriber),
		bufSize: 16,
	}
}

// Subscribe registers a connection for userID and returns the receive channel
// plus an unsubscribe func. The channel is closed on unsubscribe or hub close.
func (h *Hub) Subscribe(userID uint) (<-chan Envelope, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		ch := make(chan Envelope)
		close(ch)
		return ch, func() {}
	}

	h.nextID++
	sub := subscriber{id: h.nextID, ch: make(chan Envelope, h.bufSize)}
	h.byUser[userID] = append(h.byUser[userID], sub)

	return sub.ch, func() { h.unsubscribe(userID, sub.id) }
}

func (h *Hub) unsubscribe(userID uint, subID uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	subs := h.byUser[userID]
	for i, sub := range subs {
		if sub.id == subID {
			h.byUser[userID] = append(subs[:i], subs[i+1:]...)
			close(sub.ch)
			break
		}
	}
	if len(h.byUser[userID]) == 0 {
		delete(h.byUser, userID)
	}
}

// Publish delivers the envelope to every active connection of userID.
func (h *Hub) Publish(userID uint, env Envelope) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return
	}

	for _, sub := range h.byUser[userID] {
		select {
		case sub.ch <- env:
		default:
		}
	}
}

// Connected reports whether userID has at least one active connection.
func (h *Hub) Connected(userID uint) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.byUser[userID]) > 0
}

// Close tears down every connection; further Subscribe/Publish calls no-op.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true

	for userID, subs := range h.byUser {
		for _, sub := range subs {
			close(sub.ch)
		}
		delete(h.byUser, userID)
	}
}
