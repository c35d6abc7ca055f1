// Package testutil provides the shared unit-test fixtures: an in-memory
// sqlite database migrated to the full schema and a miniredis-backed client.
package testutil

import (
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/cristiannav/swapstyle-backend/internal/entity"
	"github.com/cristiannav/swapstyle-backend/internal/notifier"
	"github.com/go-redis/redis"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// OpenDB opens a fresh in-memory database with every table migrated.
// TranslateError is on, matching production, so unique-constraint violations
// surface as gorm.ErrDuplicatedKey in tests too.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&entity.User{},
		&entity.Garment{},
		&entity.Swipe{},
		&entity.SuperLike{},
		&entity.Match{},
		&entity.Conversation{},
		&entity.Message{},
		&entity.Notification{},
		&entity.Event{},
		&entity.EventRegistration{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	// sqlite supports partial indexes, so the live-pair uniqueness rule is
	// the same one production postgres enforces
	err = db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_matches_active_pair
		ON matches (user1_id, user2_id) WHERE status <> 'CANCELLED'`).Error
	if err != nil {
		t.Fatalf("failed to create partial index: %v", err)
	}

	return db
}

// OpenRedis starts a miniredis instance and returns a client bound to it.
func OpenRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return client, mr
}

// CaptureSink records published notices for assertions.
type CaptureSink struct {
	mu      sync.Mutex
	Notices []notifier.Notice
}

func (s *CaptureSink) Publish(notice notifier.Notice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Notices = append(s.Notices, notice)
}

// ByType returns the captured notices of one type.
func (s *CaptureSink) ByType(t entity.NotificationType) []notifier.Notice {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []notifier.Notice
	for _, n := range s.Notices {
		if n.Type == t {
			out = append(out, n)
		}
	}
	return out
}
