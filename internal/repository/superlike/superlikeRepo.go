package superlikeRepo

import (
	"context"
	"strconv"
	"time"

	"github.com/cristiannav/swapstyle-backend/internal/entity"
	"github.com/cristiannav/swapstyle-backend/internal/logger"
	"github.com/go-redis/redis"
	"gorm.io/gorm"
)

type ISuperLikeRepo interface {
	// Create inserts the super-like; unique on (giver_id, garment_id).
	Create(ctx context.Context, superLike *entity.SuperLike) (*entity.SuperLike, error)

	// TodayCount returns how many super-likes the giver created since local
	// midnight. Redis is a read-through cache keyed per giver and day; the
	// database count is the authority on a miss.
	TodayCount(ctx context.Context, giverID uint) (int, error)

	ReceivedByUser(ctx context.Context, userID uint) ([]entity.SuperLike, error)
	SentByUser(ctx context.Context, userID uint) ([]entity.SuperLike, error)
}

type SuperLikeRepo struct {
	db  *gorm.DB
	rdb *redis.Client
}

func New(db *gorm.DB, rdb *redis.Client) ISuperLikeRepo {
	return &SuperLikeRepo{db: db, rdb: rdb}
}

func (r *SuperLikeRepo) Create(ctx context.Context, superLike *entity.SuperLike) (*entity.SuperLike, error) {
	result := r.db.WithContext(ctx).Create(superLike)
	if result.Error != nil {
		return nil, result.Error
	}

	// best-effort cache bump; the DB count stays authoritative. The TTL is
	// re-stamped so an increment that created the key still expires at
	// midnight instead of lingering.
	countKey := todayCountKey(superLike.GiverID)
	if err := r.rdb.IncrBy(countKey, 1).Err(); err != nil && err != redis.Nil {
		logger.Warn("super-like count cache bump failed", "err", err)
	} else if err := r.rdb.Expire(countKey, ttlUntilMidnight()).Err(); err != nil && err != redis.Nil {
		logger.Warn("super-like count cache expire failed", "err", err)
	}

	return superLike, nil
}

func (r *SuperLikeRepo) TodayCount(ctx context.Context, giverID uint) (int, error) {
	countKey := todayCountKey(giverID)

	exists, err := r.rdb.Exists(countKey).Result()
	if err != nil && err != redis.Nil {
		logger.Warn("super-like count cache read failed", "err", err)
		exists = 0
	}

	if exists > 0 {
		count, err := r.rdb.Get(countKey).Int()
		if err == nil {
			return count, nil
		}
		logger.Warn("super-like count cache decode failed", "err", err)
	}

	count, err := r.countSince(ctx, giverID, startOfToday())
	if err != nil {
		return 0, err
	}

	if err := r.rdb.Set(countKey, count, ttlUntilMidnight()).Err(); err != nil {
		logger.Warn("super-like count cache set failed", "err", err)
	}

	return count, nil
}

func (r *SuperLikeRepo) ReceivedByUser(ctx context.Context, userID uint) ([]entity.SuperLike, error) {
	var superLikes []entity.SuperLike
	err := r.db.WithContext(ctx).
		Where("receiver_id = ?", userID).
		Order("created_at DESC").
		Find(&superLikes).Error
	return superLikes, err
}

func (r *SuperLikeRepo) SentByUser(ctx context.Context, userID uint) ([]entity.SuperLike, error) {
	var superLikes []entity.SuperLike
	err := r.db.WithContext(ctx).
		Where("giver_id = ?", userID).
		Order("created_at DESC").
		Find(&superLikes).Error
	return superLikes, err
}

func (r *SuperLikeRepo) countSince(ctx context.Context, giverID uint, since time.Time) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.SuperLike{}).
		Where("giver_id = ? AND created_at >= ?", giverID, since).
		Count(&count).Error
	return int(count), err
}

// The key carries the date so a stale entry from yesterday can never serve
// today's quota check.
func todayCountKey(giverID uint) string {
	return "superlikes:" + time.Now().Format("2006-01-02") + ":user:" + strconv.FormatUint(uint64(giverID), 10)
}

func startOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func ttlUntilMidnight() time.Duration {
	now := time.Now()
	startOfTomorrow := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	return startOfTomorrow.Sub(now)
}
