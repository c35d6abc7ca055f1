package notificationRepo

import (
	"context"
	"strconv"
	"time"

	"github.com/cristiannav/swapstyle-backend/internal/entity"
	"github.com/cristiannav/swapstyle-backend/internal/logger"
	"github.com/go-redis/redis"
	"gorm.io/gorm"
)

type INotificationRepo interface {
	Create(ctx context.Context, notification *entity.Notification) (*entity.Notification, error)
	ListByUser(ctx context.Context, userID uint, page, limit int) ([]entity.Notification, int64, error)
	MarkRead(ctx context.Context, id, userID uint) error
	MarkAllRead(ctx context.Context, userID uint) error
	UnreadCount(ctx context.Context, userID uint) (int64, error)
	Delete(ctx context.Context, id, userID uint) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) error
}

type NotificationRepo struct {
	db  *gorm.DB
	rdb *redis.Client
}

func New(db *gorm.DB, rdb *redis.Client) INotificationRepo {
	return &NotificationRepo{db: db, rdb: rdb}
}

func (r *NotificationRepo) Create(ctx context.Context, notification *entity.Notification) (*entity.Notification, error) {
	result := r.db.WithContext(ctx).Create(notification)
	if result.Error != nil {
		return nil, result.Error
	}
	r.dropUnreadCache(notification.UserID)
	return notification, nil
}

func (r *NotificationRepo) ListByUser(ctx context.Context, userID uint, page, limit int) ([]entity.Notification, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&entity.Notification{}).
		Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var notifications []entity.Notification
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&notifications).Error

	return notifications, total, err
}

func (r *NotificationRepo) MarkRead(ctx context.Context, id, userID uint) error {
	now := time.Now()
	err := r.db.WithContext(ctx).
		Model(&entity.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]any{"is_read": true, "read_at": now}).Error
	if err == nil {
		r.dropUnreadCache(userID)
	}
	return err
}

func (r *NotificationRepo) MarkAllRead(ctx context.Context, userID uint) error {
	now := time.Now()
	err := r.db.WithContext(ctx).
		Model(&entity.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Updates(map[string]any{"is_read": true, "read_at": now}).Error
	if err == nil {
		r.dropUnreadCache(userID)
	}
	return err
}

func (r *NotificationRepo) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	key := unreadCountKey(userID)

	if cached, err := r.rdb.Get(key).Int64(); err == nil {
		return cached, nil
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	if err := r.rdb.Set(key, count, 10*time.Minute).Err(); err != nil {
		logger.Warn("unread count cache set failed", "err", err)
	}

	return count, nil
}

func (r *NotificationRepo) Delete(ctx context.Context, id, userID uint) error {
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entity.Notification{}).Error
	if err == nil {
		r.dropUnreadCache(userID)
	}
	return err
}

// DeleteOlderThan expires read notifications past the retention cutoff.
func (r *NotificationRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) error {
	return r.db.WithContext(ctx).
		Where("created_at < ? AND is_read = ?", cutoff, true).
		Delete(&entity.Notification{}).Error
}

func (r *NotificationRepo) dropUnreadCache(userID uint) {
	if err := r.rdb.Del(unreadCountKey(userID)).Err(); err != nil && err != redis.Nil {
		logger.Warn("unread count cache invalidation failed", "err", err)
	}
}

func unreadCountKey(userID uint) string {
	return "notifications:unread:user:" + strconv.FormatUint(uint64(userID), 10)
}
