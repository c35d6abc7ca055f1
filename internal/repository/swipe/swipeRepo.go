package swipeRepo

import (
	"context"

	"github.com/cristiannav/swapstyle-backend/internal/entity"
	"gorm.io/gorm"
)

type ISwipeRepo interface {
	// Create appends a swipe; the unique index on (swiper_id, garment_id)
	// makes concurrent duplicates lose with gorm.ErrDuplicatedKey.
	Create(ctx context.Context, swipe *entity.Swipe) (*entity.Swipe, error)

	// FindReciprocalRight returns the earliest RIGHT swipe by swiperID on any
	// of swipedID's garments. The earliest-created tie-break keeps the match
	// engine deterministic when several reciprocal likes exist.
	FindReciprocalRight(ctx context.Context, swiperID, swipedID uint) (*entity.Swipe, error)

	LastByUser(ctx context.Context, userID uint) (*entity.Swipe, error)
	Delete(ctx context.Context, id uint) error
	HistoryByUser(ctx context.Context, userID uint, direction *entity.SwipeDirection, limit int) ([]entity.Swipe, error)
}

type SwipeRepo struct {
	db *gorm.DB
}

func New(db *gorm.DB) ISwipeRepo {
	return &SwipeRepo{db: db}
}

func (r *SwipeRepo) Create(ctx context.Context, swipe *entity.Swipe) (*entity.Swipe, error) {
	result := r.db.WithContext(ctx).Create(swipe)
	return swipe, result.Error
}

func (r *SwipeRepo) FindReciprocalRight(ctx context.Context, swiperID, swipedID uint) (*entity.Swipe, error) {
	var swipe entity.Swipe
	result := r.db.WithContext(ctx).
		Where("swiper_id = ? AND swiped_id = ? AND direction = ?", swiperID, swipedID, entity.SwipeRight).
		Order("created_at ASC, id ASC").
		First(&swipe)
	return &swipe, result.Error
}

func (r *SwipeRepo) LastByUser(ctx context.Context, userID uint) (*entity.Swipe, error) {
	var swipe entity.Swipe
	result := r.db.WithContext(ctx).
		Where("swiper_id = ?", userID).
		Order("created_at DESC, id DESC").
		First(&swipe)
	return &swipe, result.Error
}

func (r *SwipeRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Swipe{}, id).Error
}

func (r *SwipeRepo) HistoryByUser(ctx context.Context, userID uint, direction *entity.SwipeDirection, limit int) ([]entity.Swipe, error) {
	query := r.db.WithContext(ctx).
		Where("swiper_id = ?", userID)

	if direction != nil {
		query = query.Where("direction = ?", *direction)
	}

	var swipes []entity.Swipe
	err := query.
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&swipes).Error

	return swipes, err
}
