package garmentRepo

import (
	"context"

	"github.com/cristiannav/swapstyle-backend/internal/entity"
	"gorm.io/gorm"
)

type IGarmentRepo interface {
	Create(ctx context.Context, garment *entity.Garment) (*entity.Garment, error)
	GetByID(ctx context.Context, id uint) (*entity.Garment, error)
	Save(ctx context.Context, garment *entity.Garment) error
	SetStatus(ctx context.Context, ids []uint, status entity.GarmentStatus) error
	Search(ctx context.Context, filters entity.GarmentFilters, page, limit int) ([]entity.Garment, int64, error)
	Feed(ctx context.Context, userID uint, limit int) ([]entity.Garment, error)

	// Counter updates are display-only and deliberately not transactional
	// with the swipe/super-like row writes; decrements never go below zero.
	AddLikeCount(ctx context.Context, id uint, delta int) error
	AddSuperLikeCount(ctx context.Context, id uint, delta int) error
	AddViewCount(ctx context.Context, id uint) error
}

type GarmentRepo struct {
	db *gorm.DB
}

func New(db *gorm.DB) IGarmentRepo {
	return &GarmentRepo{db: db}
}

func (r *GarmentRepo) Create(ctx context.Context, garment *entity.Garment) (*entity.Garment, error) {
	result := r.db.WithContext(ctx).Create(garment)
	return garment, result.Error
}

func (r *GarmentRepo) GetByID(ctx context.Context, id uint) (*entity.Garment, error) {
	var garment entity.Garment
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&garment)
	return &garment, result.Error
}

func (r *GarmentRepo) Save(ctx context.Context, garment *entity.Garment) error {
	return r.db.WithContext(ctx).Save(garment).Error
}

func (r *GarmentRepo) SetStatus(ctx context.Context, ids []uint, status entity.GarmentStatus) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&entity.Garment{}).
		Where("id IN ?", ids).
		Update("status", status).Error
}

func (r *GarmentRepo) Search(ctx context.Context, filters entity.GarmentFilters, page, limit int) ([]entity.Garment, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.Garment{})

	status := filters.Status
	if status == "" {
		status = entity.GarmentActive
	}
	query = query.Where("status = ?", status)

	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.Size != "" {
		query = query.Where("size = ?", filters.Size)
	}
	if filters.Color != "" {
		query = query.Where("color = ?", filters.Color)
	}
	if filters.Condition != "" {
		query = query.Where("condition = ?", filters.Condition)
	}
	if filters.Brand != "" {
		query = query.Where("brand = ?", filters.Brand)
	}
	if filters.OwnerID != 0 {
		query = query.Where("owner_id = ?", filters.OwnerID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var garments []entity.Garment
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&garments).Error

	return garments, total, err
}

// Feed returns ACTIVE garments the user neither owns nor has swiped yet.
func (r *GarmentRepo) Feed(ctx context.Context, userID uint, limit int) ([]entity.Garment, error) {
	swiped := r.db.
		Model(&entity.Swipe{}).
		Select("garment_id").
		Where("swiper_id = ?", userID)

	var garments []entity.Garment
	err := r.db.WithContext(ctx).
		Model(&entity.Garment{}).
		Where("status = ?", entity.GarmentActive).
		Where("owner_id <> ?", userID).
		Where("id NOT IN (?)", swiped).
		Order("created_at DESC").
		Limit(limit).
		Find(&garments).Error

	return garments, err
}

func (r *GarmentRepo) AddLikeCount(ctx context.Context, id uint, delta int) error {
	query := r.db.WithContext(ctx).
		Model(&entity.Garment{}).
		Where("id = ?", id)

	if delta < 0 {
		// the guard keeps a replayed undo from driving the counter negative
		query = query.Where("like_count >= ?", -delta)
	}

	return query.Update("like_count", gorm.Expr("like_count + ?", delta)).Error
}

func (r *GarmentRepo) AddSuperLikeCount(ctx context.Context, id uint, delta int) error {
	query := r.db.WithContext(ctx).
		Model(&entity.Garment{}).
		Where("id = ?", id)

	if delta < 0 {
		query = query.Where("super_like_count >= ?", -delta)
	}

	return query.Update("super_like_count", gorm.Expr("super_like_count + ?", delta)).Error
}

func (r *GarmentRepo) AddViewCount(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&entity.Garment{}).
		Where("id = ?", id).
		Update("view_count", gorm.Expr("view_count + 1")).Error
}
