package matchRepo

import (
	"context"

	"github.com/cristiannav/swapstyle-backend/internal/entity"
	"gorm.io/gorm"
)

type IMatchRepo interface {
	GetByID(ctx context.Context, id uint) (*entity.Match, error)

	// FindActiveByUsers looks up the single non-cancelled match for a
	// canonically ordered pair.
	FindActiveByUsers(ctx context.Context, user1ID, user2ID uint) (*entity.Match, error)

	// CreateWithConversation inserts the match and its conversation in one
	// transaction: both rows exist afterwards or neither does. Losing the
	// uniqueness race on (user1_id, user2_id) surfaces gorm.ErrDuplicatedKey
	// and rolls the conversation back with the match.
	CreateWithConversation(ctx context.Context, match *entity.Match) (*entity.Match, error)

	Save(ctx context.Context, match *entity.Match) error

	// TransitionStatus flips status only when the row is still in the
	// expected state, so two concurrent transitions cannot both win.
	TransitionStatus(ctx context.Context, matchID uint, from, to entity.MatchStatus) (bool, error)

	SetGarmentSlot(ctx context.Context, matchID uint, slot int, garmentID uint) error
	ListByUser(ctx context.Context, userID uint, page, limit int) ([]entity.Match, int64, error)
	StatsByUser(ctx context.Context, userID uint) (*entity.MatchStats, error)
}

type MatchRepo struct {
	db *gorm.DB
}

func New(db *gorm.DB) IMatchRepo {
	return &MatchRepo{db: db}
}

func (r *MatchRepo) GetByID(ctx context.Context, id uint) (*entity.Match, error) {
	var match entity.Match
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&match)
	return &match, result.Error
}

func (r *MatchRepo) FindActiveByUsers(ctx context.Context, user1ID, user2ID uint) (*entity.Match, error) {
	var match entity.Match
	result := r.db.WithContext(ctx).
		Where("user1_id = ? AND user2_id = ? AND status <> ?", user1ID, user2ID, entity.MatchCancelled).
		First(&match)
	return &match, result.Error
}

func (r *MatchRepo) CreateWithConversation(ctx context.Context, match *entity.Match) (*entity.Match, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(match).Error; err != nil {
			return err
		}
		return tx.Create(&entity.Conversation{MatchID: match.ID}).Error
	})
	if err != nil {
		return nil, err
	}
	return match, nil
}

func (r *MatchRepo) Save(ctx context.Context, match *entity.Match) error {
	return r.db.WithContext(ctx).Save(match).Error
}

func (r *MatchRepo) TransitionStatus(ctx context.Context, matchID uint, from, to entity.MatchStatus) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&entity.Match{}).
		Where("id = ? AND status = ?", matchID, from).
		Update("status", to)
	return result.RowsAffected > 0, result.Error
}

func (r *MatchRepo) SetGarmentSlot(ctx context.Context, matchID uint, slot int, garmentID uint) error {
	column := "garment1_id"
	if slot == 2 {
		column = "garment2_id"
	}
	return r.db.WithContext(ctx).
		Model(&entity.Match{}).
		Where("id = ?", matchID).
		Update(column, garmentID).Error
}

func (r *MatchRepo) ListByUser(ctx context.Context, userID uint, page, limit int) ([]entity.Match, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&entity.Match{}).
		Where("(user1_id = ? OR user2_id = ?)", userID, userID).
		Where("status NOT IN ?", []entity.MatchStatus{entity.MatchCancelled, entity.MatchExpired})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var matches []entity.Match
	err := query.
		Order("updated_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&matches).Error

	return matches, total, err
}

func (r *MatchRepo) StatsByUser(ctx context.Context, userID uint) (*entity.MatchStats, error) {
	base := func() *gorm.DB {
		return r.db.WithContext(ctx).
			Model(&entity.Match{}).
			Where("user1_id = ? OR user2_id = ?", userID, userID)
	}

	var stats entity.MatchStats

	if err := base().Count(&stats.TotalMatches).Error; err != nil {
		return nil, err
	}
	if err := base().Where("status = ?", entity.MatchCompleted).Count(&stats.CompletedSwaps).Error; err != nil {
		return nil, err
	}
	err := base().
		Where("status IN ?", []entity.MatchStatus{entity.MatchPending, entity.MatchAccepted, entity.MatchNegotiating}).
		Count(&stats.PendingMatches).Error

	return &stats, err
}
