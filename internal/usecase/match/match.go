// Package match governs the lifecycle of an existing match: status
// transitions, garment proposals, and participant-scoped reads.
package match

import (
	"context"
	"errors"

	"github.com/cristiannav/swapstyle-backend/internal/apperror"
	"github.com/cristiannav/swapstyle-backend/internal/entity"
	"github.com/cristiannav/swapstyle-backend/internal/logger"
	"github.com/cristiannav/swapstyle-backend/internal/notifier"
	garmentRepo "github.com/cristiannav/swapstyle-backend/internal/repository/garment"
	matchRepo "github.com/cristiannav/swapstyle-backend/internal/repository/match"
	"gorm.io/gorm"
)

type IMatchUseCase interface {
	GetByID(ctx context.Context, matchID, callerID uint) (*entity.Match, error)
	List(ctx context.Context, userID uint, page, limit int) (*entity.Page[entity.Match], error)
	Stats(ctx context.Context, userID uint) (*entity.MatchStats, error)
	UpdateStatus(ctx context.Context, matchID, callerID uint, target entity.MatchStatus) (*entity.Match, error)
	ProposeGarment(ctx context.Context, matchID, callerID, garmentID uint) (*entity.Match, error)
}

type matchUseCase struct {
	matchRepo   matchRepo.IMatchRepo
	garmentRepo garmentRepo.IGarmentRepo
	sink        notifier.Sink
}

func New(matchRepo matchRepo.IMatchRepo, garmentRepo garmentRepo.IGarmentRepo, sink notifier.Sink) IMatchUseCase {
	return &matchUseCase{
		matchRepo:   matchRepo,
		garmentRepo: garmentRepo,
		sink:        sink,
	}
}

func (u *matchUseCase) GetByID(ctx context.Context, matchID, callerID uint) (*entity.Match, error) {
	match, err := u.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, apperror.FromStore(err, "Match not found", "")
	}

	if !match.HasParticipant(callerID) {
		return nil, apperror.Forbidden("Not authorized to view this match")
	}

	return match, nil
}

func (u *matchUseCase) List(ctx context.Context, userID uint, page, limit int) (*entity.Page[entity.Match], error) {
	matches, total, err := u.matchRepo.ListByUser(ctx, userID, page, limit)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &entity.Page[entity.Match]{
		Items: matches,
		Meta:  entity.NewPaginationMeta(total, page, limit),
	}, nil
}

func (u *matchUseCase) Stats(ctx context.Context, userID uint) (*entity.MatchStats, error) {
	stats, err := u.matchRepo.StatsByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return stats, nil
}

func (u *matchUseCase) UpdateStatus(ctx context.Context, matchID, callerID uint, target entity.MatchStatus) (*entity.Match, error) {
	match, err := u.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, apperror.FromStore(err, "Match not found", "")
	}

	if !match.HasParticipant(callerID) {
		return nil, apperror.Forbidden("Not authorized to update this match")
	}

	if !match.Status.CanTransition(target) {
		return nil, apperror.BadRequestf("Cannot transition from %s to %s", match.Status, target)
	}

	swapped, err := u.matchRepo.TransitionStatus(ctx, matchID, match.Status, target)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if !swapped {
		// a concurrent transition moved the row first
		current, readErr := u.matchRepo.GetByID(ctx, matchID)
		if readErr != nil {
			return nil, apperror.Internal(readErr)
		}
		return nil, apperror.BadRequestf("Cannot transition from %s to %s", current.Status, target)
	}

	match.Status = target

	if target == entity.MatchCompleted {
		u.completeSwap(ctx, match, callerID)
	}

	return match, nil
}

// completeSwap applies the COMPLETED side effects: both referenced garments
// become SWAPPED and the counterpart learns about it.
func (u *matchUseCase) completeSwap(ctx context.Context, match *entity.Match, callerID uint) {
	ids := []uint{match.Garment1ID}
	if match.Garment2ID != nil {
		ids = append(ids, *match.Garment2ID)
	}

	if err := u.garmentRepo.SetStatus(ctx, ids, entity.GarmentSwapped); err != nil {
		// the transition already committed; don't roll it back over this
		logger.Warn("garment swap status update failed", "match_id", match.ID, "err", err)
	}

	u.sink.Publish(notifier.Notice{
		UserID: match.Counterpart(callerID),
		Type:   entity.NotificationSwapCompleted,
		Title:  "Swap completed!",
		Body:   "Your swap has been marked as completed",
		Data:   entity.Payload{"match_id": match.ID},
	})
}

func (u *matchUseCase) ProposeGarment(ctx context.Context, matchID, callerID, garmentID uint) (*entity.Match, error) {
	match, err := u.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, apperror.FromStore(err, "Match not found", "")
	}

	if !match.HasParticipant(callerID) {
		return nil, apperror.Forbidden("Not authorized")
	}

	garment, err := u.garmentRepo.GetByID(ctx, garmentID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.Internal(err)
	}
	if err != nil || garment.OwnerID != callerID {
		return nil, apperror.BadRequest("Invalid garment")
	}

	slot := 1
	if match.User2ID == callerID {
		slot = 2
	}

	if err := u.matchRepo.SetGarmentSlot(ctx, matchID, slot, garmentID); err != nil {
		return nil, apperror.Internal(err)
	}

	if slot == 1 {
		match.Garment1ID = garmentID
	} else {
		match.Garment2ID = &garmentID
	}

	return match, nil
}
