// Package swipe implements the swipe ledger and the match engine: recording
// decisions, detecting mutual likes, and forming the canonical match with its
// conversation exactly once.
package swipe

import (
	"context"
	"errors"
	"time"

	"github.com/cristiannav/swapstyle-backend/internal/apperror"
	"github.com/cristiannav/swapstyle-backend/internal/entity"
	"github.com/cristiannav/swapstyle-backend/internal/logger"
	"github.com/cristiannav/swapstyle-backend/internal/notifier"
	garmentRepo "github.com/cristiannav/swapstyle-backend/internal/repository/garment"
	matchRepo "github.com/cristiannav/swapstyle-backend/internal/repository/match"
	swipeRepo "github.com/cristiannav/swapstyle-backend/internal/repository/swipe"
	"gorm.io/gorm"
)

type ISwipeUseCase interface {
	Swipe(ctx context.Context, swiperID, garmentID uint, direction entity.SwipeDirection) (*entity.SwipeResponse, error)
	UndoLast(ctx context.Context, userID uint) error
	History(ctx context.Context, userID uint, direction *entity.SwipeDirection) ([]entity.Swipe, error)
}

type swipeUseCase struct {
	garmentRepo garmentRepo.IGarmentRepo
	swipeRepo   swipeRepo.ISwipeRepo
	matchRepo   matchRepo.IMatchRepo
	sink        notifier.Sink
}

func New(
	garmentRepo garmentRepo.IGarmentRepo,
	swipeRepo swipeRepo.ISwipeRepo,
	matchRepo matchRepo.IMatchRepo,
	sink notifier.Sink,
) ISwipeUseCase {
	return &swipeUseCase{
		garmentRepo: garmentRepo,
		swipeRepo:   swipeRepo,
		matchRepo:   matchRepo,
		sink:        sink,
	}
}

func (u *swipeUseCase) Swipe(ctx context.Context, swiperID, garmentID uint, direction entity.SwipeDirection) (*entity.SwipeResponse, error) {
	garment, err := u.garmentRepo.GetByID(ctx, garmentID)
	if err != nil {
		return nil, apperror.FromStore(err, "Garment not found", "")
	}

	if garment.Status != entity.GarmentActive {
		return nil, apperror.BadRequest("This garment is not available")
	}

	if garment.OwnerID == swiperID {
		return nil, apperror.BadRequest("Cannot swipe on your own garment")
	}

	swipe := &entity.Swipe{
		SwiperID:  swiperID,
		SwipedID:  garment.OwnerID,
		GarmentID: garmentID,
		Direction: direction,
	}

	if _, err := u.swipeRepo.Create(ctx, swipe); err != nil {
		return nil, apperror.FromStore(err, "Garment not found", "Already swiped on this garment")
	}

	if direction != entity.SwipeRight {
		return &entity.SwipeResponse{SwipeID: swipe.ID, IsMatch: false}, nil
	}

	// like counter is display-only; its failure never fails the swipe
	if err := u.garmentRepo.AddLikeCount(ctx, garmentID, 1); err != nil {
		logger.Warn("like count increment failed", "garment_id", garmentID, "err", err)
	}

	match, created, err := u.evaluateMatch(ctx, swiperID, garment.OwnerID, garmentID)
	if err != nil {
		return nil, err
	}

	if match == nil {
		return &entity.SwipeResponse{SwipeID: swipe.ID, IsMatch: false}, nil
	}

	if created {
		u.notifyMatched(match)
	}

	matchID := match.ID
	return &entity.SwipeResponse{SwipeID: swipe.ID, IsMatch: true, MatchID: &matchID}, nil
}

// evaluateMatch runs the match engine for a freshly recorded RIGHT swipe by
// swiperID on a garment owned by ownerID. It returns the match (nil when no
// mutual like exists) and whether this call created it.
func (u *swipeUseCase) evaluateMatch(ctx context.Context, swiperID, ownerID, garmentID uint) (*entity.Match, bool, error) {
	reciprocal, err := u.swipeRepo.FindReciprocalRight(ctx, ownerID, swiperID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, apperror.Internal(err)
	}

	// reciprocal.GarmentID is the swiper's own garment (the one the owner
	// swiped on); each slot must hold the garment owned by its user
	user1, user2, garment1, garment2 := entity.OrderParticipants(swiperID, ownerID, reciprocal.GarmentID, garmentID)

	existing, err := u.matchRepo.FindActiveByUsers(ctx, user1, user2)
	if err == nil {
		// already matched: idempotent return, no re-notify
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, apperror.Internal(err)
	}

	match := &entity.Match{
		User1ID:    user1,
		User2ID:    user2,
		Garment1ID: garment1,
		Garment2ID: &garment2,
		Status:     entity.MatchPending,
	}

	created, err := u.matchRepo.CreateWithConversation(ctx, match)
	if err != nil {
		if apperror.IsDuplicate(err) {
			// lost the creation race; the winner's row is the match
			winner, findErr := u.matchRepo.FindActiveByUsers(ctx, user1, user2)
			if findErr != nil {
				return nil, false, apperror.Internal(findErr)
			}
			return winner, false, nil
		}
		return nil, false, apperror.Internal(err)
	}

	return created, true, nil
}

func (u *swipeUseCase) notifyMatched(match *entity.Match) {
	for _, userID := range []uint{match.User1ID, match.User2ID} {
		u.sink.Publish(notifier.Notice{
			UserID: userID,
			Type:   entity.NotificationNewMatch,
			Title:  "New match!",
			Body:   "You matched on a garment you like",
			Data:   entity.Payload{"match_id": match.ID},
		})
	}
}

func (u *swipeUseCase) UndoLast(ctx context.Context, userID uint) error {
	last, err := u.swipeRepo.LastByUser(ctx, userID)
	if err != nil {
		return apperror.FromStore(err, "No swipes to undo", "")
	}

	if time.Since(last.CreatedAt) > entity.UndoWindow {
		return apperror.BadRequest("Can only undo swipes within 5 seconds")
	}

	if err := u.swipeRepo.Delete(ctx, last.ID); err != nil {
		return apperror.Internal(err)
	}

	// decrement only what the original swipe incremented; a match that may
	// have already formed from this swipe is deliberately left alone
	if last.Direction == entity.SwipeRight {
		if err := u.garmentRepo.AddLikeCount(ctx, last.GarmentID, -1); err != nil {
			logger.Warn("like count decrement failed", "garment_id", last.GarmentID, "err", err)
		}
	}

	return nil
}

func (u *swipeUseCase) History(ctx context.Context, userID uint, direction *entity.SwipeDirection) ([]entity.Swipe, error) {
	swipes, err := u.swipeRepo.HistoryByUser(ctx, userID, direction, 100)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return swipes, nil
}
