// Package superlike implements the rate-limited super-like: a higher-signal
// like with an optional message, capped per giver per calendar day.
package superlike

import (
	"context"

	"github.com/cristiannav/swapstyle-backend/internal/apperror"
	"github.com/cristiannav/swapstyle-backend/internal/entity"
	"github.com/cristiannav/swapstyle-backend/internal/logger"
	"github.com/cristiannav/swapstyle-backend/internal/notifier"
	garmentRepo "github.com/cristiannav/swapstyle-backend/internal/repository/garment"
	superlikeRepo "github.com/cristiannav/swapstyle-backend/internal/repository/superlike"
)

type ISuperLikeUseCase interface {
	Send(ctx context.Context, giverID, garmentID uint, message string) (*entity.SuperLike, error)
	RemainingToday(ctx context.Context, giverID uint) (*entity.RemainingSuperLikesResponse, error)
	Received(ctx context.Context, userID uint) ([]entity.SuperLike, error)
	Sent(ctx context.Context, userID uint) ([]entity.SuperLike, error)
}

type superLikeUseCase struct {
	garmentRepo   garmentRepo.IGarmentRepo
	superLikeRepo superlikeRepo.ISuperLikeRepo
	sink          notifier.Sink
}

func New(
	garmentRepo garmentRepo.IGarmentRepo,
	superLikeRepo superlikeRepo.ISuperLikeRepo,
	sink notifier.Sink,
) ISuperLikeUseCase {
	return &superLikeUseCase{
		garmentRepo:   garmentRepo,
		superLikeRepo: superLikeRepo,
		sink:          sink,
	}
}

func (u *superLikeUseCase) Send(ctx context.Context, giverID, garmentID uint, message string) (*entity.SuperLike, error) {
	garment, err := u.garmentRepo.GetByID(ctx, garmentID)
	if err != nil {
		return nil, apperror.FromStore(err, "Garment not found", "")
	}

	if garment.Status != entity.GarmentActive {
		return nil, apperror.BadRequest("This garment is not available")
	}

	if garment.OwnerID == giverID {
		return nil, apperror.BadRequest("Cannot super like your own garment")
	}

	count, err := u.superLikeRepo.TodayCount(ctx, giverID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if count >= entity.DailySuperLikeLimit {
		return nil, apperror.BadRequestf("Daily super like limit (%d) reached", entity.DailySuperLikeLimit)
	}

	superLike := &entity.SuperLike{
		GiverID:    giverID,
		ReceiverID: garment.OwnerID,
		GarmentID:  garmentID,
		Message:    message,
	}

	// the quota check above is advisory under concurrency; the unique index
	// on (giver_id, garment_id) is what actually holds the dedupe line
	if _, err := u.superLikeRepo.Create(ctx, superLike); err != nil {
		return nil, apperror.FromStore(err, "Garment not found", "Already super liked this garment")
	}

	if err := u.garmentRepo.AddSuperLikeCount(ctx, garmentID, 1); err != nil {
		logger.Warn("super-like count increment failed", "garment_id", garmentID, "err", err)
	}

	u.sink.Publish(notifier.Notice{
		UserID: garment.OwnerID,
		Type:   entity.NotificationSuperLike,
		Title:  "Someone super liked your garment!",
		Body:   garment.Title,
		Data:   entity.Payload{"garment_id": garment.ID, "super_like_id": superLike.ID},
	})

	return superLike, nil
}

func (u *superLikeUseCase) RemainingToday(ctx context.Context, giverID uint) (*entity.RemainingSuperLikesResponse, error) {
	count, err := u.superLikeRepo.TodayCount(ctx, giverID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	remaining := entity.DailySuperLikeLimit - count
	if remaining < 0 {
		remaining = 0
	}

	return &entity.RemainingSuperLikesResponse{
		Remaining: remaining,
		Limit:     entity.DailySuperLikeLimit,
	}, nil
}

func (u *superLikeUseCase) Received(ctx context.Context, userID uint) ([]entity.SuperLike, error) {
	superLikes, err := u.superLikeRepo.ReceivedByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return superLikes, nil
}

func (u *superLikeUseCase) Sent(ctx context.Context, userID uint) ([]entity.SuperLike, error) {
	superLikes, err := u.superLikeRepo.SentByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return superLikes, nil
}
