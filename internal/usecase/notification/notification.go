package notification

import (
	"context"
	"time"

	"github.com/cristiannav/swapstyle-backend/internal/apperror"
	"github.com/cristiannav/swapstyle-backend/internal/entity"
	notificationRepo "github.com/cristiannav/swapstyle-backend/internal/repository/notification"
)

// read notifications older than this are eligible for pruning
const retention = 90 * 24 * time.Hour

type INotificationUseCase interface {
	List(ctx context.Context, userID uint, page, limit int) (*entity.Page[entity.Notification], error)
	MarkRead(ctx context.Context, id, userID uint) error
	MarkAllRead(ctx context.Context, userID uint) error
	UnreadCount(ctx context.Context, userID uint) (*entity.UnreadCountResponse, error)
	Delete(ctx context.Context, id, userID uint) error
	PruneExpired(ctx context.Context) error
}

type notificationUseCase struct {
	notificationRepo notificationRepo.INotificationRepo
}

func New(notificationRepo notificationRepo.INotificationRepo) INotificationUseCase {
	return &notificationUseCase{notificationRepo: notificationRepo}
}

func (u *notificationUseCase) List(ctx context.Context, userID uint, page, limit int) (*entity.Page[entity.Notification], error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	notifications, total, err := u.notificationRepo.ListByUser(ctx, userID, page, limit)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &entity.Page[entity.Notification]{
		Items: notifications,
		Meta:  entity.NewPaginationMeta(total, page, limit),
	}, nil
}

func (u *notificationUseCase) MarkRead(ctx context.Context, id, userID uint) error {
	if err := u.notificationRepo.MarkRead(ctx, id, userID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *notificationUseCase) MarkAllRead(ctx context.Context, userID uint) error {
	if err := u.notificationRepo.MarkAllRead(ctx, userID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *notificationUseCase) UnreadCount(ctx context.Context, userID uint) (*entity.UnreadCountResponse, error) {
	count, err := u.notificationRepo.UnreadCount(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &entity.UnreadCountResponse{Count: count}, nil
}

func (u *notificationUseCase) Delete(ctx context.Context, id, userID uint) error {
	if err := u.notificationRepo.Delete(ctx, id, userID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *notificationUseCase) PruneExpired(ctx context.Context) error {
	return u.notificationRepo.DeleteOlderThan(ctx, time.Now().Add(-retention))
}
