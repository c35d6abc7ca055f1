package event

import (
	"context"

	"github.com/cristiannav/swapstyle-backend/internal/apperror"
	"github.com/cristiannav/swapstyle-backend/internal/entity"
	eventRepo "github.com/cristiannav/swapstyle-backend/internal/repository/event"
)

type IEventUseCase interface {
	Create(ctx context.Context, req *entity.CreateEventRequest) (*entity.Event, error)
	GetByID(ctx context.Context, id uint) (*entity.Event, error)
	Upcoming(ctx context.Context, page, limit int) (*entity.Page[entity.Event], error)
	Register(ctx context.Context, eventID, userID uint) error
	Unregister(ctx context.Context, eventID, userID uint) error
}

type eventUseCase struct {
	eventRepo eventRepo.IEventRepo
}

func New(eventRepo eventRepo.IEventRepo) IEventUseCase {
	return &eventUseCase{eventRepo: eventRepo}
}

func (u *eventUseCase) Create(ctx context.Context, req *entity.CreateEventRequest) (*entity.Event, error) {
	event := &entity.Event{
		Title:           req.Title,
		Description:     req.Description,
		Type:            req.Type,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		IsVirtual:       req.IsVirtual,
		Address:         req.Address,
		MeetingURL:      req.MeetingURL,
		MaxParticipants: req.MaxParticipants,
		ImageURL:        req.ImageURL,
		Status:          entity.EventUpcoming,
	}

	if _, err := u.eventRepo.Create(ctx, event); err != nil {
		return nil, apperror.Internal(err)
	}
	return event, nil
}

func (u *eventUseCase) GetByID(ctx context.Context, id uint) (*entity.Event, error) {
	event, err := u.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.FromStore(err, "Event not found", "")
	}
	return event, nil
}

func (u *eventUseCase) Upcoming(ctx context.Context, page, limit int) (*entity.Page[entity.Event], error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	events, total, err := u.eventRepo.Upcoming(ctx, page, limit)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &entity.Page[entity.Event]{
		Items: events,
		Meta:  entity.NewPaginationMeta(total, page, limit),
	}, nil
}

func (u *eventUseCase) Register(ctx context.Context, eventID, userID uint) error {
	event, err := u.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return apperror.FromStore(err, "Event not found", "")
	}

	if event.Status == entity.EventCancelled || event.Status == entity.EventFinished {
		return apperror.BadRequest("This event is not open for registration")
	}

	// capacity check is advisory; slight overshoot under concurrency is
	// acceptable for meetup signups
	if event.MaxParticipants != nil && event.ParticipantCount >= int64(*event.MaxParticipants) {
		return apperror.BadRequest("This event is full")
	}

	if err := u.eventRepo.Register(ctx, eventID, userID); err != nil {
		return apperror.FromStore(err, "Event not found", "Already registered for this event")
	}
	return nil
}

func (u *eventUseCase) Unregister(ctx context.Context, eventID, userID uint) error {
	if err := u.eventRepo.Unregister(ctx, eventID, userID); err != nil {
		return apperror.FromStore(err, "Not registered for this event", "")
	}
	return nil
}
