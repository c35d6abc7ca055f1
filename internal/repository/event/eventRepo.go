package eventRepo

import (
	"context"
	"time"

	"github.com/cristiannav/swapstyle-backend/internal/entity"
	"gorm.io/gorm"
)

type IEventRepo interface {
	Create(ctx context.Context, event *entity.Event) (*entity.Event, error)
	GetByID(ctx context.Context, id uint) (*entity.Event, error)
	Upcoming(ctx context.Context, page, limit int) ([]entity.Event, int64, error)
	CountParticipants(ctx context.Context, eventID uint) (int64, error)

	// Register joins a user to an event; unique on (event_id, user_id).
	Register(ctx context.Context, eventID, userID uint) error
	Unregister(ctx context.Context, eventID, userID uint) error
}

type EventRepo struct {
	db *gorm.DB
}

func New(db *gorm.DB) IEventRepo {
	return &EventRepo{db: db}
}

func (r *EventRepo) Create(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	result := r.db.WithContext(ctx).Create(event)
	return event, result.Error
}

func (r *EventRepo) GetByID(ctx context.Context, id uint) (*entity.Event, error) {
	var event entity.Event
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&event).Error; err != nil {
		return nil, err
	}

	count, err := r.CountParticipants(ctx, id)
	if err != nil {
		return nil, err
	}
	event.ParticipantCount = count

	return &event, nil
}

func (r *EventRepo) Upcoming(ctx context.Context, page, limit int) ([]entity.Event, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&entity.Event{}).
		Where("start_time >= ?", time.Now()).
		Where("status IN ?", []entity.EventStatus{entity.EventUpcoming, entity.EventActive})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var events []entity.Event
	err := query.
		Order("start_time ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&events).Error

	return events, total, err
}

func (r *EventRepo) CountParticipants(ctx context.Context, eventID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.EventRegistration{}).
		Where("event_id = ?", eventID).
		Count(&count).Error
	return count, err
}

func (r *EventRepo) Register(ctx context.Context, eventID, userID uint) error {
	return r.db.WithContext(ctx).
		Create(&entity.EventRegistration{EventID: eventID, UserID: userID}).Error
}

func (r *EventRepo) Unregister(ctx context.Context, eventID, userID uint) error {
	result := r.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Delete(&entity.EventRegistration{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
