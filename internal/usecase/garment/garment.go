// Package garment implements the listing directory: CRUD over garments plus
// the discovery feed that drives the swipe deck.
package garment

import (
	"context"

	"github.com/cristiannav/swapstyle-backend/internal/apperror"
	"github.com/cristiannav/swapstyle-backend/internal/entity"
	"github.com/cristiannav/swapstyle-backend/internal/logger"
	garmentRepo "github.com/cristiannav/swapstyle-backend/internal/repository/garment"
)

const feedLimit = 20

type IGarmentUseCase interface {
	Create(ctx context.Context, ownerID uint, req *entity.CreateGarmentRequest) (*entity.Garment, error)
	GetByID(ctx context.Context, id uint) (*entity.Garment, error)
	Update(ctx context.Context, userID, id uint, req *entity.UpdateGarmentRequest) (*entity.Garment, error)
	Delete(ctx context.Context, userID, id uint) error
	Search(ctx context.Context, filters entity.GarmentFilters, page, limit int) (*entity.Page[entity.Garment], error)
	Feed(ctx context.Context, userID uint) ([]entity.Garment, error)
}

type garmentUseCase struct {
	garmentRepo garmentRepo.IGarmentRepo
}

func New(garmentRepo garmentRepo.IGarmentRepo) IGarmentUseCase {
	return &garmentUseCase{garmentRepo: garmentRepo}
}

func (u *garmentUseCase) Create(ctx context.Context, ownerID uint, req *entity.CreateGarmentRequest) (*entity.Garment, error) {
	garment := &entity.Garment{
		OwnerID:     ownerID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Brand:       req.Brand,
		Size:        req.Size,
		Color:       req.Color,
		Condition:   req.Condition,
		Status:      entity.GarmentActive,
		ImageURL:    req.ImageURL,
	}

	if _, err := u.garmentRepo.Create(ctx, garment); err != nil {
		return nil, apperror.Internal(err)
	}

	return garment, nil
}

func (u *garmentUseCase) GetByID(ctx context.Context, id uint) (*entity.Garment, error) {
	garment, err := u.garmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.FromStore(err, "Garment not found", "")
	}

	// soft-deleted listings read as gone
	if garment.Status == entity.GarmentDeleted {
		return nil, apperror.NotFound("Garment not found")
	}

	if err := u.garmentRepo.AddViewCount(ctx, id); err != nil {
		logger.Warn("view count increment failed", "garment_id", id, "err", err)
	}

	return garment, nil
}

func (u *garmentUseCase) Update(ctx context.Context, userID, id uint, req *entity.UpdateGarmentRequest) (*entity.Garment, error) {
	garment, err := u.garmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.FromStore(err, "Garment not found", "")
	}

	if garment.Status == entity.GarmentDeleted {
		return nil, apperror.NotFound("Garment not found")
	}

	if garment.OwnerID != userID {
		return nil, apperror.Forbidden("Not authorized to update this garment")
	}

	if req.Title != nil {
		garment.Title = *req.Title
	}
	if req.Description != nil {
		garment.Description = *req.Description
	}
	if req.Category != nil {
		garment.Category = *req.Category
	}
	if req.Brand != nil {
		garment.Brand = *req.Brand
	}
	if req.Size != nil {
		garment.Size = *req.Size
	}
	if req.Color != nil {
		garment.Color = *req.Color
	}
	if req.Condition != nil {
		garment.Condition = *req.Condition
	}
	if req.ImageURL != nil {
		garment.ImageURL = *req.ImageURL
	}
	if req.Status != nil {
		status := entity.GarmentStatus(*req.Status)
		switch status {
		case entity.GarmentActive, entity.GarmentInactive, entity.GarmentReserved:
			garment.Status = status
		default:
			// SWAPPED and DELETED are reached only through swap completion
			// and Delete; they are not settable through an update
			return nil, apperror.BadRequest("Invalid garment status")
		}
	}

	if err := u.garmentRepo.Save(ctx, garment); err != nil {
		return nil, apperror.Internal(err)
	}

	return garment, nil
}

func (u *garmentUseCase) Delete(ctx context.Context, userID, id uint) error {
	garment, err := u.garmentRepo.GetByID(ctx, id)
	if err != nil {
		return apperror.FromStore(err, "Garment not found", "")
	}

	if garment.Status == entity.GarmentDeleted {
		return apperror.NotFound("Garment not found")
	}

	if garment.OwnerID != userID {
		return apperror.Forbidden("Not authorized to delete this garment")
	}

	return u.garmentRepo.SetStatus(ctx, []uint{id}, entity.GarmentDeleted)
}

func (u *garmentUseCase) Search(ctx context.Context, filters entity.GarmentFilters, page, limit int) (*entity.Page[entity.Garment], error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	garments, total, err := u.garmentRepo.Search(ctx, filters, page, limit)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &entity.Page[entity.Garment]{
		Items: garments,
		Meta:  entity.NewPaginationMeta(total, page, limit),
	}, nil
}

func (u *garmentUseCase) Feed(ctx context.Context, userID uint) ([]entity.Garment, error) {
	garments, err := u.garmentRepo.Feed(ctx, userID, feedLimit)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return garments, nil
}
