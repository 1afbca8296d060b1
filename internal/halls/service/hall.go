package service

import (
	"context"
	"errors"

	hallserrors "utsavam/internal/halls/errors"
	"utsavam/internal/halls/repository"
	"utsavam/internal/halls/validator"
	"utsavam/pkg/config"
	apperrors "utsavam/pkg/errors"
	"utsavam/pkg/model"
	"utsavam/pkg/sanitizer"
)

type HallService interface {
	Create(ctx context.Context, hall *model.Hall) error
	GetByID(ctx context.Context, id string) (*model.Hall, error)
	GetInfo(ctx context.Context, id string) (*model.HallInfo, error)
	GetAll(ctx context.Context, filter repository.HallFilter, limit int, offset int64) ([]*model.Hall, int64, error)
	GetByVendor(ctx context.Context, vendorID string) ([]*model.Hall, error)
	Approve(ctx context.Context, id string) error
	Reject(ctx context.Context, id string) error
	Update(ctx context.Context, id string, hall *model.Hall) error
	Delete(ctx context.Context, id string) error
}

type hallService struct {
	repo      repository.HallRepository
	refs      repository.BookingRefRepository
	validator *validator.HallValidator
	cfg       *config.Config
}

func NewHallService(
	repo repository.HallRepository,
	refs repository.BookingRefRepository,
	v *validator.HallValidator,
	cfg *config.Config,
) HallService {
	return &hallService{
		repo:      repo,
		refs:      refs,
		validator: v,
		cfg:       cfg,
	}
}

func (s *hallService) sanitize(hall *model.Hall) {
	hall.Name = sanitizer.NormalizeName(hall.Name)
	hall.Category = sanitizer.NormalizeLabel(hall.Category)
	hall.City = sanitizer.NormalizeCity(hall.City)
	hall.About = sanitizer.TrimAndNormalize(hall.About)
}

func (s *hallService) Create(ctx context.Context, hall *model.Hall) error {
	s.sanitize(hall)

	// New listings always start pending, whatever the caller sent.
	hall.Status = model.StatusPending

	if err := s.validator.Validate(hall); err != nil {
		s.cfg.Log.Warn("Hall validation failed",
			"name", hall.Name,
			"vendor_id", hall.VendorID,
			"error", err,
		)
		return apperrors.Validation("Hall validation failed", map[string]any{
			"error": err.Error(),
		})
	}

	if err := s.repo.Create(ctx, hall); err != nil {
		s.cfg.Log.Error("Failed to create hall", "name", hall.Name, "error", err)
		return apperrors.Internal("Failed to create hall", err)
	}

	s.cfg.Log.Info("Hall created",
		"id", hall.ID,
		"name", hall.Name,
		"vendor_id", hall.VendorID,
		"city", hall.City,
	)
	return nil
}

func (s *hallService) GetByID(ctx context.Context, id string) (*model.Hall, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Hall ID cannot be empty")
	}

	hall, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapLookupError(id, err)
	}
	return hall, nil
}

// GetInfo serves the registry projection the booking core consults
// before admitting a reservation.
func (s *hallService) GetInfo(ctx context.Context, id string) (*model.HallInfo, error) {
	hall, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &model.HallInfo{
		ID:       hall.ID,
		Name:     hall.Name,
		VendorID: hall.VendorID,
		Capacity: hall.Capacity,
		Status:   hall.Status,
	}, nil
}

func (s *hallService) GetAll(ctx context.Context, filter repository.HallFilter, limit int, offset int64) ([]*model.Hall, int64, error) {
	limit = config.NormalizePaginationLimit(limit)
	offset = config.NormalizeOffset(offset)

	if filter.City != "" {
		filter.City = sanitizer.NormalizeCity(filter.City)
	}
	if filter.Category != "" {
		filter.Category = sanitizer.NormalizeLabel(filter.Category)
	}

	halls, err := s.repo.FindAll(ctx, filter, limit, offset)
	if err != nil {
		s.cfg.Log.Error("Failed to list halls", "error", err)
		return nil, 0, apperrors.Internal("Failed to list halls", err)
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		s.cfg.Log.Error("Failed to count halls", "error", err)
		return nil, 0, apperrors.Internal("Failed to count halls", err)
	}

	return halls, total, nil
}

func (s *hallService) GetByVendor(ctx context.Context, vendorID string) ([]*model.Hall, error) {
	if vendorID == "" {
		return nil, apperrors.InvalidInput("Vendor ID cannot be empty")
	}

	halls, err := s.repo.FindByVendor(ctx, vendorID)
	if err != nil {
		s.cfg.Log.Error("Failed to list halls by vendor", "vendor_id", vendorID, "error", err)
		return nil, apperrors.Internal("Failed to list halls", err)
	}
	return halls, nil
}

func (s *hallService) Approve(ctx context.Context, id string) error {
	return s.transition(ctx, id, model.StatusApproved)
}

func (s *hallService) Reject(ctx context.Context, id string) error {
	return s.transition(ctx, id, model.StatusRejected)
}

func (s *hallService) transition(ctx context.Context, id string, next model.ApprovalStatus) error {
	hall, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !hall.Status.CanTransitionTo(next) {
		return apperrors.InvalidTransition("hall", hall.Status.String(), next.String())
	}

	if err := s.repo.UpdateStatus(ctx, id, next); err != nil {
		s.cfg.Log.Error("Failed to update hall status", "id", id, "status", next, "error", err)
		return apperrors.Internal("Failed to update hall status", err)
	}

	s.cfg.Log.Info("Hall status updated", "id", id, "from", hall.Status, "to", next)
	return nil
}

func (s *hallService) Update(ctx context.Context, id string, hall *model.Hall) error {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	s.sanitize(hall)

	// Ownership and lifecycle state are not editable through Update.
	hall.ID = existing.ID
	hall.VendorID = existing.VendorID
	hall.Status = existing.Status

	if err := s.validator.Validate(hall); err != nil {
		return apperrors.Validation("Hall validation failed", map[string]any{
			"error": err.Error(),
		})
	}

	if err := s.repo.Update(ctx, id, hall); err != nil {
		s.cfg.Log.Error("Failed to update hall", "id", id, "error", err)
		return apperrors.Internal("Failed to update hall", err)
	}

	s.cfg.Log.Info("Hall updated", "id", id)
	return nil
}

func (s *hallService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Hall ID cannot be empty")
	}

	// A hall with pending or approved bookings cannot be removed;
	// rejected bookings do not hold a reference.
	active, err := s.refs.CountActiveByHall(ctx, id)
	if err != nil {
		s.cfg.Log.Error("Failed to count hall bookings", "id", id, "error", err)
		return apperrors.Internal("Failed to delete hall", err)
	}
	if active > 0 {
		return apperrors.Conflict("Hall has bookings that must be resolved first").WithDetails(map[string]any{
			"active_bookings": active,
		})
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return s.mapLookupError(id, err)
	}

	s.cfg.Log.Info("Hall deleted", "id", id)
	return nil
}

func (s *hallService) mapLookupError(id string, err error) error {
	if errors.Is(err, hallserrors.ErrNotFound) {
		return apperrors.NotFoundWithID("Hall", id)
	}
	if errors.Is(err, hallserrors.ErrInvalidID) {
		return apperrors.InvalidInput("Invalid hall ID format")
	}
	s.cfg.Log.Error("Hall lookup failed", "id", id, "error", err)
	return apperrors.Internal("Failed to retrieve hall", err)
}
