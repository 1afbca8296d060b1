package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"utsavam/internal/bookings/conflict"
	bookingserrors "utsavam/internal/bookings/errors"
	"utsavam/internal/bookings/repository"
	"utsavam/internal/bookings/validator"
	"utsavam/internal/notifications"
	"utsavam/pkg/client"
	"utsavam/pkg/config"
	apperrors "utsavam/pkg/errors"
	"utsavam/pkg/model"
	"utsavam/pkg/sanitizer"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// HallRegistry resolves hall ids to their registry projection.
// *client.HallRegistryClient satisfies it in production.
type HallRegistry interface {
	Lookup(ctx context.Context, hallID string) (*model.HallInfo, error)
}

type BookingService interface {
	Create(ctx context.Context, booking *model.Booking) error
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	GetByVendor(ctx context.Context, vendorID string, limit int, offset int64) ([]*model.Booking, int64, error)
	Approve(ctx context.Context, id string) error
	Reject(ctx context.Context, id string) error
	BookedRanges(ctx context.Context, hallID string, from, to *time.Time) ([]model.BookedRange, error)
	Calendar(ctx context.Context, vendorID string, limit int, offset int64) ([]model.CalendarEntry, error)
	Delete(ctx context.Context, id string) error
}

type bookingService struct {
	repo      repository.BookingRepository
	lockRepo  repository.HallLockRepository
	validator *validator.BookingValidator
	registry  HallRegistry
	payments  client.PaymentClient
	events    notifications.Publisher
	cfg       *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	lockRepo repository.HallLockRepository,
	v *validator.BookingValidator,
	registry HallRegistry,
	payments client.PaymentClient,
	events notifications.Publisher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		lockRepo:  lockRepo,
		validator: v,
		registry:  registry,
		payments:  payments,
		events:    events,
		cfg:       cfg,
	}
}

// Create admits a new reservation request. The request lands pending;
// it only blocks other requests once approved. Admission is serialized
// per hall by an advisory lock so the conflict check and insert are
// atomic with respect to competing writers on the same hall.
func (s *bookingService) Create(ctx context.Context, booking *model.Booking) error {
	s.sanitize(booking)
	s.applyDefaults(booking)

	hall, err := s.registry.Lookup(ctx, booking.HallID)
	if err != nil {
		return err
	}
	if hall.Status != model.StatusApproved {
		return apperrors.Validation("Hall is not approved for bookings", map[string]any{
			"hall_id": hall.ID,
			"status":  hall.Status,
		})
	}
	booking.VendorID = hall.VendorID

	if err := s.validate(booking); err != nil {
		return err
	}

	if booking.Payment.Method == model.PaymentOnline {
		reference, err := s.payments.CreateOrderReference(booking.Payment.Amount, s.cfg.PaymentCurrency, uuid.New().String())
		if err != nil {
			s.cfg.Log.Error("Failed to create payment order", "hall_id", booking.HallID, "error", err)
			return apperrors.Unavailable("payment gateway", err)
		}
		booking.Payment.Reference = reference
	}

	lockID, err := s.acquireHallLock(ctx, booking.HallID)
	if err != nil {
		return err
	}
	defer s.releaseHallLock(ctx, lockID)

	err = s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		if err := s.checkConflicts(sessCtx, booking, ""); err != nil {
			return err
		}
		if err := s.repo.Create(sessCtx, booking); err != nil {
			return apperrors.Internal("Failed to create booking", err)
		}
		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to create booking", "hall_id", booking.HallID, "error", err)
		return err
	}

	s.publish(ctx, s.events.BookingCreated, booking, notifications.EventBookingCreated)

	s.cfg.Log.Info("Booking created",
		"id", booking.ID,
		"hall_id", booking.HallID,
		"check_in", booking.CheckIn,
		"check_out", booking.CheckOut,
		"payment_method", booking.Payment.Method,
	)
	return nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapLookupError(id, err)
	}
	return booking, nil
}

func (s *bookingService) GetByVendor(ctx context.Context, vendorID string, limit int, offset int64) ([]*model.Booking, int64, error) {
	if vendorID == "" {
		return nil, 0, apperrors.InvalidInput("Vendor ID cannot be empty")
	}

	limit = config.NormalizePaginationLimit(limit)
	offset = config.NormalizeOffset(offset)

	bookings, err := s.repo.FindByVendor(ctx, vendorID, limit, offset)
	if err != nil {
		s.cfg.Log.Error("Failed to list bookings by vendor", "vendor_id", vendorID, "error", err)
		return nil, 0, apperrors.Internal("Failed to retrieve bookings", err)
	}

	total, err := s.repo.CountByVendor(ctx, vendorID)
	if err != nil {
		s.cfg.Log.Error("Failed to count bookings by vendor", "vendor_id", vendorID, "error", err)
		return nil, 0, apperrors.Internal("Failed to count bookings", err)
	}

	return bookings, total, nil
}

// Approve moves a pending booking to approved. The decision re-checks
// conflicts under the hall lock: the pending request may have been
// admitted before a competing range was approved, so the state of the
// world at decision time is what counts.
func (s *bookingService) Approve(ctx context.Context, id string) error {
	booking, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !booking.Status.CanTransitionTo(model.StatusApproved) {
		return apperrors.InvalidTransition("booking", booking.Status.String(), model.StatusApproved.String())
	}

	lockID, err := s.acquireHallLock(ctx, booking.HallID)
	if err != nil {
		return err
	}
	defer s.releaseHallLock(ctx, lockID)

	err = s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		// Re-read under the lock; a competing approval may have won.
		current, err := s.repo.FindByID(sessCtx, id)
		if err != nil {
			return s.mapLookupError(id, err)
		}
		if !current.Status.CanTransitionTo(model.StatusApproved) {
			return apperrors.InvalidTransition("booking", current.Status.String(), model.StatusApproved.String())
		}

		if err := s.checkConflicts(sessCtx, current, current.ID); err != nil {
			return err
		}

		if err := s.repo.UpdateStatus(sessCtx, id, model.StatusApproved); err != nil {
			return apperrors.Internal("Failed to approve booking", err)
		}
		return nil
	})
	if err != nil {
		s.cfg.Log.Warn("Booking approval did not go through", "id", id, "error", err)
		return err
	}

	booking.Status = model.StatusApproved
	s.publish(ctx, s.events.BookingApproved, booking, notifications.EventBookingApproved)

	s.cfg.Log.Info("Booking approved", "id", id, "hall_id", booking.HallID)
	return nil
}

// Reject moves a pending booking to rejected. Rejecting an already
// terminal booking fails; rejection is not idempotent by design so
// callers notice double-submission.
func (s *bookingService) Reject(ctx context.Context, id string) error {
	booking, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !booking.Status.CanTransitionTo(model.StatusRejected) {
		return apperrors.InvalidTransition("booking", booking.Status.String(), model.StatusRejected.String())
	}

	lockID, err := s.acquireHallLock(ctx, booking.HallID)
	if err != nil {
		return err
	}
	defer s.releaseHallLock(ctx, lockID)

	err = s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		current, err := s.repo.FindByID(sessCtx, id)
		if err != nil {
			return s.mapLookupError(id, err)
		}
		if !current.Status.CanTransitionTo(model.StatusRejected) {
			return apperrors.InvalidTransition("booking", current.Status.String(), model.StatusRejected.String())
		}

		if err := s.repo.UpdateStatus(sessCtx, id, model.StatusRejected); err != nil {
			return apperrors.Internal("Failed to reject booking", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	booking.Status = model.StatusRejected
	s.publish(ctx, s.events.BookingRejected, booking, notifications.EventBookingRejected)

	s.cfg.Log.Info("Booking rejected", "id", id, "hall_id", booking.HallID)
	return nil
}

// BookedRanges serves the hall availability calendar. Rejected bookings
// are omitted; pending and approved ranges carry their status so the
// caller can render tentative holds differently.
func (s *bookingService) BookedRanges(ctx context.Context, hallID string, from, to *time.Time) ([]model.BookedRange, error) {
	if hallID == "" {
		return nil, apperrors.InvalidInput("Hall ID cannot be empty")
	}

	bookings, err := s.repo.FindByHall(ctx, hallID, from, to)
	if err != nil {
		s.cfg.Log.Error("Failed to load hall bookings", "hall_id", hallID, "error", err)
		return nil, apperrors.Internal("Failed to load booked ranges", err)
	}

	ranges := make([]model.BookedRange, 0, len(bookings))
	for _, b := range bookings {
		if b.Status == model.StatusRejected {
			continue
		}
		ranges = append(ranges, model.BookedRange{
			CheckIn:  b.CheckIn,
			CheckOut: b.CheckOut,
			Status:   b.Status,
		})
	}
	return ranges, nil
}

// Calendar renders a vendor's bookings as flat calendar entries with
// hall display names resolved from the registry.
func (s *bookingService) Calendar(ctx context.Context, vendorID string, limit int, offset int64) ([]model.CalendarEntry, error) {
	bookings, _, err := s.GetByVendor(ctx, vendorID, limit, offset)
	if err != nil {
		return nil, err
	}

	// Hall names are resolved once per distinct hall.
	names := make(map[string]*model.HallInfo)
	entries := make([]model.CalendarEntry, 0, len(bookings))
	for _, b := range bookings {
		info, ok := names[b.HallID]
		if !ok {
			info, err = s.registry.Lookup(ctx, b.HallID)
			if err != nil {
				// A hall deleted after its bookings is not an error;
				// render the entry without a display name.
				if !apperrors.HasCode(err, apperrors.CodeNotFound) {
					return nil, err
				}
				info = &model.HallInfo{ID: b.HallID}
			}
			names[b.HallID] = info
		}
		entries = append(entries, model.CalendarEntryFromBooking(b, info.Name, info.VendorName))
	}
	return entries, nil
}

func (s *bookingService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Booking ID cannot be empty")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return s.mapLookupError(id, err)
	}

	s.cfg.Log.Info("Booking deleted", "id", id)
	return nil
}

// --- Helpers ---

func (s *bookingService) sanitize(b *model.Booking) {
	b.CustomerName = sanitizer.NormalizeName(b.CustomerName)
	b.Phone = sanitizer.NormalizePhone(b.Phone)
	b.EventType = sanitizer.NormalizeLabel(b.EventType)
}

func (s *bookingService) applyDefaults(b *model.Booking) {
	// Status is server-owned; every request enters the workflow pending.
	b.Status = model.StatusPending

	if b.Payment.Method == "" {
		b.Payment.Method = model.PaymentAtVenue
	}
	if b.Payment.Status == "" {
		b.Payment.Status = model.PaymentPending
	}
}

func (s *bookingService) validate(booking *model.Booking) error {
	if err := s.validator.Validate(booking); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "hall_id", booking.HallID, "error", err)
		return apperrors.Validation("Booking validation failed", map[string]any{"error": err.Error()})
	}
	return nil
}

// checkConflicts loads the hall's bookings intersecting the candidate
// range and fails with a Conflict if an approved one overlaps.
func (s *bookingService) checkConflicts(ctx context.Context, booking *model.Booking, excludeID string) error {
	existing, err := s.repo.FindByHall(ctx, booking.HallID, &booking.CheckIn, &booking.CheckOut)
	if err != nil {
		return apperrors.Internal("Failed to check existing bookings", err)
	}

	if hit := conflict.FirstConflict(booking.CheckIn, booking.CheckOut, excludeID, existing); hit != nil {
		return apperrors.Conflict(fmt.Sprintf(
			"Requested dates overlap an approved booking (%s to %s)",
			hit.CheckIn.Format("2006-01-02"),
			hit.CheckOut.Format("2006-01-02"),
		)).WithDetails(map[string]any{
			"conflicting_booking_id": hit.ID,
		})
	}
	return nil
}

// acquireHallLock polls for the hall's advisory lock until it is
// granted or LockWaitTimeout elapses. Timing out is retryable: the
// caller lost a short race, nothing is wrong with the request.
func (s *bookingService) acquireHallLock(ctx context.Context, hallID string) (string, error) {
	deadline := time.Now().Add(s.cfg.LockWaitTimeout)

	for {
		lockID, err := s.lockRepo.Acquire(ctx, hallID, s.cfg.LockTTL)
		if err == nil {
			return lockID, nil
		}
		if !errors.Is(err, bookingserrors.ErrLockHeld) {
			return "", apperrors.Internal("Failed to acquire hall lock", err)
		}

		if time.Now().After(deadline) {
			return "", apperrors.LockTimeout(fmt.Sprintf(
				"Hall %s is busy processing another booking, try again", hallID,
			))
		}

		select {
		case <-ctx.Done():
			return "", apperrors.LockTimeout("Request cancelled while waiting for hall lock")
		case <-time.After(s.cfg.LockRetryInterval):
		}
	}
}

func (s *bookingService) releaseHallLock(ctx context.Context, lockID string) {
	if err := s.lockRepo.Release(ctx, lockID); err != nil {
		// The TTL index reclaims it; log and move on.
		s.cfg.Log.Warn("Failed to release hall lock", "lock_id", lockID, "error", err)
	}
}

func (s *bookingService) publish(ctx context.Context, fn func(context.Context, *model.Booking) error, booking *model.Booking, eventType string) {
	if err := fn(ctx, booking); err != nil {
		s.cfg.Log.Error("Failed to publish booking event",
			"event_type", eventType,
			"booking_id", booking.ID,
			"error", err,
		)
	}
}

func (s *bookingService) mapLookupError(id string, err error) error {
	if apperrors.IsAppError(err) {
		return err
	}
	if errors.Is(err, bookingserrors.ErrNotFound) {
		return apperrors.NotFoundWithID("Booking", id)
	}
	if errors.Is(err, bookingserrors.ErrInvalidID) {
		return apperrors.InvalidInput("Invalid booking ID format")
	}
	s.cfg.Log.Error("Booking lookup failed", "id", id, "error", err)
	return apperrors.Internal("Failed to retrieve booking", err)
}
