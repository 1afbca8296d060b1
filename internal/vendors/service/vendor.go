package service

import (
	"context"
	"errors"
	"strings"

	"utsavam/internal/vendors/cascade"
	vendorserrors "utsavam/internal/vendors/errors"
	"utsavam/internal/vendors/repository"
	"utsavam/internal/vendors/validator"
	"utsavam/pkg/config"
	apperrors "utsavam/pkg/errors"
	"utsavam/pkg/model"
	"utsavam/pkg/otp"
	"utsavam/pkg/sanitizer"
	"utsavam/pkg/token"

	"go.mongodb.org/mongo-driver/mongo"
)

// Session is the result of a successful code verification.
type Session struct {
	Token  string        `json:"token"`
	Vendor *model.Vendor `json:"vendor"`
}

// CascadeResult reports what a vendor deletion removed alongside the
// vendor record itself.
type CascadeResult struct {
	VendorID        string `json:"vendor_id"`
	HallsDeleted    int64  `json:"halls_deleted"`
	BookingsDeleted int64  `json:"bookings_deleted"`
}

type VendorService interface {
	Register(ctx context.Context, vendor *model.Vendor) error
	RequestCode(ctx context.Context, phone string) error
	VerifyCode(ctx context.Context, phone, code string) (*Session, error)
	GetByID(ctx context.Context, id string) (*model.Vendor, error)
	GetAll(ctx context.Context, limit int, offset int64) ([]*model.Vendor, int64, error)
	Approve(ctx context.Context, id string) error
	Reject(ctx context.Context, id string) error
	DeleteCascade(ctx context.Context, id string) (*CascadeResult, error)
}

type vendorService struct {
	repo        repository.VendorRepository
	cascadeRepo repository.CascadeRepository
	validator   *validator.VendorValidator
	codes       otp.Store
	sealer      *token.Sealer
	cfg         *config.Config
}

func NewVendorService(
	repo repository.VendorRepository,
	cascadeRepo repository.CascadeRepository,
	v *validator.VendorValidator,
	codes otp.Store,
	sealer *token.Sealer,
	cfg *config.Config,
) VendorService {
	return &vendorService{
		repo:        repo,
		cascadeRepo: cascadeRepo,
		validator:   v,
		codes:       codes,
		sealer:      sealer,
		cfg:         cfg,
	}
}

func (s *vendorService) sanitize(vendor *model.Vendor) {
	vendor.BusinessName = sanitizer.NormalizeName(vendor.BusinessName)
	vendor.OwnerName = sanitizer.NormalizeName(vendor.OwnerName)
	vendor.Phone = sanitizer.NormalizePhone(vendor.Phone)
	vendor.Email = strings.ToLower(strings.TrimSpace(vendor.Email))
	vendor.City = sanitizer.NormalizeCity(vendor.City)
	vendor.ServiceType = sanitizer.NormalizeLabel(vendor.ServiceType)
}

func (s *vendorService) Register(ctx context.Context, vendor *model.Vendor) error {
	s.sanitize(vendor)

	if vendor.Phone == "" {
		return apperrors.Validation("Vendor validation failed", map[string]any{
			"error": "phone: must be a valid phone number",
		})
	}

	// New vendors always start pending, whatever the caller sent.
	vendor.Status = model.StatusPending

	if err := s.validator.Validate(vendor); err != nil {
		s.cfg.Log.Warn("Vendor validation failed",
			"business_name", vendor.BusinessName,
			"error", err,
		)
		return apperrors.Validation("Vendor validation failed", map[string]any{
			"error": err.Error(),
		})
	}

	if existing, err := s.repo.FindByPhone(ctx, vendor.Phone); err == nil && existing != nil {
		return apperrors.Conflict("A vendor with this phone number already exists").WithDetails(map[string]any{
			"phone": vendor.Phone,
		})
	} else if err != nil && !errors.Is(err, vendorserrors.ErrNotFound) {
		s.cfg.Log.Error("Vendor phone lookup failed", "error", err)
		return apperrors.Internal("Failed to register vendor", err)
	}

	if err := s.repo.Create(ctx, vendor); err != nil {
		s.cfg.Log.Error("Failed to create vendor", "business_name", vendor.BusinessName, "error", err)
		return apperrors.Internal("Failed to register vendor", err)
	}

	s.cfg.Log.Info("Vendor registered",
		"id", vendor.ID,
		"business_name", vendor.BusinessName,
		"city", vendor.City,
	)
	return nil
}

func (s *vendorService) RequestCode(ctx context.Context, phone string) error {
	normalized := sanitizer.NormalizePhone(phone)
	if normalized == "" {
		return apperrors.InvalidInput("Invalid phone number")
	}

	vendor, err := s.repo.FindByPhone(ctx, normalized)
	if err != nil {
		if errors.Is(err, vendorserrors.ErrNotFound) {
			return apperrors.NotFound("No vendor registered with this phone number")
		}
		s.cfg.Log.Error("Vendor phone lookup failed", "error", err)
		return apperrors.Internal("Failed to issue login code", err)
	}

	code, err := otp.GenerateCode(s.cfg.OTPLength)
	if err != nil {
		s.cfg.Log.Error("Failed to generate login code", "error", err)
		return apperrors.Internal("Failed to issue login code", err)
	}

	if err := s.codes.Put(ctx, normalized, code, s.cfg.OTPTTL); err != nil {
		s.cfg.Log.Error("Failed to store login code", "error", err)
		return apperrors.Internal("Failed to issue login code", err)
	}

	s.cfg.Log.Info("Login code issued", "vendor_id", vendor.ID, "ttl", s.cfg.OTPTTL)
	// SMS delivery is handled out of band; the code surfaces in debug
	// logs for local development only.
	s.cfg.Log.Debug("Login code generated", "phone", normalized, "code", code)
	return nil
}

func (s *vendorService) VerifyCode(ctx context.Context, phone, code string) (*Session, error) {
	normalized := sanitizer.NormalizePhone(phone)
	if normalized == "" || code == "" {
		return nil, apperrors.InvalidInput("Phone number and code are required")
	}

	ok, err := s.codes.Verify(ctx, normalized, code)
	if err != nil {
		s.cfg.Log.Error("Login code verification failed", "error", err)
		return nil, apperrors.Internal("Failed to verify login code", err)
	}
	if !ok {
		return nil, apperrors.Unauthorized("Invalid or expired login code")
	}

	vendor, err := s.repo.FindByPhone(ctx, normalized)
	if err != nil {
		if errors.Is(err, vendorserrors.ErrNotFound) {
			return nil, apperrors.NotFound("No vendor registered with this phone number")
		}
		s.cfg.Log.Error("Vendor phone lookup failed", "error", err)
		return nil, apperrors.Internal("Failed to verify login code", err)
	}

	sessionToken, err := s.sealer.Issue(vendor.ID, s.cfg.SessionTTL)
	if err != nil {
		s.cfg.Log.Error("Failed to issue session token", "vendor_id", vendor.ID, "error", err)
		return nil, apperrors.Internal("Failed to create session", err)
	}

	s.cfg.Log.Info("Vendor logged in", "vendor_id", vendor.ID)
	return &Session{Token: sessionToken, Vendor: vendor}, nil
}

func (s *vendorService) GetByID(ctx context.Context, id string) (*model.Vendor, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Vendor ID cannot be empty")
	}

	vendor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapLookupError(id, err)
	}
	return vendor, nil
}

func (s *vendorService) GetAll(ctx context.Context, limit int, offset int64) ([]*model.Vendor, int64, error) {
	limit = config.NormalizePaginationLimit(limit)
	offset = config.NormalizeOffset(offset)

	vendors, err := s.repo.FindAll(ctx, limit, offset)
	if err != nil {
		s.cfg.Log.Error("Failed to list vendors", "error", err)
		return nil, 0, apperrors.Internal("Failed to list vendors", err)
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to count vendors", "error", err)
		return nil, 0, apperrors.Internal("Failed to count vendors", err)
	}

	return vendors, total, nil
}

func (s *vendorService) Approve(ctx context.Context, id string) error {
	return s.transition(ctx, id, model.StatusApproved)
}

func (s *vendorService) Reject(ctx context.Context, id string) error {
	return s.transition(ctx, id, model.StatusRejected)
}

func (s *vendorService) transition(ctx context.Context, id string, next model.ApprovalStatus) error {
	vendor, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !vendor.Status.CanTransitionTo(next) {
		return apperrors.InvalidTransition("vendor", vendor.Status.String(), next.String())
	}

	if err := s.repo.UpdateStatus(ctx, id, next); err != nil {
		s.cfg.Log.Error("Failed to update vendor status", "id", id, "status", next, "error", err)
		return apperrors.Internal("Failed to update vendor status", err)
	}

	s.cfg.Log.Info("Vendor status updated", "id", id, "from", vendor.Status, "to", next)
	return nil
}

// DeleteCascade removes the vendor together with its halls and every
// booking referencing those halls or the vendor directly. All three
// deletes commit or roll back as one transaction.
func (s *vendorService) DeleteCascade(ctx context.Context, id string) (*CascadeResult, error) {
	vendor, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result := &CascadeResult{VendorID: vendor.ID}

	var hallIDs []string
	pipeline := cascade.NewPipeline("vendor-deletion",
		cascade.NewStep("list-halls", func(sc mongo.SessionContext) error {
			var stepErr error
			hallIDs, stepErr = s.cascadeRepo.HallIDsByVendor(sc, vendor.ID)
			return stepErr
		}),
		cascade.NewStep("delete-bookings", func(sc mongo.SessionContext) error {
			deleted, stepErr := s.cascadeRepo.DeleteBookingsForVendor(sc, vendor.ID, hallIDs)
			result.BookingsDeleted = deleted
			s.cfg.Log.Debug("Cascade step", "step", "delete-bookings", "vendor_id", vendor.ID, "deleted", deleted)
			return stepErr
		}),
		cascade.NewStep("delete-halls", func(sc mongo.SessionContext) error {
			deleted, stepErr := s.cascadeRepo.DeleteHallsByVendor(sc, vendor.ID)
			result.HallsDeleted = deleted
			s.cfg.Log.Debug("Cascade step", "step", "delete-halls", "vendor_id", vendor.ID, "deleted", deleted)
			return stepErr
		}),
		cascade.NewStep("delete-vendor", func(sc mongo.SessionContext) error {
			deleted, stepErr := s.cascadeRepo.DeleteVendor(sc, vendor.ID)
			if stepErr != nil {
				return stepErr
			}
			if deleted == 0 {
				return vendorserrors.ErrNotFound
			}
			return nil
		}),
	)

	err = s.repo.ExecuteTransaction(ctx, func(sc mongo.SessionContext) error {
		return pipeline.Run(sc)
	})
	if err != nil {
		if errors.Is(err, vendorserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Vendor", id)
		}
		s.cfg.Log.Error("Vendor cascade deletion failed", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to delete vendor", err)
	}

	s.cfg.Log.Info("Vendor deleted",
		"id", vendor.ID,
		"halls_deleted", result.HallsDeleted,
		"bookings_deleted", result.BookingsDeleted,
	)
	return result, nil
}

func (s *vendorService) mapLookupError(id string, err error) error {
	if errors.Is(err, vendorserrors.ErrNotFound) {
		return apperrors.NotFoundWithID("Vendor", id)
	}
	if errors.Is(err, vendorserrors.ErrInvalidID) {
		return apperrors.InvalidInput("Invalid vendor ID format")
	}
	s.cfg.Log.Error("Vendor lookup failed", "id", id, "error", err)
	return apperrors.Internal("Failed to retrieve vendor", err)
}
