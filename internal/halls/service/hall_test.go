package service

import (
	"context"
	"fmt"
	"io"
	"testing"

	hallserrors "utsavam/internal/halls/errors"
	"utsavam/internal/halls/repository"
	"utsavam/internal/halls/validator"
	"utsavam/pkg/config"
	mongotx "utsavam/pkg/db/mongo"
	apperrors "utsavam/pkg/errors"
	"utsavam/pkg/logger"
	"utsavam/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockHallRepository struct {
	createFn       func(ctx context.Context, hall *model.Hall) error
	findByIDFn     func(ctx context.Context, id string) (*model.Hall, error)
	findAllFn      func(ctx context.Context, filter repository.HallFilter, limit int, offset int64) ([]*model.Hall, error)
	countFn        func(ctx context.Context, filter repository.HallFilter) (int64, error)
	findByVendorFn func(ctx context.Context, vendorID string) ([]*model.Hall, error)
	updateStatusFn func(ctx context.Context, id string, status model.ApprovalStatus) error
	updateFn       func(ctx context.Context, id string, hall *model.Hall) error
	deleteFn       func(ctx context.Context, id string) error
}

func (m *mockHallRepository) Create(ctx context.Context, hall *model.Hall) error {
	return m.createFn(ctx, hall)
}

func (m *mockHallRepository) FindByID(ctx context.Context, id string) (*model.Hall, error) {
	return m.findByIDFn(ctx, id)
}

func (m *mockHallRepository) FindAll(ctx context.Context, filter repository.HallFilter, limit int, offset int64) ([]*model.Hall, error) {
	return m.findAllFn(ctx, filter, limit, offset)
}

func (m *mockHallRepository) Count(ctx context.Context, filter repository.HallFilter) (int64, error) {
	return m.countFn(ctx, filter)
}

func (m *mockHallRepository) FindByVendor(ctx context.Context, vendorID string) ([]*model.Hall, error) {
	return m.findByVendorFn(ctx, vendorID)
}

func (m *mockHallRepository) UpdateStatus(ctx context.Context, id string, status model.ApprovalStatus) error {
	return m.updateStatusFn(ctx, id, status)
}

func (m *mockHallRepository) Update(ctx context.Context, id string, hall *model.Hall) error {
	return m.updateFn(ctx, id, hall)
}

func (m *mockHallRepository) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

func (m *mockHallRepository) ExecuteTransaction(_ context.Context, _ mongotx.TransactionFunc) error {
	return nil
}

type mockBookingRefs struct {
	countFn func(ctx context.Context, hallID string) (int64, error)
}

func (m *mockBookingRefs) CountActiveByHall(ctx context.Context, hallID string) (int64, error) {
	if m.countFn == nil {
		return 0, nil
	}
	return m.countFn(ctx, hallID)
}

func testConfig() *config.Config {
	return &config.Config{
		Log: logger.New(logger.Config{Level: "error", Output: io.Discard}),
	}
}

func validHall() *model.Hall {
	return &model.Hall{
		VendorID:    "507f1f77bcf86cd799439011",
		Name:        "Grand Palace",
		Category:    "wedding",
		Capacity:    500,
		City:        "Mumbai",
		PricePerDay: 25000,
	}
}

func TestCreateStartsPending(t *testing.T) {
	var created *model.Hall
	repo := &mockHallRepository{
		createFn: func(_ context.Context, hall *model.Hall) error {
			hall.ID = "507f1f77bcf86cd799439099"
			created = hall
			return nil
		},
	}
	svc := NewHallService(repo, &mockBookingRefs{}, validator.NewHallValidator(testConfig().Log), testConfig())

	hall := validHall()
	hall.Status = model.StatusApproved // caller cannot self-approve

	require.NoError(t, svc.Create(context.Background(), hall))
	require.NotNil(t, created)
	assert.Equal(t, model.StatusPending, created.Status)
	assert.Equal(t, "mumbai", created.City)
}

func TestCreateRejectsInvalidHall(t *testing.T) {
	repo := &mockHallRepository{
		createFn: func(_ context.Context, _ *model.Hall) error {
			t.Fatal("repository must not be called for invalid input")
			return nil
		},
	}
	svc := NewHallService(repo, &mockBookingRefs{}, validator.NewHallValidator(testConfig().Log), testConfig())

	hall := validHall()
	hall.Category = "stadium"

	err := svc.Create(context.Background(), hall)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidation))
}

func TestGetByIDMapsNotFound(t *testing.T) {
	repo := &mockHallRepository{
		findByIDFn: func(_ context.Context, id string) (*model.Hall, error) {
			return nil, fmt.Errorf("%w: %s", hallserrors.ErrNotFound, id)
		},
	}
	svc := NewHallService(repo, &mockBookingRefs{}, validator.NewHallValidator(testConfig().Log), testConfig())

	_, err := svc.GetByID(context.Background(), "507f1f77bcf86cd799439011")
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))
}

func TestApproveOnlyFromPending(t *testing.T) {
	tests := []struct {
		name     string
		status   model.ApprovalStatus
		wantCode string
	}{
		{name: "pending hall approves", status: model.StatusPending, wantCode: ""},
		{name: "approved hall cannot re-approve", status: model.StatusApproved, wantCode: apperrors.CodeInvalidTransition},
		{name: "rejected hall cannot approve", status: model.StatusRejected, wantCode: apperrors.CodeInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockHallRepository{
				findByIDFn: func(_ context.Context, id string) (*model.Hall, error) {
					hall := validHall()
					hall.ID = id
					hall.Status = tt.status
					return hall, nil
				},
				updateStatusFn: func(_ context.Context, _ string, _ model.ApprovalStatus) error {
					return nil
				},
			}
			svc := NewHallService(repo, &mockBookingRefs{}, validator.NewHallValidator(testConfig().Log), testConfig())

			err := svc.Approve(context.Background(), "507f1f77bcf86cd799439011")
			if tt.wantCode == "" {
				assert.NoError(t, err)
			} else {
				assert.True(t, apperrors.HasCode(err, tt.wantCode))
			}
		})
	}
}

func TestGetInfoProjection(t *testing.T) {
	repo := &mockHallRepository{
		findByIDFn: func(_ context.Context, id string) (*model.Hall, error) {
			hall := validHall()
			hall.ID = id
			hall.Status = model.StatusApproved
			return hall, nil
		},
	}
	svc := NewHallService(repo, &mockBookingRefs{}, validator.NewHallValidator(testConfig().Log), testConfig())

	info, err := svc.GetInfo(context.Background(), "507f1f77bcf86cd799439011")
	require.NoError(t, err)
	assert.Equal(t, "507f1f77bcf86cd799439011", info.ID)
	assert.Equal(t, model.StatusApproved, info.Status)
	assert.Equal(t, "Grand Palace", info.Name)
}

func TestDeleteRefusedWhileBookingsReference(t *testing.T) {
	repo := &mockHallRepository{
		deleteFn: func(_ context.Context, _ string) error {
			t.Fatal("repository must not delete a referenced hall")
			return nil
		},
	}
	refs := &mockBookingRefs{
		countFn: func(_ context.Context, _ string) (int64, error) {
			return 2, nil
		},
	}
	svc := NewHallService(repo, refs, validator.NewHallValidator(testConfig().Log), testConfig())

	err := svc.Delete(context.Background(), "507f1f77bcf86cd799439011")
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeConflict))
}

func TestDeleteSucceedsWithoutActiveBookings(t *testing.T) {
	var deletedID string
	repo := &mockHallRepository{
		deleteFn: func(_ context.Context, id string) error {
			deletedID = id
			return nil
		},
	}
	svc := NewHallService(repo, &mockBookingRefs{}, validator.NewHallValidator(testConfig().Log), testConfig())

	require.NoError(t, svc.Delete(context.Background(), "507f1f77bcf86cd799439011"))
	assert.Equal(t, "507f1f77bcf86cd799439011", deletedID)
}

func TestUpdatePreservesOwnershipAndStatus(t *testing.T) {
	repo := &mockHallRepository{
		findByIDFn: func(_ context.Context, id string) (*model.Hall, error) {
			hall := validHall()
			hall.ID = id
			hall.Status = model.StatusApproved
			return hall, nil
		},
		updateFn: func(_ context.Context, _ string, hall *model.Hall) error {
			assert.Equal(t, "507f1f77bcf86cd799439011", hall.VendorID)
			assert.Equal(t, model.StatusApproved, hall.Status)
			return nil
		},
	}
	svc := NewHallService(repo, &mockBookingRefs{}, validator.NewHallValidator(testConfig().Log), testConfig())

	update := validHall()
	update.VendorID = "507f1f77bcf86cd799439022" // attempted owner swap
	update.Status = model.StatusPending

	require.NoError(t, svc.Update(context.Background(), "507f1f77bcf86cd799439033", update))
}
