package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apperrors "utsavam/pkg/errors"
	httputil "utsavam/pkg/http"
	"utsavam/pkg/logger"
	"utsavam/pkg/model"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockBookingService struct {
	createFunc  func(ctx context.Context, booking *model.Booking) error
	approveFunc func(ctx context.Context, id string) error
	getByIDFunc func(ctx context.Context, id string) (*model.Booking, error)
}

func (m *mockBookingService) Create(ctx context.Context, booking *model.Booking) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, booking)
	}
	return nil
}

func (m *mockBookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return &model.Booking{ID: id}, nil
}

func (m *mockBookingService) GetByVendor(context.Context, string, int, int64) ([]*model.Booking, int64, error) {
	return nil, 0, nil
}

func (m *mockBookingService) Approve(ctx context.Context, id string) error {
	if m.approveFunc != nil {
		return m.approveFunc(ctx, id)
	}
	return nil
}

func (m *mockBookingService) Reject(context.Context, string) error { return nil }

func (m *mockBookingService) BookedRanges(context.Context, string, *time.Time, *time.Time) ([]model.BookedRange, error) {
	return nil, nil
}

func (m *mockBookingService) Calendar(context.Context, string, int, int64) ([]model.CalendarEntry, error) {
	return nil, nil
}

func (m *mockBookingService) Delete(context.Context, string) error { return nil }

func newTestHandler(svc *mockBookingService) *BookingHandler {
	log := logger.New(logger.Config{Level: "error", Format: "text"})
	return NewBookingHandler(svc, log)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) httputil.ErrorResponse {
	t.Helper()
	var body httputil.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body
}

func TestCreateRejectsMalformedBody(t *testing.T) {
	h := newTestHandler(&mockBookingService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader("{not json"))
	w := httptest.NewRecorder()

	h.Create(w, req, httprouter.Params{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateConflictMapsTo409(t *testing.T) {
	h := newTestHandler(&mockBookingService{
		createFunc: func(context.Context, *model.Booking) error {
			return apperrors.Conflict("Requested dates overlap an approved booking")
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(`{"hall_id":"507f1f77bcf86cd799439011"}`))
	w := httptest.NewRecorder()

	h.Create(w, req, httprouter.Params{})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, apperrors.CodeConflict, decodeError(t, w).Code)
}

func TestApproveTerminalMapsTo409(t *testing.T) {
	h := newTestHandler(&mockBookingService{
		approveFunc: func(context.Context, string) error {
			return apperrors.InvalidTransition("booking", "rejected", "approved")
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/id/abc/approve", nil)
	w := httptest.NewRecorder()

	h.Approve(w, req, httprouter.Params{{Key: "id", Value: "abc"}})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, apperrors.CodeInvalidTransition, decodeError(t, w).Code)
}

func TestLockTimeoutSetsRetryAfter(t *testing.T) {
	h := newTestHandler(&mockBookingService{
		approveFunc: func(context.Context, string) error {
			return apperrors.LockTimeout("hall is busy, retry shortly")
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/id/abc/approve", nil)
	w := httptest.NewRecorder()

	h.Approve(w, req, httprouter.Params{{Key: "id", Value: "abc"}})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
	assert.Equal(t, apperrors.CodeTimeout, decodeError(t, w).Code)
}

func TestGetByIDNotFoundMapsTo404(t *testing.T) {
	h := newTestHandler(&mockBookingService{
		getByIDFunc: func(_ context.Context, id string) (*model.Booking, error) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/id/abc", nil)
	w := httptest.NewRecorder()

	h.GetByID(w, req, httprouter.Params{{Key: "id", Value: "abc"}})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookedRangesWindowValidation(t *testing.T) {
	h := newTestHandler(&mockBookingService{})

	tests := []struct {
		name     string
		query    string
		wantCode int
	}{
		{"no window", "", http.StatusOK},
		{"full window", "?from=2027-01-01T00:00:00Z&to=2027-02-01T00:00:00Z", http.StatusOK},
		{"from without to", "?from=2027-01-01T00:00:00Z", http.StatusBadRequest},
		{"unparseable from", "?from=january&to=2027-02-01T00:00:00Z", http.StatusBadRequest},
		{"inverted window", "?from=2027-02-01T00:00:00Z&to=2027-01-01T00:00:00Z", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/hall/h1/ranges"+tt.query, nil)
			w := httptest.NewRecorder()

			h.BookedRanges(w, req, httprouter.Params{{Key: "hallId", Value: "h1"}})

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}
