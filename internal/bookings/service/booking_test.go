package service

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"sync"
	"testing"
	"time"

	bookingserrors "utsavam/internal/bookings/errors"
	"utsavam/internal/bookings/validator"
	"utsavam/internal/notifications"
	"utsavam/pkg/config"
	mongotx "utsavam/pkg/db/mongo"
	apperrors "utsavam/pkg/errors"
	"utsavam/pkg/logger"
	"utsavam/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testHallID   = "507f1f77bcf86cd799439011"
	testVendorID = "507f1f77bcf86cd799439012"
)

// memBookingRepo is a mutex-guarded in-memory store so concurrency
// tests exercise real interleavings.
type memBookingRepo struct {
	mu   sync.Mutex
	byID map[string]*model.Booking
	seq  int
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{byID: make(map[string]*model.Booking)}
}

func (r *memBookingRepo) Create(_ context.Context, booking *model.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	booking.ID = "booking-" + strconv.Itoa(r.seq)
	clone := *booking
	r.byID[booking.ID] = &clone
	return nil
}

func (r *memBookingRepo) FindByID(_ context.Context, id string) (*model.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", bookingserrors.ErrNotFound, id)
	}
	clone := *b
	return &clone, nil
}

func (r *memBookingRepo) FindByHall(_ context.Context, hallID string, from, to *time.Time) ([]*model.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*model.Booking
	for _, b := range r.byID {
		if b.HallID != hallID {
			continue
		}
		if from != nil && to != nil {
			if !(b.CheckIn.Before(*to) && b.CheckOut.After(*from)) {
				continue
			}
		}
		clone := *b
		out = append(out, &clone)
	}
	return out, nil
}

func (r *memBookingRepo) FindByVendor(_ context.Context, vendorID string, _ int, _ int64) ([]*model.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*model.Booking
	for _, b := range r.byID {
		if b.VendorID == vendorID {
			clone := *b
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *memBookingRepo) CountByVendor(_ context.Context, vendorID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for _, b := range r.byID {
		if b.VendorID == vendorID {
			n++
		}
	}
	return n, nil
}

func (r *memBookingRepo) UpdateStatus(_ context.Context, id string, status model.ApprovalStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("%w: %s", bookingserrors.ErrNotFound, id)
	}
	b.Status = status
	b.UpdatedAt = time.Now()
	return nil
}

func (r *memBookingRepo) UpdatePayment(_ context.Context, id string, payment model.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("%w: %s", bookingserrors.ErrNotFound, id)
	}
	b.Payment = payment
	return nil
}

func (r *memBookingRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return fmt.Errorf("%w: %s", bookingserrors.ErrNotFound, id)
	}
	delete(r.byID, id)
	return nil
}

func (r *memBookingRepo) ExecuteTransaction(_ context.Context, fn mongotx.TransactionFunc) error {
	return fn(nil)
}

// memLockRepo mimics the duplicate-key insert semantics of the real
// advisory lock collection.
type memLockRepo struct {
	mu   sync.Mutex
	held map[string]bool
}

func newMemLockRepo() *memLockRepo {
	return &memLockRepo{held: make(map[string]bool)}
}

func (l *memLockRepo) Acquire(_ context.Context, hallID string, _ time.Duration) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	lockID := "hall_lock_" + hallID
	if l.held[lockID] {
		return "", bookingserrors.ErrLockHeld
	}
	l.held[lockID] = true
	return lockID, nil
}

func (l *memLockRepo) Release(_ context.Context, lockID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.held, lockID)
	return nil
}

type stubRegistry struct {
	mu    sync.Mutex
	halls map[string]*model.HallInfo
	err   error
}

func (s *stubRegistry) Lookup(_ context.Context, hallID string) (*model.HallInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return nil, s.err
	}
	info, ok := s.halls[hallID]
	if !ok {
		return nil, apperrors.NotFoundWithID("hall", hallID)
	}
	return info, nil
}

type stubPayments struct {
	reference string
	err       error
}

func (s *stubPayments) CreateOrderReference(_ float64, _, _ string) (string, error) {
	return s.reference, s.err
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []string
}

func (p *recordingPublisher) record(event string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) BookingCreated(context.Context, *model.Booking) error {
	return p.record(notifications.EventBookingCreated)
}

func (p *recordingPublisher) BookingApproved(context.Context, *model.Booking) error {
	return p.record(notifications.EventBookingApproved)
}

func (p *recordingPublisher) BookingRejected(context.Context, *model.Booking) error {
	return p.record(notifications.EventBookingRejected)
}

type fixture struct {
	svc    BookingService
	repo   *memBookingRepo
	locks  *memLockRepo
	reg    *stubRegistry
	events *recordingPublisher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cfg := &config.Config{
		Log:               logger.New(logger.Config{Level: "error", Output: io.Discard}),
		PaymentCurrency:   "INR",
		LockTTL:           10 * time.Second,
		LockWaitTimeout:   2 * time.Second,
		LockRetryInterval: 2 * time.Millisecond,
	}

	repo := newMemBookingRepo()
	locks := newMemLockRepo()
	reg := &stubRegistry{halls: map[string]*model.HallInfo{
		testHallID: {
			ID:       testHallID,
			Name:     "Grand Palace",
			VendorID: testVendorID,
			Status:   model.StatusApproved,
		},
	}}
	events := &recordingPublisher{}

	svc := NewBookingService(
		repo,
		locks,
		validator.NewBookingValidator(cfg.Log),
		reg,
		&stubPayments{reference: "order_test_1"},
		events,
		cfg,
	)

	return &fixture{svc: svc, repo: repo, locks: locks, reg: reg, events: events}
}

func futureDay(offset int) time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, offset)
}

func newRequest(inOffset, outOffset int) *model.Booking {
	return &model.Booking{
		HallID:       testHallID,
		CustomerName: "Asha Patel",
		Phone:        "+919876543210",
		EventType:    "wedding",
		Guests:       200,
		CheckIn:      futureDay(inOffset),
		CheckOut:     futureDay(outOffset),
	}
}

func (f *fixture) mustCreate(t *testing.T, inOffset, outOffset int) *model.Booking {
	t.Helper()
	b := newRequest(inOffset, outOffset)
	require.NoError(t, f.svc.Create(context.Background(), b))
	return b
}

func (f *fixture) mustCreateApproved(t *testing.T, inOffset, outOffset int) *model.Booking {
	t.Helper()
	b := f.mustCreate(t, inOffset, outOffset)
	require.NoError(t, f.svc.Approve(context.Background(), b.ID))
	b.Status = model.StatusApproved
	return b
}

func TestCreateEntersPending(t *testing.T) {
	f := newFixture(t)

	b := newRequest(10, 12)
	b.Status = model.StatusApproved // caller cannot pre-approve

	require.NoError(t, f.svc.Create(context.Background(), b))
	assert.Equal(t, model.StatusPending, b.Status)
	assert.Equal(t, testVendorID, b.VendorID, "owner comes from the registry, not the request")
	assert.Contains(t, f.events.events, notifications.EventBookingCreated)
}

func TestCreateAgainstApprovedOverlapConflicts(t *testing.T) {
	f := newFixture(t)
	f.mustCreateApproved(t, 10, 13)

	err := f.svc.Create(context.Background(), newRequest(12, 15))
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeConflict))
}

func TestBackToBackRangesDoNotConflict(t *testing.T) {
	f := newFixture(t)
	f.mustCreateApproved(t, 10, 13)

	// Checking in on the other booking's check-out day is allowed.
	assert.NoError(t, f.svc.Create(context.Background(), newRequest(13, 15)))
}

func TestMultiplePendingRequestsCoexist(t *testing.T) {
	f := newFixture(t)

	first := f.mustCreate(t, 10, 13)
	second := f.mustCreate(t, 11, 14)

	a, err := f.svc.GetByID(context.Background(), first.ID)
	require.NoError(t, err)
	b, err := f.svc.GetByID(context.Background(), second.ID)
	require.NoError(t, err)

	assert.Equal(t, model.StatusPending, a.Status)
	assert.Equal(t, model.StatusPending, b.Status)
}

func TestApprovalRechecksConflicts(t *testing.T) {
	f := newFixture(t)

	first := f.mustCreate(t, 10, 13)
	second := f.mustCreate(t, 11, 14)

	require.NoError(t, f.svc.Approve(context.Background(), first.ID))

	err := f.svc.Approve(context.Background(), second.ID)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeConflict))

	// The loser stays pending; it was not silently rejected.
	loser, getErr := f.svc.GetByID(context.Background(), second.ID)
	require.NoError(t, getErr)
	assert.Equal(t, model.StatusPending, loser.Status)
}

func TestRejectIsTerminal(t *testing.T) {
	f := newFixture(t)
	b := f.mustCreate(t, 10, 12)

	require.NoError(t, f.svc.Reject(context.Background(), b.ID))

	err := f.svc.Reject(context.Background(), b.ID)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeInvalidTransition))

	err = f.svc.Approve(context.Background(), b.ID)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeInvalidTransition))
}

func TestRejectedRangeFreesDates(t *testing.T) {
	f := newFixture(t)

	b := f.mustCreate(t, 10, 13)
	require.NoError(t, f.svc.Reject(context.Background(), b.ID))

	// The rejected range no longer blocks approval of an overlap.
	other := f.mustCreate(t, 10, 13)
	assert.NoError(t, f.svc.Approve(context.Background(), other.ID))
}

func TestConcurrentApprovalHasOneWinner(t *testing.T) {
	f := newFixture(t)

	first := f.mustCreate(t, 10, 13)
	second := f.mustCreate(t, 11, 14)

	results := make(chan error, 2)
	for _, id := range []string{first.ID, second.ID} {
		go func(bookingID string) {
			results <- f.svc.Approve(context.Background(), bookingID)
		}(id)
	}

	var approved, conflicted int
	for i := 0; i < 2; i++ {
		err := <-results
		switch {
		case err == nil:
			approved++
		case apperrors.HasCode(err, apperrors.CodeConflict):
			conflicted++
		default:
			t.Fatalf("unexpected approval outcome: %v", err)
		}
	}

	assert.Equal(t, 1, approved, "exactly one approval must win")
	assert.Equal(t, 1, conflicted, "the loser must see a conflict")
}

func TestLockWaitTimesOutRetryable(t *testing.T) {
	f := newFixture(t)

	// Hold the lock so every acquisition attempt loses.
	_, err := f.locks.Acquire(context.Background(), testHallID, time.Minute)
	require.NoError(t, err)

	cfg := &config.Config{
		Log:               logger.New(logger.Config{Level: "error", Output: io.Discard}),
		PaymentCurrency:   "INR",
		LockTTL:           10 * time.Second,
		LockWaitTimeout:   20 * time.Millisecond,
		LockRetryInterval: 2 * time.Millisecond,
	}
	svc := NewBookingService(f.repo, f.locks, validator.NewBookingValidator(cfg.Log), f.reg, &stubPayments{reference: "order_test_1"}, f.events, cfg)

	err = svc.Create(context.Background(), newRequest(10, 12))
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeTimeout))
	assert.True(t, apperrors.AsAppError(err).Retryable())
}

func TestCreateUnknownHall(t *testing.T) {
	f := newFixture(t)

	b := newRequest(10, 12)
	b.HallID = "507f1f77bcf86cd799439099"

	err := f.svc.Create(context.Background(), b)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))
}

func TestCreateRegistryOutageIsUnavailable(t *testing.T) {
	f := newFixture(t)
	f.reg.err = apperrors.Unavailable("hall registry", fmt.Errorf("connection refused"))

	err := f.svc.Create(context.Background(), newRequest(10, 12))
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeUnavailable))
	assert.False(t, apperrors.HasCode(err, apperrors.CodeNotFound), "an outage must never read as missing hall")
}

func TestCreateUnapprovedHallRejected(t *testing.T) {
	f := newFixture(t)
	f.reg.halls[testHallID].Status = model.StatusPending

	err := f.svc.Create(context.Background(), newRequest(10, 12))
	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidation))
}

func TestOnlinePaymentRecordsReference(t *testing.T) {
	f := newFixture(t)

	b := newRequest(10, 12)
	b.Payment = model.Payment{Method: model.PaymentOnline, Amount: 50000}

	require.NoError(t, f.svc.Create(context.Background(), b))
	assert.Equal(t, "order_test_1", b.Payment.Reference)
	assert.Equal(t, model.PaymentPending, b.Payment.Status)
}

func TestBookedRangesOmitRejected(t *testing.T) {
	f := newFixture(t)

	f.mustCreateApproved(t, 10, 12)
	f.mustCreate(t, 20, 22)
	rejected := f.mustCreate(t, 30, 32)
	require.NoError(t, f.svc.Reject(context.Background(), rejected.ID))

	ranges, err := f.svc.BookedRanges(context.Background(), testHallID, nil, nil)
	require.NoError(t, err)
	require.Len(t, ranges, 2)
	for _, rng := range ranges {
		assert.NotEqual(t, model.StatusRejected, rng.Status)
	}
}

func TestCalendarResolvesHallNames(t *testing.T) {
	f := newFixture(t)
	f.mustCreateApproved(t, 10, 12)

	entries, err := f.svc.Calendar(context.Background(), testVendorID, 10, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Grand Palace", entries[0].HallName)
	assert.Equal(t, model.StatusApproved, entries[0].Status)
	assert.Equal(t, model.PaymentAtVenue, entries[0].PaymentMethod)
}
