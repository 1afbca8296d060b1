package notifications

import (
	"context"
	"testing"
	"time"

	apperrors "utsavam/pkg/errors"
	"utsavam/pkg/kafka"
	"utsavam/pkg/logger"
	"utsavam/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	halls   map[string]*model.HallInfo
	err     error
	lookups int
}

func (s *stubResolver) Lookup(_ context.Context, hallID string) (*model.HallInfo, error) {
	s.lookups++
	if s.err != nil {
		return nil, s.err
	}
	hall, ok := s.halls[hallID]
	if !ok {
		return nil, apperrors.NotFoundWithID("Hall", hallID)
	}
	return hall, nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Format: "text"})
}

func eventMessage(t *testing.T, eventType, hallID string) kafka.Message {
	t.Helper()

	event := BookingEvent{
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Booking: model.Booking{
			ID:           "507f1f77bcf86cd799439021",
			HallID:       hallID,
			VendorID:     "507f1f77bcf86cd799439012",
			CustomerName: "ravi kumar",
			CheckIn:      time.Date(2027, 1, 10, 0, 0, 0, 0, time.UTC),
			CheckOut:     time.Date(2027, 1, 12, 0, 0, 0, 0, time.UTC),
			Status:       model.StatusPending,
		},
	}

	return kafka.NewMessage().
		WithKey(hallID).
		WithValue(event).
		WithEventType(eventType).
		WithSource("bookings").
		Build()
}

func TestHandleRendersEntry(t *testing.T) {
	hallID := "507f1f77bcf86cd799439011"
	resolver := &stubResolver{halls: map[string]*model.HallInfo{
		hallID: {ID: hallID, Name: "grand palace"},
	}}
	notifier := NewNotifier(resolver, testLogger())

	err := notifier.Handle(context.Background(), eventMessage(t, EventBookingCreated, hallID))
	require.NoError(t, err)
}

func TestHandleCachesHallLookups(t *testing.T) {
	hallID := "507f1f77bcf86cd799439011"
	resolver := &stubResolver{halls: map[string]*model.HallInfo{
		hallID: {ID: hallID, Name: "grand palace"},
	}}
	notifier := NewNotifier(resolver, testLogger())

	ctx := context.Background()
	require.NoError(t, notifier.Handle(ctx, eventMessage(t, EventBookingCreated, hallID)))
	require.NoError(t, notifier.Handle(ctx, eventMessage(t, EventBookingApproved, hallID)))

	assert.Equal(t, 1, resolver.lookups)
}

func TestHandleToleratesMissingHall(t *testing.T) {
	resolver := &stubResolver{halls: map[string]*model.HallInfo{}}
	notifier := NewNotifier(resolver, testLogger())

	err := notifier.Handle(context.Background(), eventMessage(t, EventBookingRejected, "507f1f77bcf86cd799439099"))
	require.NoError(t, err)
}

func TestHandleRetriesOnRegistryOutage(t *testing.T) {
	resolver := &stubResolver{err: apperrors.Unavailable("hall registry", nil)}
	notifier := NewNotifier(resolver, testLogger())

	err := notifier.Handle(context.Background(), eventMessage(t, EventBookingCreated, "507f1f77bcf86cd799439011"))
	require.Error(t, err)
}

func TestHandleSkipsUnknownEventType(t *testing.T) {
	resolver := &stubResolver{}
	notifier := NewNotifier(resolver, testLogger())

	err := notifier.Handle(context.Background(), eventMessage(t, "booking.archived", "507f1f77bcf86cd799439011"))
	require.NoError(t, err)
	assert.Zero(t, resolver.lookups)
}

func TestHandleRejectsMalformedPayload(t *testing.T) {
	notifier := NewNotifier(&stubResolver{}, testLogger())

	msg := kafka.Message{Value: []byte("not json")}
	err := notifier.Handle(context.Background(), msg)
	require.Error(t, err)
}
