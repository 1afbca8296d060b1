package notifications

import (
	"context"
	"fmt"
	"sync"

	apperrors "utsavam/pkg/errors"
	"utsavam/pkg/kafka"
	"utsavam/pkg/logger"
	"utsavam/pkg/model"
)

// HallResolver supplies display names for calendar entries. The hall
// registry client satisfies it.
type HallResolver interface {
	Lookup(ctx context.Context, hallID string) (*model.HallInfo, error)
}

// Notifier consumes booking lifecycle events and renders vendor-facing
// calendar entries. Hall names are cached per process; bookings for a
// hall arrive on one partition so the cache stays hot.
type Notifier struct {
	resolver HallResolver
	log      *logger.Logger

	mu    sync.Mutex
	names map[string]string
}

func NewNotifier(resolver HallResolver, log *logger.Logger) *Notifier {
	return &Notifier{
		resolver: resolver,
		log:      log,
		names:    make(map[string]string),
	}
}

// Handle processes one consumed message. A nil return commits the
// offset; a non-nil return sends the message through the retry and DLQ
// path.
func (n *Notifier) Handle(ctx context.Context, msg kafka.Message) error {
	var event BookingEvent
	if err := msg.DecodeValue(&event); err != nil {
		return fmt.Errorf("failed to decode booking event: %w", err)
	}

	switch event.Type {
	case EventBookingCreated, EventBookingApproved, EventBookingRejected:
	default:
		// Unknown types are skipped, not retried; a newer producer may
		// emit events this consumer predates.
		n.log.Warn("Skipping unknown event type",
			"type", event.Type,
			"event_id", msg.GetEventID(),
		)
		return nil
	}

	hallName, err := n.hallName(ctx, event.Booking.HallID)
	if err != nil {
		return err
	}

	entry := model.CalendarEntryFromBooking(&event.Booking, hallName, "")

	n.log.Info("Calendar entry updated",
		"event_type", event.Type,
		"event_id", msg.GetEventID(),
		"booking_id", entry.ID,
		"hall_id", entry.HallID,
		"hall_name", entry.HallName,
		"check_in", entry.CheckIn,
		"check_out", entry.CheckOut,
		"status", entry.Status,
		"customer", entry.CustomerName,
		"guests", entry.Guests,
	)
	return nil
}

// hallName resolves the display name once per hall. A missing hall does
// not block the notification; the entry renders without a name.
func (n *Notifier) hallName(ctx context.Context, hallID string) (string, error) {
	n.mu.Lock()
	name, ok := n.names[hallID]
	n.mu.Unlock()
	if ok {
		return name, nil
	}

	info, err := n.resolver.Lookup(ctx, hallID)
	if err != nil {
		if apperrors.HasCode(err, apperrors.CodeNotFound) {
			n.log.Warn("Hall no longer in registry", "hall_id", hallID)
			return "", nil
		}
		return "", fmt.Errorf("failed to resolve hall %s: %w", hallID, err)
	}

	n.mu.Lock()
	n.names[hallID] = info.Name
	n.mu.Unlock()
	return info.Name, nil
}
