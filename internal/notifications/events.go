// Package notifications publishes booking lifecycle events to the
// event bus. The notifier service consumes them and renders calendar
// entries for vendors.
package notifications

import (
	"time"

	"utsavam/pkg/model"
)

const (
	EventBookingCreated  = "booking.created"
	EventBookingApproved = "booking.approved"
	EventBookingRejected = "booking.rejected"
)

// BookingEvent is the wire payload for every booking lifecycle event.
// The full booking snapshot travels with the event so consumers never
// need a read-back.
type BookingEvent struct {
	Type       string        `json:"type"`
	OccurredAt time.Time     `json:"occurred_at"`
	Booking    model.Booking `json:"booking"`
}
