package notifications

import (
	"context"
	"time"

	"utsavam/pkg/kafka"
	"utsavam/pkg/model"
)

// Publisher emits booking lifecycle events. Event delivery is
// best-effort; the booking write has already committed when a publish
// runs, so failures are logged upstream, never surfaced to the caller.
type Publisher interface {
	BookingCreated(ctx context.Context, booking *model.Booking) error
	BookingApproved(ctx context.Context, booking *model.Booking) error
	BookingRejected(ctx context.Context, booking *model.Booking) error
}

type kafkaPublisher struct {
	producer *kafka.Producer
	source   string
}

func NewKafkaPublisher(producer *kafka.Producer, source string) Publisher {
	return &kafkaPublisher{
		producer: producer,
		source:   source,
	}
}

func (p *kafkaPublisher) publish(ctx context.Context, eventType string, booking *model.Booking) error {
	event := BookingEvent{
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Booking:    *booking,
	}

	// Keyed by hall so one hall's events stay ordered.
	msg := kafka.NewMessage().
		WithKey(booking.HallID).
		WithValue(event).
		WithEventType(eventType).
		WithSource(p.source).
		Build()

	return p.producer.Publish(ctx, msg)
}

func (p *kafkaPublisher) BookingCreated(ctx context.Context, booking *model.Booking) error {
	return p.publish(ctx, EventBookingCreated, booking)
}

func (p *kafkaPublisher) BookingApproved(ctx context.Context, booking *model.Booking) error {
	return p.publish(ctx, EventBookingApproved, booking)
}

func (p *kafkaPublisher) BookingRejected(ctx context.Context, booking *model.Booking) error {
	return p.publish(ctx, EventBookingRejected, booking)
}

// NoopPublisher satisfies Publisher when the broker is not configured,
// for local development and tests.
type NoopPublisher struct{}

func (NoopPublisher) BookingCreated(context.Context, *model.Booking) error  { return nil }
func (NoopPublisher) BookingApproved(context.Context, *model.Booking) error { return nil }
func (NoopPublisher) BookingRejected(context.Context, *model.Booking) error { return nil }
