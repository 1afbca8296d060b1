package model

import (
	"time"
)

// Booking is a requested date-range hold against a hall. The range is
// half-open [check_in, check_out) and immutable after creation; only the
// status and payment sub-state may change.
type Booking struct {
	ID           string         `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	HallID       string         `json:"hall_id" bson:"hall_id" validate:"required,mongodb"`
	VendorID     string         `json:"vendor_id" bson:"vendor_id" validate:"required,mongodb"`
	CustomerName string         `json:"customer_name" bson:"customer_name" validate:"required,min=2,max=100"`
	Phone        string         `json:"phone" bson:"phone" validate:"required,e164"`
	EventType    string         `json:"event_type" bson:"event_type" validate:"required,min=2,max=60"`
	Guests       int            `json:"guests" bson:"guests" validate:"min=0"`
	CheckIn      time.Time      `json:"check_in" bson:"check_in" validate:"required"`
	CheckOut     time.Time      `json:"check_out" bson:"check_out" validate:"required,gtfield=CheckIn"`
	Status       ApprovalStatus `json:"status" bson:"status" validate:"required,oneof=pending approved rejected"`
	Payment      Payment        `json:"payment" bson:"payment"`
	CreatedAt    time.Time      `json:"created_at" bson:"created_at" validate:"omitempty"`
	UpdatedAt    time.Time      `json:"updated_at" bson:"updated_at" validate:"omitempty"`
}

// Payment is the booking's payment sub-state. Settlement happens outside
// the core; Reference is the gateway order id when the method is online.
type Payment struct {
	Method    PaymentMethod `json:"method" bson:"method" validate:"required,oneof=online pay_at_venue"`
	Status    PaymentStatus `json:"status" bson:"status" validate:"required,oneof=pending paid failed"`
	Amount    float64       `json:"amount" bson:"amount" validate:"min=0"`
	Reference string        `json:"reference,omitempty" bson:"reference,omitempty"`
}

// BookedRange is the trimmed projection served to availability calendars.
type BookedRange struct {
	CheckIn  time.Time      `json:"check_in" bson:"check_in"`
	CheckOut time.Time      `json:"check_out" bson:"check_out"`
	Status   ApprovalStatus `json:"status" bson:"status"`
}
