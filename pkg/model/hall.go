package model

import "time"

// Hall is the bookable venue. Created by a vendor in pending state; an
// admin approves or rejects the listing. The booking core only admits
// reservations against approved halls.
type Hall struct {
	ID          string         `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	VendorID    string         `json:"vendor_id" bson:"vendor_id" validate:"required,mongodb"`
	Name        string         `json:"name" bson:"name" validate:"required,min=2,max=120"`
	Category    string         `json:"category" bson:"category" validate:"required,oneof=wedding banquet party"`
	Capacity    int            `json:"capacity" bson:"capacity" validate:"min=0"`
	City        string         `json:"city" bson:"city" validate:"required,min=2,max=80"`
	About       string         `json:"about,omitempty" bson:"about,omitempty" validate:"max=2000"`
	PricePerDay float64        `json:"price_per_day" bson:"price_per_day" validate:"min=0"`
	Status      ApprovalStatus `json:"status" bson:"status" validate:"required,oneof=pending approved rejected"`
	CreatedAt   time.Time      `json:"created_at" bson:"created_at" validate:"omitempty"`
	UpdatedAt   time.Time      `json:"updated_at" bson:"updated_at" validate:"omitempty"`
}

// HallInfo is the registry projection the booking core consumes. It is
// intentionally flat: existence, ownership and approval state only.
type HallInfo struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	VendorID   string         `json:"vendor_id"`
	VendorName string         `json:"vendor_name"`
	Capacity   int            `json:"capacity"`
	Status     ApprovalStatus `json:"status"`
}
