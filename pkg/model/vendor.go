package model

import "time"

// Vendor owns halls. Deleting a vendor cascades over its halls and every
// booking referencing them.
type Vendor struct {
	ID           string         `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	BusinessName string         `json:"business_name" bson:"business_name" validate:"required,min=2,max=120"`
	OwnerName    string         `json:"owner_name" bson:"owner_name" validate:"required,min=2,max=100"`
	Phone        string         `json:"phone" bson:"phone" validate:"required,e164"`
	Email        string         `json:"email" bson:"email" validate:"required,email"`
	City         string         `json:"city" bson:"city" validate:"required,min=2,max=80"`
	ServiceType  string         `json:"service_type" bson:"service_type" validate:"required,oneof=wedding banquet party service"`
	Status       ApprovalStatus `json:"status" bson:"status" validate:"required,oneof=pending approved rejected"`
	CreatedAt    time.Time      `json:"created_at" bson:"created_at" validate:"omitempty"`
	UpdatedAt    time.Time      `json:"updated_at" bson:"updated_at" validate:"omitempty"`
}
