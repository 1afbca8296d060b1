package model

// ApprovalStatus is the shared lifecycle status for halls, vendors and
// bookings. Approved and rejected are terminal.
type ApprovalStatus string

const (
	StatusPending  ApprovalStatus = "pending"
	StatusApproved ApprovalStatus = "approved"
	StatusRejected ApprovalStatus = "rejected"
)

func (s ApprovalStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Terminal reports whether no further status transitions are permitted.
func (s ApprovalStatus) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// CanTransitionTo encodes the only legal moves: pending -> approved and
// pending -> rejected.
func (s ApprovalStatus) CanTransitionTo(next ApprovalStatus) bool {
	return s == StatusPending && (next == StatusApproved || next == StatusRejected)
}

func (s ApprovalStatus) String() string {
	return string(s)
}

type PaymentMethod string

const (
	PaymentOnline  PaymentMethod = "online"
	PaymentAtVenue PaymentMethod = "pay_at_venue"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentOnline || m == PaymentAtVenue
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentFailed:
		return true
	}
	return false
}
