// Package conflict implements the date-range overlap rules for hall
// bookings. Ranges are half-open [check_in, check_out): a booking that
// checks out on the day another checks in does not collide.
package conflict

import (
	"time"

	"utsavam/pkg/model"
)

// Overlaps reports whether [start1, end1) and [start2, end2) intersect.
func Overlaps(start1, end1, start2, end2 time.Time) bool {
	return start1.Before(end2) && end1.After(start2)
}

// FirstConflict returns the first approved booking whose range overlaps
// [checkIn, checkOut), skipping the booking identified by excludeID.
// Pending and rejected bookings never block admission: rejected ranges
// are free, and pending requests only compete at approval time.
func FirstConflict(checkIn, checkOut time.Time, excludeID string, existing []*model.Booking) *model.Booking {
	for _, b := range existing {
		if b.ID == excludeID {
			continue
		}
		if b.Status != model.StatusApproved {
			continue
		}
		if Overlaps(b.CheckIn, b.CheckOut, checkIn, checkOut) {
			return b
		}
	}
	return nil
}
