package conflict

import (
	"testing"
	"time"

	"utsavam/pkg/model"

	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		aIn  time.Time
		aOut time.Time
		bIn  time.Time
		bOut time.Time
		want bool
	}{
		{name: "identical ranges", aIn: day(1), aOut: day(3), bIn: day(1), bOut: day(3), want: true},
		{name: "partial overlap", aIn: day(1), aOut: day(3), bIn: day(2), bOut: day(4), want: true},
		{name: "contained range", aIn: day(1), aOut: day(10), bIn: day(3), bOut: day(5), want: true},
		{name: "back to back is free", aIn: day(1), aOut: day(3), bIn: day(3), bOut: day(5), want: false},
		{name: "back to back reversed", aIn: day(3), aOut: day(5), bIn: day(1), bOut: day(3), want: false},
		{name: "disjoint", aIn: day(1), aOut: day(2), bIn: day(5), bOut: day(6), want: false},
		{name: "single day inside", aIn: day(2), aOut: day(3), bIn: day(1), bOut: day(5), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aIn, tt.aOut, tt.bIn, tt.bOut))
			// Overlap is symmetric.
			assert.Equal(t, tt.want, Overlaps(tt.bIn, tt.bOut, tt.aIn, tt.aOut))
		})
	}
}

func TestFirstConflictSkipsNonApproved(t *testing.T) {
	existing := []*model.Booking{
		{ID: "a", CheckIn: day(1), CheckOut: day(5), Status: model.StatusPending},
		{ID: "b", CheckIn: day(1), CheckOut: day(5), Status: model.StatusRejected},
	}

	assert.Nil(t, FirstConflict(day(2), day(4), "", existing))
}

func TestFirstConflictFindsApprovedOverlap(t *testing.T) {
	existing := []*model.Booking{
		{ID: "a", CheckIn: day(1), CheckOut: day(3), Status: model.StatusApproved},
		{ID: "b", CheckIn: day(4), CheckOut: day(6), Status: model.StatusApproved},
	}

	hit := FirstConflict(day(5), day(7), "", existing)
	assert.NotNil(t, hit)
	assert.Equal(t, "b", hit.ID)
}

func TestFirstConflictExcludesSelf(t *testing.T) {
	existing := []*model.Booking{
		{ID: "self", CheckIn: day(1), CheckOut: day(5), Status: model.StatusApproved},
	}

	assert.Nil(t, FirstConflict(day(1), day(5), "self", existing))
}

func TestFirstConflictBackToBack(t *testing.T) {
	existing := []*model.Booking{
		{ID: "a", CheckIn: day(1), CheckOut: day(3), Status: model.StatusApproved},
	}

	// Checking in the day the other checks out is allowed.
	assert.Nil(t, FirstConflict(day(3), day(5), "", existing))
}
