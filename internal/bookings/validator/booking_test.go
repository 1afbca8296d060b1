package validator

import (
	"io"
	"testing"
	"time"

	"utsavam/pkg/logger"
	"utsavam/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator() *BookingValidator {
	return NewBookingValidator(logger.New(logger.Config{Level: "error", Output: io.Discard}))
}

func futureDay(offset int) time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, offset)
}

func validBooking() *model.Booking {
	return &model.Booking{
		HallID:       "507f1f77bcf86cd799439011",
		VendorID:     "507f1f77bcf86cd799439012",
		CustomerName: "Asha Patel",
		Phone:        "+919876543210",
		EventType:    "wedding",
		Guests:       250,
		CheckIn:      futureDay(7),
		CheckOut:     futureDay(9),
		Status:       model.StatusPending,
		Payment: model.Payment{
			Method: model.PaymentAtVenue,
			Status: model.PaymentPending,
		},
	}
}

func TestValidBookingPasses(t *testing.T) {
	require.NoError(t, newValidator().Validate(validBooking()))
}

func TestZeroLengthRangeRejected(t *testing.T) {
	b := validBooking()
	b.CheckOut = b.CheckIn

	err := newValidator().Validate(b)
	require.Error(t, err)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "CheckOut", verrs[0].Field)
}

func TestInvertedRangeRejected(t *testing.T) {
	b := validBooking()
	b.CheckIn = futureDay(9)
	b.CheckOut = futureDay(7)

	assert.Error(t, newValidator().Validate(b))
}

func TestPastCheckInRejected(t *testing.T) {
	b := validBooking()
	b.CheckIn = futureDay(-3)
	b.CheckOut = futureDay(2)

	err := newValidator().Validate(b)
	require.Error(t, err)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "CheckIn", verrs[0].Field)
}

func TestMissingFieldsRejected(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.Booking)
	}{
		{name: "missing hall", mutate: func(b *model.Booking) { b.HallID = "" }},
		{name: "missing customer", mutate: func(b *model.Booking) { b.CustomerName = "" }},
		{name: "bad phone", mutate: func(b *model.Booking) { b.Phone = "12345" }},
		{name: "bad status", mutate: func(b *model.Booking) { b.Status = "held" }},
		{name: "bad payment method", mutate: func(b *model.Booking) { b.Payment.Method = "cheque" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBooking()
			tt.mutate(b)
			assert.Error(t, newValidator().Validate(b))
		})
	}
}
