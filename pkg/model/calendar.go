package model

import "time"

// CalendarEntry is the flat projection handed to the notification and
// calendar-rendering layer. CheckIn and CheckOut are always present and
// well-formed; payment fields fall back to their zero defaults.
type CalendarEntry struct {
	ID            string         `json:"id"`
	HallID        string         `json:"hall_id"`
	HallName      string         `json:"hall_name"`
	VendorName    string         `json:"vendor_name"`
	CheckIn       time.Time      `json:"check_in"`
	CheckOut      time.Time      `json:"check_out"`
	Status        ApprovalStatus `json:"status"`
	PaymentMethod PaymentMethod  `json:"payment_method"`
	PaymentStatus PaymentStatus  `json:"payment_status"`
	Amount        float64        `json:"amount"`
	CustomerName  string         `json:"customer_name"`
	Phone         string         `json:"phone"`
	EventType     string         `json:"event_type"`
	Guests        int            `json:"guests"`
}

// CalendarEntryFromBooking builds the projection, filling hall and vendor
// display names from the registry lookup.
func CalendarEntryFromBooking(b *Booking, hallName, vendorName string) CalendarEntry {
	entry := CalendarEntry{
		ID:            b.ID,
		HallID:        b.HallID,
		HallName:      hallName,
		VendorName:    vendorName,
		CheckIn:       b.CheckIn,
		CheckOut:      b.CheckOut,
		Status:        b.Status,
		PaymentMethod: b.Payment.Method,
		PaymentStatus: b.Payment.Status,
		Amount:        b.Payment.Amount,
		CustomerName:  b.CustomerName,
		Phone:         b.Phone,
		EventType:     b.EventType,
		Guests:        b.Guests,
	}
	if entry.PaymentMethod == "" {
		entry.PaymentMethod = PaymentAtVenue
	}
	if entry.PaymentStatus == "" {
		entry.PaymentStatus = PaymentPending
	}
	return entry
}
