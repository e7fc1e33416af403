package model

type BookingStatus string

const (
	BookingBooked           BookingStatus = "booked"
	BookingPaymentInitiated BookingStatus = "payment_initiated"
	BookingConfirmed        BookingStatus = "confirmed"
	BookingCancelled        BookingStatus = "cancelled"
)

// Terminal reports whether no further status transition is permitted.
func (s BookingStatus) Terminal() bool {
	return s == BookingConfirmed || s == BookingCancelled
}

type Booking struct {
	ID      string        `json:"id"`
	EventID int64         `json:"event_id"`
	Status  BookingStatus `json:"status"`
	Seats   []int64       `json:"seats"`
}
