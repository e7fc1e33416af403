package payments

import "time"

const (
	EventTypePaymentRequested = "payment.requested"
	EventTypePaymentResult    = "payment.result"

	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
)

// PaymentRequested is published when a booking enters payment_initiated.
type PaymentRequested struct {
	BookingID   string    `json:"booking_id"`
	EventID     int64     `json:"event_id"`
	SeatIDs     []int64   `json:"seat_ids"`
	Amount      string    `json:"amount"`
	RequestedAt time.Time `json:"requested_at"`
}

// PaymentResult is the asynchronous outcome reported by the payment
// provider.
type PaymentResult struct {
	BookingID     string    `json:"booking_id"`
	Status        string    `json:"status"`
	TransactionID string    `json:"transaction_id,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}
