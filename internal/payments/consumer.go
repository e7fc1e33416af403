package payments

import (
	"context"
	"fmt"

	"tixbox/pkg/kafka"
	"tixbox/pkg/logger"
)

// BookingCallbacks is the slice of the booking store the result
// consumer needs. Both callbacks are idempotent.
type BookingCallbacks interface {
	ConfirmPayment(ctx context.Context, bookingID string) error
	FailPayment(ctx context.Context, bookingID string) error
}

// NewResultHandler returns the handler for the payment results topic.
// Malformed or unroutable results are permanent failures and go to the
// DLQ; callback errors never surface because the store treats unknown
// bookings and repeated outcomes as no-ops.
func NewResultHandler(callbacks BookingCallbacks, log *logger.Logger) kafka.MessageHandler {
	return func(ctx context.Context, msg kafka.Message) error {
		var result PaymentResult
		if err := msg.DecodeValue(&result); err != nil {
			return fmt.Errorf("decode payment result: %v: %w", err, kafka.ErrPermanent)
		}

		if result.BookingID == "" {
			return fmt.Errorf("payment result without booking id: %w", kafka.ErrPermanent)
		}

		switch result.Status {
		case StatusSucceeded:
			if err := callbacks.ConfirmPayment(ctx, result.BookingID); err != nil {
				log.Warn("Payment confirmation ignored", "booking_id", result.BookingID, "error", err)
			}
		case StatusFailed:
			if err := callbacks.FailPayment(ctx, result.BookingID); err != nil {
				log.Warn("Payment failure ignored", "booking_id", result.BookingID, "error", err)
			}
		default:
			return fmt.Errorf("unknown payment status %q: %w", result.Status, kafka.ErrPermanent)
		}

		log.Info("Processed payment result",
			"booking_id", result.BookingID,
			"status", result.Status,
		)
		return nil
	}
}
