package payments

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"tixbox/pkg/kafka"
	"tixbox/pkg/logger"
	"tixbox/pkg/model"
)

// Publisher emits payment requests for bookings that entered the
// payment_initiated state.
type Publisher interface {
	PaymentRequested(ctx context.Context, booking *model.Booking) error
}

type producer interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

// KafkaPublisher publishes PaymentRequested events keyed by booking id,
// so results for the same booking stay on one partition.
type KafkaPublisher struct {
	producer  producer
	seatPrice string
	log       *logger.Logger
}

func NewKafkaPublisher(p producer, seatPrice string, log *logger.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		producer:  p,
		seatPrice: seatPrice,
		log:       log,
	}
}

func (p *KafkaPublisher) PaymentRequested(ctx context.Context, booking *model.Booking) error {
	amount, err := totalAmount(p.seatPrice, len(booking.Seats))
	if err != nil {
		return fmt.Errorf("compute booking amount: %w", err)
	}

	payload := PaymentRequested{
		BookingID:   booking.ID,
		EventID:     booking.EventID,
		SeatIDs:     booking.Seats,
		Amount:      amount,
		RequestedAt: time.Now().UTC(),
	}

	msg, err := kafka.NewMessage(booking.ID, EventTypePaymentRequested, payload)
	if err != nil {
		return fmt.Errorf("encode payment request: %w", err)
	}

	if err := p.producer.Publish(ctx, msg); err != nil {
		return err
	}

	p.log.Info("Published payment request",
		"booking_id", booking.ID,
		"event_id", booking.EventID,
		"seats", len(booking.Seats),
		"amount", amount,
	)
	return nil
}

// totalAmount multiplies a "units.cents" price by the seat count using
// integer cents, avoiding float rounding.
func totalAmount(price string, seats int) (string, error) {
	units, cents, ok := strings.Cut(price, ".")
	if !ok || len(cents) != 2 {
		return "", fmt.Errorf("malformed seat price %q", price)
	}

	u, err := strconv.ParseInt(units, 10, 64)
	if err != nil {
		return "", fmt.Errorf("malformed seat price %q", price)
	}
	c, err := strconv.ParseInt(cents, 10, 64)
	if err != nil || c < 0 {
		return "", fmt.Errorf("malformed seat price %q", price)
	}

	total := (u*100 + c) * int64(seats)
	return fmt.Sprintf("%d.%02d", total/100, total%100), nil
}
