package payments

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tixbox/pkg/kafka"
	"tixbox/pkg/logger"
	"tixbox/pkg/model"
)

func testLogger() *logger.Logger {
	return &logger.Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

type capturingProducer struct {
	published []kafka.Message
	err       error
}

func (p *capturingProducer) Publish(_ context.Context, msg kafka.Message) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, msg)
	return nil
}

type fakeCallbacks struct {
	confirmed []string
	failed    []string
	err       error
}

func (f *fakeCallbacks) ConfirmPayment(_ context.Context, bookingID string) error {
	f.confirmed = append(f.confirmed, bookingID)
	return f.err
}

func (f *fakeCallbacks) FailPayment(_ context.Context, bookingID string) error {
	f.failed = append(f.failed, bookingID)
	return f.err
}

func resultMessage(t *testing.T, result PaymentResult) kafka.Message {
	t.Helper()
	msg, err := kafka.NewMessage(result.BookingID, EventTypePaymentResult, result)
	require.NoError(t, err)
	return msg
}

func TestKafkaPublisher_PaymentRequested(t *testing.T) {
	producer := &capturingProducer{}
	publisher := NewKafkaPublisher(producer, "50.00", testLogger())

	booking := &model.Booking{
		ID:      "b-1",
		EventID: 7,
		Status:  model.BookingPaymentInitiated,
		Seats:   []int64{3, 4, 9},
	}

	require.NoError(t, publisher.PaymentRequested(context.Background(), booking))
	require.Len(t, producer.published, 1)

	msg := producer.published[0]
	assert.Equal(t, "b-1", msg.Key)
	assert.Equal(t, EventTypePaymentRequested, msg.EventType())
	assert.NotEmpty(t, msg.EventID())

	var payload PaymentRequested
	require.NoError(t, msg.DecodeValue(&payload))
	assert.Equal(t, "b-1", payload.BookingID)
	assert.Equal(t, int64(7), payload.EventID)
	assert.Equal(t, []int64{3, 4, 9}, payload.SeatIDs)
	assert.Equal(t, "150.00", payload.Amount)
	assert.False(t, payload.RequestedAt.IsZero())
}

func TestKafkaPublisher_MalformedPrice(t *testing.T) {
	producer := &capturingProducer{}
	publisher := NewKafkaPublisher(producer, "fifty", testLogger())

	booking := &model.Booking{ID: "b-1", EventID: 1, Seats: []int64{1}}

	err := publisher.PaymentRequested(context.Background(), booking)
	require.Error(t, err)
	assert.Empty(t, producer.published)
}

func TestKafkaPublisher_ProducerError(t *testing.T) {
	wantErr := errors.New("broker unavailable")
	publisher := NewKafkaPublisher(&capturingProducer{err: wantErr}, "50.00", testLogger())

	booking := &model.Booking{ID: "b-1", EventID: 1, Seats: []int64{1}}

	err := publisher.PaymentRequested(context.Background(), booking)
	assert.ErrorIs(t, err, wantErr)
}

func TestTotalAmount(t *testing.T) {
	tests := []struct {
		price string
		seats int
		want  string
	}{
		{"50.00", 1, "50.00"},
		{"50.00", 3, "150.00"},
		{"12.34", 2, "24.68"},
		{"0.99", 10, "9.90"},
		{"50.00", 0, "0.00"},
	}

	for _, tt := range tests {
		got, err := totalAmount(tt.price, tt.seats)
		require.NoError(t, err, "price %q seats %d", tt.price, tt.seats)
		assert.Equal(t, tt.want, got)
	}

	for _, bad := range []string{"", "50", "50.0", "50.000", "abc.de", "-1.x0"} {
		_, err := totalAmount(bad, 1)
		assert.Error(t, err, "price %q", bad)
	}
}

func TestResultHandler_Succeeded(t *testing.T) {
	callbacks := &fakeCallbacks{}
	handle := NewResultHandler(callbacks, testLogger())

	msg := resultMessage(t, PaymentResult{BookingID: "b-1", Status: StatusSucceeded})

	require.NoError(t, handle(context.Background(), msg))
	assert.Equal(t, []string{"b-1"}, callbacks.confirmed)
	assert.Empty(t, callbacks.failed)
}

func TestResultHandler_Failed(t *testing.T) {
	callbacks := &fakeCallbacks{}
	handle := NewResultHandler(callbacks, testLogger())

	msg := resultMessage(t, PaymentResult{BookingID: "b-2", Status: StatusFailed})

	require.NoError(t, handle(context.Background(), msg))
	assert.Equal(t, []string{"b-2"}, callbacks.failed)
	assert.Empty(t, callbacks.confirmed)
}

func TestResultHandler_CallbackErrorsSwallowed(t *testing.T) {
	callbacks := &fakeCallbacks{err: errors.New("booking not found")}
	handle := NewResultHandler(callbacks, testLogger())

	msg := resultMessage(t, PaymentResult{BookingID: "gone", Status: StatusSucceeded})

	assert.NoError(t, handle(context.Background(), msg))
}

func TestResultHandler_PermanentFailures(t *testing.T) {
	callbacks := &fakeCallbacks{}
	handle := NewResultHandler(callbacks, testLogger())

	t.Run("malformed payload", func(t *testing.T) {
		msg := kafka.Message{Value: []byte("not json")}
		err := handle(context.Background(), msg)
		assert.ErrorIs(t, err, kafka.ErrPermanent)
	})

	t.Run("missing booking id", func(t *testing.T) {
		msg := resultMessage(t, PaymentResult{Status: StatusSucceeded})
		err := handle(context.Background(), msg)
		assert.ErrorIs(t, err, kafka.ErrPermanent)
	})

	t.Run("unknown status", func(t *testing.T) {
		msg := resultMessage(t, PaymentResult{BookingID: "b-1", Status: "refunded"})
		err := handle(context.Background(), msg)
		assert.ErrorIs(t, err, kafka.ErrPermanent)
	})

	assert.Empty(t, callbacks.confirmed)
	assert.Empty(t, callbacks.failed)
}
