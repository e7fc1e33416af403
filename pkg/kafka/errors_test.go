package kafka

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		transient bool
	}{
		{"nil", nil, false},
		{"connection refused", errors.New("dial tcp: connection refused"), true},
		{"deadline", errors.New("context deadline exceeded"), true},
		{"broken pipe", errors.New("write: broken pipe"), true},
		{"permanent wrapper", fmt.Errorf("bad payload: %w", ErrPermanent), false},
		{"unclassified", errors.New("something else"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTransient(tt.err); got != tt.transient {
				t.Errorf("IsTransient(%v) = %v, want %v", tt.err, got, tt.transient)
			}
		})
	}
}

func TestShouldRetry(t *testing.T) {
	transient := errors.New("i/o timeout")

	if !ShouldRetry(transient, 0, 3) {
		t.Error("transient error below max retries should retry")
	}
	if ShouldRetry(transient, 3, 3) {
		t.Error("exhausted retries should not retry")
	}
	if ShouldRetry(fmt.Errorf("oops: %w", ErrPermanent), 0, 3) {
		t.Error("permanent error should never retry")
	}
	if ShouldRetry(nil, 0, 3) {
		t.Error("nil error should not retry")
	}
}

func TestMessageRetryCount(t *testing.T) {
	msg, err := NewMessage("booking-1", "payment.requested", map[string]string{"x": "y"})
	if err != nil {
		t.Fatalf("NewMessage: %v", err)
	}

	if msg.RetryCount() != 0 {
		t.Errorf("fresh message retry count = %d, want 0", msg.RetryCount())
	}

	msg.IncrementRetryCount()
	msg.IncrementRetryCount()
	if msg.RetryCount() != 2 {
		t.Errorf("retry count = %d, want 2", msg.RetryCount())
	}

	if msg.EventID() == "" {
		t.Error("NewMessage should assign an event id")
	}
	if msg.EventType() != "payment.requested" {
		t.Errorf("event type = %q", msg.EventType())
	}
}
