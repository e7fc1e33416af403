package kafka

import (
	"errors"
	"strings"
)

var (
	ErrProducerClosed = errors.New("kafka producer is closed")
	ErrConsumerClosed = errors.New("kafka consumer is closed")

	// ErrPermanent marks handler failures that must not be retried
	// (malformed payloads, unknown event types). Wrap with fmt.Errorf
	// and %w.
	ErrPermanent = errors.New("permanent failure")
)

var transientPatterns = []string{
	"connection refused",
	"connection reset",
	"broken pipe",
	"timeout",
	"deadline exceeded",
	"no such host",
	"network is unreachable",
	"temporary failure",
}

// IsTransient reports whether an error looks retryable. Anything marked
// permanent never is; otherwise classification falls back to matching
// known network failure strings, defaulting to not-retryable.
func IsTransient(err error) bool {
	if err == nil || errors.Is(err, ErrPermanent) {
		return false
	}

	msg := strings.ToLower(err.Error())
	for _, pattern := range transientPatterns {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}

// ShouldRetry decides whether the consumer retries a failed message.
func ShouldRetry(err error, currentRetries, maxRetries int) bool {
	if err == nil || currentRetries >= maxRetries {
		return false
	}
	return IsTransient(err)
}
