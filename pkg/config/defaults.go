package config

import "time"

const (
	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
	DefaultRequestTimeout  = 30 * time.Second
	DefaultMaxRequestSize  = 1 * 1024 * 1024 // 1MB

	DefaultReservationTTL = 15 * time.Minute

	// Ordinary events get a small fixed grid; titles matching the
	// large-event prefix get the large one.
	DefaultEventRows             = 2
	DefaultEventSeatsPerRow      = 5
	DefaultLargeEventRows        = 20
	DefaultLargeEventSeatsPerRow = 50
	DefaultLargeEventPrefix      = "big:"

	DefaultSeatPrice = "50.00"

	DefaultSeatPageSize = 10
	MaxSeatPageSize     = 20

	DefaultPaginationLimit = 100

	DefaultKafkaEnabled         = false
	DefaultPaymentRequestTopic  = "payments.requests"
	DefaultPaymentResultTopic   = "payments.results"
	DefaultPaymentResultDLQ     = "payments.results.dlq"
	DefaultPaymentConsumerGroup = "boxoffice"
)
