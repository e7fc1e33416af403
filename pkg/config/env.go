package config

const (
	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
	EnvRequestTimeout  = "REQUEST_TIMEOUT"
	EnvMaxRequestSize  = "MAX_REQUEST_SIZE"

	EnvReservationTTL = "RESERVATION_TTL"

	EnvEventRows             = "EVENT_ROWS"
	EnvEventSeatsPerRow      = "EVENT_SEATS_PER_ROW"
	EnvLargeEventRows        = "LARGE_EVENT_ROWS"
	EnvLargeEventSeatsPerRow = "LARGE_EVENT_SEATS_PER_ROW"
	EnvLargeEventPrefix      = "LARGE_EVENT_PREFIX"
	EnvSeatPrice             = "SEAT_PRICE"

	EnvKafkaEnabled         = "KAFKA_ENABLED"
	EnvPaymentRequestTopic  = "PAYMENT_REQUEST_TOPIC"
	EnvPaymentResultTopic   = "PAYMENT_RESULT_TOPIC"
	EnvPaymentResultDLQ     = "PAYMENT_RESULT_DLQ_TOPIC"
	EnvPaymentConsumerGroup = "PAYMENT_CONSUMER_GROUP"
)
