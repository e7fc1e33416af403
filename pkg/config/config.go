package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"time"

	"tixbox/pkg/logger"
)

var priceRegex = regexp.MustCompile(`^\d+\.\d{2}$`)

type Config struct {
	Port string

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	RequestTimeout  time.Duration
	MaxRequestSize  int

	// How long a RESERVED seat is held before automatic release.
	ReservationTTL time.Duration

	EventRows             int
	EventSeatsPerRow      int
	LargeEventRows        int
	LargeEventSeatsPerRow int
	LargeEventPrefix      string
	SeatPrice             string

	KafkaEnabled         bool
	PaymentRequestTopic  string
	PaymentResultTopic   string
	PaymentResultDLQ     string
	PaymentConsumerGroup string

	Log *logger.Logger
}

func Load(serviceName string) *Config {
	cfg := &Config{
		Port: getEnvStr(EnvPort, DefaultPort),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),
		RequestTimeout:  getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		MaxRequestSize:  getEnvNum(EnvMaxRequestSize, DefaultMaxRequestSize),

		ReservationTTL: getEnvDuration(EnvReservationTTL, DefaultReservationTTL),

		EventRows:             getEnvNum(EnvEventRows, DefaultEventRows),
		EventSeatsPerRow:      getEnvNum(EnvEventSeatsPerRow, DefaultEventSeatsPerRow),
		LargeEventRows:        getEnvNum(EnvLargeEventRows, DefaultLargeEventRows),
		LargeEventSeatsPerRow: getEnvNum(EnvLargeEventSeatsPerRow, DefaultLargeEventSeatsPerRow),
		LargeEventPrefix:      getEnvStr(EnvLargeEventPrefix, DefaultLargeEventPrefix),
		SeatPrice:             getEnvStr(EnvSeatPrice, DefaultSeatPrice),

		KafkaEnabled:         getEnvBool(EnvKafkaEnabled, DefaultKafkaEnabled),
		PaymentRequestTopic:  getEnvStr(EnvPaymentRequestTopic, DefaultPaymentRequestTopic),
		PaymentResultTopic:   getEnvStr(EnvPaymentResultTopic, DefaultPaymentResultTopic),
		PaymentResultDLQ:     getEnvStr(EnvPaymentResultDLQ, DefaultPaymentResultDLQ),
		PaymentConsumerGroup: getEnvStr(EnvPaymentConsumerGroup, DefaultPaymentConsumerGroup),

		Log: logger.New(logger.Config{
			Level:     getEnvStr(EnvLogLevel, DefaultLogLevel),
			Format:    logger.JSON,
			AddSource: true,
			Service:   serviceName,
		}),
	}

	return cfg
}

func (cfg *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	if cfg.ReadTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("ReadTimeout must be positive, got: %s", cfg.ReadTimeout))
	}
	if cfg.WriteTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("WriteTimeout must be positive, got: %s", cfg.WriteTimeout))
	}
	if cfg.IdleTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("IdleTimeout must be positive, got: %s", cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("ShutdownTimeout must be positive, got: %s", cfg.ShutdownTimeout))
	}
	if cfg.RequestTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("RequestTimeout must be positive, got: %s", cfg.RequestTimeout))
	}
	if cfg.MaxRequestSize <= 0 {
		errs = append(errs, fmt.Sprintf("MaxRequestSize must be positive, got: %d", cfg.MaxRequestSize))
	}

	if cfg.ReservationTTL <= 0 {
		errs = append(errs, fmt.Sprintf("ReservationTTL must be positive, got: %s", cfg.ReservationTTL))
	}

	if cfg.EventRows <= 0 {
		errs = append(errs, fmt.Sprintf("EventRows must be positive, got: %d", cfg.EventRows))
	}
	if cfg.EventSeatsPerRow <= 0 {
		errs = append(errs, fmt.Sprintf("EventSeatsPerRow must be positive, got: %d", cfg.EventSeatsPerRow))
	}
	if cfg.LargeEventRows <= 0 {
		errs = append(errs, fmt.Sprintf("LargeEventRows must be positive, got: %d", cfg.LargeEventRows))
	}
	if cfg.LargeEventSeatsPerRow <= 0 {
		errs = append(errs, fmt.Sprintf("LargeEventSeatsPerRow must be positive, got: %d", cfg.LargeEventSeatsPerRow))
	}
	if cfg.LargeEventPrefix == "" {
		errs = append(errs, "LargeEventPrefix cannot be empty")
	}
	if !priceRegex.MatchString(cfg.SeatPrice) {
		errs = append(errs, fmt.Sprintf("SeatPrice must be a decimal string like 50.00, got: %s", cfg.SeatPrice))
	}

	if cfg.KafkaEnabled {
		if cfg.PaymentRequestTopic == "" {
			errs = append(errs, "PaymentRequestTopic cannot be empty when Kafka is enabled")
		}
		if cfg.PaymentResultTopic == "" {
			errs = append(errs, "PaymentResultTopic cannot be empty when Kafka is enabled")
		}
		if cfg.PaymentConsumerGroup == "" {
			errs = append(errs, "PaymentConsumerGroup cannot be empty when Kafka is enabled")
		}
	}

	if len(errs) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, e := range errs {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, e)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"port", cfg.Port,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
		"request_timeout", cfg.RequestTimeout,
		"max_request_size", cfg.MaxRequestSize,
		"reservation_ttl", cfg.ReservationTTL,
		"event_rows", cfg.EventRows,
		"event_seats_per_row", cfg.EventSeatsPerRow,
		"large_event_rows", cfg.LargeEventRows,
		"large_event_seats_per_row", cfg.LargeEventSeatsPerRow,
		"large_event_prefix", cfg.LargeEventPrefix,
		"seat_price", cfg.SeatPrice,
		"kafka_enabled", cfg.KafkaEnabled,
		"payment_request_topic", cfg.PaymentRequestTopic,
		"payment_result_topic", cfg.PaymentResultTopic,
		"payment_consumer_group", cfg.PaymentConsumerGroup,
	)
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func NormalizePaginationLimit(limit int) int {
	if limit <= 0 {
		limit = 10
	} else if limit > DefaultPaginationLimit {
		limit = DefaultPaginationLimit
	}
	return limit
}
