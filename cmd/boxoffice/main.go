package main

import (
	"context"

	"tixbox/internal/boxoffice/handler"
	"tixbox/internal/boxoffice/store"
	"tixbox/internal/boxoffice/validator"
	"tixbox/internal/payments"
	"tixbox/pkg/app"
	"tixbox/pkg/config"
	"tixbox/pkg/kafka"
	kafkaconfig "tixbox/pkg/kafka/config"
	kafkamiddleware "tixbox/pkg/kafka/middleware"
)

const ServiceName = "boxoffice"

func main() {
	cfg := config.Load(ServiceName)

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal("Invalid configuration", "error", err)
	}

	cfg.LogConfiguration()

	cfg.Log.Info("Starting Box Office service")

	bookingStore := store.New(cfg)
	serverApp := app.New(cfg)
	serverApp.OnShutdown("booking store", bookingStore.Close)

	publisher := initPaymentFlow(cfg, serverApp, bookingStore)

	requestValidator := validator.New(cfg.Log)
	apiHandler := handler.New(bookingStore, publisher, requestValidator, cfg.Log)
	healthHandler := handler.NewHealthHandler(cfg.Log)

	serverApp.SetApp(apiHandler, healthHandler)
	serverApp.Run()
}

// initPaymentFlow wires the Kafka producer and result consumer when the
// async payment flow is enabled. Returns nil otherwise; the handler
// then initiates payments without publishing requests.
func initPaymentFlow(cfg *config.Config, serverApp *app.Application, bookingStore store.Store) payments.Publisher {
	if !cfg.KafkaEnabled {
		cfg.Log.Info("Kafka disabled, payment results accepted over HTTP callbacks only")
		return nil
	}

	kafkaCfg, err := kafkaconfig.Load()
	if err != nil {
		cfg.Log.Fatal("Invalid Kafka configuration", "error", err)
	}

	producer, err := kafka.NewProducer(kafkaCfg, cfg.PaymentRequestTopic, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to create payment request producer", "error", err)
	}

	resultHandler := payments.NewResultHandler(bookingStore, cfg.Log)
	consumer, err := kafka.NewConsumer(
		kafkaCfg,
		cfg.PaymentResultTopic,
		cfg.PaymentConsumerGroup,
		cfg.PaymentResultDLQ,
		resultHandler,
		cfg.Log,
	)
	if err != nil {
		cfg.Log.Fatal("Failed to create payment result consumer", "error", err)
	}
	consumer.Use(kafkamiddleware.Logging(cfg.Log))

	consumerCtx, stopConsumer := context.WithCancel(context.Background())
	go func() {
		if err := consumer.Start(consumerCtx); err != nil {
			cfg.Log.Error("Payment result consumer stopped", "error", err)
		}
	}()

	serverApp.OnShutdown("payment result consumer", func() {
		stopConsumer()
		if err := consumer.Close(); err != nil {
			cfg.Log.Error("Failed to close consumer", "error", err)
		}
	})
	serverApp.OnShutdown("payment request producer", func() {
		if err := producer.Close(); err != nil {
			cfg.Log.Error("Failed to close producer", "error", err)
		}
	})

	cfg.Log.Info("Payment flow wired",
		"request_topic", cfg.PaymentRequestTopic,
		"result_topic", cfg.PaymentResultTopic,
		"consumer_group", cfg.PaymentConsumerGroup,
	)
	return payments.NewKafkaPublisher(producer, cfg.SeatPrice, cfg.Log)
}
