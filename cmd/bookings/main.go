package main

import (
	"os"

	"utsavam/internal/bookings/handler"
	"utsavam/internal/bookings/repository"
	"utsavam/internal/bookings/service"
	"utsavam/internal/bookings/validator"
	"utsavam/internal/notifications"
	"utsavam/pkg/app"
	"utsavam/pkg/client"
	"utsavam/pkg/config"
	"utsavam/pkg/kafka"
	kafkaconfig "utsavam/pkg/kafka/config"
	kafkamiddleware "utsavam/pkg/kafka/middleware"
)

const ServiceName = "bookings"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	cfg.Log.Info("Starting Bookings service")
	bookingService, cleanup := initServices(cfg)
	defer cleanup()

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(handler.NewBookingHandler(bookingService, cfg.Log))
	serverApp.Run()
}

func initServices(cfg *config.Config) (service.BookingService, func()) {
	bookingValidator := validator.NewBookingValidator(cfg.Log)
	bookingRepo := repository.NewMongoBookingRepository(cfg)
	lockRepo := repository.NewHallLockRepository(cfg)
	registry := client.NewHallRegistryClient(cfg.HallRegistryURL, cfg.HallRegistryTimeout)

	publisher, cleanup := initPublisher(cfg)

	bookingService := service.NewBookingService(
		bookingRepo,
		lockRepo,
		bookingValidator,
		registry,
		initPayments(cfg),
		publisher,
		cfg,
	)

	cfg.Log.Info("Booking service initialized", "database", cfg.MongoDatabaseName)
	return bookingService, cleanup
}

func initPayments(cfg *config.Config) client.PaymentClient {
	if cfg.RazorpayKeyID == "" || cfg.RazorpayKeySecret == "" {
		cfg.Log.Warn("Payment gateway not configured, online payments disabled")
		return client.DisabledPaymentClient{}
	}
	return client.NewRazorpayClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
}

// initPublisher wires the event bus when brokers are configured and
// falls back to a no-op so local setups run without Kafka.
func initPublisher(cfg *config.Config) (notifications.Publisher, func()) {
	if os.Getenv(kafkaconfig.EnvBrokers) == "" {
		cfg.Log.Warn("Kafka brokers not configured, booking events disabled")
		return notifications.NoopPublisher{}, func() {}
	}

	kafkaCfg, err := kafkaconfig.Load()
	if err != nil {
		cfg.Log.Fatal("Invalid Kafka configuration", "error", err)
	}

	producer, err := kafka.NewProducer(kafkaCfg, cfg.BookingEventsTopic, cfg.BookingEventsTopic+".dlq")
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}
	producer.Use(kafkamiddleware.LoggingProducerMiddleware(cfg.Log))

	cleanup := func() {
		if err := producer.Close(); err != nil {
			cfg.Log.Error("Failed to close Kafka producer", "error", err)
		}
	}
	return notifications.NewKafkaPublisher(producer, ServiceName), cleanup
}
