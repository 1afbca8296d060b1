package main

import (
	"utsavam/internal/vendors/handler"
	"utsavam/internal/vendors/repository"
	"utsavam/internal/vendors/service"
	"utsavam/internal/vendors/validator"
	"utsavam/pkg/app"
	"utsavam/pkg/config"
	"utsavam/pkg/middleware"
	"utsavam/pkg/otp"
	"utsavam/pkg/token"
)

const ServiceName = "vendors"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	cfg.Log.Info("Starting Vendors service")
	vendorService := initServices(cfg)

	// OTP endpoints are throttled per phone to cap SMS volume.
	phoneRateLimiter := middleware.NewPhoneRateLimiter(
		cfg.RateLimitRequests,
		cfg.RateLimitWindow,
		middleware.BodyPhoneExtractor,
		cfg.Log,
	)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		handler.NewVendorHandler(vendorService, cfg.Log),
		app.WithPhoneRateLimiter(phoneRateLimiter),
	)
	serverApp.Run()
}

func initServices(cfg *config.Config) service.VendorService {
	if cfg.SessionKey == "" {
		cfg.Log.Fatal("SESSION_KEY is required for the vendors service")
	}
	sealer, err := token.NewSealer(cfg.SessionKey)
	if err != nil {
		cfg.Log.Fatal("Invalid session key", "error", err)
	}

	vendorValidator := validator.NewVendorValidator(cfg.Log)
	vendorRepo := repository.NewMongoVendorRepository(cfg)
	cascadeRepo := repository.NewMongoCascadeRepository(cfg)

	vendorService := service.NewVendorService(
		vendorRepo,
		cascadeRepo,
		vendorValidator,
		initCodeStore(cfg),
		sealer,
		cfg,
	)

	cfg.Log.Info("Vendor service initialized", "database", cfg.MongoDatabaseName)
	return vendorService
}

// initCodeStore prefers Redis so codes survive restarts and are shared
// across replicas; the in-memory store covers local development.
func initCodeStore(cfg *config.Config) otp.Store {
	if cfg.RedisURL == "" {
		cfg.Log.Warn("Redis not configured, using in-memory OTP store")
		return otp.NewMemoryStore()
	}

	cfg.SetRedis()
	return otp.NewRedisStore(cfg.Client.Redis)
}
