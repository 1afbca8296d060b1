package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "utsavam"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort = "8080"

	DefaultHallRegistryURL     = "http://localhost:8081"
	DefaultHallRegistryTimeout = 5 * time.Second

	DefaultPaymentCurrency = "INR"

	DefaultBookingEventsTopic = "booking-events"

	DefaultOTPTTL    = 5 * time.Minute
	DefaultOTPLength = 6

	DefaultSessionTTL = 24 * time.Hour

	DefaultLockTTL           = 15 * time.Second
	DefaultLockWaitTimeout   = 3 * time.Second
	DefaultLockRetryInterval = 50 * time.Millisecond

	DefaultRateLimitRequests = 10
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultPaginationLimit = 100
)
