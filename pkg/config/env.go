package config

const (
	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"

	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvRedisURL = "REDIS_URL"

	EnvHallRegistryURL     = "HALL_REGISTRY_URL"
	EnvHallRegistryTimeout = "HALL_REGISTRY_TIMEOUT"

	EnvRazorpayKeyID     = "RAZORPAY_KEY_ID"
	EnvRazorpayKeySecret = "RAZORPAY_KEY_SECRET"
	EnvPaymentCurrency   = "PAYMENT_CURRENCY"

	EnvBookingEventsTopic = "BOOKING_EVENTS_TOPIC"

	EnvOTPTTL    = "OTP_TTL"
	EnvOTPLength = "OTP_LENGTH"

	EnvSessionKey = "SESSION_KEY"
	EnvSessionTTL = "SESSION_TTL"

	EnvLockTTL           = "HALL_LOCK_TTL"
	EnvLockWaitTimeout   = "HALL_LOCK_WAIT_TIMEOUT"
	EnvLockRetryInterval = "HALL_LOCK_RETRY_INTERVAL"

	EnvRateLimitRequests = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow   = "RATE_LIMIT_WINDOW"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvIdempotencyTTL = "IDEMPOTENCY_TTL"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
)
