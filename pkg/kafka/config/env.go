package kafkaconfig

const (
	EnvBrokers              = "KAFKA_BROKERS"
	EnvProducerMaxAttempts  = "KAFKA_PRODUCER_MAX_ATTEMPTS"
	EnvProducerBatchTimeout = "KAFKA_PRODUCER_BATCH_TIMEOUT"
	EnvProducerRequireAcks  = "KAFKA_PRODUCER_REQUIRE_ACKS"
	EnvConsumerGroup        = "KAFKA_CONSUMER_GROUP"
	EnvConsumerMinBytes     = "KAFKA_CONSUMER_MIN_BYTES"
	EnvConsumerMaxBytes     = "KAFKA_CONSUMER_MAX_BYTES"
	EnvConsumerMaxWait      = "KAFKA_CONSUMER_MAX_WAIT"
	EnvConsumerMaxRetries   = "KAFKA_CONSUMER_MAX_RETRIES"
)
