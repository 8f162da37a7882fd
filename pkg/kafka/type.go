package kafka

import "github.com/IBM/sarama"

// Config holds configuration for the Kafka producer.
type Config struct {
	Brokers  []string
	Topic    string
	ClientID string
	// Idempotent enables exactly-once delivery per partition, which requires acks from all replicas.
	Idempotent bool
}

// Message is a record to publish on the configured topic.
type Message struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}

type producerImpl struct {
	producer sarama.SyncProducer
	topic    string
}
