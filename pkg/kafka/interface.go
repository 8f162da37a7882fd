package kafka

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
)

// IProducer publishes records to a single topic.
// Implementations are safe for concurrent use.
type IProducer interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// NewProducer creates a synchronous Kafka producer.
func NewProducer(cfg Config) (IProducer, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	sp, err := sarama.NewSyncProducer(cfg.Brokers, saramaConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}
	return &producerImpl{producer: sp, topic: cfg.Topic}, nil
}
