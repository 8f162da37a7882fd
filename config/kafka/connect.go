package kafka

import (
	"fmt"
	"sync"

	"pokedex-srv/config"
	"pokedex-srv/pkg/kafka"
)

var (
	mu       sync.Mutex
	instance kafka.IProducer
)

// Connect returns the process-wide producer. With no brokers configured it
// returns (nil, nil): event publishing is optional.
func Connect(cfg config.KafkaConfig) (kafka.IProducer, error) {
	mu.Lock()
	defer mu.Unlock()

	if len(cfg.Brokers) == 0 {
		return nil, nil
	}
	if instance != nil {
		return instance, nil
	}

	p, err := kafka.NewProducer(kafka.Config{
		Brokers:    cfg.Brokers,
		Topic:      cfg.Topic,
		ClientID:   cfg.ClientID,
		Idempotent: cfg.Idempotent,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Kafka producer: %w", err)
	}

	instance = p
	return instance, nil
}

// Disconnect flushes and closes the producer opened by Connect.
func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		return nil
	}
	err := instance.Close()
	instance = nil
	return err
}
