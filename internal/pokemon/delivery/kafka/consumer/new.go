package consumer

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"

	"pokedex-srv/config"
	"pokedex-srv/internal/pokemon"
	pkgKafka "pokedex-srv/pkg/kafka"
	"pokedex-srv/pkg/log"
)

// Consumer re-applies catalog events published by any API instance.
type Consumer interface {
	ConsumePokemonEvents(ctx context.Context) error
	Close() error
}

// Config holds the configuration for the pokemon consumer
type Config struct {
	Logger      log.Logger
	KafkaConfig config.KafkaConfig
	UseCase     pokemon.UseCase
}

type implConsumer struct {
	l           log.Logger
	kafkaConfig config.KafkaConfig
	uc          pokemon.UseCase

	pokemonEventsGroup sarama.ConsumerGroup
}

// New creates a new pokemon consumer
func New(cfg Config) (Consumer, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.UseCase == nil {
		return nil, fmt.Errorf("usecase is required")
	}
	if len(cfg.KafkaConfig.Brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers are required")
	}
	if cfg.KafkaConfig.Topic == "" {
		return nil, fmt.Errorf("kafka topic is required")
	}

	return &implConsumer{
		l:           cfg.Logger,
		kafkaConfig: cfg.KafkaConfig,
		uc:          cfg.UseCase,
	}, nil
}

// Close closes all consumer groups
func (c *implConsumer) Close() error {
	if c.pokemonEventsGroup != nil {
		if err := c.pokemonEventsGroup.Close(); err != nil {
			return fmt.Errorf("failed to close pokemon events group: %w", err)
		}
	}
	return nil
}

func (c *implConsumer) createConsumerGroup() (sarama.ConsumerGroup, error) {
	return pkgKafka.NewConsumerGroup(pkgKafka.ConsumerConfig{
		Brokers:  c.kafkaConfig.Brokers,
		GroupID:  c.kafkaConfig.GroupID,
		ClientID: c.kafkaConfig.ClientID,
	})
}
