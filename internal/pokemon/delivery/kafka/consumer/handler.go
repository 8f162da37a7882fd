package consumer

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"

	"pokedex-srv/internal/pokemon"
	kafkaDelivery "pokedex-srv/internal/pokemon/delivery/kafka"
	pkgKafka "pokedex-srv/pkg/kafka"
)

type pokemonEventsHandler struct {
	consumer *implConsumer
}

func (h *pokemonEventsHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *pokemonEventsHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim marks a message only once it has been applied. A failed
// eviction stays unmarked and is redelivered after the next rebalance.
func (h *pokemonEventsHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	ctx := session.Context()
	for msg := range claim.Messages() {
		if err := h.consumer.handlePokemonEvent(ctx, msg); err != nil {
			h.consumer.l.Errorf(ctx, "pokemon.delivery.kafka.consumer.ConsumeClaim: Failed to process message at offset %d: %v", msg.Offset, err)
			continue
		}
		session.MarkMessage(msg, "")
	}
	return nil
}

func (c *implConsumer) handlePokemonEvent(ctx context.Context, msg *sarama.ConsumerMessage) error {
	eventType := pkgKafka.Header(msg, pkgKafka.HeaderEventType)
	if eventType != kafkaDelivery.EventTypePokemonDeleted {
		c.l.Debugf(ctx, "pokemon.delivery.kafka.consumer.handlePokemonEvent: skipping event type %q", eventType)
		return nil
	}

	var body kafkaDelivery.PokemonDeletedMessage
	if err := json.Unmarshal(msg.Value, &body); err != nil {
		// A malformed payload never becomes valid on redelivery.
		c.l.Warnf(ctx, "pokemon.delivery.kafka.consumer.handlePokemonEvent: dropping malformed %s at offset %d: %v", eventType, msg.Offset, err)
		return nil
	}
	if body.PokemonID == "" {
		body.PokemonID = string(msg.Key)
	}

	if err := c.uc.EvictDeleted(ctx, pokemon.EvictInput{ID: body.PokemonID}); err != nil {
		return err
	}
	c.l.Infof(ctx, "Evicted cached pokemon %s after %s", body.PokemonID, eventType)
	return nil
}
