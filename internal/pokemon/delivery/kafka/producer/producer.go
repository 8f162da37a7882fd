package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"pokedex-srv/internal/pokemon"
	kafkaDelivery "pokedex-srv/internal/pokemon/delivery/kafka"
	pkgKafka "pokedex-srv/pkg/kafka"
)

// PublishPokemonDeleted publishes a pokemon.deleted event keyed by the Pokémon id.
func (p *implProducer) PublishPokemonDeleted(ctx context.Context, event pokemon.PokemonDeletedEvent) error {
	msg := kafkaDelivery.PokemonDeletedMessage{
		EventType:     kafkaDelivery.EventTypePokemonDeleted,
		PokemonID:     event.ID,
		Name:          event.Name,
		PokedexNumber: event.PokedexNumber,
		DeletedBy:     event.DeletedBy,
		DeletedAt:     event.DeletedAt,
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal pokemon deleted event: %w", err)
	}

	err = p.producer.Publish(ctx, pkgKafka.Message{
		Key:     []byte(event.ID),
		Value:   body,
		Headers: map[string]string{pkgKafka.HeaderEventType: kafkaDelivery.EventTypePokemonDeleted},
	})
	if err != nil {
		return fmt.Errorf("failed to publish pokemon deleted event: %w", err)
	}

	p.l.Infof(ctx, "Published %s for pokemon %s", kafkaDelivery.EventTypePokemonDeleted, event.ID)
	return nil
}
