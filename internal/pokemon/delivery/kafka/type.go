package kafka

import (
	"time"
)

// PokemonDeletedMessage - Kafka message for pokemon.deleted
type PokemonDeletedMessage struct {
	EventType     string    `json:"event_type"`
	PokemonID     string    `json:"pokemon_id"`
	Name          string    `json:"name"`
	PokedexNumber int       `json:"pokedex_number"`
	DeletedBy     string    `json:"deleted_by"`
	DeletedAt     time.Time `json:"deleted_at"`
}
