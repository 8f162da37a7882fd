package pokemon

import (
	"time"

	"pokedex-srv/internal/model"
	"pokedex-srv/pkg/paginator"
)

type ListInput struct {
	AfterID      *int
	Limit        int
	IncludeMoves bool
}

type ListOutput = paginator.Connection[model.Pokemon]

type DetailInput struct {
	ID string
}

type ListMovesInput struct {
	PokemonID string
}

type DeleteInput struct {
	ID string
}

// EvictInput names a deleted Pokémon whose cache entries must go.
type EvictInput struct {
	ID string
}

type PokemonDeletedEvent struct {
	ID            string
	Name          string
	PokedexNumber int
	DeletedBy     string
	DeletedAt     time.Time
}
