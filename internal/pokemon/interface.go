package pokemon

import (
	"context"

	"pokedex-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, input DetailInput) (model.Pokemon, error)
	ListMoves(ctx context.Context, input ListMovesInput) ([]model.PokemonMove, error)
	// Delete removes a Pokémon. sc is the acting principal; nil means unauthenticated.
	Delete(ctx context.Context, sc *model.Scope, input DeleteInput) error
	// EvictDeleted drops the cached detail and moves of a Pokémon deleted elsewhere.
	EvictDeleted(ctx context.Context, input EvictInput) error
}

// Publisher emits catalog change events.
//
//go:generate mockery --name Publisher
type Publisher interface {
	PublishPokemonDeleted(ctx context.Context, event PokemonDeletedEvent) error
}
