package usecase

import (
	"context"
	"fmt"

	"pokedex-srv/internal/pokemon"
)

// EvictDeleted - Drop the cached detail and moves of a Pokémon deleted by any
// instance. It repeats the invalidation Delete already attempted, so a Redis
// error there is repaired when the event is consumed.
func (uc *implUseCase) EvictDeleted(ctx context.Context, input pokemon.EvictInput) error {
	if input.ID == "" {
		return pokemon.ErrInvalidID
	}
	if uc.cacheRepo == nil {
		return nil
	}

	if err := uc.cacheRepo.InvalidatePokemon(ctx, input.ID); err != nil {
		uc.l.Errorf(ctx, "pokemon.usecase.EvictDeleted: InvalidatePokemon failed: %v", err)
		return fmt.Errorf("%w: %v", pokemon.ErrEvictFailed, err)
	}
	return nil
}
