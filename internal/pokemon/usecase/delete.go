package usecase

import (
	"context"
	"errors"

	"pokedex-srv/internal/model"
	"pokedex-srv/internal/pokemon"
	"pokedex-srv/internal/pokemon/repository"
)

// Delete - Admin-only removal of a Pokémon and its relations.
// Checks run in order: principal, admin role, existence. The store is untouched
// unless all three pass.
func (uc *implUseCase) Delete(ctx context.Context, sc *model.Scope, input pokemon.DeleteInput) error {
	if err := authorizeAdmin(sc); err != nil {
		return err
	}

	p, err := uc.repo.GetPokemonByID(ctx, input.ID, repository.Include{})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return pokemon.ErrPokemonNotFound
		}
		uc.l.Errorf(ctx, "pokemon.usecase.Delete: GetPokemonByID failed: %v", err)
		return pokemon.ErrDeleteFailed
	}

	if err := uc.repo.DeletePokemon(ctx, input.ID); err != nil {
		// Lost a race with a concurrent delete.
		if errors.Is(err, repository.ErrNotFound) {
			return pokemon.ErrPokemonNotFound
		}
		uc.l.Errorf(ctx, "pokemon.usecase.Delete: DeletePokemon failed: %v", err)
		return pokemon.ErrDeleteFailed
	}

	uc.l.Infof(ctx, "pokemon.usecase.Delete: %s (#%d) deleted by %s", p.Name, p.PokedexNumber, sc.UserID)

	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.InvalidatePokemon(ctx, input.ID); err != nil {
			uc.l.Warnf(ctx, "pokemon.usecase.Delete: InvalidatePokemon failed: %v", err)
		}
	}

	if uc.publisher != nil {
		event := pokemon.PokemonDeletedEvent{
			ID:            p.ID,
			Name:          p.Name,
			PokedexNumber: p.PokedexNumber,
			DeletedBy:     sc.UserID,
			DeletedAt:     uc.now(),
		}
		if err := uc.publisher.PublishPokemonDeleted(ctx, event); err != nil {
			uc.l.Warnf(ctx, "pokemon.usecase.Delete: PublishPokemonDeleted failed: %v", err)
		}
	}

	return nil
}
