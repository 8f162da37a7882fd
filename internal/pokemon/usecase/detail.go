package usecase

import (
	"context"
	"errors"

	"pokedex-srv/internal/model"
	"pokedex-srv/internal/pokemon"
	"pokedex-srv/internal/pokemon/repository"
)

// Detail - Fetch one Pokémon with types, abilities and moves.
func (uc *implUseCase) Detail(ctx context.Context, input pokemon.DetailInput) (model.Pokemon, error) {
	if uc.cacheRepo != nil {
		if p, err := uc.cacheRepo.GetPokemon(ctx, input.ID); err == nil {
			return p, nil
		}
	}

	p, err := uc.repo.GetPokemonByID(ctx, input.ID, repository.DetailInclude())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Pokemon{}, pokemon.ErrPokemonNotFound
		}
		uc.l.Errorf(ctx, "pokemon.usecase.Detail: GetPokemonByID failed: %v", err)
		return model.Pokemon{}, pokemon.ErrFetchFailed
	}

	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.SavePokemon(ctx, p); err != nil && !errors.Is(err, repository.ErrDeleted) {
			uc.l.Warnf(ctx, "pokemon.usecase.Detail: SavePokemon failed: %v", err)
		}
	}

	return p, nil
}

// ListMoves - Moves a Pokémon learns, ordered by level.
// An empty result is checked against the catalog so unknown ids are reported as not found.
func (uc *implUseCase) ListMoves(ctx context.Context, input pokemon.ListMovesInput) ([]model.PokemonMove, error) {
	if uc.cacheRepo != nil {
		if moves, err := uc.cacheRepo.GetPokemonMoves(ctx, input.PokemonID); err == nil {
			return moves, nil
		}
	}

	moves, err := uc.repo.ListPokemonMoves(ctx, input.PokemonID)
	if err != nil {
		uc.l.Errorf(ctx, "pokemon.usecase.ListMoves: ListPokemonMoves failed: %v", err)
		return nil, pokemon.ErrFetchFailed
	}

	if len(moves) == 0 {
		if _, err := uc.repo.GetPokemonByID(ctx, input.PokemonID, repository.Include{}); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, pokemon.ErrPokemonNotFound
			}
			uc.l.Errorf(ctx, "pokemon.usecase.ListMoves: GetPokemonByID failed: %v", err)
			return nil, pokemon.ErrFetchFailed
		}
	}

	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.SavePokemonMoves(ctx, input.PokemonID, moves); err != nil && !errors.Is(err, repository.ErrDeleted) {
			uc.l.Warnf(ctx, "pokemon.usecase.ListMoves: SavePokemonMoves failed: %v", err)
		}
	}

	return moves, nil
}
