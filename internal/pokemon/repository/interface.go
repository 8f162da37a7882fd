package repository

import (
	"context"

	"pokedex-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	// ListPokemon returns up to opt.Limit rows ordered by pokedex number.
	ListPokemon(ctx context.Context, opt ListOptions) ([]model.Pokemon, error)
	CountPokemon(ctx context.Context) (int64, error)
	GetPokemonByID(ctx context.Context, id string, include Include) (model.Pokemon, error)
	ListPokemonMoves(ctx context.Context, pokemonID string) ([]model.PokemonMove, error)
	DeletePokemon(ctx context.Context, id string) error
}

//go:generate mockery --name CacheRepository
type CacheRepository interface {
	GetPokemon(ctx context.Context, id string) (model.Pokemon, error)
	SavePokemon(ctx context.Context, p model.Pokemon) error
	GetPokemonMoves(ctx context.Context, pokemonID string) ([]model.PokemonMove, error)
	SavePokemonMoves(ctx context.Context, pokemonID string, moves []model.PokemonMove) error
	InvalidatePokemon(ctx context.Context, id string) error
}
