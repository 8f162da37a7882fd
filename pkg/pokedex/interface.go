package pokedex

import (
	"context"
)

// API is the Pokédex REST API.
//
//go:generate mockery --name API
type API interface {
	ListPokemon(ctx context.Context, params ListParams) (PokemonPage, error)
	GetPokemon(ctx context.Context, id string) (Pokemon, error)
	ListMoves(ctx context.Context, id string) ([]Move, error)
	DeletePokemon(ctx context.Context, id string) error
	Login(ctx context.Context, username, password string) (Session, error)
	Register(ctx context.Context, username, password string) (Session, error)
}
