package usecase

import (
	"pokedex-srv/internal/model"
	"pokedex-srv/internal/pokemon"
)

func authorizeAdmin(sc *model.Scope) error {
	if sc == nil {
		return pokemon.ErrUnauthorized
	}
	if !sc.IsAdmin {
		return pokemon.ErrForbidden
	}
	return nil
}
