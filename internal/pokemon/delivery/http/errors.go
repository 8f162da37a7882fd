package http

import (
	"errors"
	"net/http"

	"pokedex-srv/internal/pokemon"
	pkgErrors "pokedex-srv/pkg/errors"
)

var (
	errInvalidID     = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid Pokemon ID")
	errInvalidCursor = pkgErrors.NewHTTPError(http.StatusBadRequest, "afterId must be an integer")
	errInvalidLimit  = pkgErrors.NewHTTPError(http.StatusBadRequest, "limit must be an integer")
	errInvalidFlag   = pkgErrors.NewHTTPError(http.StatusBadRequest, "includeMoves must be a boolean")

	errPokemonNotFound = pkgErrors.NewHTTPError(http.StatusNotFound, "Pokemon not found")
	errUnauthorized    = pkgErrors.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	errForbidden       = pkgErrors.NewHTTPError(http.StatusForbidden, "Admin privileges required")
	errFetchFailed     = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to fetch Pokemon")
	errDeleteFailed    = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to delete Pokemon")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, pokemon.ErrPokemonNotFound):
		return errPokemonNotFound
	case errors.Is(err, pokemon.ErrUnauthorized):
		return errUnauthorized
	case errors.Is(err, pokemon.ErrForbidden):
		return errForbidden
	case errors.Is(err, pokemon.ErrFetchFailed):
		return errFetchFailed
	case errors.Is(err, pokemon.ErrDeleteFailed):
		return errDeleteFailed
	default:
		return err
	}
}
