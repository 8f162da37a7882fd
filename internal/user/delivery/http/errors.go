package http

import (
	"errors"
	"net/http"

	"pokedex-srv/internal/user"
	pkgErrors "pokedex-srv/pkg/errors"
)

var (
	errInvalidBody        = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	errInvalidUsername    = pkgErrors.NewHTTPError(http.StatusBadRequest, "Username must be at least 3 characters")
	errUsernameTaken      = pkgErrors.NewHTTPError(http.StatusConflict, "Username already exists")
	errInvalidCredentials = pkgErrors.NewHTTPError(http.StatusUnauthorized, "Invalid username or password")
	errRegisterFailed     = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to register user")
	errLoginFailed        = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to login")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, user.ErrInvalidUsername):
		return errInvalidUsername
	case errors.Is(err, user.ErrUsernameTaken):
		return errUsernameTaken
	case errors.Is(err, user.ErrInvalidCredentials):
		return errInvalidCredentials
	case errors.Is(err, user.ErrRegisterFailed):
		return errRegisterFailed
	case errors.Is(err, user.ErrLoginFailed):
		return errLoginFailed
	default:
		return err
	}
}
