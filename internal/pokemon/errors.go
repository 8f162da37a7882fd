package pokemon

import "errors"

// Domain errors
var (
	ErrPokemonNotFound = errors.New("pokemon: not found")
	ErrUnauthorized    = errors.New("pokemon: user not authenticated")
	ErrForbidden       = errors.New("pokemon: admin privileges required")
	ErrInvalidID       = errors.New("pokemon: id is required")

	// ErrFetchFailed and ErrDeleteFailed hide store failures from callers.
	ErrFetchFailed  = errors.New("pokemon: failed to fetch pokemon")
	ErrDeleteFailed = errors.New("pokemon: failed to delete pokemon")
	ErrEvictFailed  = errors.New("pokemon: failed to evict cached pokemon")
)
