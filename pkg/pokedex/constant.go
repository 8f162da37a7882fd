package pokedex

import "time"

const (
	// DefaultBaseURL is the API address used when none is configured.
	DefaultBaseURL = "http://localhost:8080/api/v1"
	// DefaultPageSize matches the page size of the web client.
	DefaultPageSize = 25
	// DefaultTimeout bounds a single request.
	DefaultTimeout = 10 * time.Second

	// ListKeyPrefix is shared by every cached list, whatever its page size.
	ListKeyPrefix = "pokemon:list:"
	detailKeyPrefix = "pokemon:detail:"
	movesKeyPrefix  = "pokemon:moves:"
)
