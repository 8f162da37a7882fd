package querycache

import "errors"

var (
	// ErrSuperseded is returned by Fetch when the entry was written or
	// cancelled while the fetch was in flight. The result was discarded.
	ErrSuperseded = errors.New("querycache: fetch result superseded")
	// ErrNoFetcher is returned by Fetch when no fetcher is registered for the key.
	ErrNoFetcher = errors.New("querycache: no fetcher registered")
)
