package querycache

import (
	"context"
	"errors"
)

// Fetch runs the registered fetcher of key and stores its result.
func (c *Cache) Fetch(ctx context.Context, key Key) (any, error) {
	c.mu.Lock()
	f, ok := c.fetchers[key]
	c.mu.Unlock()
	if !ok {
		return nil, ErrNoFetcher
	}
	return c.FetchWith(ctx, key, f)
}

// FetchWith runs f and stores its result under key, unless the entry was
// written, removed or cancelled while f ran. In that case the result is
// dropped and ErrSuperseded is returned.
func (c *Cache) FetchWith(ctx context.Context, key Key, f Fetcher) (any, error) {
	fctx, cancel := context.WithCancel(ctx)
	defer cancel()

	c.mu.Lock()
	gen := c.gens[key]
	c.nextID++
	id := c.nextID
	if c.inflight[key] == nil {
		c.inflight[key] = map[uint64]context.CancelFunc{}
	}
	c.inflight[key][id] = cancel
	var current any
	if e, ok := c.entries[key]; ok {
		current = e.data
	}
	c.mu.Unlock()

	v, err := f(fctx, current)

	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.inflight[key], id)
	defer c.prune(key)

	if c.gens[key] != gen {
		return nil, ErrSuperseded
	}
	if err != nil {
		return nil, err
	}
	c.write(key, v)
	return v, nil
}

// Invalidate marks keys stale and refetches the ones with a registered
// fetcher. It returns the first refetch error; stale entries stay stale.
func (c *Cache) Invalidate(ctx context.Context, keys ...Key) error {
	var firstErr error
	for _, k := range keys {
		c.mu.Lock()
		if e, ok := c.entries[k]; ok {
			e.stale = true
		}
		_, hasFetcher := c.fetchers[k]
		c.mu.Unlock()

		if !hasFetcher {
			continue
		}
		_, err := c.Fetch(ctx, k)
		if err != nil && !errors.Is(err, ErrSuperseded) && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
