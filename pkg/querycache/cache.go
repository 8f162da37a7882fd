package querycache

import (
	"context"
	"slices"
	"sort"
	"strings"
	"time"
)

// New creates an empty Cache.
func New() *Cache {
	return &Cache{
		entries:  map[Key]*entry{},
		fetchers: map[Key]Fetcher{},
		gens:     map[Key]uint64{},
		inflight: map[Key]map[uint64]context.CancelFunc{},
		locks:    map[Key]*keyLock{},
		now:      time.Now,
	}
}

// Register sets the fetcher used by Fetch and Invalidate for key.
func (c *Cache) Register(key Key, f Fetcher) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fetchers[key] = f
}

// Get returns the cached value for key.
func (c *Cache) Get(key Key) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	return e.data, true
}

// IsStale reports whether key is missing or was invalidated without a
// successful refetch since.
func (c *Cache) IsStale(key Key) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	return !ok || e.stale
}

// Keys returns the cached keys with the given prefix, sorted.
func (c *Cache) Keys(prefix string) []Key {
	c.mu.Lock()
	defer c.mu.Unlock()
	var keys []Key
	for k := range c.entries {
		if strings.HasPrefix(string(k), prefix) {
			keys = append(keys, k)
		}
	}
	sortKeys(keys)
	return keys
}

// Set stores v under key. Any fetch of key in flight is superseded.
func (c *Cache) Set(key Key, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.write(key, v)
}

// Apply replaces the value of key with fn(current). It is a no-op returning
// false when key is not cached.
func (c *Cache) Apply(key Key, fn func(current any) any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return false
	}
	c.gens[key]++
	e.data = fn(e.data)
	e.updatedAt = c.now()
	return true
}

// Remove drops keys from the cache. Fetches in flight are superseded.
func (c *Cache) Remove(keys ...Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		c.gens[k]++
		delete(c.entries, k)
		c.prune(k)
	}
}

// Cancel aborts in-flight fetches of keys. Their results, if they still
// arrive, are discarded.
func (c *Cache) Cancel(keys ...Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		c.gens[k]++
		for _, cancel := range c.inflight[k] {
			cancel()
		}
		c.prune(k)
	}
}

// Snapshot copies the current state of keys, including their absence.
func (c *Cache) Snapshot(keys ...Key) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := Snapshot{entries: make(map[Key]snapshotEntry, len(keys))}
	for _, k := range keys {
		e, ok := c.entries[k]
		if !ok {
			s.entries[k] = snapshotEntry{}
			continue
		}
		s.entries[k] = snapshotEntry{
			present:   true,
			data:      clone(e.data),
			stale:     e.stale,
			updatedAt: e.updatedAt,
		}
	}
	return s
}

// Restore puts every entry of s back exactly as it was snapshotted.
func (c *Cache) Restore(s Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, se := range s.entries {
		c.gens[k]++
		if !se.present {
			delete(c.entries, k)
			c.prune(k)
			continue
		}
		c.entries[k] = &entry{data: clone(se.data), stale: se.stale, updatedAt: se.updatedAt}
	}
}

// Keys returns the keys captured by the snapshot, sorted.
func (s Snapshot) Keys() []Key {
	keys := make([]Key, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	sortKeys(keys)
	return keys
}

// Lock acquires the mutation locks of keys in a fixed order and returns the
// function releasing them. A key's lock is dropped once nobody holds or waits for it.
func (c *Cache) Lock(keys ...Key) (unlock func()) {
	sorted := append([]Key(nil), keys...)
	sortKeys(sorted)
	sorted = slices.Compact(sorted)

	c.mu.Lock()
	held := make([]*keyLock, len(sorted))
	for i, k := range sorted {
		kl, ok := c.locks[k]
		if !ok {
			kl = &keyLock{}
			c.locks[k] = kl
		}
		kl.refs++
		held[i] = kl
	}
	c.mu.Unlock()

	for _, kl := range held {
		kl.mu.Lock()
	}
	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].mu.Unlock()
		}

		c.mu.Lock()
		defer c.mu.Unlock()
		for i, k := range sorted {
			held[i].refs--
			if held[i].refs == 0 {
				delete(c.locks, k)
			}
		}
	}
}

// prune forgets the bookkeeping of a key that is neither cached nor being
// fetched. No fetch holds its generation, so restarting it from zero is safe.
func (c *Cache) prune(key Key) {
	if _, ok := c.entries[key]; ok {
		return
	}
	if len(c.inflight[key]) > 0 {
		return
	}
	delete(c.inflight, key)
	delete(c.gens, key)
}

func (c *Cache) write(key Key, v any) {
	c.gens[key]++
	c.entries[key] = &entry{data: v, updatedAt: c.now()}
}

func clone(v any) any {
	if cl, ok := v.(Cloner); ok {
		return cl.Clone()
	}
	return v
}

func sortKeys(keys []Key) {
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
}
