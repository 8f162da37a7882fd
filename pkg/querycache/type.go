package querycache

import (
	"context"
	"sync"
	"time"
)

// Key identifies a cached query, e.g. "pokemon:list:25".
type Key string

// Fetcher loads a fresh value for a key. current is the cached value, or nil.
type Fetcher func(ctx context.Context, current any) (any, error)

// Cloner is implemented by cached values that need a deep copy when snapshotted.
type Cloner interface {
	Clone() any
}

// Cache is the single owner of cached query entries. Values stored in it are
// never mutated in place: every change replaces the value.
type Cache struct {
	mu       sync.Mutex
	entries  map[Key]*entry
	fetchers map[Key]Fetcher
	gens     map[Key]uint64
	inflight map[Key]map[uint64]context.CancelFunc
	locks    map[Key]*keyLock
	nextID   uint64
	now      func() time.Time
}

// keyLock serializes mutations of one key. refs counts holders and waiters.
type keyLock struct {
	mu   sync.Mutex
	refs int
}

type entry struct {
	data      any
	stale     bool
	updatedAt time.Time
}

// Snapshot is an immutable copy of a set of entries taken before a mutation.
type Snapshot struct {
	entries map[Key]snapshotEntry
}

type snapshotEntry struct {
	present   bool
	data      any
	stale     bool
	updatedAt time.Time
}
