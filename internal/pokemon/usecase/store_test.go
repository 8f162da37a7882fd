package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"pokedex-srv/internal/model"
	"pokedex-srv/internal/pokemon/repository"
	pkgRedis "pokedex-srv/pkg/redis"
)

// memoryStore is an in-memory PostgresRepository ordered by pokedex number.
type memoryStore struct {
	mu       sync.Mutex
	pokemons []model.Pokemon
	deletes  int
}

func newMemoryStore(numbers ...int) *memoryStore {
	s := &memoryStore{}
	for _, n := range numbers {
		s.pokemons = append(s.pokemons, model.Pokemon{
			ID:            fmt.Sprintf("id-%d", n),
			Name:          fmt.Sprintf("pokemon-%d", n),
			PokedexNumber: n,
		})
	}
	sort.Slice(s.pokemons, func(i, j int) bool {
		return s.pokemons[i].PokedexNumber < s.pokemons[j].PokedexNumber
	})
	return s
}

func (s *memoryStore) ListPokemon(_ context.Context, opt repository.ListOptions) ([]model.Pokemon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []model.Pokemon{}
	for _, p := range s.pokemons {
		if opt.AfterPokedexNumber != nil && p.PokedexNumber <= *opt.AfterPokedexNumber {
			continue
		}
		if opt.Limit > 0 && len(out) == opt.Limit {
			break
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *memoryStore) CountPokemon(context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.pokemons)), nil
}

func (s *memoryStore) GetPokemonByID(_ context.Context, id string, _ repository.Include) (model.Pokemon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.pokemons {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Pokemon{}, repository.ErrNotFound
}

func (s *memoryStore) ListPokemonMoves(context.Context, string) ([]model.PokemonMove, error) {
	return []model.PokemonMove{}, nil
}

func (s *memoryStore) DeletePokemon(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.pokemons {
		if p.ID == id {
			s.pokemons = append(s.pokemons[:i], s.pokemons[i+1:]...)
			s.deletes++
			return nil
		}
	}
	return repository.ErrNotFound
}

// parkingStore holds the first GetPokemonByID after it has read the row,
// until release is closed.
type parkingStore struct {
	*memoryStore
	once    sync.Once
	parked  chan struct{}
	release chan struct{}
}

func newParkingStore(numbers ...int) *parkingStore {
	return &parkingStore{
		memoryStore: newMemoryStore(numbers...),
		parked:      make(chan struct{}),
		release:     make(chan struct{}),
	}
}

func (s *parkingStore) GetPokemonByID(ctx context.Context, id string, inc repository.Include) (model.Pokemon, error) {
	p, err := s.memoryStore.GetPokemonByID(ctx, id, inc)
	first := false
	s.once.Do(func() { first = true })
	if first {
		close(s.parked)
		<-s.release
	}
	return p, err
}

// memoryRedis is a goroutine-safe pkgRedis.IRedis without expiry.
type memoryRedis struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemoryRedis() *memoryRedis {
	return &memoryRedis{data: map[string]string{}}
}

func (m *memoryRedis) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return "", pkgRedis.Nil
	}
	return v, nil
}

func (m *memoryRedis) Set(_ context.Context, key string, value any, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch v := value.(type) {
	case []byte:
		m.data[key] = string(v)
	default:
		m.data[key] = fmt.Sprint(v)
	}
	return nil
}

func (m *memoryRedis) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func (m *memoryRedis) Ping(context.Context) error { return nil }
func (m *memoryRedis) Close() error               { return nil }
