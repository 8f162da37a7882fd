package pokedex_test

import (
	"context"
	"strconv"
	"sync"
	"testing"

	"pokedex-srv/pkg/log"
	"pokedex-srv/pkg/paginator"
	"pokedex-srv/pkg/pokedex"
	"pokedex-srv/pkg/pokedex/mocks"
	"pokedex-srv/pkg/querycache"

	"github.com/stretchr/testify/mock"
)

// pageStore answers list requests the way the server resolves them.
type pageStore struct {
	mu    sync.Mutex
	items []pokedex.Pokemon
}

func newPageStore(names ...string) *pageStore {
	s := &pageStore{}
	for i, n := range names {
		s.items = append(s.items, pokedex.Pokemon{ID: n, Name: n, PokedexNumber: i + 1})
	}
	return s
}

func (s *pageStore) page(_ context.Context, p pokedex.ListParams) paginator.Connection[pokedex.Pokemon] {
	s.mu.Lock()
	defer s.mu.Unlock()

	after := 0
	if p.AfterID != nil {
		after, _ = strconv.Atoi(*p.AfterID)
	}
	window := []pokedex.Pokemon{}
	for _, it := range s.items {
		if it.PokedexNumber > after {
			window = append(window, it)
		}
	}
	hasNext := len(window) > p.Limit
	if hasNext {
		window = window[:p.Limit]
	}
	info := paginator.PageInfo{
		HasNextPage:     hasNext,
		HasPreviousPage: p.AfterID != nil,
		Total:           int64(len(s.items)),
	}
	if len(window) > 0 {
		info.EndCursor = paginator.EncodeCursor(window[len(window)-1].PokedexNumber)
	}
	return paginator.Connection[pokedex.Pokemon]{Nodes: window, PageInfo: info}
}

func (s *pageStore) remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.items[:0]
	for _, it := range s.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	s.items = kept
}

type fixture struct {
	api     *mocks.API
	cache   *querycache.Cache
	catalog *pokedex.Catalog
	store   *pageStore
}

func newFixture(t *testing.T, pageSize int, names ...string) fixture {
	api := mocks.NewAPI(t)
	cache := querycache.New()
	return fixture{
		api:     api,
		cache:   cache,
		catalog: pokedex.NewCatalog(api, cache, log.NewNop(), pokedex.CatalogOptions{PageSize: pageSize}),
		store:   newPageStore(names...),
	}
}

func ids(list pokedex.PokemonList) []string {
	out := []string{}
	for _, p := range list.Items() {
		out = append(out, p.ID)
	}
	return out
}

// serveList answers every ListPokemon call from the store.
func (f fixture) serveList() {
	f.api.On("ListPokemon", mock.Anything, mock.Anything).Return(f.store.page, nil)
}
