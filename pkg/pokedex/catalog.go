package pokedex

import (
	"context"

	"pokedex-srv/pkg/log"
	"pokedex-srv/pkg/paginator"
	"pokedex-srv/pkg/querycache"
)

// Catalog serves the cached infinite Pokémon list, cached detail and moves,
// and deletes through a DeleteCoordinator sharing the same cache.
type Catalog struct {
	api          API
	cache        *querycache.Cache
	l            log.Logger
	pageSize     int
	includeMoves bool
	deleter      *DeleteCoordinator
}

// NewCatalog creates a Catalog and registers the list refetcher on cache.
func NewCatalog(api API, cache *querycache.Cache, l log.Logger, opt CatalogOptions) *Catalog {
	if opt.PageSize <= 0 {
		opt.PageSize = DefaultPageSize
	}
	if opt.PageSize > paginator.MaxLimit {
		opt.PageSize = paginator.MaxLimit
	}
	c := &Catalog{
		api:          api,
		cache:        cache,
		l:            l,
		pageSize:     opt.PageSize,
		includeMoves: opt.IncludeMoves,
		deleter:      NewDeleteCoordinator(api, cache, l),
	}
	cache.Register(c.ListKey(), c.refetchList)
	return c
}

// ListKey is the cache key this catalog's list lives under.
func (c *Catalog) ListKey() querycache.Key {
	return ListKey(c.pageSize, c.includeMoves)
}

// List returns the pages loaded so far.
func (c *Catalog) List() (PokemonList, bool) {
	return querycache.GetAs[PokemonList](c.cache, c.ListKey())
}

// Load returns the cached list, fetching the first page when nothing is
// cached and refetching every loaded page when the list is stale.
func (c *Catalog) Load(ctx context.Context) (PokemonList, error) {
	if list, ok := c.List(); ok && !c.cache.IsStale(c.ListKey()) {
		return list, nil
	}
	v, err := c.cache.Fetch(ctx, c.ListKey())
	if err != nil {
		c.l.Warnf(ctx, "pokedex.Catalog.Load: fetch failed: %v", err)
		return PokemonList{}, err
	}
	return v.(PokemonList), nil
}

// FetchNextPage appends the page after the last loaded one. When nothing is
// loaded it fetches the first page; when the list is exhausted it is a no-op.
func (c *Catalog) FetchNextPage(ctx context.Context) (PokemonList, error) {
	v, err := c.cache.FetchWith(ctx, c.ListKey(), func(ctx context.Context, current any) (any, error) {
		list, _ := current.(PokemonList)
		if len(list.Pages) == 0 {
			return c.fetchPages(ctx, 1)
		}
		cursor, ok := list.NextCursor()
		if !ok {
			return list, nil
		}
		page, err := c.api.ListPokemon(ctx, c.listParams(cursor))
		if err != nil {
			return nil, err
		}
		return list.AppendPage(cursor, page), nil
	})
	if err != nil {
		c.l.Warnf(ctx, "pokedex.Catalog.FetchNextPage: fetch failed: %v", err)
		return PokemonList{}, err
	}
	return v.(PokemonList), nil
}

// HasNextPage reports whether FetchNextPage would load more nodes.
func (c *Catalog) HasNextPage() bool {
	list, ok := c.List()
	if !ok {
		return true
	}
	_, more := list.NextCursor()
	return more
}

// Pokemon returns a Pokémon detail, from cache when present.
func (c *Catalog) Pokemon(ctx context.Context, id string) (Pokemon, error) {
	key := DetailKey(id)
	if p, ok := querycache.GetAs[Pokemon](c.cache, key); ok && !c.cache.IsStale(key) {
		return p, nil
	}
	v, err := c.cache.FetchWith(ctx, key, func(ctx context.Context, _ any) (any, error) {
		return c.api.GetPokemon(ctx, id)
	})
	if err != nil {
		return Pokemon{}, err
	}
	return v.(Pokemon), nil
}

// Moves returns the moves of a Pokémon, from cache when present.
func (c *Catalog) Moves(ctx context.Context, id string) ([]Move, error) {
	key := MovesKey(id)
	if m, ok := querycache.GetAs[[]Move](c.cache, key); ok && !c.cache.IsStale(key) {
		return m, nil
	}
	v, err := c.cache.FetchWith(ctx, key, func(ctx context.Context, _ any) (any, error) {
		return c.api.ListMoves(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return v.([]Move), nil
}

// Delete removes a Pokémon optimistically. See DeleteCoordinator.
func (c *Catalog) Delete(ctx context.Context, id string) error {
	return c.deleter.Delete(ctx, id)
}

// refetchList reloads as many pages as are currently cached, from the start,
// so the list reflects the server after a mutation.
func (c *Catalog) refetchList(ctx context.Context, current any) (any, error) {
	list, _ := current.(PokemonList)
	n := len(list.Pages)
	if n == 0 {
		n = 1
	}
	return c.fetchPages(ctx, n)
}

func (c *Catalog) fetchPages(ctx context.Context, n int) (PokemonList, error) {
	var (
		list   PokemonList
		cursor *string
	)
	for i := 0; i < n; i++ {
		page, err := c.api.ListPokemon(ctx, c.listParams(cursor))
		if err != nil {
			return PokemonList{}, err
		}
		list = list.AppendPage(cursor, page)

		next, ok := list.NextCursor()
		if !ok {
			break
		}
		cursor = next
	}
	return list, nil
}

func (c *Catalog) listParams(cursor *string) ListParams {
	return ListParams{AfterID: cursor, Limit: c.pageSize, IncludeMoves: c.includeMoves}
}
