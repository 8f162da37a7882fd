package pokedex

import (
	"strconv"

	"pokedex-srv/pkg/querycache"
)

// ListKey is the cache key of the infinite list with the given page size.
func ListKey(pageSize int, includeMoves bool) querycache.Key {
	k := ListKeyPrefix + strconv.Itoa(pageSize)
	if includeMoves {
		k += ":moves"
	}
	return querycache.Key(k)
}

// DetailKey is the cache key of a Pokémon detail.
func DetailKey(id string) querycache.Key {
	return querycache.Key(detailKeyPrefix + id)
}

// MovesKey is the cache key of a Pokémon's moves.
func MovesKey(id string) querycache.Key {
	return querycache.Key(movesKeyPrefix + id)
}

// PokemonList is the cached value of a list key.
type PokemonList = querycache.InfiniteData[Pokemon]
