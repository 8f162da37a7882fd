package postgre

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pokedex-srv/internal/pokemon/repository"
)

func TestBuildListPokemonQuery(t *testing.T) {
	after := 25

	tcs := map[string]struct {
		opt       repository.ListOptions
		wantQuery string
		wantArgs  []interface{}
	}{
		"first page": {
			opt:       repository.ListOptions{Limit: 11},
			wantQuery: "SELECT p.id, p.name, p.pokedex_number FROM pokemons p ORDER BY p.pokedex_number ASC LIMIT $1",
			wantArgs:  []interface{}{11},
		},
		"after cursor": {
			opt:       repository.ListOptions{AfterPokedexNumber: &after, Limit: 3},
			wantQuery: "SELECT p.id, p.name, p.pokedex_number FROM pokemons p WHERE p.pokedex_number > $1 ORDER BY p.pokedex_number ASC LIMIT $2",
			wantArgs:  []interface{}{25, 3},
		},
		"no limit": {
			opt:       repository.ListOptions{},
			wantQuery: "SELECT p.id, p.name, p.pokedex_number FROM pokemons p ORDER BY p.pokedex_number ASC",
			wantArgs:  []interface{}{},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			query, args := buildListPokemonQuery(tc.opt)
			assert.Equal(t, tc.wantQuery, query)
			assert.Equal(t, tc.wantArgs, args)
		})
	}
}

func TestBuildRelationPlan(t *testing.T) {
	tcs := map[string]struct {
		inc  repository.Include
		want []string
	}{
		"none":         {inc: repository.Include{}, want: []string{}},
		"list":         {inc: repository.ListInclude(false), want: []string{relationTypes, relationAbilities}},
		"list + moves": {inc: repository.ListInclude(true), want: []string{relationTypes, relationAbilities, relationMoves}},
		"detail":       {inc: repository.DetailInclude(), want: []string{relationTypes, relationAbilities, relationMoves}},
		"moves only":   {inc: repository.Include{Moves: true}, want: []string{relationMoves}},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, buildRelationPlan(tc.inc))
		})
	}
}
