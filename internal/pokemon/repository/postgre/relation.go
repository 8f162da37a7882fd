package postgre

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	"pokedex-srv/internal/model"
	"pokedex-srv/internal/pokemon/repository"
)

// loadRelations - Attach the relations named by inc to pokemons, in place.
// Every relation is loaded with one batched query regardless of page size.
func (r *implRepository) loadRelations(ctx context.Context, pokemons []model.Pokemon, inc repository.Include) error {
	if len(pokemons) == 0 {
		return nil
	}

	ids := make([]string, len(pokemons))
	index := make(map[string]int, len(pokemons))
	for i, p := range pokemons {
		ids[i] = p.ID
		index[p.ID] = i
	}

	for _, rel := range buildRelationPlan(inc) {
		var err error
		switch rel {
		case relationTypes:
			err = r.loadTypes(ctx, pokemons, ids, index)
		case relationAbilities:
			err = r.loadAbilities(ctx, pokemons, ids, index)
		case relationMoves:
			var moves map[string][]model.PokemonMove
			moves, err = r.loadMoves(ctx, ids)
			for id, ms := range moves {
				pokemons[index[id]].Moves = ms
			}
		}
		if err != nil {
			return fmt.Errorf("%s: %w", rel, err)
		}
	}

	for i := range pokemons {
		if inc.Types && pokemons[i].Types == nil {
			pokemons[i].Types = []model.Type{}
		}
		if inc.Abilities && pokemons[i].Abilities == nil {
			pokemons[i].Abilities = []model.Ability{}
		}
		if inc.Moves && pokemons[i].Moves == nil {
			pokemons[i].Moves = []model.PokemonMove{}
		}
	}

	return nil
}

func (r *implRepository) loadTypes(ctx context.Context, pokemons []model.Pokemon, ids []string, index map[string]int) error {
	rows, err := r.db.QueryContext(ctx, selectTypesQuery, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			pokemonID string
			t         model.Type
		)
		if err := rows.Scan(&pokemonID, &t.ID, &t.Name, &t.IconURL); err != nil {
			return err
		}
		i := index[pokemonID]
		pokemons[i].Types = append(pokemons[i].Types, t)
	}
	return rows.Err()
}

func (r *implRepository) loadAbilities(ctx context.Context, pokemons []model.Pokemon, ids []string, index map[string]int) error {
	rows, err := r.db.QueryContext(ctx, selectAbilitiesQuery, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			pokemonID string
			a         model.Ability
		)
		if err := rows.Scan(&pokemonID, &a.ID, &a.Name); err != nil {
			return err
		}
		i := index[pokemonID]
		pokemons[i].Abilities = append(pokemons[i].Abilities, a)
	}
	return rows.Err()
}
