package postgre

import (
	"fmt"

	"pokedex-srv/internal/pokemon/repository"
)

const (
	pokemonColumns = `p.id, p.name, p.pokedex_number`

	selectTypesQuery = `
		SELECT pt.pokemon_id, t.id, t.name, t.icon_url
		FROM pokemon_types pt
		JOIN types t ON t.id = pt.type_id
		WHERE pt.pokemon_id = ANY($1::uuid[])
		ORDER BY pt.pokemon_id, t.name
	`

	selectAbilitiesQuery = `
		SELECT pa.pokemon_id, a.id, a.name
		FROM pokemon_abilities pa
		JOIN abilities a ON a.id = pa.ability_id
		WHERE pa.pokemon_id = ANY($1::uuid[])
		ORDER BY pa.pokemon_id, a.name
	`

	selectMovesQuery = `
		SELECT pm.pokemon_id, pm.move_id, pm.level,
			m.id, m.name, m.accuracy, m.damage_class, m.power, m.pp, m.type_id,
			t.id, t.name, t.icon_url
		FROM pokemon_moves pm
		JOIN moves m ON m.id = pm.move_id
		LEFT JOIN types t ON t.id = m.type_id
		WHERE pm.pokemon_id = ANY($1::uuid[])
		ORDER BY pm.pokemon_id, pm.level ASC, m.name ASC
	`
)

// buildListPokemonQuery - Build the window query: rows strictly after the cursor, ascending.
func buildListPokemonQuery(opt repository.ListOptions) (string, []interface{}) {
	query := fmt.Sprintf("SELECT %s FROM pokemons p", pokemonColumns)
	args := []interface{}{}

	if opt.AfterPokedexNumber != nil {
		args = append(args, *opt.AfterPokedexNumber)
		query += fmt.Sprintf(" WHERE p.pokedex_number > $%d", len(args))
	}

	query += " ORDER BY p.pokedex_number ASC"

	if opt.Limit > 0 {
		args = append(args, opt.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	return query, args
}

// buildGetPokemonQuery - Build the single-row lookup by id.
func buildGetPokemonQuery() string {
	return fmt.Sprintf("SELECT %s FROM pokemons p WHERE p.id = $1", pokemonColumns)
}

// buildRelationPlan - Map an Include to its ordered list of relation loaders.
// The same Include always yields the same plan.
func buildRelationPlan(inc repository.Include) []string {
	plan := make([]string, 0, 3)
	if inc.Types {
		plan = append(plan, relationTypes)
	}
	if inc.Abilities {
		plan = append(plan, relationAbilities)
	}
	if inc.Moves {
		plan = append(plan, relationMoves)
	}
	return plan
}

const (
	relationTypes     = "types"
	relationAbilities = "abilities"
	relationMoves     = "moves"
)
