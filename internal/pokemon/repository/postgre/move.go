package postgre

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"pokedex-srv/internal/model"
	"pokedex-srv/internal/pokemon/repository"
)

// ListPokemonMoves - Moves learnable by one Pokémon, ordered by level ascending.
func (r *implRepository) ListPokemonMoves(ctx context.Context, pokemonID string) ([]model.PokemonMove, error) {
	moves, err := r.loadMoves(ctx, []string{pokemonID})
	if err != nil {
		r.l.Errorf(ctx, "pokemon.repository.postgre.ListPokemonMoves: %v", err)
		return nil, repository.ErrFailedToList
	}

	if ms, ok := moves[pokemonID]; ok {
		return ms, nil
	}
	return []model.PokemonMove{}, nil
}

func (r *implRepository) loadMoves(ctx context.Context, ids []string) (map[string][]model.PokemonMove, error) {
	rows, err := r.db.QueryContext(ctx, selectMovesQuery, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]model.PokemonMove, len(ids))
	for rows.Next() {
		var (
			pm                  model.PokemonMove
			accuracy, power, pp sql.NullInt64
			typeID, typeName    sql.NullString
			typeIcon            sql.NullString
		)
		if err := rows.Scan(
			&pm.PokemonID, &pm.MoveID, &pm.Level,
			&pm.Move.ID, &pm.Move.Name, &accuracy, &pm.Move.DamageClass, &power, &pp, &pm.Move.TypeID,
			&typeID, &typeName, &typeIcon,
		); err != nil {
			return nil, err
		}

		pm.Move.Accuracy = nullInt(accuracy)
		pm.Move.Power = nullInt(power)
		pm.Move.PP = nullInt(pp)
		if typeID.Valid {
			t := &model.Type{ID: typeID.String, Name: typeName.String}
			if typeIcon.Valid {
				icon := typeIcon.String
				t.IconURL = &icon
			}
			pm.Move.Type = t
		}

		out[pm.PokemonID] = append(out[pm.PokemonID], pm)
	}

	return out, rows.Err()
}

// nullInt - Convert a nullable integer column to *int.
func nullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}
