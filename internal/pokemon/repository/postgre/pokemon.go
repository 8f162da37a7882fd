package postgre

import (
	"context"
	"database/sql"
	"errors"

	"pokedex-srv/internal/model"
	"pokedex-srv/internal/pokemon/repository"
)

// ListPokemon - Fetch one window of Pokémon with the requested relations.
func (r *implRepository) ListPokemon(ctx context.Context, opt repository.ListOptions) ([]model.Pokemon, error) {
	query, args := buildListPokemonQuery(opt)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "pokemon.repository.postgre.ListPokemon: query failed: %v", err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	pokemons := []model.Pokemon{}
	for rows.Next() {
		var p model.Pokemon
		if err := rows.Scan(&p.ID, &p.Name, &p.PokedexNumber); err != nil {
			r.l.Errorf(ctx, "pokemon.repository.postgre.ListPokemon: scan failed: %v", err)
			return nil, repository.ErrFailedToList
		}
		pokemons = append(pokemons, p)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "pokemon.repository.postgre.ListPokemon: rows failed: %v", err)
		return nil, repository.ErrFailedToList
	}

	if err := r.loadRelations(ctx, pokemons, opt.Include); err != nil {
		r.l.Errorf(ctx, "pokemon.repository.postgre.ListPokemon: load relations failed: %v", err)
		return nil, repository.ErrFailedToList
	}

	return pokemons, nil
}

// CountPokemon - Count every Pokémon, ignoring any cursor.
func (r *implRepository) CountPokemon(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pokemons`).Scan(&total); err != nil {
		r.l.Errorf(ctx, "pokemon.repository.postgre.CountPokemon: %v", err)
		return 0, repository.ErrFailedToCount
	}
	return total, nil
}

// GetPokemonByID - Fetch one Pokémon with the requested relations.
func (r *implRepository) GetPokemonByID(ctx context.Context, id string, include repository.Include) (model.Pokemon, error) {
	var p model.Pokemon
	err := r.db.QueryRowContext(ctx, buildGetPokemonQuery(), id).Scan(&p.ID, &p.Name, &p.PokedexNumber)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Pokemon{}, repository.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "pokemon.repository.postgre.GetPokemonByID: %v", err)
		return model.Pokemon{}, repository.ErrFailedToGet
	}

	pokemons := []model.Pokemon{p}
	if err := r.loadRelations(ctx, pokemons, include); err != nil {
		r.l.Errorf(ctx, "pokemon.repository.postgre.GetPokemonByID: load relations failed: %v", err)
		return model.Pokemon{}, repository.ErrFailedToGet
	}

	return pokemons[0], nil
}

// DeletePokemon - Delete a Pokémon. Join rows go with it via ON DELETE CASCADE.
func (r *implRepository) DeletePokemon(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pokemons WHERE id = $1`, id)
	if err != nil {
		r.l.Errorf(ctx, "pokemon.repository.postgre.DeletePokemon: %v", err)
		return repository.ErrFailedToDelete
	}

	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "pokemon.repository.postgre.DeletePokemon: rows affected: %v", err)
		return repository.ErrFailedToDelete
	}
	if n == 0 {
		return repository.ErrNotFound
	}

	return nil
}
