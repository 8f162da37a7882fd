package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"pokedex-srv/internal/model"
	"pokedex-srv/internal/pokemon/repository"
	pkgRedis "pokedex-srv/pkg/redis"
)

func detailKey(id string) string {
	return fmt.Sprintf("pokemon:detail:%s", id)
}

func movesKey(id string) string {
	return fmt.Sprintf("pokemon:moves:%s", id)
}

func tombstoneKey(id string) string {
	return fmt.Sprintf("pokemon:deleted:%s", id)
}

// =====================================================
// Detail cache
// =====================================================

func (r *implCacheRepository) GetPokemon(ctx context.Context, id string) (model.Pokemon, error) {
	var p model.Pokemon
	if err := r.get(ctx, detailKey(id), &p); err != nil {
		return model.Pokemon{}, err
	}
	return p, nil
}

func (r *implCacheRepository) SavePokemon(ctx context.Context, p model.Pokemon) error {
	return r.save(ctx, p.ID, detailKey(p.ID), p)
}

// =====================================================
// Moves cache
// =====================================================

func (r *implCacheRepository) GetPokemonMoves(ctx context.Context, pokemonID string) ([]model.PokemonMove, error) {
	var moves []model.PokemonMove
	if err := r.get(ctx, movesKey(pokemonID), &moves); err != nil {
		return nil, err
	}
	return moves, nil
}

func (r *implCacheRepository) SavePokemonMoves(ctx context.Context, pokemonID string, moves []model.PokemonMove) error {
	return r.save(ctx, pokemonID, movesKey(pokemonID), moves)
}

// =====================================================
// Cache Invalidation
// =====================================================

// InvalidatePokemon leaves a tombstone for one TTL before dropping the entries.
// A save racing with the delete checks the tombstone after writing and backs
// out, so a read that started before the delete cannot repopulate the cache.
func (r *implCacheRepository) InvalidatePokemon(ctx context.Context, id string) error {
	if err := r.redis.Set(ctx, tombstoneKey(id), "1", r.ttl); err != nil {
		r.l.Errorf(ctx, "pokemon.repository.redis.InvalidatePokemon: Failed to write tombstone: %v", err)
		return err
	}
	if err := r.redis.Delete(ctx, detailKey(id), movesKey(id)); err != nil {
		r.l.Errorf(ctx, "pokemon.repository.redis.InvalidatePokemon: Failed to delete keys: %v", err)
		return err
	}
	return nil
}

func (r *implCacheRepository) save(ctx context.Context, id, key string, v interface{}) error {
	if err := r.set(ctx, key, v); err != nil {
		return err
	}

	_, err := r.redis.Get(ctx, tombstoneKey(id))
	switch {
	case errors.Is(err, pkgRedis.Nil):
		return nil
	case err == nil:
		err = repository.ErrDeleted
	default:
		r.l.Warnf(ctx, "pokemon.repository.redis.save: Failed to read tombstone for %s: %v", id, err)
	}

	if derr := r.redis.Delete(ctx, key); derr != nil {
		r.l.Errorf(ctx, "pokemon.repository.redis.save: Failed to drop %s: %v", key, derr)
		return derr
	}
	return err
}

func (r *implCacheRepository) get(ctx context.Context, key string, dst interface{}) error {
	data, err := r.redis.Get(ctx, key)
	if errors.Is(err, pkgRedis.Nil) {
		return repository.ErrCacheMiss
	}
	if err != nil {
		r.l.Warnf(ctx, "pokemon.repository.redis.get: Failed to read %s: %v", key, err)
		return err
	}
	if err := json.Unmarshal([]byte(data), dst); err != nil {
		r.l.Warnf(ctx, "pokemon.repository.redis.get: Failed to unmarshal %s: %v", key, err)
		return err
	}
	return nil
}

func (r *implCacheRepository) set(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if err := r.redis.Set(ctx, key, data, r.ttl); err != nil {
		r.l.Errorf(ctx, "pokemon.repository.redis.set: Failed to save %s: %v", key, err)
		return err
	}
	return nil
}
