package pokedex

import (
	"context"

	"pokedex-srv/pkg/log"
	"pokedex-srv/pkg/querycache"
)

// DeleteCoordinator deletes Pokémon optimistically against a shared cache.
//
// A delete cancels in-flight fetches of every cached list and of the target's
// detail and moves, snapshots them, removes the Pokémon from every loaded page
// and drops its detail and moves. Then it sends the request. On failure the
// snapshot is restored verbatim. Either way every list is invalidated and
// refetched before Delete returns. Deletes are serialized from snapshot to
// refetch.
type DeleteCoordinator struct {
	api   API
	cache *querycache.Cache
	l     log.Logger
}

// NewDeleteCoordinator creates a DeleteCoordinator.
func NewDeleteCoordinator(api API, cache *querycache.Cache, l log.Logger) *DeleteCoordinator {
	return &DeleteCoordinator{api: api, cache: cache, l: l}
}

// Delete deletes id. The returned error is the request's; a failed refetch is
// only logged and leaves the lists marked stale.
func (d *DeleteCoordinator) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyID
	}

	// The prefix lock covers every list, including ones created while waiting.
	unlock := d.cache.Lock(querycache.Key(ListKeyPrefix), DetailKey(id), MovesKey(id))
	defer unlock()

	listKeys := d.cache.Keys(ListKeyPrefix)
	keys := append(append([]querycache.Key{}, listKeys...), DetailKey(id), MovesKey(id))

	d.cache.Cancel(keys...)
	snap := d.cache.Snapshot(keys...)

	for _, k := range listKeys {
		querycache.ApplyAs(d.cache, k, func(list PokemonList) PokemonList {
			return list.RemoveWhere(func(p Pokemon) bool { return p.ID == id })
		})
	}
	d.cache.Remove(DetailKey(id), MovesKey(id))

	err := d.api.DeletePokemon(ctx, id)
	if err != nil {
		d.l.Warnf(ctx, "pokedex.DeleteCoordinator.Delete: delete %s failed, rolling back: %v", id, err)
		d.cache.Restore(snap)
	}

	if rerr := d.cache.Invalidate(context.WithoutCancel(ctx), d.cache.Keys(ListKeyPrefix)...); rerr != nil {
		d.l.Warnf(ctx, "pokedex.DeleteCoordinator.Delete: refetch after delete failed: %v", rerr)
	}

	return err
}
