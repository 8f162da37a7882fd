package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"pokedex-srv/internal/model"
	"pokedex-srv/internal/pokemon"
	"pokedex-srv/internal/pokemon/repository"
	"pokedex-srv/pkg/paginator"
)

// List - Resolve one page of the catalog after the cursor.
// The window and the total are fetched concurrently; total ignores the cursor.
func (uc *implUseCase) List(ctx context.Context, input pokemon.ListInput) (pokemon.ListOutput, error) {
	q := paginator.CursorQuery{AfterID: input.AfterID, Limit: input.Limit}
	q.Adjust()

	var (
		rows  []model.Pokemon
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = uc.repo.ListPokemon(gctx, repository.ListOptions{
			AfterPokedexNumber: q.AfterID,
			Limit:              q.FetchLimit(),
			Include:            repository.ListInclude(input.IncludeMoves),
		})
		return err
	})
	g.Go(func() error {
		var err error
		total, err = uc.repo.CountPokemon(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "pokemon.usecase.List: failed: %v", err)
		return pokemon.ListOutput{}, pokemon.ErrFetchFailed
	}

	nodes, hasNext := paginator.Trim(rows, q.Limit)
	return paginator.NewConnection(q, nodes, hasNext, total, pokedexNumber), nil
}

func pokedexNumber(p model.Pokemon) int {
	return p.PokedexNumber
}
