package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pokedex-srv/internal/model"
	"pokedex-srv/internal/pokemon"
	"pokedex-srv/internal/pokemon/repository"
	"pokedex-srv/internal/pokemon/repository/mocks"
	"pokedex-srv/pkg/log"
	"pokedex-srv/pkg/paginator"
)

func intPtr(v int) *int { return &v }

func numbers(nodes []model.Pokemon) []int {
	out := make([]int, len(nodes))
	for i, n := range nodes {
		out[i] = n.PokedexNumber
	}
	return out
}

func TestList_Pages(t *testing.T) {
	store := newMemoryStore(1, 2, 3, 4, 5)
	uc := New(store, nil, nil, log.NewNop())
	ctx := context.Background()

	first, err := uc.List(ctx, pokemon.ListInput{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, numbers(first.Nodes))
	require.NotNil(t, first.PageInfo.EndCursor)
	assert.Equal(t, "2", *first.PageInfo.EndCursor)
	assert.True(t, first.PageInfo.HasNextPage)
	assert.False(t, first.PageInfo.HasPreviousPage)
	assert.EqualValues(t, 5, first.PageInfo.Total)

	last, err := uc.List(ctx, pokemon.ListInput{AfterID: intPtr(4), Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []int{5}, numbers(last.Nodes))
	assert.Equal(t, "5", *last.PageInfo.EndCursor)
	assert.False(t, last.PageInfo.HasNextPage)
	assert.True(t, last.PageInfo.HasPreviousPage)
	assert.EqualValues(t, 5, last.PageInfo.Total)
}

func TestList_TraversalVisitsEveryRowOnce(t *testing.T) {
	store := newMemoryStore(3, 7, 8, 10, 11, 15, 20, 21, 22, 40, 41)
	uc := New(store, nil, nil, log.NewNop())
	ctx := context.Background()

	for _, limit := range []int{1, 2, 3, 4, 10, 11, 50} {
		var (
			seen   []int
			cursor *int
		)
		for i := 0; ; i++ {
			require.Less(t, i, 20, "traversal did not terminate")

			page, err := uc.List(ctx, pokemon.ListInput{AfterID: cursor, Limit: limit})
			require.NoError(t, err)
			assert.LessOrEqual(t, len(page.Nodes), limit)
			assert.EqualValues(t, 11, page.PageInfo.Total)
			seen = append(seen, numbers(page.Nodes)...)

			if !page.PageInfo.HasNextPage {
				break
			}
			next, err := paginator.DecodeCursor(*page.PageInfo.EndCursor)
			require.NoError(t, err)
			cursor = &next
		}
		assert.Equal(t, []int{3, 7, 8, 10, 11, 15, 20, 21, 22, 40, 41}, seen, "limit %d", limit)
	}
}

func TestList_LimitClamped(t *testing.T) {
	nums := make([]int, 150)
	for i := range nums {
		nums[i] = i + 1
	}
	uc := New(newMemoryStore(nums...), nil, nil, log.NewNop())
	ctx := context.Background()

	tcs := map[string]struct {
		limit int
		want  int
	}{
		"zero":     {limit: 0, want: 1},
		"negative": {limit: -5, want: 1},
		"in range": {limit: 25, want: 25},
		"too big":  {limit: 500, want: 100},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			page, err := uc.List(ctx, pokemon.ListInput{Limit: tc.limit})
			require.NoError(t, err)
			assert.Len(t, page.Nodes, tc.want)
			assert.True(t, page.PageInfo.HasNextPage)
		})
	}
}

func TestList_CursorGapTolerant(t *testing.T) {
	uc := New(newMemoryStore(1, 2, 5, 6), nil, nil, log.NewNop())

	page, err := uc.List(context.Background(), pokemon.ListInput{AfterID: intPtr(3), Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, []int{5, 6}, numbers(page.Nodes))
	assert.False(t, page.PageInfo.HasNextPage)
	assert.True(t, page.PageInfo.HasPreviousPage)
}

func TestList_Empty(t *testing.T) {
	uc := New(newMemoryStore(), nil, nil, log.NewNop())

	page, err := uc.List(context.Background(), pokemon.ListInput{Limit: 10})
	require.NoError(t, err)
	assert.NotNil(t, page.Nodes)
	assert.Empty(t, page.Nodes)
	assert.Nil(t, page.PageInfo.EndCursor)
	assert.False(t, page.PageInfo.HasNextPage)
	assert.EqualValues(t, 0, page.PageInfo.Total)
}

func TestList_RequestsLookAheadAndInclude(t *testing.T) {
	repo := mocks.NewPostgresRepository(t)
	uc := New(repo, nil, nil, log.NewNop())

	repo.On("ListPokemon", mock.Anything, repository.ListOptions{
		AfterPokedexNumber: intPtr(10),
		Limit:              6,
		Include:            repository.Include{Types: true, Abilities: true, Moves: true},
	}).Return([]model.Pokemon{}, nil)
	repo.On("CountPokemon", mock.Anything).Return(int64(10), nil)

	_, err := uc.List(context.Background(), pokemon.ListInput{AfterID: intPtr(10), Limit: 5, IncludeMoves: true})
	require.NoError(t, err)
}

func TestList_StoreFailure(t *testing.T) {
	tcs := map[string]struct {
		listErr  error
		countErr error
	}{
		"window fails": {listErr: repository.ErrFailedToList},
		"count fails":  {countErr: repository.ErrFailedToCount},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			repo := &mocks.PostgresRepository{}
			uc := New(repo, nil, nil, log.NewNop())

			repo.On("ListPokemon", mock.Anything, mock.Anything).Return([]model.Pokemon{}, tc.listErr).Maybe()
			repo.On("CountPokemon", mock.Anything).Return(int64(0), tc.countErr).Maybe()

			_, err := uc.List(context.Background(), pokemon.ListInput{Limit: 10})
			assert.True(t, errors.Is(err, pokemon.ErrFetchFailed))
		})
	}
}
