package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pokedex-srv/internal/model"
	"pokedex-srv/internal/pokemon"
	pokemonMocks "pokedex-srv/internal/pokemon/mocks"
	"pokedex-srv/internal/pokemon/repository"
	"pokedex-srv/internal/pokemon/repository/mocks"
	"pokedex-srv/pkg/log"
)

var (
	admin  = &model.Scope{UserID: "u-admin", Username: "ash", Role: model.RoleAdmin, IsAdmin: true}
	viewer = &model.Scope{UserID: "u-viewer", Username: "gary", Role: model.RoleViewer}
)

func TestDelete_Gate(t *testing.T) {
	tcs := map[string]struct {
		scope   *model.Scope
		id      string
		wantErr error
	}{
		"no principal":          {scope: nil, id: "id-2", wantErr: pokemon.ErrUnauthorized},
		"not admin":             {scope: viewer, id: "id-2", wantErr: pokemon.ErrForbidden},
		"not admin, missing id": {scope: viewer, id: "id-99", wantErr: pokemon.ErrForbidden},
		"admin, missing id":     {scope: admin, id: "id-99", wantErr: pokemon.ErrPokemonNotFound},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			store := newMemoryStore(1, 2, 3)
			uc := New(store, nil, nil, log.NewNop())

			err := uc.Delete(context.Background(), tc.scope, pokemon.DeleteInput{ID: tc.id})
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, 0, store.deletes)

			total, _ := store.CountPokemon(context.Background())
			assert.EqualValues(t, 3, total)
		})
	}
}

func TestDelete_GateRunsBeforeStore(t *testing.T) {
	repo := mocks.NewPostgresRepository(t)
	uc := New(repo, nil, nil, log.NewNop())

	err := uc.Delete(context.Background(), viewer, pokemon.DeleteInput{ID: "id-1"})
	assert.ErrorIs(t, err, pokemon.ErrForbidden)
	repo.AssertNotCalled(t, "GetPokemonByID", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "DeletePokemon", mock.Anything, mock.Anything)
}

func TestDelete_AdminRemovesFromPages(t *testing.T) {
	store := newMemoryStore(1, 2, 3)
	uc := New(store, nil, nil, log.NewNop())
	ctx := context.Background()

	require.NoError(t, uc.Delete(ctx, admin, pokemon.DeleteInput{ID: "id-2"}))

	page, err := uc.List(ctx, pokemon.ListInput{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, numbers(page.Nodes))
	assert.EqualValues(t, 2, page.PageInfo.Total)

	err = uc.Delete(ctx, admin, pokemon.DeleteInput{ID: "id-2"})
	assert.ErrorIs(t, err, pokemon.ErrPokemonNotFound)
}

func TestDelete_SideEffects(t *testing.T) {
	repo := mocks.NewPostgresRepository(t)
	cache := mocks.NewCacheRepository(t)
	pub := pokemonMocks.NewPublisher(t)
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	uc := &implUseCase{repo: repo, cacheRepo: cache, publisher: pub, l: log.NewNop(), now: func() time.Time { return at }}

	pika := model.Pokemon{ID: "p25", Name: "Pikachu", PokedexNumber: 25}
	repo.On("GetPokemonByID", mock.Anything, "p25", repository.Include{}).Return(pika, nil)
	repo.On("DeletePokemon", mock.Anything, "p25").Return(nil)
	cache.On("InvalidatePokemon", mock.Anything, "p25").Return(errors.New("redis down"))
	pub.On("PublishPokemonDeleted", mock.Anything, pokemon.PokemonDeletedEvent{
		ID:            "p25",
		Name:          "Pikachu",
		PokedexNumber: 25,
		DeletedBy:     "u-admin",
		DeletedAt:     at,
	}).Return(nil)

	assert.NoError(t, uc.Delete(context.Background(), admin, pokemon.DeleteInput{ID: "p25"}))
}

func TestDelete_StoreFailure(t *testing.T) {
	tcs := map[string]struct {
		getErr  error
		delErr  error
		wantErr error
	}{
		"lookup fails":  {getErr: repository.ErrFailedToGet, wantErr: pokemon.ErrDeleteFailed},
		"delete fails":  {delErr: repository.ErrFailedToDelete, wantErr: pokemon.ErrDeleteFailed},
		"lost the race":  {delErr: repository.ErrNotFound, wantErr: pokemon.ErrPokemonNotFound},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			repo := &mocks.PostgresRepository{}
			uc := New(repo, nil, nil, log.NewNop())

			repo.On("GetPokemonByID", mock.Anything, "p1", repository.Include{}).Return(model.Pokemon{ID: "p1"}, tc.getErr)
			repo.On("DeletePokemon", mock.Anything, "p1").Return(tc.delErr).Maybe()

			err := uc.Delete(context.Background(), admin, pokemon.DeleteInput{ID: "p1"})
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
