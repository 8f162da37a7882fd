package usecase

import (
	"time"

	"pokedex-srv/internal/pokemon"
	"pokedex-srv/internal/pokemon/repository"
	"pokedex-srv/pkg/log"
)

type implUseCase struct {
	repo      repository.PostgresRepository
	cacheRepo repository.CacheRepository
	publisher pokemon.Publisher
	l         log.Logger
	now       func() time.Time
}

// New - Factory function. cacheRepo and publisher are optional and may be nil.
func New(
	repo repository.PostgresRepository,
	cacheRepo repository.CacheRepository,
	publisher pokemon.Publisher,
	l log.Logger,
) pokemon.UseCase {
	return &implUseCase{
		repo:      repo,
		cacheRepo: cacheRepo,
		publisher: publisher,
		l:         l,
		now:       time.Now,
	}
}
