package usecase

import (
	"pokedex-srv/internal/user"
	"pokedex-srv/internal/user/repository"
	"pokedex-srv/pkg/encrypter"
	"pokedex-srv/pkg/log"
)

type implUseCase struct {
	repo      repository.PostgresRepository
	tokens    user.TokenIssuer
	encrypter encrypter.Encrypter
	l         log.Logger
}

// New - Factory function
func New(repo repository.PostgresRepository, tokens user.TokenIssuer, enc encrypter.Encrypter, l log.Logger) user.UseCase {
	return &implUseCase{
		repo:      repo,
		tokens:    tokens,
		encrypter: enc,
		l:         l,
	}
}
