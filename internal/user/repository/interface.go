package repository

import (
	"context"

	"pokedex-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	CreateUser(ctx context.Context, opt CreateUserOptions) (model.User, error)
	GetUserByUsername(ctx context.Context, username string) (model.User, error)
}
