package user

import (
	"context"
	"time"

	pkgJWT "pokedex-srv/pkg/jwt"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Register(ctx context.Context, input RegisterInput) (AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (AuthOutput, error)
}

// TokenIssuer signs access tokens for authenticated users.
//
//go:generate mockery --name TokenIssuer
type TokenIssuer interface {
	GenerateToken(sub pkgJWT.Subject) (string, time.Time, error)
}
