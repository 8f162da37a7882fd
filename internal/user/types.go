package user

import (
	"time"

	"pokedex-srv/internal/model"
)

type RegisterInput struct {
	Username string
	Password string
}

type LoginInput struct {
	Username string
	Password string
}

type AuthOutput struct {
	AccessToken string
	ExpiresAt   time.Time
	User        model.User
}
