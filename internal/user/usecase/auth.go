package usecase

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"pokedex-srv/internal/model"
	"pokedex-srv/internal/user"
	"pokedex-srv/internal/user/repository"
	pkgJWT "pokedex-srv/pkg/jwt"
)

const minUsernameLen = 3

// Register - Create a non-admin account and sign it in.
func (uc *implUseCase) Register(ctx context.Context, input user.RegisterInput) (user.AuthOutput, error) {
	username := strings.TrimSpace(input.Username)
	if utf8.RuneCountInString(username) < minUsernameLen {
		return user.AuthOutput{}, user.ErrInvalidUsername
	}

	hash, err := uc.encrypter.HashPassword(input.Password)
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.Register: HashPassword failed: %v", err)
		return user.AuthOutput{}, user.ErrRegisterFailed
	}

	u, err := uc.repo.CreateUser(ctx, repository.CreateUserOptions{
		Username:     username,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return user.AuthOutput{}, user.ErrUsernameTaken
		}
		uc.l.Errorf(ctx, "user.usecase.Register: CreateUser failed: %v", err)
		return user.AuthOutput{}, user.ErrRegisterFailed
	}

	uc.l.Infof(ctx, "user.usecase.Register: registered %s", u.Username)
	return uc.issue(ctx, u, user.ErrRegisterFailed)
}

// Login - Verify credentials and issue an access token.
func (uc *implUseCase) Login(ctx context.Context, input user.LoginInput) (user.AuthOutput, error) {
	u, err := uc.repo.GetUserByUsername(ctx, strings.TrimSpace(input.Username))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			uc.encrypter.CheckDummy(input.Password)
			return user.AuthOutput{}, user.ErrInvalidCredentials
		}
		uc.l.Errorf(ctx, "user.usecase.Login: GetUserByUsername failed: %v", err)
		return user.AuthOutput{}, user.ErrLoginFailed
	}

	if !uc.encrypter.CheckPasswordHash(input.Password, u.PasswordHash) {
		return user.AuthOutput{}, user.ErrInvalidCredentials
	}

	return uc.issue(ctx, u, user.ErrLoginFailed)
}

func (uc *implUseCase) issue(ctx context.Context, u model.User, failure error) (user.AuthOutput, error) {
	token, expiresAt, err := uc.tokens.GenerateToken(pkgJWT.Subject{
		UserID:   u.ID,
		Username: u.Username,
		Role:     u.Role(),
		IsAdmin:  u.IsAdmin,
	})
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.issue: GenerateToken failed: %v", err)
		return user.AuthOutput{}, failure
	}

	return user.AuthOutput{AccessToken: token, ExpiresAt: expiresAt, User: u}, nil
}
