package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"pokedex-srv/internal/model"
	"pokedex-srv/internal/user/repository"
)

const uniqueViolation = "23505"

// CreateUser - Insert a user. A taken username yields ErrDuplicate.
func (r *implRepository) CreateUser(ctx context.Context, opt repository.CreateUserOptions) (model.User, error) {
	query := `
		INSERT INTO users (id, username, password, is_admin, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, username, password, is_admin, created_at
	`

	var u model.User
	err := r.db.QueryRowContext(ctx, query,
		uuid.New().String(), opt.Username, opt.PasswordHash, opt.IsAdmin, time.Now(),
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.IsAdmin, &u.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return model.User{}, repository.ErrDuplicate
		}
		return model.User{}, fmt.Errorf("CreateUser: %w", err)
	}

	return u, nil
}

// GetUserByUsername - Lookup by the unique username.
func (r *implRepository) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	query := `
		SELECT id, username, password, is_admin, created_at
		FROM users
		WHERE username = $1
	`

	var u model.User
	err := r.db.QueryRowContext(ctx, query, username).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.IsAdmin, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, repository.ErrNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("GetUserByUsername: %w", err)
	}

	return u, nil
}
