package model

import "time"

// User is an account that can sign in. IsAdmin grants destructive catalog actions.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
}

const (
	RoleAdmin  = "ADMIN"
	RoleViewer = "VIEWER"
)

// Role returns the role name carried in access tokens.
func (u User) Role() string {
	if u.IsAdmin {
		return RoleAdmin
	}
	return RoleViewer
}
