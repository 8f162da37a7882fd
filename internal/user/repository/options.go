package repository

type CreateUserOptions struct {
	Username     string
	PasswordHash string
	IsAdmin      bool
}
