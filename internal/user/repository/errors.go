package repository

import "errors"

var (
	ErrNotFound  = errors.New("repository: user not found")
	ErrDuplicate = errors.New("repository: username already exists")
)
