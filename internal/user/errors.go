package user

import "errors"

var (
	ErrInvalidUsername    = errors.New("user: invalid username")
	ErrUsernameTaken      = errors.New("user: username already exists")
	ErrInvalidCredentials = errors.New("user: invalid username or password")
	ErrRegisterFailed     = errors.New("user: failed to register")
	ErrLoginFailed        = errors.New("user: failed to login")
)
