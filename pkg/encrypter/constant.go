package encrypter

import "golang.org/x/crypto/bcrypt"

const (
	MinCost     = bcrypt.MinCost
	MaxCost     = bcrypt.MaxCost
	DefaultCost = bcrypt.DefaultCost

	// maxPasswordBytes is the longest input bcrypt accepts.
	maxPasswordBytes = 72
)

// dummyHash is a valid bcrypt hash of a random string.
var dummyHash = []byte("$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z3IhRr0GZ8ZkP9Kx4fXcIv6e")
