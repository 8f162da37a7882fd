package encrypter

// Encrypter hashes and verifies account passwords.
// Implementations are safe for concurrent use.
type Encrypter interface {
	HashPassword(password string) (string, error)
	CheckPasswordHash(password, hash string) bool
	// CheckDummy burns one comparison so that an unknown username costs the
	// same as a wrong password.
	CheckDummy(password string)
}

// New creates a bcrypt Encrypter. cost outside bcrypt's range falls back to DefaultCost.
func New(cost int) Encrypter {
	if cost < MinCost || cost > MaxCost {
		cost = DefaultCost
	}
	return &implEncrypter{cost: cost}
}
