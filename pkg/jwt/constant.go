package jwt

import "time"

const (
	// MinSecretKeyLen is the minimum length for HS256 secret key.
	MinSecretKeyLen = 32
	// DefaultTTL is used when Config.TTL is not set.
	DefaultTTL = 8 * time.Hour
)
