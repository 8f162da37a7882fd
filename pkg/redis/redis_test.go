package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions(t *testing.T) {
	t.Run("discrete fields", func(t *testing.T) {
		opts, err := options(Config{Host: "cache", Port: 6380, Password: "pw", DB: 2})
		require.NoError(t, err)
		assert.Equal(t, "cache:6380", opts.Addr)
		assert.Equal(t, "pw", opts.Password)
		assert.Equal(t, 2, opts.DB)
		assert.Equal(t, DefaultPoolSize, opts.PoolSize)
	})

	t.Run("url wins", func(t *testing.T) {
		opts, err := options(Config{URL: "redis://:secret@db:6379/3", Host: "ignored", PoolSize: 4})
		require.NoError(t, err)
		assert.Equal(t, "db:6379", opts.Addr)
		assert.Equal(t, "secret", opts.Password)
		assert.Equal(t, 3, opts.DB)
		assert.Equal(t, 4, opts.PoolSize)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := options(Config{Port: 6379})
		assert.ErrorIs(t, err, ErrHostRequired)

		_, err = options(Config{Host: "cache", Port: 70000})
		assert.ErrorIs(t, err, ErrInvalidPort)

		_, err = options(Config{URL: "http://nope"})
		assert.Error(t, err)
	})
}
