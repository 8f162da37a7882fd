package encrypter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	e := New(MinCost)

	hash, err := e.HashPassword("pikachu!")
	require.NoError(t, err)
	assert.NotEqual(t, "pikachu!", hash)
	assert.True(t, e.CheckPasswordHash("pikachu!", hash))
	assert.False(t, e.CheckPasswordHash("raichu!", hash))
	assert.False(t, e.CheckPasswordHash("pikachu!", ""))

	_, err = e.HashPassword("")
	assert.ErrorIs(t, err, ErrEmptyPassword)

	_, err = e.HashPassword(strings.Repeat("a", 73))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestNew_CostFallback(t *testing.T) {
	assert.Equal(t, DefaultCost, New(0).(*implEncrypter).cost)
	assert.Equal(t, DefaultCost, New(MaxCost+1).(*implEncrypter).cost)
	assert.Equal(t, MinCost, New(MinCost).(*implEncrypter).cost)
}
