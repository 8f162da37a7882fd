package scope

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewScope(t *testing.T) {
	t.Run("falls back to subject", func(t *testing.T) {
		sc := NewScope(Payload{Subject: "u-1", Username: "ash", IsAdmin: true})
		assert.Equal(t, "u-1", sc.UserID)
		assert.Equal(t, "ash", sc.Username)
		assert.True(t, sc.IsAdmin)
	})

	t.Run("prefers user id", func(t *testing.T) {
		sc := NewScope(Payload{UserID: "u-2", Subject: "u-1"})
		assert.Equal(t, "u-2", sc.UserID)
		assert.False(t, sc.IsAdmin)
	})
}

func TestScopeContext(t *testing.T) {
	ctx := context.Background()
	_, ok := GetScopeFromContext(ctx)
	assert.False(t, ok)

	ctx = SetScopeToContext(ctx, NewScope(Payload{UserID: "u-3"}))
	sc, ok := GetScopeFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "u-3", sc.UserID)
}
