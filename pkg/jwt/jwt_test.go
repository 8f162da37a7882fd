package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestNew_RejectsShortSecret(t *testing.T) {
	_, err := New(Config{SecretKey: "short"})
	assert.Error(t, err)
}

func TestGenerateAndVerify(t *testing.T) {
	m, err := New(Config{SecretKey: testSecret, Issuer: "pokedex-srv", TTL: time.Hour})
	require.NoError(t, err)

	token, exp, err := m.GenerateToken(Subject{UserID: "u-1", Username: "oak", Role: "ADMIN", IsAdmin: true})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	p, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", p.UserID)
	assert.Equal(t, "oak", p.Username)
	assert.True(t, p.IsAdmin)
	assert.Equal(t, "pokedex-srv", p.Issuer)
}

func TestVerify_WrongSecret(t *testing.T) {
	m1, _ := New(Config{SecretKey: testSecret})
	m2, _ := New(Config{SecretKey: testSecret + "x"})

	token, _, err := m1.GenerateToken(Subject{UserID: "u-1"})
	require.NoError(t, err)

	_, err = m2.Verify(token)
	assert.Error(t, err)
}

func TestVerify_Expired(t *testing.T) {
	m, _ := New(Config{SecretKey: testSecret, TTL: -time.Minute})
	// negative TTL falls back to the default, so build an expired manager by hand
	m.ttl = -time.Minute

	token, _, err := m.GenerateToken(Subject{UserID: "u-1"})
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.Error(t, err)
}

func TestVerify_Audience(t *testing.T) {
	web, err := New(Config{SecretKey: testSecret, Audience: []string{"pokedex-web"}})
	require.NoError(t, err)
	admin, err := New(Config{SecretKey: testSecret, Audience: []string{"pokedex-admin"}})
	require.NoError(t, err)
	open, err := New(Config{SecretKey: testSecret})
	require.NoError(t, err)

	token, _, err := web.GenerateToken(Subject{UserID: "u-1"})
	require.NoError(t, err)

	_, err = web.Verify(token)
	assert.NoError(t, err)
	_, err = admin.Verify(token)
	assert.Error(t, err)

	noAud, _, err := open.GenerateToken(Subject{UserID: "u-1"})
	require.NoError(t, err)
	_, err = web.Verify(noAud)
	assert.Error(t, err)
}
