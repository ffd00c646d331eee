package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, c jwt.Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte("server-only-secret"))
	require.NoError(t, err)
	return s
}

func TestInspect_Claims(t *testing.T) {
	exp := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
	raw := sign(t, jwt.MapClaims{
		"sub":      "alice",
		"user_id":  7,
		"username": "alice",
		"exp":      exp.Unix(),
	})

	info, err := Inspect(raw)
	require.NoError(t, err)

	assert.Equal(t, "alice", info.Subject)
	assert.Equal(t, int64(7), info.UserID)
	assert.Equal(t, "alice", info.Username)
	assert.True(t, exp.Equal(info.ExpiresAt))
	assert.False(t, info.Expired(exp.Add(-time.Second)))
	assert.True(t, info.Expired(exp.Add(time.Second)))
}

func TestInspect_ExpiredStillDecodes(t *testing.T) {
	raw := sign(t, jwt.MapClaims{"sub": "bob", "exp": time.Now().Add(-time.Hour).Unix()})

	info, err := Inspect(raw)
	require.NoError(t, err)
	assert.Equal(t, "bob", info.Subject)
	assert.True(t, info.Expired(time.Now()))
}

func TestInspect_NoExpiry(t *testing.T) {
	info, err := Inspect(sign(t, jwt.MapClaims{"sub": "carol"}))
	require.NoError(t, err)
	assert.True(t, info.ExpiresAt.IsZero())
	assert.False(t, info.Expired(time.Now()))
}

func TestInspect_Opaque(t *testing.T) {
	for _, raw := range []string{"", "tok-a", "a.b.c"} {
		_, err := Inspect(raw)
		assert.ErrorIs(t, err, ErrOpaque, raw)
	}
}
