package cryptox

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_MatchesSaltedDigest(t *testing.T) {
	sum := sha256.Sum256([]byte("secret123school-platform-salt"))
	want := hex.EncodeToString(sum[:])

	assert.Equal(t, want, HashPassword("secret123"))
}

func TestHashPassword_Properties(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"empty", ""},
		{"ascii", "secret123"},
		{"unicode", "пароль-密码"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := HashPassword(tt.password)
			assert.Len(t, h, 64)
			assert.Regexp(t, "^[0-9a-f]{64}$", h)
			assert.Equal(t, h, HashPassword(tt.password), "hash must be deterministic")
		})
	}
}

func TestHashPassword_DifferentInputsDiffer(t *testing.T) {
	assert.NotEqual(t, HashPassword("secret123"), HashPassword("secret124"))
}

func TestEqualHashes(t *testing.T) {
	h := HashPassword("x")
	assert.True(t, EqualHashes(h, HashPassword("x")))
	assert.False(t, EqualHashes(h, HashPassword("y")))
	assert.False(t, EqualHashes(h, ""))
}

func TestDeriveSigningKey(t *testing.T) {
	k1, err := DeriveSigningKey([]byte("top-secret"), "session")
	require.NoError(t, err)
	require.Len(t, k1, SigningKeySize)

	k2, err := DeriveSigningKey([]byte("top-secret"), "session")
	require.NoError(t, err)
	assert.Equal(t, k1, k2)

	k3, err := DeriveSigningKey([]byte("top-secret"), "other")
	require.NoError(t, err)
	assert.NotEqual(t, k1, k3)
}

func TestDeriveSigningKey_EmptySecret(t *testing.T) {
	_, err := DeriveSigningKey(nil, "session")
	assert.ErrorIs(t, err, ErrEmptySecret)
}
