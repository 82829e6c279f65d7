package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	tests := []string{"secret", "p@ss w0rd", "ünïcode-パスワード"}

	for _, plain := range tests {
		hash, err := HashPassword(plain, bcrypt.MinCost)
		require.NoError(t, err)
		assert.NotEqual(t, plain, hash, "digest must not equal plaintext")
		assert.True(t, VerifyPassword(hash, plain), "digest must verify against %q", plain)
		assert.False(t, VerifyPassword(hash, plain+"x"))
	}
}

func TestHashPasswordSalted(t *testing.T) {
	a, err := HashPassword("same", bcrypt.MinCost)
	require.NoError(t, err)
	b, err := HashPassword("same", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestVerifyPasswordGarbageHash(t *testing.T) {
	assert.False(t, VerifyPassword("not-a-bcrypt-hash", "secret"))
	assert.False(t, VerifyPassword("", ""))
}
