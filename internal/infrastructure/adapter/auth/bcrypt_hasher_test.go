package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher()

	t.Run("hash and compare", func(t *testing.T) {
		hash, err := hasher.Hash("secret")

		require.NoError(t, err)
		assert.NotEqual(t, "secret", hash)
		assert.True(t, strings.HasPrefix(hash, "$2a$"))
		assert.True(t, hasher.Compare(hash, "secret"))
	})

	t.Run("wrong password does not match", func(t *testing.T) {
		hash, err := hasher.Hash("secret")

		require.NoError(t, err)
		assert.False(t, hasher.Compare(hash, "Secret"))
		assert.False(t, hasher.Compare(hash, ""))
	})

	t.Run("same password hashes differently", func(t *testing.T) {
		first, err := hasher.Hash("secret")
		require.NoError(t, err)

		second, err := hasher.Hash("secret")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("comparing against garbage fails", func(t *testing.T) {
		assert.False(t, hasher.Compare("not-a-bcrypt-hash", "secret"))
	})
}
