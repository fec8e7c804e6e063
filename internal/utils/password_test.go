package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("pw1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))
	assert.NotContains(t, hash, "pw1")

	// salt aléatoire : deux hashs du même mot de passe diffèrent
	hash2, err := HashPassword("pw1")
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("pw1")
	require.NoError(t, err)

	t.Run("bon mot de passe", func(t *testing.T) {
		ok, err := VerifyPassword("pw1", hash)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("mauvais mot de passe", func(t *testing.T) {
		ok, err := VerifyPassword("wrong", hash)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("hash malformé", func(t *testing.T) {
		ok, err := VerifyPassword("pw1", "pas-un-hash")
		assert.Error(t, err)
		assert.False(t, ok)
	})

	t.Run("hash d'un autre algorithme", func(t *testing.T) {
		ok, err := VerifyPassword("pw1", "$2a$10$abcdefghijklmnopqrstuv")
		assert.Error(t, err)
		assert.False(t, ok)
	})
}
