package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("secret de session obligatoire", func(t *testing.T) {
		t.Setenv("SESSION_SECRET", "")

		cfg, err := Load()
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("valeurs par défaut", func(t *testing.T) {
		t.Setenv("SESSION_SECRET", "secret-de-test")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, "127.0.0.1", cfg.ScyllaHosts)
		assert.Equal(t, "dungeonshelf", cfg.ScyllaKeyspace)
		assert.Equal(t, "localhost:6379", cfg.RedisHost)
	})

	t.Run("l'environnement prime sur les défauts", func(t *testing.T) {
		t.Setenv("SESSION_SECRET", "secret-de-test")
		t.Setenv("PORT", "9090")
		t.Setenv("SCYLLA_HOSTS", "10.0.0.1,10.0.0.2")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.Port)
		assert.Equal(t, "10.0.0.1,10.0.0.2", cfg.ScyllaHosts)
	})
}
