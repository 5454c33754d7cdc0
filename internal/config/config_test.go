package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	// Given: a config that only picks the storage
	path := writeConfig(t, "storage:\n  driver: memory\n")

	// When
	conf, err := Load(path)

	// Then: everything else falls back to defaults
	require.NoError(t, err)
	assert.Equal(t, "info", conf.LogLevel)
	assert.Equal(t, "9090", conf.HTTPPort)
	assert.Equal(t, "8080", conf.SocketPort)
	assert.Equal(t, StorageMemory, conf.Storage.Driver)
	assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
	assert.Equal(t, 5*time.Minute, conf.Session.IdleTimeout)
	assert.Equal(t, 64, conf.Session.QueueSize)
	assert.Equal(t, 3, conf.Game.MinPlayers)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "storage:\n  driver: redis\nsession:\n  idle-timeout: 1m\n")

	t.Setenv("STORAGE_DRIVER", "sqlite")
	t.Setenv("SESSION_IDLE_TIMEOUT", "30s")

	conf, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, StorageSQLite, conf.Storage.Driver)
	assert.Equal(t, 30*time.Second, conf.Session.IdleTimeout)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
		require.Error(t, err)
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, err := Load(writeConfig(t, "storage:\n  driver: postgres\n"))
		require.ErrorContains(t, err, "postgres")
	})

	t.Run("must load panics", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "nope.yml"))
		})
	})
}
