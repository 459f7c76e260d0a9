package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, int32(8188), cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, 2, cfg.Global.ShutdownTimeoutInSeconds)
	assert.Equal(t, DefaultDatabasePath, cfg.Database.Path)
	assert.Equal(t, 30, cfg.Journal.RetentionDays)
	assert.True(t, cfg.Journal.CleanupEnabled)
	assert.Equal(t, "0 * * * *", cfg.Journal.CleanupSchedule)
	assert.False(t, cfg.Demo.Seed)
	assert.False(t, cfg.Demo.ReadOnly)
}

func TestNewConfig_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_PATH", "/tmp/journal.db")
	t.Setenv("JOURNAL_RETENTION_DAYS", "7")
	t.Setenv("JOURNAL_CLEANUP_ENABLED", "false")
	t.Setenv("DEMO_SEED", "true")
	t.Setenv("DEMO_READ_ONLY", "true")

	cfg := NewConfig()

	assert.Equal(t, int32(9000), cfg.HTTP.Port)
	assert.Equal(t, "/tmp/journal.db", cfg.Database.Path)
	assert.Equal(t, 7, cfg.Journal.RetentionDays)
	assert.False(t, cfg.Journal.CleanupEnabled)
	assert.True(t, cfg.Demo.Seed)
	assert.True(t, cfg.Demo.ReadOnly)
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LENDING_TEST_DOTENV=from-file\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("LENDING_TEST_DOTENV") })

	loadDotEnv(path)

	assert.Equal(t, "from-file", os.Getenv("LENDING_TEST_DOTENV"))
}

func TestLoadDotEnv_DoesNotOverrideEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LENDING_TEST_OVERRIDE=from-file\n"), 0o600))
	t.Setenv("LENDING_TEST_OVERRIDE", "from-env")

	loadDotEnv(path)

	assert.Equal(t, "from-env", os.Getenv("LENDING_TEST_OVERRIDE"))
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	assert.NotPanics(t, func() {
		loadDotEnv(filepath.Join(t.TempDir(), "missing.env"))
	})
}
