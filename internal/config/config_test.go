package config

import (
	"os"
	"path/filepath"
	"testing"

	"contact-manager/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "contacts.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "contacts.db", cfg.Database.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, float32(800), cfg.Window.Width)
	assert.Equal(t, float32(500), cfg.Window.Height)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeConfig(t, `
database:
  path: /tmp/people.db
log:
  level: debug
  json: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/people.db", cfg.Database.Path)
	assert.Equal(t, logger.DebugLevel, cfg.LogLevel())
	assert.True(t, cfg.Log.JSON)
	assert.Equal(t, float32(800), cfg.Window.Width, "unset values keep defaults")
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), *cfg)
}

func TestLoad_CommentOnlyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, "# nothing here\n"))
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), *cfg)
}

func TestLoad_UnknownField(t *testing.T) {
	_, err := Load(writeConfig(t, "database:\n  driver: postgres\n"))

	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "database: [unterminated\n"))

	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("CONTACTS_DB_PATH", "/data/contacts.db")
	t.Setenv("CONTACTS_LOG_LEVEL", "warn")
	t.Setenv("LOG_LEVEL", "error")

	cfg := DefaultConfig()
	cfg.ApplyEnv()

	assert.Equal(t, "/data/contacts.db", cfg.Database.Path)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestApplyEnv_DebugFlag(t *testing.T) {
	t.Setenv("CONTACTS_LOG_LEVEL", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("DEBUG", "1")

	cfg := DefaultConfig()
	cfg.ApplyEnv()

	assert.Equal(t, logger.DebugLevel, cfg.LogLevel())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty db path", func(c *Config) { c.Database.Path = "" }},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }},
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"negative height", func(c *Config) { c.Window.Height = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
