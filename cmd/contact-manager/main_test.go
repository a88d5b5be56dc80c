package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseCLI(t *testing.T, args ...string) CLI {
	t.Helper()
	var cli CLI
	parser, err := kong.New(&cli, kong.Vars{"version": "test", "default_config": "contacts.yaml"})
	require.NoError(t, err)
	_, err = parser.Parse(args)
	require.NoError(t, err)
	return cli
}

func TestLoadConfig_FlagsOverrideFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "contacts.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("database:\n  path: from-file.db\nlog:\n  level: warn\n"), 0o644))
	t.Setenv("CONTACTS_DB_PATH", "from-env.db")
	t.Setenv("CONTACTS_LOG_LEVEL", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("DEBUG", "")

	cli := parseCLI(t, "--config", cfgPath, "--db", filepath.Join(dir, "from-flag.db"), "--json-logs")
	cfg, err := loadConfig(cli)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "from-flag.db"), cfg.Database.Path)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.True(t, cfg.Log.JSON)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CONTACTS_DB_PATH", "from-env.db")

	cli := parseCLI(t, "--config", filepath.Join(dir, "absent.yaml"), "--log-level", "debug")
	cfg, err := loadConfig(cli)
	require.NoError(t, err)

	assert.Equal(t, "from-env.db", cfg.Database.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_RejectsBadFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "contacts.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("unknown: true\n"), 0o644))

	_, err := loadConfig(parseCLI(t, "--config", cfgPath))

	assert.Error(t, err)
}

func TestLoadConfig_RejectsUnknownLogLevel(t *testing.T) {
	cli := parseCLI(t, "--config", filepath.Join(t.TempDir(), "absent.yaml"), "--log-level", "loud")

	_, err := loadConfig(cli)

	assert.Error(t, err)
}
