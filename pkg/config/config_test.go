package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/borealis-data/borealis/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "borealis.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("BOREALIS_TEST_PASSWORD", "hunter2")

	path := writeConfig(t, `
account: xy12345
user: loader
password: ${BOREALIS_TEST_PASSWORD}
database: ANALYTICS
schema: PUBLIC
warehouse: LOAD_WH
key_mapper: camel-upper
timeouts:
  login: 10s
  request: 5s
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "xy12345", cfg.Account)
	assert.Equal(t, "hunter2", cfg.Password)
	assert.Equal(t, "camel-upper", cfg.KeyMapper)
	assert.Equal(t, 10*time.Second, cfg.Timeouts.Login)
	assert.Equal(t, 5*time.Second, cfg.Timeouts.Request)
	require.NoError(t, cfg.Validate())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
account: xy12345
user: loader
database: ANALYTICS
schema: PUBLIC
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 60*time.Second, cfg.Timeouts.Login)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadBadDuration(t *testing.T) {
	path := writeConfig(t, `
account: xy12345
timeouts:
  login: soon
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))
}

func TestFromMap(t *testing.T) {
	cfg, err := FromMap(map[string]string{
		"account":  "xy12345",
		"user":     "loader",
		"password": "hunter2",
		"database": "ANALYTICS",
		"schema":   "PUBLIC",
	})
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "ANALYTICS", cfg.Database)
}

func TestFromMapUnknownKey(t *testing.T) {
	_, err := FromMap(map[string]string{"acount": "typo"})
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))
}

func TestValidate(t *testing.T) {
	cfg := New()
	require.Error(t, cfg.Validate())

	cfg.Account = "xy12345"
	cfg.User = "loader"
	cfg.Database = "ANALYTICS"
	require.Error(t, cfg.Validate())

	cfg.Schema = "PUBLIC"
	require.NoError(t, cfg.Validate())
}

func TestRedacted(t *testing.T) {
	cfg := New()
	cfg.Password = "hunter2"

	red := cfg.Redacted()
	assert.Equal(t, "****", red.Password)
	// The original stays intact.
	assert.Equal(t, "hunter2", cfg.Password)

	// No secret, nothing to mask.
	assert.Equal(t, "", New().Redacted().Password)
}
