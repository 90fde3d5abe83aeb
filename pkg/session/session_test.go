package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/borealis-data/borealis/pkg/config"
	"github.com/borealis-data/borealis/pkg/errors"
	"github.com/borealis-data/borealis/pkg/testutil"
)

func validConfig() *config.Config {
	cfg := config.New()
	cfg.Account = "xy12345"
	cfg.User = "loader"
	cfg.Database = "ANALYTICS"
	cfg.Schema = "PUBLIC"
	return cfg
}

func TestOpenRejectsInvalidConfig(t *testing.T) {
	ctx, cancel := testutil.TestContext(t)
	defer cancel()

	_, err := Open(ctx, config.New(), WithLogger(testutil.TestLogger(t)))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))
}

func TestOpenRejectsUnknownMapper(t *testing.T) {
	ctx, cancel := testutil.TestContext(t)
	defer cancel()

	cfg := validConfig()
	cfg.KeyMapper = "kebab"

	_, err := Open(ctx, cfg, WithLogger(testutil.TestLogger(t)))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))
}
