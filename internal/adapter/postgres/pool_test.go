package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creditodds/creditodds-api/internal/config"
)

func TestPoolConfig(t *testing.T) {
	t.Parallel()

	cfg, err := poolConfig(config.DatabaseConfig{
		DSN:             "postgres://u:p@localhost:5432/creditodds",
		MaxConns:        8,
		MinConns:        2,
		MaxConnLifetime: time.Hour,
	})
	require.NoError(t, err)

	assert.Equal(t, int32(8), cfg.MaxConns)
	assert.Equal(t, int32(2), cfg.MinConns)
	assert.Equal(t, time.Hour, cfg.MaxConnLifetime)
	assert.Equal(t, "creditodds-api", cfg.ConnConfig.RuntimeParams["application_name"])
}

func TestPoolConfig_MinAboveMaxIgnored(t *testing.T) {
	t.Parallel()

	cfg, err := poolConfig(config.DatabaseConfig{
		DSN:      "postgres://u:p@localhost:5432/creditodds",
		MaxConns: 2,
		MinConns: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, int32(0), cfg.MinConns)
}

func TestPoolConfig_BadDSN(t *testing.T) {
	t.Parallel()

	_, err := poolConfig(config.DatabaseConfig{DSN: "postgres://%zz"})
	assert.Error(t, err)
}
