package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "eventease", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.False(t, cfg.IsProduction())

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, int32(20), cfg.Database.MaxConns)

	assert.Equal(t, 24*time.Hour, cfg.JWT.TokenTTL)
	assert.Equal(t, 10*time.Second, cfg.Notify.Timeout)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATABASE_DBNAME", "eventease_test")
	t.Setenv("JWT_TOKEN_TTL", "1h")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "eventease_test", cfg.Database.DBName)
	assert.Equal(t, time.Hour, cfg.JWT.TokenTTL)
}

func TestLoadRejectsDefaultSecretInProduction(t *testing.T) {
	t.Setenv("APP_ENVIRONMENT", "production")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT secret")
}

func TestLoadAcceptsRealSecretInProduction(t *testing.T) {
	t.Setenv("APP_ENVIRONMENT", "production")
	t.Setenv("JWT_SECRET", "a-real-deployment-secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}

func TestValidateRejectsBadPort(t *testing.T) {
	t.Setenv("SERVER_PORT", "70000")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid server port")
}

func TestDatabaseDSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "app",
		Password: "s3cret",
		DBName:   "eventease",
		SSLMode:  "require",
	}
	assert.Equal(t,
		"host=db.internal port=5433 user=app password=s3cret dbname=eventease sslmode=require",
		d.DSN(),
	)
}
