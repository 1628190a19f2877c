package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 10, cfg.Report.LowStockThreshold)
	assert.Equal(t, 10*time.Minute, cfg.I18n.CacheTTL)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.False(t, cfg.Redis.Enabled())
	assert.False(t, cfg.Storage.Enabled())
	assert.Equal(t, 2, cfg.DB.MinConns)
	assert.Equal(t, time.Hour, cfg.DB.ConnMaxLifetime)
	assert.Equal(t, 5*time.Second, cfg.DB.ConnectTimeout)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("REPORT_LOW_STOCK_THRESHOLD", "25")
	t.Setenv("I18N_CACHE_TTL", "30s")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("DB_AUTO_MIGRATE", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
	assert.Equal(t, 25, cfg.Report.LowStockThreshold)
	assert.Equal(t, 30*time.Second, cfg.I18n.CacheTTL)
	assert.True(t, cfg.Redis.Enabled())
	assert.True(t, cfg.Migrations.AutoMigrate)
}

func TestLoad_MinConnsAboveMaxRejected(t *testing.T) {
	t.Setenv("DB_MAX_CONNS", "4")
	t.Setenv("DB_MIN_CONNS", "5")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_NegativeThresholdRejected(t *testing.T) {
	t.Setenv("REPORT_LOW_STOCK_THRESHOLD", "-1")

	_, err := Load()
	assert.Error(t, err)
}

func TestDBConfig_DSNEncodesPassword(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss/w:rd", DBName: "stock", SSLMode: "disable"}

	assert.Equal(t, "postgres://app:p%40ss%2Fw%3Ard@db:5432/stock?sslmode=disable", c.DSN())
	assert.Equal(t, c.DSN(), c.ConnectionString())

	c.DatabaseURL = "postgres://override"
	assert.Equal(t, "postgres://override", c.ConnectionString())
}
