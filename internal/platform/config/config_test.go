// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kaamelott/internal/platform/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/kaamelott")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.True(t, cfg.IsDevelopment())
	assert.True(t, cfg.AutoMigrate)
	assert.False(t, cfg.AtomicCompositeWrites)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.EqualValues(t, 25, cfg.DBMaxConns)
	assert.False(t, cfg.CacheEnabled())
	assert.False(t, cfg.AuthEnabled())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/kaamelott")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("ATOMIC_COMPOSITE_WRITES", "true")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("DB_MAX_CONNS", "10")
	t.Setenv("JWT_PUBLIC_KEY_PATH", "/etc/kaamelott/jwt.pub")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.AtomicCompositeWrites)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.EqualValues(t, 10, cfg.DBMaxConns)
	assert.True(t, cfg.CacheEnabled())
	assert.True(t, cfg.AuthEnabled())
}

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := config.Load()

	assert.Error(t, err)
}
