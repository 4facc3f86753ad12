// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDSN = "postgres://kaamelott:secret@db:5432/kaamelott?sslmode=disable"

func TestNewPoolConfig_Defaults(t *testing.T) {
	poolConfig, err := newPoolConfig(testDSN, PoolOptions{})
	require.NoError(t, err)

	assert.EqualValues(t, defaultMaxConns, poolConfig.MaxConns)
	assert.EqualValues(t, defaultMinConns, poolConfig.MinConns)
	assert.Equal(t, "30000", poolConfig.ConnConfig.RuntimeParams["statement_timeout"])
	assert.Equal(t, "kaamelott", poolConfig.ConnConfig.Database)
}

func TestNewPoolConfig_MinNeverExceedsMax(t *testing.T) {
	poolConfig, err := newPoolConfig(testDSN, PoolOptions{MaxConns: 3, MinConns: 8})
	require.NoError(t, err)

	assert.EqualValues(t, 3, poolConfig.MaxConns)
	assert.EqualValues(t, 3, poolConfig.MinConns)
}

func TestNewPoolConfig_InvalidDSN(t *testing.T) {
	_, err := newPoolConfig("postgres://db:notaport/kaamelott", PoolOptions{})
	assert.ErrorContains(t, err, "postgres: invalid DSN")
}
