// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/catalog/internal/platform/constants"
)

/*
TestNewPoolConfig checks the catalog pool settings without connecting.
*/
func TestNewPoolConfig(t *testing.T) {
	poolConfig, err := newPoolConfig("postgres://catalog:secret@db:5432/catalog?sslmode=disable")
	require.NoError(t, err)

	assert.Equal(t, int32(maxConns), poolConfig.MaxConns)
	assert.Equal(t, int32(minConns), poolConfig.MinConns)
	assert.Equal(t, connectTimeout, poolConfig.ConnConfig.ConnectTimeout)
	assert.Equal(t, "catalog", poolConfig.ConnConfig.Database)
	assert.Equal(t, constants.AppName, poolConfig.ConnConfig.RuntimeParams["application_name"])
	assert.Equal(t, "25000", poolConfig.ConnConfig.RuntimeParams["statement_timeout"])
}

/*
TestNewPoolConfig_KeepsApplicationName leaves an explicit application_name alone.
*/
func TestNewPoolConfig_KeepsApplicationName(t *testing.T) {
	poolConfig, err := newPoolConfig("postgres://catalog@db/catalog?application_name=catalog-report")
	require.NoError(t, err)

	assert.Equal(t, "catalog-report", poolConfig.ConnConfig.RuntimeParams["application_name"])
}

/*
TestNewPoolConfig_InvalidDSN reports parse failures.
*/
func TestNewPoolConfig_InvalidDSN(t *testing.T) {
	_, err := newPoolConfig("postgres://catalog@db:notaport/catalog")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres: invalid DSN")
}
