// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package postgres opens the pgx pool shared by the catalog repositories.
//
// # Workload
//
// The catalog is an administration backend: a handful of operators, reads
// that scan a whole table (the category tree, the country list) and short
// single-row writes. The pool is therefore small, and every session is
// tagged with the application name so it can be told apart in
// pg_stat_activity from the migration and catalogctl connections.
package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/catalog/internal/platform/constants"
)

const (
	// maxConns covers the handful of concurrent admin requests plus health checks.
	maxConns          = 10
	minConns          = 2
	maxConnLifetime   = 30 * time.Minute
	maxConnIdleTime   = 5 * time.Minute
	healthCheckPeriod = 1 * time.Minute
	connectTimeout    = 5 * time.Second
	pingTimeout       = 2 * time.Second
)

// statementTimeout stops a query before the HTTP request that issued it times out.
var statementTimeout = constants.GlobalRequestTimeout - 5*time.Second

/*
NewPool creates the pool and verifies that the database answers.

Parameters:
  - ctx: context.Context (Bounds the initial connection)
  - dsn: string (postgres:// URL or keyword/value DSN)
  - logger: *slog.Logger

Returns:
  - *pgxpool.Pool: A connected pool
  - error: DSN, connection or ping failures
*/
func NewPool(ctx context.Context, dsn string, logger *slog.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := newPoolConfig(dsn)
	if err != nil {
		return nil, err
	}

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(connectCtx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to create pool: %w", err)
	}

	if err := Ping(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Info("postgres_pool_connected",
		slog.String("database", poolConfig.ConnConfig.Database),
		slog.Int("max_conns", int(poolConfig.MaxConns)),
		slog.Duration("statement_timeout", statementTimeout),
	)

	return pool, nil
}

// newPoolConfig parses dsn and applies the catalog pool settings.
// Session parameters travel in the startup packet, so no per-connection round trip is needed.
func newPoolConfig(dsn string) (*pgxpool.Config, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: invalid DSN: %w", err)
	}

	poolConfig.MaxConns = maxConns
	poolConfig.MinConns = minConns
	poolConfig.MaxConnLifetime = maxConnLifetime
	poolConfig.MaxConnIdleTime = maxConnIdleTime
	poolConfig.HealthCheckPeriod = healthCheckPeriod
	poolConfig.ConnConfig.ConnectTimeout = connectTimeout

	runtime := poolConfig.ConnConfig.RuntimeParams
	if _, ok := runtime["application_name"]; !ok {
		runtime["application_name"] = constants.AppName
	}
	runtime["statement_timeout"] = strconv.FormatInt(statementTimeout.Milliseconds(), 10)

	return poolConfig, nil
}

// Ping verifies that the PostgreSQL connection pool is healthy.
func Ping(ctx context.Context, pool *pgxpool.Pool) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		return fmt.Errorf("postgres: ping failed: %w", err)
	}

	return nil
}
