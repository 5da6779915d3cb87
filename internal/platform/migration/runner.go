// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package migration brings the catalog schema up to date.

The API server runs it before accepting traffic and catalogctl exposes it
as "migrate up". Both go through [RunUp], so the version that ends up in
the log is the same regardless of the entry point.
*/
package migration

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Options selects the database and migration files for [RunUp].
type Options struct {
	// DatabaseURL is a postgres:// or postgresql:// URL. pgx5:// is accepted as is.
	DatabaseURL string

	// Path is the directory holding the NNNNNN_name.{up,down}.sql files.
	Path string

	// Verbose forwards golang-migrate's per-file progress to the logger.
	Verbose bool
}

/*
RunUp applies every pending migration of the catalog schema.

Description: A dirty schema (a previous run failed halfway) is refused
rather than retried. The resulting schema version is always logged, also
when nothing had to be applied.

Parameters:
  - opts: Options
  - logger: *slog.Logger

Returns:
  - error: Initialization, dirty state or migration failures
*/
func RunUp(opts Options, logger *slog.Logger) error {
	migrator, err := migrate.New("file://"+opts.Path, convertToPgx5DSN(opts.DatabaseURL))
	if err != nil {
		return fmt.Errorf("migration: failed to initialize: %w", err)
	}
	defer func() {
		sourceErr, databaseErr := migrator.Close()
		if err := errors.Join(sourceErr, databaseErr); err != nil {
			logger.Error("migration_close_failed", slog.Any("error", err))
		}
	}()

	migrator.Log = newMigrateLogger(logger, opts.Verbose)

	fromVersion, dirty, err := schemaVersion(migrator)
	if err != nil {
		return err
	}
	if dirty {
		return fmt.Errorf("migration: catalog schema is dirty at version %d, fix it by hand and force the version", fromVersion)
	}

	logger.Info("catalog_schema_migrating", slog.Uint64("from_version", uint64(fromVersion)), slog.String("path", opts.Path))

	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration: up failed: %w", err)
	}

	toVersion, _, err := schemaVersion(migrator)
	if err != nil {
		return err
	}

	logger.Info("catalog_schema_version",
		slog.Uint64("version", uint64(toVersion)),
		slog.Bool("changed", toVersion != fromVersion),
	)
	return nil
}

// schemaVersion reports version 0 for a database that was never migrated.
func schemaVersion(migrator *migrate.Migrate) (uint, bool, error) {
	version, dirty, err := migrator.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("migration: failed to read schema version: %w", err)
	}
	return version, dirty, nil
}

// convertToPgx5DSN rewrites postgres URLs to the pgx5 scheme the golang-migrate driver registers.
// Keyword/value DSNs are returned untouched.
func convertToPgx5DSN(dsn string) string {
	for _, scheme := range []string{"postgres://", "postgresql://"} {
		if rest, ok := strings.CutPrefix(dsn, scheme); ok {
			return "pgx5://" + rest
		}
	}
	return dsn
}

// # Logger Bridge

// migrateLogger adapts the golang-migrate logger to slog.
type migrateLogger struct {
	logger  *slog.Logger
	verbose bool
}

func newMigrateLogger(logger *slog.Logger, verbose bool) *migrateLogger {
	return &migrateLogger{logger: logger.With(slog.String("component", "migrate")), verbose: verbose}
}

// Printf implements migrate.Logger. golang-migrate terminates its lines with a newline.
func (bridge *migrateLogger) Printf(format string, args ...any) {
	bridge.logger.Info(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

// Verbose implements migrate.Logger.
func (bridge *migrateLogger) Verbose() bool {
	return bridge.verbose
}
