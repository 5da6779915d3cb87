// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/taibuivan/catalog/internal/platform/migration"
)

var errMissingDatabaseURL = errors.New("database url is required (set DATABASE_URL or --database-url)")

func newMigrateCommand(opts *settings, logger *slog.Logger) *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database migrations",
	}

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if opts.DatabaseURL == "" {
				return errMissingDatabaseURL
			}
			return migration.RunUp(opts.migrationOptions(), logger)
		},
	})

	return migrateCmd
}

func (opts *settings) migrationOptions() migration.Options {
	return migration.Options{
		DatabaseURL: opts.DatabaseURL,
		Path:        opts.MigrationPath,
		Verbose:     opts.Verbose,
	}
}
