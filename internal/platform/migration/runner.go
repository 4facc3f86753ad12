// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package migration applies the catalogue schema with golang-migrate.
//
// Migrations are read from the embedded set by default. A directory on disk
// takes precedence when configured, which lets operators ship hotfix SQL
// without rebuilding.
package migration

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	// Registers the "pgx5" database scheme.
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	// Registers the "file" source scheme.
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/taibuivan/kaamelott/data/migrations"
)

// Options selects the migration source.
type Options struct {
	// Dir reads migrations from disk. The embedded set is used when empty.
	Dir     string
	Verbose bool
}

// RunUp applies all pending UP migrations. A dirty database is refused.
func RunUp(dsn string, options Options, logger *slog.Logger) error {
	migrator, err := open(dsn, options)
	if err != nil {
		return err
	}
	defer closeMigrator(migrator, logger)

	migrator.Log = &migrateLogger{logger: logger, verbose: options.Verbose}

	currentVersion, dirty, err := migrator.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("migration: failed to get current version: %w", err)
	}
	if dirty {
		return fmt.Errorf("migration: database is dirty at version %d", currentVersion)
	}

	logger.Info("migration_started",
		slog.Int("current_version", int(currentVersion)),
		slog.String("source", sourceName(options)),
	)

	if err := migrator.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("migration_already_up_to_date")
			return nil
		}
		return fmt.Errorf("migration: up failed: %w", err)
	}

	newVersion, _, _ := migrator.Version()
	logger.Info("migration_successful",
		slog.Int("from_version", int(currentVersion)),
		slog.Int("to_version", int(newVersion)),
	)
	return nil
}

func open(dsn string, options Options) (*migrate.Migrate, error) {
	databaseURL := pgx5DSN(dsn)

	if options.Dir != "" {
		migrator, err := migrate.New("file://"+options.Dir, databaseURL)
		if err != nil {
			return nil, fmt.Errorf("migration: failed to initialize: %w", err)
		}
		return migrator, nil
	}

	embedded, err := embeddedSource()
	if err != nil {
		return nil, err
	}
	migrator, err := migrate.NewWithSourceInstance("iofs", embedded, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("migration: failed to initialize: %w", err)
	}
	return migrator, nil
}

func embeddedSource() (source.Driver, error) {
	driver, err := iofs.New(migrations.Files, ".")
	if err != nil {
		return nil, fmt.Errorf("migration: embedded source: %w", err)
	}
	return driver, nil
}

func sourceName(options Options) string {
	if options.Dir != "" {
		return options.Dir
	}
	return "embedded"
}

func closeMigrator(migrator *migrate.Migrate, logger *slog.Logger) {
	sourceErr, databaseErr := migrator.Close()
	if sourceErr != nil {
		logger.Error("migration_source_close_failed", slog.Any("error", sourceErr))
	}
	if databaseErr != nil {
		logger.Error("migration_db_close_failed", slog.Any("error", databaseErr))
	}
}

// pgx5DSN rewrites postgres:// URLs to the pgx5:// scheme the driver registers.
func pgx5DSN(dsn string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if rest, found := strings.CutPrefix(dsn, prefix); found {
			return "pgx5://" + rest
		}
	}
	return dsn
}

type migrateLogger struct {
	logger  *slog.Logger
	verbose bool
}

func (l *migrateLogger) Printf(format string, args ...any) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l *migrateLogger) Verbose() bool {
	return l.verbose
}
