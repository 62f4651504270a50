// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the schema of the server database and of the
// client account cache and applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

// Dialect selects one of the embedded migration sets.
type Dialect string

const (
	// Postgres is the server schema: users and vault_items.
	Postgres Dialect = "postgres"
	// SQLite is the client schema: the cached accounts table.
	SQLite Dialect = "sqlite3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var errNilDB = errors.New("migration error: db is nil")

var migrationDirs = map[Dialect]string{
	Postgres: "postgres",
	SQLite:   "sqlite",
}

// Migrate applies every pending migration of dialect to db.
//
// goose keeps its base filesystem and dialect in package globals, so
// concurrent calls with different dialects are not supported.
func Migrate(db *sql.DB, dialect Dialect) error {
	if db == nil {
		return errNilDB
	}

	dir, ok := migrationDirs[dialect]
	if !ok {
		return fmt.Errorf("migration error: unsupported dialect %q", dialect)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(string(dialect)); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
