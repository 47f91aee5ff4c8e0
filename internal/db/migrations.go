package db

import (
	"database/sql"
	"fmt"
)

// columnMigration adds a single column to an existing table. Additions are
// checked against PRAGMA table_info first so the migration is idempotent and
// safe to run against stores created by any prior release.
type columnMigration struct {
	table  string
	column string
	decl   string
}

// columnMigrations is applied in order after schema creation.
// Append new migrations at the end.
var columnMigrations = []columnMigration{
	{"inventory", "deleted", "INTEGER NOT NULL DEFAULT 0"},
	{"inventory", "deleted_at", "DATETIME"},
	{"invoices", "deleted", "INTEGER NOT NULL DEFAULT 0"},
	{"invoices", "deleted_at", "DATETIME"},
}

// Migrate ensures the base schema exists and applies the additive column
// migrations for soft-delete support.
func Migrate(db *sql.DB) error {
	if err := EnsureSchema(db); err != nil {
		return err
	}

	for _, m := range columnMigrations {
		has, err := hasColumn(db, m.table, m.column)
		if err != nil {
			return err
		}
		if has {
			continue
		}
		stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", m.table, m.column, m.decl)
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("adding column %s.%s: %w", m.table, m.column, err)
		}
	}

	return nil
}

// hasColumn reports whether a table already has the named column.
func hasColumn(db *sql.DB, table, column string) (bool, error) {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false, fmt.Errorf("reading table info for %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid        int
			name, typ  string
			notNull    int
			defaultVal sql.NullString
			pk         int
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &defaultVal, &pk); err != nil {
			return false, fmt.Errorf("scanning table info for %s: %w", table, err)
		}
		if name == column {
			return true, nil
		}
	}
	return false, rows.Err()
}
