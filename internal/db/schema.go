package db

import (
	"database/sql"
	"fmt"
)

// schema creates the base tables. The soft-delete columns on inventory and
// invoices are deliberately absent here: they were added to the format after
// the first release and are applied by Migrate so that pre-existing stores
// upgrade in place.
const schema = `
CREATE TABLE IF NOT EXISTS inventory (
    id        INTEGER PRIMARY KEY,
    item_name TEXT NOT NULL,
    quantity  INTEGER NOT NULL,
    price     REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS invoices (
    id             INTEGER PRIMARY KEY,
    supplier_name  TEXT NOT NULL,
    invoice_number TEXT NOT NULL,
    date           TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS users (
    id            INTEGER PRIMARY KEY,
    username      TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    role          TEXT NOT NULL CHECK (role IN ('admin', 'viewer'))
);

CREATE TABLE IF NOT EXISTS logs (
    id        INTEGER PRIMARY KEY,
    username  TEXT NOT NULL,
    action    TEXT NOT NULL,
    timestamp DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// EnsureSchema creates all base tables if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
