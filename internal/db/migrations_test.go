package db

import "testing"

func TestMigrateIsIdempotent(t *testing.T) {
	database, err := Open(":memory:")
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	defer database.Close()

	for i := 0; i < 3; i++ {
		if err := Migrate(database); err != nil {
			t.Fatalf("migrate run %d: %v", i+1, err)
		}
	}

	for _, col := range []string{"deleted", "deleted_at"} {
		for _, table := range []string{"inventory", "invoices"} {
			has, err := hasColumn(database, table, col)
			if err != nil {
				t.Fatalf("hasColumn(%s, %s): %v", table, col, err)
			}
			if !has {
				t.Errorf("expected column %s.%s after migration", table, col)
			}
		}
	}
}

func TestMigrateUpgradesLegacyStore(t *testing.T) {
	database, err := Open(":memory:")
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	defer database.Close()

	// A store created before soft-delete support existed.
	_, err = database.Exec(`CREATE TABLE inventory (
		id INTEGER PRIMARY KEY,
		item_name TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		price REAL NOT NULL
	)`)
	if err != nil {
		t.Fatalf("creating legacy table: %v", err)
	}
	if _, err := database.Exec(
		`INSERT INTO inventory (item_name, quantity, price) VALUES ('Widget', 3, 1.5)`,
	); err != nil {
		t.Fatalf("seeding legacy row: %v", err)
	}

	if err := Migrate(database); err != nil {
		t.Fatalf("migrating legacy store: %v", err)
	}

	// Pre-existing rows must come out of the upgrade active.
	var deleted int
	err = database.QueryRow(`SELECT deleted FROM inventory WHERE item_name = 'Widget'`).Scan(&deleted)
	if err != nil {
		t.Fatalf("reading migrated row: %v", err)
	}
	if deleted != 0 {
		t.Errorf("expected migrated row to be active, got deleted = %d", deleted)
	}
}
