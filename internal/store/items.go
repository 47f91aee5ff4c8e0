package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Daancoria/inventoryapp/internal/model"
)

// Items are addressed by name, not id: the callers' contract is "the first
// active item called X". When duplicates exist the lowest id wins, which is
// what the MIN(id) subqueries below pin down.

// InsertItem creates a new active item.
func InsertItem(ctx context.Context, q DBTX, name string, quantity int, price float64) (*model.Item, error) {
	result, err := q.ExecContext(ctx,
		`INSERT INTO inventory (item_name, quantity, price) VALUES (?, ?, ?)`,
		name, quantity, price,
	)
	if err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting item id: %w", err)
	}

	return GetItem(ctx, q, id)
}

// GetItem returns an item by ID, or nil if it does not exist.
func GetItem(ctx context.Context, q DBTX, id int64) (*model.Item, error) {
	item := &model.Item{}
	err := q.QueryRowContext(ctx,
		`SELECT id, item_name, quantity, price, deleted, deleted_at
		 FROM inventory WHERE id = ?`, id,
	).Scan(&item.ID, &item.Name, &item.Quantity, &item.Price, &item.Deleted, &item.DeletedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	return item, nil
}

// UpdateItemByName sets quantity and price on the lowest-id active item with
// the given name. Returns false if no active item matches.
func UpdateItemByName(ctx context.Context, q DBTX, name string, quantity int, price float64) (bool, error) {
	result, err := q.ExecContext(ctx,
		`UPDATE inventory SET quantity = ?, price = ?
		 WHERE id = (SELECT MIN(id) FROM inventory WHERE item_name = ? AND deleted = 0)`,
		quantity, price, name,
	)
	if err != nil {
		return false, fmt.Errorf("updating item: %w", err)
	}
	return affected(result)
}

// SoftDeleteItemByName marks the lowest-id active item with the given name
// deleted and stamps deleted_at. Returns false if no active item matches.
func SoftDeleteItemByName(ctx context.Context, q DBTX, name string) (bool, error) {
	result, err := q.ExecContext(ctx,
		`UPDATE inventory SET deleted = 1, deleted_at = CURRENT_TIMESTAMP
		 WHERE id = (SELECT MIN(id) FROM inventory WHERE item_name = ? AND deleted = 0)`,
		name,
	)
	if err != nil {
		return false, fmt.Errorf("soft deleting item: %w", err)
	}
	return affected(result)
}

// RestoreItemByName clears the deleted flag and deleted_at on the lowest-id
// deleted item with the given name. Returns false if no deleted item matches.
func RestoreItemByName(ctx context.Context, q DBTX, name string) (bool, error) {
	result, err := q.ExecContext(ctx,
		`UPDATE inventory SET deleted = 0, deleted_at = NULL
		 WHERE id = (SELECT MIN(id) FROM inventory WHERE item_name = ? AND deleted = 1)`,
		name,
	)
	if err != nil {
		return false, fmt.Errorf("restoring item: %w", err)
	}
	return affected(result)
}

// PurgeItemByName permanently removes the lowest-id deleted item with the
// given name. Returns false if no deleted item matches.
func PurgeItemByName(ctx context.Context, q DBTX, name string) (bool, error) {
	result, err := q.ExecContext(ctx,
		`DELETE FROM inventory
		 WHERE id = (SELECT MIN(id) FROM inventory WHERE item_name = ? AND deleted = 1)`,
		name,
	)
	if err != nil {
		return false, fmt.Errorf("purging item: %w", err)
	}
	return affected(result)
}

// ListItems returns all items with the given deleted state, in insertion order.
func ListItems(ctx context.Context, q DBTX, deleted bool) ([]model.Item, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT id, item_name, quantity, price, deleted, deleted_at
		 FROM inventory WHERE deleted = ? ORDER BY id`, deleted,
	)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

// SearchItems returns active items whose name contains term,
// case-insensitively.
func SearchItems(ctx context.Context, q DBTX, term string) ([]model.Item, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT id, item_name, quantity, price, deleted, deleted_at
		 FROM inventory WHERE deleted = 0 AND lower(item_name) LIKE ? ORDER BY id`,
		"%"+strings.ToLower(term)+"%",
	)
	if err != nil {
		return nil, fmt.Errorf("searching items: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

// LowStockItems returns active items with quantity below threshold.
func LowStockItems(ctx context.Context, q DBTX, threshold int) ([]model.Item, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT id, item_name, quantity, price, deleted, deleted_at
		 FROM inventory WHERE deleted = 0 AND quantity < ? ORDER BY id`, threshold,
	)
	if err != nil {
		return nil, fmt.Errorf("listing low stock items: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

// ItemSummary aggregates count, total quantity and total value over the
// active items.
func ItemSummary(ctx context.Context, q DBTX) (model.Summary, error) {
	var s model.Summary
	err := q.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(quantity), 0), COALESCE(SUM(quantity * price), 0)
		 FROM inventory WHERE deleted = 0`,
	).Scan(&s.ItemCount, &s.TotalQuantity, &s.TotalValue)
	if err != nil {
		return model.Summary{}, fmt.Errorf("summarizing inventory: %w", err)
	}
	return s, nil
}

func scanItems(rows *sql.Rows) ([]model.Item, error) {
	var items []model.Item
	for rows.Next() {
		var item model.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Quantity, &item.Price, &item.Deleted, &item.DeletedAt); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// affected reports whether an exec touched at least one row.
func affected(result sql.Result) (bool, error) {
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reading affected rows: %w", err)
	}
	return n > 0, nil
}
