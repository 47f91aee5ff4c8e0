package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Daancoria/inventoryapp/internal/model"
	"github.com/Daancoria/inventoryapp/internal/policy"
	"github.com/Daancoria/inventoryapp/internal/store"
)

// Inventory ledger. Items are addressed by name at this boundary; when
// duplicates exist the lowest-id row wins. Quantity and price are stored as
// given: the ledger deliberately does not floor quantities or reject
// negative prices.

// CreateItem adds a new active item and audits "Added item: {name}".
func (s *Service) CreateItem(ctx context.Context, sess model.Session, name string, quantity int, price float64) (*model.Item, error) {
	if err := authorize(sess, policy.OpItemCreate); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: item name is required", model.ErrValidation)
	}

	var item *model.Item
	err := s.withTx(ctx, func(tx store.DBTX) error {
		var err error
		item, err = store.InsertItem(ctx, tx, name, quantity, price)
		if err != nil {
			return storage(err)
		}
		if err := store.AppendLog(ctx, tx, sess.Username, "Added item: "+name); err != nil {
			return storage(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateItem sets quantity and price on the first active item named name.
func (s *Service) UpdateItem(ctx context.Context, sess model.Session, name string, quantity int, price float64) error {
	if err := authorize(sess, policy.OpItemUpdate); err != nil {
		return err
	}

	return s.withTx(ctx, func(tx store.DBTX) error {
		ok, err := store.UpdateItemByName(ctx, tx, name, quantity, price)
		if err != nil {
			return storage(err)
		}
		if !ok {
			return fmt.Errorf("%w: no active item named %q", model.ErrNotFound, name)
		}
		if err := store.AppendLog(ctx, tx, sess.Username, "Updated item: "+name); err != nil {
			return storage(err)
		}
		return nil
	})
}

// SoftDeleteItem moves the first active item named name to the recycle bin.
func (s *Service) SoftDeleteItem(ctx context.Context, sess model.Session, name string) error {
	if err := authorize(sess, policy.OpItemDelete); err != nil {
		return err
	}

	return s.withTx(ctx, func(tx store.DBTX) error {
		ok, err := store.SoftDeleteItemByName(ctx, tx, name)
		if err != nil {
			return storage(err)
		}
		if !ok {
			return fmt.Errorf("%w: no active item named %q", model.ErrNotFound, name)
		}
		if err := store.AppendLog(ctx, tx, sess.Username, "Soft deleted item: "+name); err != nil {
			return storage(err)
		}
		return nil
	})
}

// RestoreItem brings the first recycled item named name back to the active
// set. Restoring a name with no recycled match is a no-op success, and no
// audit entry is written since nothing changed.
func (s *Service) RestoreItem(ctx context.Context, sess model.Session, name string) error {
	if err := authorize(sess, policy.OpItemRestore); err != nil {
		return err
	}

	return s.withTx(ctx, func(tx store.DBTX) error {
		ok, err := store.RestoreItemByName(ctx, tx, name)
		if err != nil {
			return storage(err)
		}
		if !ok {
			return nil
		}
		if err := store.AppendLog(ctx, tx, sess.Username, "Restored item: "+name); err != nil {
			return storage(err)
		}
		return nil
	})
}

// PurgeItem permanently removes the first recycled item named name. This is
// irreversible; callers are expected to confirm with the user before calling.
func (s *Service) PurgeItem(ctx context.Context, sess model.Session, name string) error {
	if err := authorize(sess, policy.OpItemPurge); err != nil {
		return err
	}

	return s.withTx(ctx, func(tx store.DBTX) error {
		ok, err := store.PurgeItemByName(ctx, tx, name)
		if err != nil {
			return storage(err)
		}
		if !ok {
			return fmt.Errorf("%w: no recycled item named %q", model.ErrNotFound, name)
		}
		if err := store.AppendLog(ctx, tx, sess.Username, "Permanently deleted item: "+name); err != nil {
			return storage(err)
		}
		return nil
	})
}

// ListActiveItems returns all active items in insertion order.
func (s *Service) ListActiveItems(ctx context.Context, sess model.Session) ([]model.Item, error) {
	if err := authorize(sess, policy.OpItemList); err != nil {
		return nil, err
	}
	items, err := store.ListItems(ctx, s.db, false)
	if err != nil {
		return nil, storage(err)
	}
	return items, nil
}

// ListDeletedItems returns the recycle bin contents in insertion order.
func (s *Service) ListDeletedItems(ctx context.Context, sess model.Session) ([]model.Item, error) {
	if err := authorize(sess, policy.OpItemList); err != nil {
		return nil, err
	}
	items, err := store.ListItems(ctx, s.db, true)
	if err != nil {
		return nil, storage(err)
	}
	return items, nil
}

// SearchItems returns active items whose name contains term, ignoring case.
func (s *Service) SearchItems(ctx context.Context, sess model.Session, term string) ([]model.Item, error) {
	if err := authorize(sess, policy.OpItemSearch); err != nil {
		return nil, err
	}
	items, err := store.SearchItems(ctx, s.db, term)
	if err != nil {
		return nil, storage(err)
	}
	return items, nil
}

// Summary aggregates the active inventory: item count, total quantity and
// total value (sum of quantity times price).
func (s *Service) Summary(ctx context.Context, sess model.Session) (model.Summary, error) {
	if err := authorize(sess, policy.OpItemSummary); err != nil {
		return model.Summary{}, err
	}
	summary, err := store.ItemSummary(ctx, s.db)
	if err != nil {
		return model.Summary{}, storage(err)
	}
	return summary, nil
}

// LowStock returns active items below threshold. A threshold of zero or
// less falls back to the default.
func (s *Service) LowStock(ctx context.Context, sess model.Session, threshold int) ([]model.Item, error) {
	if err := authorize(sess, policy.OpItemSummary); err != nil {
		return nil, err
	}
	if threshold <= 0 {
		threshold = model.LowStockThreshold
	}
	items, err := store.LowStockItems(ctx, s.db, threshold)
	if err != nil {
		return nil, storage(err)
	}
	return items, nil
}
