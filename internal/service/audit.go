package service

import (
	"context"

	"github.com/Daancoria/inventoryapp/internal/model"
	"github.com/Daancoria/inventoryapp/internal/policy"
	"github.com/Daancoria/inventoryapp/internal/store"
)

// Logs returns the audit trail, most recent entry first.
func (s *Service) Logs(ctx context.Context, sess model.Session) ([]model.LogEntry, error) {
	if err := authorize(sess, policy.OpLogView); err != nil {
		return nil, err
	}
	entries, err := store.ListLogs(ctx, s.db)
	if err != nil {
		return nil, storage(err)
	}
	return entries, nil
}

// ClearLogs empties the audit trail, then records the clear itself as the
// first entry of the fresh log. Both steps share one transaction.
func (s *Service) ClearLogs(ctx context.Context, sess model.Session) error {
	if err := authorize(sess, policy.OpLogClear); err != nil {
		return err
	}

	return s.withTx(ctx, func(tx store.DBTX) error {
		if err := store.ClearLogs(ctx, tx); err != nil {
			return storage(err)
		}
		if err := store.AppendLog(ctx, tx, sess.Username, "Cleared activity logs"); err != nil {
			return storage(err)
		}
		return nil
	})
}
