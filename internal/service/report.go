package service

import (
	"context"

	"github.com/Daancoria/inventoryapp/internal/model"
	"github.com/Daancoria/inventoryapp/internal/policy"
	"github.com/Daancoria/inventoryapp/internal/report"
	"github.com/Daancoria/inventoryapp/internal/store"
)

// BuildReport lays out the active rows of both ledgers as a paginated
// document. Pass linesPerPage <= 0 for the default page budget.
func (s *Service) BuildReport(ctx context.Context, sess model.Session, linesPerPage int) (*report.Document, error) {
	if err := authorize(sess, policy.OpReport); err != nil {
		return nil, err
	}

	items, err := store.ListItems(ctx, s.db, false)
	if err != nil {
		return nil, storage(err)
	}
	invoices, err := store.ListInvoices(ctx, s.db, false)
	if err != nil {
		return nil, storage(err)
	}

	return report.Build(items, invoices, linesPerPage), nil
}
