package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Daancoria/inventoryapp/internal/model"
	"github.com/Daancoria/inventoryapp/internal/policy"
	"github.com/Daancoria/inventoryapp/internal/store"
)

// Invoice ledger. Same lifecycle as the inventory ledger, addressed by
// invoice number instead of name.

// CreateInvoice adds a new active invoice and audits "Added invoice: {number}".
func (s *Service) CreateInvoice(ctx context.Context, sess model.Session, supplierName, invoiceNumber, date string) (*model.Invoice, error) {
	if err := authorize(sess, policy.OpInvoiceCreate); err != nil {
		return nil, err
	}
	supplierName = strings.TrimSpace(supplierName)
	invoiceNumber = strings.TrimSpace(invoiceNumber)
	date = strings.TrimSpace(date)
	if supplierName == "" || invoiceNumber == "" || date == "" {
		return nil, fmt.Errorf("%w: supplier name, invoice number and date are required", model.ErrValidation)
	}

	var inv *model.Invoice
	err := s.withTx(ctx, func(tx store.DBTX) error {
		var err error
		inv, err = store.InsertInvoice(ctx, tx, supplierName, invoiceNumber, date)
		if err != nil {
			return storage(err)
		}
		if err := store.AppendLog(ctx, tx, sess.Username, "Added invoice: "+invoiceNumber); err != nil {
			return storage(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return inv, nil
}

// UpdateInvoice sets supplier name and date on the first active invoice
// with the given number.
func (s *Service) UpdateInvoice(ctx context.Context, sess model.Session, invoiceNumber, supplierName, date string) error {
	if err := authorize(sess, policy.OpInvoiceUpdate); err != nil {
		return err
	}

	return s.withTx(ctx, func(tx store.DBTX) error {
		ok, err := store.UpdateInvoiceByNumber(ctx, tx, invoiceNumber, supplierName, date)
		if err != nil {
			return storage(err)
		}
		if !ok {
			return fmt.Errorf("%w: no active invoice numbered %q", model.ErrNotFound, invoiceNumber)
		}
		if err := store.AppendLog(ctx, tx, sess.Username, "Updated invoice: "+invoiceNumber); err != nil {
			return storage(err)
		}
		return nil
	})
}

// SoftDeleteInvoice moves the first active invoice with the given number to
// the recycle bin.
func (s *Service) SoftDeleteInvoice(ctx context.Context, sess model.Session, invoiceNumber string) error {
	if err := authorize(sess, policy.OpInvoiceDelete); err != nil {
		return err
	}

	return s.withTx(ctx, func(tx store.DBTX) error {
		ok, err := store.SoftDeleteInvoiceByNumber(ctx, tx, invoiceNumber)
		if err != nil {
			return storage(err)
		}
		if !ok {
			return fmt.Errorf("%w: no active invoice numbered %q", model.ErrNotFound, invoiceNumber)
		}
		if err := store.AppendLog(ctx, tx, sess.Username, "Soft deleted invoice: "+invoiceNumber); err != nil {
			return storage(err)
		}
		return nil
	})
}

// RestoreInvoice brings the first recycled invoice with the given number
// back to the active set. No-op success when nothing matches.
func (s *Service) RestoreInvoice(ctx context.Context, sess model.Session, invoiceNumber string) error {
	if err := authorize(sess, policy.OpInvoiceRestore); err != nil {
		return err
	}

	return s.withTx(ctx, func(tx store.DBTX) error {
		ok, err := store.RestoreInvoiceByNumber(ctx, tx, invoiceNumber)
		if err != nil {
			return storage(err)
		}
		if !ok {
			return nil
		}
		if err := store.AppendLog(ctx, tx, sess.Username, "Restored invoice: "+invoiceNumber); err != nil {
			return storage(err)
		}
		return nil
	})
}

// PurgeInvoice permanently removes the first recycled invoice with the given
// number. Irreversible; callers confirm before calling.
func (s *Service) PurgeInvoice(ctx context.Context, sess model.Session, invoiceNumber string) error {
	if err := authorize(sess, policy.OpInvoicePurge); err != nil {
		return err
	}

	return s.withTx(ctx, func(tx store.DBTX) error {
		ok, err := store.PurgeInvoiceByNumber(ctx, tx, invoiceNumber)
		if err != nil {
			return storage(err)
		}
		if !ok {
			return fmt.Errorf("%w: no recycled invoice numbered %q", model.ErrNotFound, invoiceNumber)
		}
		if err := store.AppendLog(ctx, tx, sess.Username, "Permanently deleted invoice: "+invoiceNumber); err != nil {
			return storage(err)
		}
		return nil
	})
}

// ListActiveInvoices returns all active invoices in insertion order.
func (s *Service) ListActiveInvoices(ctx context.Context, sess model.Session) ([]model.Invoice, error) {
	if err := authorize(sess, policy.OpInvoiceList); err != nil {
		return nil, err
	}
	invoices, err := store.ListInvoices(ctx, s.db, false)
	if err != nil {
		return nil, storage(err)
	}
	return invoices, nil
}

// ListDeletedInvoices returns the invoice recycle bin in insertion order.
func (s *Service) ListDeletedInvoices(ctx context.Context, sess model.Session) ([]model.Invoice, error) {
	if err := authorize(sess, policy.OpInvoiceList); err != nil {
		return nil, err
	}
	invoices, err := store.ListInvoices(ctx, s.db, true)
	if err != nil {
		return nil, storage(err)
	}
	return invoices, nil
}
