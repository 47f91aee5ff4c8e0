package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Daancoria/inventoryapp/internal/model"
)

// Invoices follow the same soft-delete lifecycle as items but are addressed
// by invoice number. Duplicate numbers resolve to the lowest id.

// InsertInvoice creates a new active invoice.
func InsertInvoice(ctx context.Context, q DBTX, supplierName, invoiceNumber, date string) (*model.Invoice, error) {
	result, err := q.ExecContext(ctx,
		`INSERT INTO invoices (supplier_name, invoice_number, date) VALUES (?, ?, ?)`,
		supplierName, invoiceNumber, date,
	)
	if err != nil {
		return nil, fmt.Errorf("creating invoice: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting invoice id: %w", err)
	}

	return GetInvoice(ctx, q, id)
}

// GetInvoice returns an invoice by ID, or nil if it does not exist.
func GetInvoice(ctx context.Context, q DBTX, id int64) (*model.Invoice, error) {
	inv := &model.Invoice{}
	err := q.QueryRowContext(ctx,
		`SELECT id, supplier_name, invoice_number, date, deleted, deleted_at
		 FROM invoices WHERE id = ?`, id,
	).Scan(&inv.ID, &inv.SupplierName, &inv.InvoiceNumber, &inv.Date, &inv.Deleted, &inv.DeletedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting invoice: %w", err)
	}
	return inv, nil
}

// UpdateInvoiceByNumber sets supplier name and date on the lowest-id active
// invoice with the given number. Returns false if no active invoice matches.
func UpdateInvoiceByNumber(ctx context.Context, q DBTX, invoiceNumber, supplierName, date string) (bool, error) {
	result, err := q.ExecContext(ctx,
		`UPDATE invoices SET supplier_name = ?, date = ?
		 WHERE id = (SELECT MIN(id) FROM invoices WHERE invoice_number = ? AND deleted = 0)`,
		supplierName, date, invoiceNumber,
	)
	if err != nil {
		return false, fmt.Errorf("updating invoice: %w", err)
	}
	return affected(result)
}

// SoftDeleteInvoiceByNumber marks the lowest-id active invoice with the
// given number deleted and stamps deleted_at.
func SoftDeleteInvoiceByNumber(ctx context.Context, q DBTX, invoiceNumber string) (bool, error) {
	result, err := q.ExecContext(ctx,
		`UPDATE invoices SET deleted = 1, deleted_at = CURRENT_TIMESTAMP
		 WHERE id = (SELECT MIN(id) FROM invoices WHERE invoice_number = ? AND deleted = 0)`,
		invoiceNumber,
	)
	if err != nil {
		return false, fmt.Errorf("soft deleting invoice: %w", err)
	}
	return affected(result)
}

// RestoreInvoiceByNumber clears the deleted flag and deleted_at on the
// lowest-id deleted invoice with the given number.
func RestoreInvoiceByNumber(ctx context.Context, q DBTX, invoiceNumber string) (bool, error) {
	result, err := q.ExecContext(ctx,
		`UPDATE invoices SET deleted = 0, deleted_at = NULL
		 WHERE id = (SELECT MIN(id) FROM invoices WHERE invoice_number = ? AND deleted = 1)`,
		invoiceNumber,
	)
	if err != nil {
		return false, fmt.Errorf("restoring invoice: %w", err)
	}
	return affected(result)
}

// PurgeInvoiceByNumber permanently removes the lowest-id deleted invoice
// with the given number.
func PurgeInvoiceByNumber(ctx context.Context, q DBTX, invoiceNumber string) (bool, error) {
	result, err := q.ExecContext(ctx,
		`DELETE FROM invoices
		 WHERE id = (SELECT MIN(id) FROM invoices WHERE invoice_number = ? AND deleted = 1)`,
		invoiceNumber,
	)
	if err != nil {
		return false, fmt.Errorf("purging invoice: %w", err)
	}
	return affected(result)
}

// ListInvoices returns all invoices with the given deleted state, in
// insertion order.
func ListInvoices(ctx context.Context, q DBTX, deleted bool) ([]model.Invoice, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT id, supplier_name, invoice_number, date, deleted, deleted_at
		 FROM invoices WHERE deleted = ? ORDER BY id`, deleted,
	)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}
	defer rows.Close()

	var invoices []model.Invoice
	for rows.Next() {
		var inv model.Invoice
		if err := rows.Scan(&inv.ID, &inv.SupplierName, &inv.InvoiceNumber, &inv.Date, &inv.Deleted, &inv.DeletedAt); err != nil {
			return nil, fmt.Errorf("scanning invoice: %w", err)
		}
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}
