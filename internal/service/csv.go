package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Daancoria/inventoryapp/internal/model"
	"github.com/Daancoria/inventoryapp/internal/policy"
	"github.com/Daancoria/inventoryapp/internal/store"
)

// CSV column headers. Import resolves columns by these names, so column
// order does not matter and unknown columns are ignored.
var (
	itemCSVHeader    = []string{"Item Name", "Quantity", "Price"}
	invoiceCSVHeader = []string{"Supplier Name", "Invoice Number", "Date"}
)

// ExportInventoryCSV renders the active items as CSV in insertion order.
func (s *Service) ExportInventoryCSV(ctx context.Context, sess model.Session) ([]byte, error) {
	if err := authorize(sess, policy.OpCSVExport); err != nil {
		return nil, err
	}
	items, err := store.ListItems(ctx, s.db, false)
	if err != nil {
		return nil, storage(err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write(itemCSVHeader)
	for _, item := range items {
		w.Write([]string{
			item.Name,
			strconv.Itoa(item.Quantity),
			strconv.FormatFloat(item.Price, 'f', -1, 64),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("writing csv: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportInvoicesCSV renders the active invoices as CSV in insertion order.
func (s *Service) ExportInvoicesCSV(ctx context.Context, sess model.Session) ([]byte, error) {
	if err := authorize(sess, policy.OpCSVExport); err != nil {
		return nil, err
	}
	invoices, err := store.ListInvoices(ctx, s.db, false)
	if err != nil {
		return nil, storage(err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write(invoiceCSVHeader)
	for _, inv := range invoices {
		w.Write([]string{inv.SupplierName, inv.InvoiceNumber, inv.Date})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("writing csv: %w", err)
	}
	return buf.Bytes(), nil
}

// ImportInventoryCSV inserts one active item per valid row and returns the
// number imported. Invalid rows (empty name, unparseable quantity or price,
// missing required column) are skipped, not errors: imports favor
// recovering usable data over strict validation. The whole import and its
// single audit entry commit in one transaction.
func (s *Service) ImportInventoryCSV(ctx context.Context, sess model.Session, r io.Reader) (int, error) {
	if err := authorize(sess, policy.OpCSVImport); err != nil {
		return 0, err
	}

	records, header, err := readCSV(r)
	if err != nil {
		return 0, err
	}
	cols := columnIndex(header)

	imported := 0
	err = s.withTx(ctx, func(tx store.DBTX) error {
		for _, record := range records {
			name, quantity, price, ok := parseItemRow(record, cols)
			if !ok {
				continue
			}
			if _, err := store.InsertItem(ctx, tx, name, quantity, price); err != nil {
				return storage(err)
			}
			imported++
		}
		action := fmt.Sprintf("Imported %d items from CSV", imported)
		if err := store.AppendLog(ctx, tx, sess.Username, action); err != nil {
			return storage(err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return imported, nil
}

// ImportInvoicesCSV is the invoice counterpart of ImportInventoryCSV.
func (s *Service) ImportInvoicesCSV(ctx context.Context, sess model.Session, r io.Reader) (int, error) {
	if err := authorize(sess, policy.OpCSVImport); err != nil {
		return 0, err
	}

	records, header, err := readCSV(r)
	if err != nil {
		return 0, err
	}
	cols := columnIndex(header)

	imported := 0
	err = s.withTx(ctx, func(tx store.DBTX) error {
		for _, record := range records {
			supplier, number, date, ok := parseInvoiceRow(record, cols)
			if !ok {
				continue
			}
			if _, err := store.InsertInvoice(ctx, tx, supplier, number, date); err != nil {
				return storage(err)
			}
			imported++
		}
		action := fmt.Sprintf("Imported %d invoices from CSV", imported)
		if err := store.AppendLog(ctx, tx, sess.Username, action); err != nil {
			return storage(err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return imported, nil
}

// readCSV consumes the stream and splits off the header row. Ragged rows
// are tolerated; the per-row predicates decide what to skip.
func readCSV(r io.Reader) ([][]string, []string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: malformed csv: %v", model.ErrValidation, err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("%w: csv has no header row", model.ErrValidation)
	}
	return rows[1:], rows[0], nil
}

// columnIndex maps trimmed header names to positions.
func columnIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	return cols
}

// field returns the named column of a record, or "" when the column is
// absent or the record is too short.
func field(record []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// parseItemRow is the explicit skip predicate for inventory imports: a row
// is imported only when the name is non-empty, quantity parses as an
// integer and price parses as a decimal.
func parseItemRow(record []string, cols map[string]int) (name string, quantity int, price float64, ok bool) {
	name = field(record, cols, "Item Name")
	if name == "" {
		return "", 0, 0, false
	}

	quantity, err := strconv.Atoi(field(record, cols, "Quantity"))
	if err != nil {
		return "", 0, 0, false
	}

	price, err = strconv.ParseFloat(field(record, cols, "Price"), 64)
	if err != nil {
		return "", 0, 0, false
	}

	return name, quantity, price, true
}

// parseInvoiceRow is the skip predicate for invoice imports: all three text
// fields must be non-empty.
func parseInvoiceRow(record []string, cols map[string]int) (supplier, number, date string, ok bool) {
	supplier = field(record, cols, "Supplier Name")
	number = field(record, cols, "Invoice Number")
	date = field(record, cols, "Date")
	if supplier == "" || number == "" || date == "" {
		return "", "", "", false
	}
	return supplier, number, date, true
}
