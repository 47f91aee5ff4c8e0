package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/Daancoria/inventoryapp/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportInventoryCSV(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	s.CreateItem(ctx, adminSess, "Widget", 10, 2.50)
	s.CreateItem(ctx, adminSess, "Hidden", 1, 1.0)
	require.NoError(t, s.SoftDeleteItem(ctx, adminSess, "Hidden"))

	data, err := s.ExportInventoryCSV(ctx, adminSess)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Item Name,Quantity,Price", lines[0])
	assert.Equal(t, "Widget,10,2.5", lines[1])
}

func TestImportInventoryCSVSkipsInvalidRows(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	csvData := strings.Join([]string{
		"Item Name,Quantity,Price",
		"Widget,10,2.50",
		"Broken,notanumber,1.00",
		",5,1.00",
		"NoPrice,5,abc",
	}, "\n")

	n, err := s.ImportInventoryCSV(ctx, adminSess, strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	active, err := s.ListActiveItems(ctx, adminSess)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Widget", active[0].Name)

	assert.Equal(t, "Imported 1 items from CSV", lastLogAction(t, s))
}

func TestImportInventoryCSVHeaderDriven(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	// Reordered columns plus an extra one.
	csvData := strings.Join([]string{
		"Price,Notes,Item Name,Quantity",
		"2.50,ignored,Widget,10",
	}, "\n")

	n, err := s.ImportInventoryCSV(ctx, adminSess, strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	active, _ := s.ListActiveItems(ctx, adminSess)
	require.Len(t, active, 1)
	assert.Equal(t, 10, active[0].Quantity)
	assert.Equal(t, 2.50, active[0].Price)
}

func TestImportInventoryCSVMissingColumnSkipsAll(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	csvData := "Item Name,Quantity\nWidget,10\n"

	n, err := s.ImportInventoryCSV(ctx, adminSess, strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, "Imported 0 items from CSV", lastLogAction(t, s))
}

func TestInventoryCSVRoundTrip(t *testing.T) {
	source := newTestService(t)
	target := newTestService(t)
	ctx := context.Background()

	source.CreateItem(ctx, adminSess, "Widget", 10, 2.50)
	source.CreateItem(ctx, adminSess, "Gadget", -3, 19.99)

	data, err := source.ExportInventoryCSV(ctx, adminSess)
	require.NoError(t, err)

	n, err := target.ImportInventoryCSV(ctx, adminSess, bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	want, _ := source.ListActiveItems(ctx, adminSess)
	got, _ := target.ListActiveItems(ctx, adminSess)
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].Name, got[i].Name)
		assert.Equal(t, want[i].Quantity, got[i].Quantity)
		assert.Equal(t, want[i].Price, got[i].Price)
	}
}

func TestInvoiceCSVRoundTrip(t *testing.T) {
	source := newTestService(t)
	target := newTestService(t)
	ctx := context.Background()

	source.CreateInvoice(ctx, adminSess, "Acme Corp", "INV-001", "2026-08-01")
	source.CreateInvoice(ctx, adminSess, "Globex", "INV-002", "2026-08-02")

	data, err := source.ExportInvoicesCSV(ctx, adminSess)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Supplier Name,Invoice Number,Date\n"))

	n, err := target.ImportInvoicesCSV(ctx, adminSess, bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "Imported 2 invoices from CSV", lastLogAction(t, target))
}

func TestImportRequiresAdminExportAllowsViewer(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	_, err := s.ImportInventoryCSV(ctx, viewerSess, strings.NewReader("Item Name,Quantity,Price\n"))
	assert.ErrorIs(t, err, model.ErrForbidden)

	_, err = s.ExportInventoryCSV(ctx, viewerSess)
	assert.NoError(t, err)
}

func TestParseItemRowPredicate(t *testing.T) {
	cols := map[string]int{"Item Name": 0, "Quantity": 1, "Price": 2}

	tests := []struct {
		record []string
		ok     bool
	}{
		{[]string{"Widget", "10", "2.50"}, true},
		{[]string{" Widget ", " 10 ", " 2.50 "}, true},
		{[]string{"", "10", "2.50"}, false},
		{[]string{"Widget", "ten", "2.50"}, false},
		{[]string{"Widget", "10", "cheap"}, false},
		{[]string{"Widget", "10"}, false}, // short record
		{[]string{"Widget", "-4", "0"}, true},
	}

	for _, tt := range tests {
		_, _, _, ok := parseItemRow(tt.record, cols)
		assert.Equal(t, tt.ok, ok, "record %v", tt.record)
	}
}
