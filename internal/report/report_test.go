package report

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Daancoria/inventoryapp/internal/model"
)

func TestBuildSections(t *testing.T) {
	items := []model.Item{
		{Name: "Widget", Quantity: 10, Price: 2.5},
	}
	invoices := []model.Invoice{
		{SupplierName: "Acme Corp", InvoiceNumber: "INV-001", Date: "2026-08-01"},
	}

	doc := Build(items, invoices, 0)

	if doc.Title != "Full Inventory and Invoice Report" {
		t.Errorf("unexpected title %q", doc.Title)
	}
	if len(doc.Pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(doc.Pages))
	}

	lines := doc.Pages[0].Lines
	want := []string{
		"Inventory Items",
		"Widget | Qty: 10 | Price: $2.50",
		"",
		"Invoices",
		"Acme Corp | Invoice: INV-001 | Date: 2026-08-01",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestBuildPaginates(t *testing.T) {
	var items []model.Item
	for i := 0; i < 10; i++ {
		items = append(items, model.Item{Name: fmt.Sprintf("Item %d", i), Quantity: 1, Price: 1})
	}

	doc := Build(items, nil, 4)

	// 10 item lines + heading + blank + invoice heading = 13 lines, budget 4.
	if len(doc.Pages) != 4 {
		t.Fatalf("expected 4 pages, got %d", len(doc.Pages))
	}
	for i, page := range doc.Pages {
		if len(page.Lines) > 4 {
			t.Errorf("page %d exceeds budget: %d lines", i, len(page.Lines))
		}
	}
}

func TestRender(t *testing.T) {
	doc := Build([]model.Item{{Name: "Widget", Quantity: 1, Price: 1}}, nil, 2)

	var sb strings.Builder
	if err := doc.Render(&sb); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := sb.String()

	if !strings.HasPrefix(out, "Full Inventory and Invoice Report\n\n") {
		t.Errorf("expected title prefix, got %q", out)
	}
	if !strings.Contains(out, "\f") {
		t.Error("expected a form feed between pages")
	}
}
