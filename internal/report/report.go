// Package report turns ledger snapshots into a paginated document model.
// It holds no business logic: callers fetch the rows, this package lays
// them out. Rendering to an actual page format (PDF, print preview) is the
// presentation layer's job; a plain-text renderer is provided for CLI use.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/Daancoria/inventoryapp/internal/model"
)

// DefaultLinesPerPage is the page line budget used when the caller passes
// zero or less.
const DefaultLinesPerPage = 50

// Document is a sectioned, paginated report layout.
type Document struct {
	Title string
	Pages []Page
}

// Page holds one page's worth of lines.
type Page struct {
	Lines []string
}

// builder accumulates lines and breaks pages at the line budget.
type builder struct {
	pages   []Page
	current []string
	budget  int
}

func (b *builder) line(s string) {
	if len(b.current) >= b.budget {
		b.pages = append(b.pages, Page{Lines: b.current})
		b.current = nil
	}
	b.current = append(b.current, s)
}

func (b *builder) done() []Page {
	if len(b.current) > 0 {
		b.pages = append(b.pages, Page{Lines: b.current})
	}
	return b.pages
}

// Build lays out the full inventory and invoice report: a heading per
// section followed by one line per record, breaking to a new page whenever
// the line budget is exhausted.
func Build(items []model.Item, invoices []model.Invoice, linesPerPage int) *Document {
	if linesPerPage <= 0 {
		linesPerPage = DefaultLinesPerPage
	}

	b := &builder{budget: linesPerPage}

	b.line("Inventory Items")
	for _, item := range items {
		b.line(fmt.Sprintf("%s | Qty: %d | Price: $%.2f", item.Name, item.Quantity, item.Price))
	}

	b.line("")
	b.line("Invoices")
	for _, inv := range invoices {
		b.line(fmt.Sprintf("%s | Invoice: %s | Date: %s", inv.SupplierName, inv.InvoiceNumber, inv.Date))
	}

	return &Document{
		Title: "Full Inventory and Invoice Report",
		Pages: b.done(),
	}
}

// Render writes the document as plain text, one form-feed between pages.
func (d *Document) Render(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s\n\n", d.Title); err != nil {
		return err
	}
	for i, page := range d.Pages {
		if i > 0 {
			if _, err := io.WriteString(w, "\f"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, strings.Join(page.Lines, "\n")+"\n"); err != nil {
			return err
		}
	}
	return nil
}
