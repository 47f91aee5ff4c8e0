package model

import "time"

// Invoice represents a supplier invoice record. Date is a calendar-date
// string as supplied by the caller; it is not parsed or validated beyond
// being non-empty.
type Invoice struct {
	ID            int64      `json:"id"`
	SupplierName  string     `json:"supplier_name"`
	InvoiceNumber string     `json:"invoice_number"`
	Date          string     `json:"date"`
	Deleted       bool       `json:"deleted"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty"`
}
