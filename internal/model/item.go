package model

import "time"

// Item represents a stock item in the inventory ledger.
type Item struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Quantity  int        `json:"quantity"`
	Price     float64    `json:"price"`
	Deleted   bool       `json:"deleted"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// Summary aggregates the active inventory.
type Summary struct {
	ItemCount     int     `json:"item_count"`
	TotalQuantity int     `json:"total_quantity"`
	TotalValue    float64 `json:"total_value"`
}

// LowStockThreshold is the default cutoff for low-stock listings.
const LowStockThreshold = 5
