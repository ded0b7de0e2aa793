package models

import "time"

// SaleRecord is one append-only row in the sales log.
type SaleRecord struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Item      string    `json:"item"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	Profit    float64   `json:"profit"`
}

// InventoryRecord is one append-only row in the inventory snapshot log,
// written once per item per simulation step.
type InventoryRecord struct {
	Timestamp time.Time `json:"timestamp"`
	Item      string    `json:"item"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
}

// ItemTotals aggregates the lifetime sales log for one item.
type ItemTotals struct {
	Item   string  `json:"item"`
	Units  int64   `json:"units"`
	Profit float64 `json:"profit"`
}

// StepResult reports the running daily totals after one simulation step.
type StepResult struct {
	UnitsSold int     `json:"units_sold"`
	Profit    float64 `json:"profit"`
}
