package models

// Item is a catalog entry for a single flower type. Everything except
// BasePrice is fixed at construction; applying a price recommendation
// overwrites BasePrice with no history of prior values.
type Item struct {
	Name         string  `json:"name"`
	BasePrice    float64 `json:"base_price"`
	Cost         float64 `json:"cost"`
	Popularity   float64 `json:"popularity"` // share of total demand, 0..1
	InitialStock int     `json:"initial_stock"`
}
