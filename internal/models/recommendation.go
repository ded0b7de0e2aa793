package models

import "time"

const (
	ReorderUrgent  = "urgent"
	ReorderRestock = "restock"
	ReorderOK      = "ok"
)

// ReorderAdvice is the restocking suggestion for one item.
type ReorderAdvice struct {
	Category     string  `json:"category"`
	Quantity     int     `json:"quantity"`
	DaysOfSupply float64 `json:"days_of_supply"`
}

// RecommendationSet is one recommendation cycle's output: a price per item
// and a reorder suggestion per item. Each cycle replaces the previous set
// wholesale.
type RecommendationSet struct {
	GeneratedAt   time.Time                `json:"generated_at"`
	OptimalPrices map[string]float64       `json:"optimal_prices"`
	Reorders      map[string]ReorderAdvice `json:"reorders"`
}

// NewRecommendationSet returns an empty set stamped with the given time.
func NewRecommendationSet(at time.Time) *RecommendationSet {
	return &RecommendationSet{
		GeneratedAt:   at,
		OptimalPrices: make(map[string]float64),
		Reorders:      make(map[string]ReorderAdvice),
	}
}
