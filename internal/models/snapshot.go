package models

import "time"

// ItemStatus is the per-item slice of a dashboard snapshot.
type ItemStatus struct {
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	UnitsToday  int     `json:"units_today"`
	ProfitToday float64 `json:"profit_today"`
}

// DashboardSnapshot is a read-only view of the whole shop state, built for
// presentation by an external driver.
type DashboardSnapshot struct {
	CurrentTime     time.Time          `json:"current_time"`
	Budget          float64            `json:"budget"`
	TodayRevenue    float64            `json:"today_revenue"`
	TodayProfit     float64            `json:"today_profit"`
	TodayUnits      int                `json:"today_units"`
	Items           []ItemStatus       `json:"items"`
	Recommendations *RecommendationSet `json:"recommendations,omitempty"`
}
