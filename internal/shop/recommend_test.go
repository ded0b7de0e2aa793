package shop

import (
	"math"
	"testing"

	"github.com/florasim/florasim/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimalPrice(t *testing.T) {
	tests := []struct {
		cost float64
		want float64
	}{
		{cost: 80, want: 160},
		{cost: 40, want: 80},
		{cost: 35, want: 70},
		{cost: 45, want: 90},
		{cost: 33, want: 70}, // 66 rounds up
		{cost: 52, want: 100},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, optimalPrice(tt.cost), "cost %.0f", tt.cost)
	}
}

func TestOptimalPrice_BoundsAndRounding(t *testing.T) {
	for cost := 20.0; cost <= 200; cost += 7 {
		price := optimalPrice(cost)
		assert.GreaterOrEqual(t, price, math.Round(cost*1.3/10)*10-10, "cost %.0f", cost)
		assert.LessOrEqual(t, price, cost*3.0+10, "cost %.0f", cost)
		assert.Zero(t, math.Mod(price, 10), "price %.0f for cost %.0f is not a multiple of 10", price, cost)
	}
}

func TestReorderAdvice(t *testing.T) {
	tests := []struct {
		name      string
		inventory int
		avgSales  int
		category  string
		quantity  int
		days      float64
	}{
		{name: "half a day left is urgent", inventory: 5, avgSales: 10, category: models.ReorderUrgent, quantity: 70, days: 0.5},
		{name: "just under two days is urgent", inventory: 19, avgSales: 10, category: models.ReorderUrgent, quantity: 70, days: 1.9},
		{name: "three days means restock", inventory: 30, avgSales: 10, category: models.ReorderRestock, quantity: 50, days: 3},
		{name: "five days exactly is fine", inventory: 50, avgSales: 10, category: models.ReorderOK, quantity: 0, days: 5},
		{name: "plenty of runway", inventory: 100, avgSales: 10, category: models.ReorderOK, quantity: 0, days: 10},
		{name: "no sales reads as ample supply", inventory: 3, avgSales: 0, category: models.ReorderOK, quantity: 0, days: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			advice := reorderAdvice(tt.inventory, tt.avgSales)
			assert.Equal(t, tt.category, advice.Category)
			assert.Equal(t, tt.quantity, advice.Quantity)
			assert.InDelta(t, tt.days, advice.DaysOfSupply, 1e-9)
		})
	}
}

func TestGenerateRecommendations_EarlyMorningUsesAssumedRate(t *testing.T) {
	catalog := []*models.Item{
		{Name: "Roses", BasePrice: 150, Cost: 80, Popularity: 0.30, InitialStock: 5},
	}
	// at the opening hour itself there is no sales history yet
	s := New(testConfig(mondayAt(8)), catalog, &captureSink{})

	s.generateRecommendations()

	advice := s.recommendations.Reorders["Roses"]
	assert.Equal(t, models.ReorderUrgent, advice.Category)
	assert.Equal(t, 70, advice.Quantity) // assumed rate of 10 for 7 days
}

func TestGenerateRecommendations_DaytimeUsesTodaySales(t *testing.T) {
	catalog := []*models.Item{
		{Name: "Roses", BasePrice: 150, Cost: 80, Popularity: 0.30, InitialStock: 5},
	}
	s := New(testConfig(mondayAt(14)), catalog, &captureSink{})
	s.todayUnits["Roses"] = 4

	s.generateRecommendations()

	advice := s.recommendations.Reorders["Roses"]
	assert.Equal(t, models.ReorderUrgent, advice.Category) // 5/4 = 1.25 days
	assert.Equal(t, 28, advice.Quantity)
	assert.InDelta(t, 1.3, advice.DaysOfSupply, 1e-9)
}

func TestApplyRecommendations_OverwritesBasePrices(t *testing.T) {
	catalog := testCatalog()
	s := New(testConfig(mondayAt(10)), catalog, &captureSink{})

	s.generateRecommendations()
	s.applyRecommendations()

	for _, item := range catalog {
		assert.Equal(t, optimalPrice(item.Cost), item.BasePrice, item.Name)
	}
}

func TestApplyRecommendations_RestocksWithinBudget(t *testing.T) {
	catalog := []*models.Item{
		{Name: "Roses", BasePrice: 150, Cost: 80, Popularity: 0.30, InitialStock: 5},
	}
	s := New(testConfig(mondayAt(8)), catalog, &captureSink{})

	s.generateRecommendations()
	s.applyRecommendations()

	// urgent reorder of 70 units at cost 80 fits the default budget
	assert.Equal(t, 75, s.Stock("Roses"))
	assert.InDelta(t, 1000000-70*80.0, s.Budget(), 1e-9)
}

func TestApplyRecommendations_SkipsRestockWhenUnderfunded(t *testing.T) {
	catalog := []*models.Item{
		{Name: "Roses", BasePrice: 150, Cost: 80, Popularity: 0.30, InitialStock: 5},
	}
	cfg := testConfig(mondayAt(8))
	cfg.InitialBudget = 100 // cannot afford 70 * 80
	s := New(cfg, catalog, &captureSink{})

	s.generateRecommendations()
	s.applyRecommendations()

	assert.Equal(t, 5, s.Stock("Roses"))
	assert.Equal(t, 100.0, s.Budget())
}

func TestApplyRecommendations_NilSetIsNoop(t *testing.T) {
	catalog := testCatalog()
	s := New(testConfig(mondayAt(10)), catalog, &captureSink{})

	require.Nil(t, s.recommendations)
	s.applyRecommendations()

	assert.Equal(t, 150.0, catalog[0].BasePrice)
}
