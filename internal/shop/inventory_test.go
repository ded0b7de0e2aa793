package shop

import (
	"testing"

	"github.com/florasim/florasim/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestSell(t *testing.T) {
	catalog := []*models.Item{
		{Name: "Roses", BasePrice: 150, Cost: 80, Popularity: 0.30, InitialStock: 1000},
	}
	s := New(testConfig(mondayAt(10)), catalog, &captureSink{})

	sale := s.sell(catalog[0], 10, 150)

	assert.NotEmpty(t, sale.ID)
	assert.Equal(t, "Roses", sale.Item)
	assert.Equal(t, 10, sale.Quantity)
	assert.Equal(t, 150.0, sale.Price)
	assert.InDelta(t, 700.0, sale.Profit, 1e-9) // (150-80)*10

	assert.Equal(t, 990, s.Stock("Roses"))
	assert.Equal(t, 10, s.todayUnits["Roses"])
	assert.InDelta(t, 700.0, s.todayProfit["Roses"], 1e-9)
	assert.InDelta(t, 1500.0, s.todayRevenue, 1e-9)
	assert.InDelta(t, 1000700.0, s.Budget(), 1e-9)
}

func TestSell_UniqueIDs(t *testing.T) {
	catalog := testCatalog()
	s := New(testConfig(mondayAt(10)), catalog, &captureSink{})

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		sale := s.sell(catalog[0], 1, 150)
		_, dup := seen[sale.ID]
		assert.False(t, dup, "duplicate sale id %s", sale.ID)
		seen[sale.ID] = struct{}{}
	}
}

func TestRestock(t *testing.T) {
	tests := []struct {
		name      string
		budget    float64
		quantity  int
		ok        bool
		wantStock int
		wantLeft  float64
	}{
		{name: "funded", budget: 10000, quantity: 50, ok: true, wantStock: 150, wantLeft: 6000},
		{name: "exact budget", budget: 4000, quantity: 50, ok: true, wantStock: 150, wantLeft: 0},
		{name: "underfunded is a silent no-op", budget: 3999, quantity: 50, ok: false, wantStock: 100, wantLeft: 3999},
		{name: "zero quantity", budget: 10000, quantity: 0, ok: false, wantStock: 100, wantLeft: 10000},
		{name: "negative quantity", budget: 10000, quantity: -5, ok: false, wantStock: 100, wantLeft: 10000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := []*models.Item{
				{Name: "Roses", BasePrice: 150, Cost: 80, Popularity: 0.30, InitialStock: 100},
			}
			cfg := testConfig(mondayAt(10))
			cfg.InitialBudget = tt.budget
			s := New(cfg, catalog, &captureSink{})

			ok := s.restock(catalog[0], tt.quantity)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.wantStock, s.Stock("Roses"))
			assert.InDelta(t, tt.wantLeft, s.Budget(), 1e-9)
		})
	}
}
