package shop

import (
	"github.com/florasim/florasim/internal/models"
	"github.com/lucsky/cuid"
	"github.com/sirupsen/logrus"
)

// sell commits a sale: stock down, daily totals and revenue up, budget
// credited with the profit. The caller has already clamped quantity to the
// available stock.
func (s *Shop) sell(item *models.Item, quantity int, price float64) models.SaleRecord {
	profit := (price - item.Cost) * float64(quantity)
	revenue := price * float64(quantity)

	s.inventory[item.Name] -= quantity
	s.todayUnits[item.Name] += quantity
	s.todayProfit[item.Name] += profit
	s.todayRevenue += revenue
	s.budget += profit

	return models.SaleRecord{
		ID:        cuid.New(),
		Timestamp: s.currentTime,
		Item:      item.Name,
		Quantity:  quantity,
		Price:     price,
		Profit:    profit,
	}
}

// restock buys quantity units at cost if the budget allows it. An
// underfunded restock is a silent no-op, never a partial fill.
func (s *Shop) restock(item *models.Item, quantity int) bool {
	if quantity <= 0 {
		return false
	}
	cost := item.Cost * float64(quantity)
	if s.budget < cost {
		logrus.WithFields(logrus.Fields{
			"item":     item.Name,
			"quantity": quantity,
			"cost":     cost,
			"budget":   s.budget,
		}).Debug("restock skipped, insufficient budget")
		return false
	}

	s.inventory[item.Name] += quantity
	s.budget -= cost
	return true
}

// ResetDay zeroes the running daily totals. When a business day ends is the
// driver's decision, not the core's.
func (s *Shop) ResetDay() {
	s.todayUnits = make(map[string]int, len(s.catalog))
	s.todayProfit = make(map[string]float64, len(s.catalog))
	s.todayRevenue = 0
}
