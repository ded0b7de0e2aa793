package shop

import (
	"math"

	"github.com/florasim/florasim/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	markupFactor = 2.0
	minMarkup    = 1.3
	maxMarkup    = 3.0

	urgentDaysThreshold  = 2.0
	restockDaysThreshold = 5.0
	urgentSupplyDays     = 7
	restockSupplyDays    = 5

	// Before the first open hour there is no sales history for the day, so
	// reorder math runs against an assumed sales rate instead.
	earlyMorningSalesRate = 10
	ampleSupplyDays       = 30.0
)

// optimalPrice is the pricing heuristic: a 100% markup on cost clamped to
// [cost*1.3, cost*3.0], rounded to the nearest multiple of 10. Despite the
// original system billing this as ML, it is plain arithmetic and the exact
// bounds and rounding matter because sales run against the result.
func optimalPrice(cost float64) float64 {
	price := cost * markupFactor
	price = math.Max(price, cost*minMarkup)
	price = math.Min(price, cost*maxMarkup)
	return math.Round(price/10) * 10
}

// reorderAdvice classifies an item's inventory runway. avgSales is the
// running daily sales count; zero means no sales yet and is treated as
// ample supply rather than a division by zero.
func reorderAdvice(inventory, avgSales int) models.ReorderAdvice {
	daysOfSupply := ampleSupplyDays
	if avgSales > 0 {
		daysOfSupply = float64(inventory) / float64(avgSales)
	}

	advice := models.ReorderAdvice{
		Category:     models.ReorderOK,
		DaysOfSupply: math.Round(daysOfSupply*10) / 10,
	}
	switch {
	case daysOfSupply < urgentDaysThreshold:
		advice.Category = models.ReorderUrgent
		advice.Quantity = avgSales * urgentSupplyDays
	case daysOfSupply < restockDaysThreshold:
		advice.Category = models.ReorderRestock
		advice.Quantity = avgSales * restockSupplyDays
	}
	return advice
}

// generateRecommendations rebuilds the recommendation set from the current
// catalog, inventory and daily sales counts. The previous set is replaced
// wholesale.
func (s *Shop) generateRecommendations() {
	recs := models.NewRecommendationSet(s.currentTime)

	for _, item := range s.catalog {
		recs.OptimalPrices[item.Name] = optimalPrice(item.Cost)
	}

	for _, item := range s.catalog {
		avgSales := earlyMorningSalesRate
		if s.currentTime.Hour() > s.config.OpeningHour {
			avgSales = s.todayUnits[item.Name]
		}
		recs.Reorders[item.Name] = reorderAdvice(s.inventory[item.Name], avgSales)
	}

	s.recommendations = recs
}

// applyRecommendations commits the current set: recommended prices overwrite
// the catalog's base prices (there is no price history to roll back to) and
// urgent or restock items are reordered, budget permitting.
func (s *Shop) applyRecommendations() {
	if s.recommendations == nil {
		return
	}

	for _, item := range s.catalog {
		if price, ok := s.recommendations.OptimalPrices[item.Name]; ok {
			item.BasePrice = price
		}
	}

	for _, item := range s.catalog {
		advice, ok := s.recommendations.Reorders[item.Name]
		if !ok {
			continue
		}
		if advice.Category != models.ReorderUrgent && advice.Category != models.ReorderRestock {
			continue
		}
		if s.restock(item, advice.Quantity) {
			logrus.WithFields(logrus.Fields{
				"item":     item.Name,
				"quantity": advice.Quantity,
				"category": advice.Category,
			}).Debug("restocked from recommendation")
		}
	}
}
