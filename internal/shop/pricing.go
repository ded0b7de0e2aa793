package shop

import "github.com/florasim/florasim/internal/models"

const (
	surgeStartHour  = 18
	surgeEndHour    = 19 // inclusive
	surgeMultiplier = 1.2
)

// currentPrice resolves an item's selling price. A recommended price, once
// applied, overrides everything else; without one the evening surge window
// marks the base price up by 20%.
func (s *Shop) currentPrice(item *models.Item) float64 {
	if s.recommendations != nil {
		if price, ok := s.recommendations.OptimalPrices[item.Name]; ok {
			return price
		}
	}

	hour := s.currentTime.Hour()
	if hour >= surgeStartHour && hour <= surgeEndHour {
		return item.BasePrice * surgeMultiplier
	}
	return item.BasePrice
}
