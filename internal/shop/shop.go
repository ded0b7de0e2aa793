package shop

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/florasim/florasim/internal/models"
	"github.com/sirupsen/logrus"
)

// Shop owns the whole simulation state: catalog, inventory, budget, running
// daily totals and the latest recommendation set. It is not safe for
// concurrent use; a single worker (see Runner) must own it exclusively.
type Shop struct {
	config *models.Config

	catalog   []*models.Item
	items     map[string]*models.Item
	inventory map[string]int

	budget       float64
	currentTime  time.Time
	todayUnits   map[string]int
	todayProfit  map[string]float64
	todayRevenue float64

	recommendations *models.RecommendationSet

	rng  *rand.Rand
	sink Sink
}

// New builds a shop from config and catalog, wired to the given sink.
func New(config *models.Config, catalog []*models.Item, sink Sink) *Shop {
	s := &Shop{
		config:      config,
		catalog:     catalog,
		items:       make(map[string]*models.Item, len(catalog)),
		inventory:   make(map[string]int, len(catalog)),
		budget:      config.InitialBudget,
		currentTime: config.StartDate,
		todayUnits:  make(map[string]int, len(catalog)),
		todayProfit: make(map[string]float64, len(catalog)),
		rng:         rand.New(rand.NewSource(int64(config.Seed))),
		sink:        sink,
	}
	for _, item := range catalog {
		s.items[item.Name] = item
		s.inventory[item.Name] = item.InitialStock
	}
	return s
}

// Step advances simulated time by one hour and runs one full cycle: demand,
// sales, the periodic recommendation refresh, and the inventory snapshot.
// A sink failure aborts the step and surfaces as the returned error.
func (s *Shop) Step(ctx context.Context) (models.StepResult, error) {
	s.currentTime = s.currentTime.Add(time.Hour)
	hour := s.currentTime.Hour()

	if hour >= s.config.OpeningHour && hour < s.config.ClosingHour {
		hourlyDemand := s.hourlyDemand()
		for _, item := range s.catalog {
			stock := s.inventory[item.Name]
			if stock <= 0 {
				continue
			}

			demandShare := item.Popularity * (0.8 + s.rng.Float64()*0.4)
			itemDemand := int(float64(hourlyDemand) * demandShare)
			possibleSales := itemDemand
			if stock < possibleSales {
				possibleSales = stock
			}
			if possibleSales <= 0 {
				continue
			}

			price := s.currentPrice(item)
			sale := s.sell(item, possibleSales, price)
			if err := s.sink.RecordSale(ctx, sale); err != nil {
				return models.StepResult{}, fmt.Errorf("failed to record sale of %s: %w", item.Name, err)
			}
		}
	}

	if hour%s.config.RecommendationInterval == 0 {
		s.generateRecommendations()
		s.applyRecommendations()
	}

	if err := s.sink.RecordInventory(ctx, s.inventorySnapshots()); err != nil {
		return models.StepResult{}, fmt.Errorf("failed to record inventory snapshot: %w", err)
	}

	return s.todayTotals(), nil
}

// RefreshRecommendations recomputes and applies recommendations outside the
// periodic cadence, for a driver-triggered manual refresh.
func (s *Shop) RefreshRecommendations() *models.RecommendationSet {
	s.generateRecommendations()
	s.applyRecommendations()
	logrus.WithField("generated_at", s.recommendations.GeneratedAt).
		Info("recommendations refreshed on demand")
	return s.recommendations
}

// Snapshot assembles the presentation view of the current state.
func (s *Shop) Snapshot() models.DashboardSnapshot {
	items := make([]models.ItemStatus, 0, len(s.catalog))
	for _, item := range s.catalog {
		items = append(items, models.ItemStatus{
			Name:        item.Name,
			Quantity:    s.inventory[item.Name],
			Price:       s.currentPrice(item),
			UnitsToday:  s.todayUnits[item.Name],
			ProfitToday: s.todayProfit[item.Name],
		})
	}

	totals := s.todayTotals()
	return models.DashboardSnapshot{
		CurrentTime:     s.currentTime,
		Budget:          s.budget,
		TodayRevenue:    s.todayRevenue,
		TodayProfit:     totals.Profit,
		TodayUnits:      totals.UnitsSold,
		Items:           items,
		Recommendations: s.recommendations,
	}
}

// Budget returns the current purchasing budget.
func (s *Shop) Budget() float64 {
	return s.budget
}

// CurrentTime returns the simulated clock value.
func (s *Shop) CurrentTime() time.Time {
	return s.currentTime
}

// Stock returns the on-hand quantity for an item.
func (s *Shop) Stock(name string) int {
	return s.inventory[name]
}

func (s *Shop) todayTotals() models.StepResult {
	var result models.StepResult
	for _, units := range s.todayUnits {
		result.UnitsSold += units
	}
	for _, profit := range s.todayProfit {
		result.Profit += profit
	}
	return result
}

func (s *Shop) inventorySnapshots() []models.InventoryRecord {
	snapshots := make([]models.InventoryRecord, 0, len(s.catalog))
	for _, item := range s.catalog {
		snapshots = append(snapshots, models.InventoryRecord{
			Timestamp: s.currentTime,
			Item:      item.Name,
			Quantity:  s.inventory[item.Name],
			Price:     s.currentPrice(item),
		})
	}
	return snapshots
}
