package cmd

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/florasim/florasim/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recommendTestConfig(t *testing.T) *models.Config {
	t.Helper()
	return &models.Config{
		Seed:                   42,
		StartDate:              time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC),
		Steps:                  6,
		InitialBudget:          1000000,
		DailyCustomers:         5000,
		OpeningHour:            8,
		ClosingHour:            20,
		RecommendationInterval: 4,
		OutputFormat:           "jsonl",
		OutputPath:             t.TempDir(),
		OutputFolder:           "florasim",
	}
}

func TestRefreshRecommendations(t *testing.T) {
	recs, err := refreshRecommendations(recommendTestConfig(t))
	require.NoError(t, err)
	require.NotNil(t, recs)

	// the default catalog's cost-derived prices
	assert.Equal(t, map[string]float64{
		"Roses":          160,
		"Tulips":         80,
		"Chrysanthemums": 70,
		"Gerberas":       90,
	}, recs.OptimalPrices)

	require.Len(t, recs.Reorders, 4)
	for item, advice := range recs.Reorders {
		assert.Contains(t, []string{models.ReorderUrgent, models.ReorderRestock, models.ReorderOK},
			advice.Category, item)
	}

	// six steps past an 08:00 start put the refresh at 14:00
	assert.Equal(t, time.Date(2026, time.March, 2, 14, 0, 0, 0, time.UTC), recs.GeneratedAt)
}

func TestRefreshRecommendations_NoSteps(t *testing.T) {
	cfg := recommendTestConfig(t)
	cfg.Steps = 0

	recs, err := refreshRecommendations(cfg)
	require.NoError(t, err)

	// untouched initial stock reads as ample supply everywhere
	for item, advice := range recs.Reorders {
		assert.Equal(t, models.ReorderOK, advice.Category, item)
	}
}

func TestRefreshRecommendations_BadCatalog(t *testing.T) {
	cfg := recommendTestConfig(t)
	cfg.CatalogFile = filepath.Join(t.TempDir(), "nope.csv")

	_, err := refreshRecommendations(cfg)
	assert.Error(t, err)
}

func TestRefreshRecommendations_BadSink(t *testing.T) {
	cfg := recommendTestConfig(t)
	cfg.OutputFormat = "xml"

	_, err := refreshRecommendations(cfg)
	assert.Error(t, err)
}
