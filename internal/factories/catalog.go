package factories

import (
	"fmt"
	"math"

	"github.com/florasim/florasim/internal/models"
	"github.com/jaswdr/faker"
)

var fake = faker.New()

var syntheticSpecies = []string{
	"Lilies", "Orchids", "Peonies", "Carnations", "Daisies",
	"Freesias", "Irises", "Ranunculus", "Anemones", "Dahlias",
	"Hydrangeas", "Sunflowers", "Lisianthus", "Alstroemerias",
}

// DefaultCatalog returns the stock flower shop catalog: four species with
// fixed economics and a thousand stems of each on hand.
func DefaultCatalog() []*models.Item {
	return []*models.Item{
		{Name: "Roses", BasePrice: 150, Cost: 80, Popularity: 0.30, InitialStock: 1000},
		{Name: "Tulips", BasePrice: 80, Cost: 40, Popularity: 0.20, InitialStock: 1000},
		{Name: "Chrysanthemums", BasePrice: 70, Cost: 35, Popularity: 0.15, InitialStock: 1000},
		{Name: "Gerberas", BasePrice: 90, Cost: 45, Popularity: 0.12, InitialStock: 1000},
	}
}

// SyntheticItems generates n extra catalog entries for stress runs. Prices
// follow the same economics as the stock catalog: base price is a rough 80%
// markup on cost and popularity stays in the single-digit percent range so
// synthetic items never dominate demand.
func SyntheticItems(n int) []*models.Item {
	items := make([]*models.Item, n)
	for i := 0; i < n; i++ {
		cost := fake.Float64(0, 20, 120)
		species := syntheticSpecies[i%len(syntheticSpecies)]
		name := fmt.Sprintf("%s %s", fake.Color().ColorName(), species)
		if i >= len(syntheticSpecies) {
			name = fmt.Sprintf("%s #%d", name, i/len(syntheticSpecies)+1)
		}
		items[i] = &models.Item{
			Name:         name,
			BasePrice:    math.Round(cost * 1.8),
			Cost:         cost,
			Popularity:   float64(fake.IntBetween(1, 8)) / 100,
			InitialStock: fake.IntBetween(200, 1500),
		}
	}
	return items
}

// BuildCatalog assembles the simulation catalog from config: an explicit
// catalog file wins, otherwise the default catalog, optionally extended with
// synthetic items.
func BuildCatalog(cfg *models.Config) ([]*models.Item, error) {
	var catalog []*models.Item
	if cfg.CatalogFile != "" {
		loaded, err := models.LoadCatalogData(cfg.CatalogFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog file: %w", err)
		}
		catalog = loaded
	} else {
		catalog = DefaultCatalog()
	}

	if cfg.SyntheticItems > 0 {
		catalog = append(catalog, SyntheticItems(cfg.SyntheticItems)...)
	}

	return catalog, nil
}
