package factories

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/florasim/florasim/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()
	require.Len(t, catalog, 4)

	byName := make(map[string]*models.Item)
	for _, item := range catalog {
		byName[item.Name] = item
		assert.Equal(t, 1000, item.InitialStock, item.Name)
	}

	require.Contains(t, byName, "Roses")
	assert.Equal(t, 150.0, byName["Roses"].BasePrice)
	assert.Equal(t, 80.0, byName["Roses"].Cost)
	assert.Equal(t, 0.30, byName["Roses"].Popularity)

	require.Contains(t, byName, "Gerberas")
	assert.Equal(t, 90.0, byName["Gerberas"].BasePrice)
	assert.Equal(t, 0.12, byName["Gerberas"].Popularity)
}

func TestSyntheticItems(t *testing.T) {
	items := SyntheticItems(30)
	require.Len(t, items, 30)

	names := make(map[string]struct{})
	for _, item := range items {
		assert.NotEmpty(t, item.Name)
		_, dup := names[item.Name]
		assert.False(t, dup, "duplicate synthetic name %s", item.Name)
		names[item.Name] = struct{}{}

		assert.GreaterOrEqual(t, item.Cost, 20.0)
		assert.LessOrEqual(t, item.Cost, 120.0)
		assert.Greater(t, item.BasePrice, item.Cost, "%s must sell above cost", item.Name)
		assert.GreaterOrEqual(t, item.Popularity, 0.01)
		assert.LessOrEqual(t, item.Popularity, 0.08)
		assert.GreaterOrEqual(t, item.InitialStock, 200)
		assert.LessOrEqual(t, item.InitialStock, 1500)
	}
}

func TestSyntheticItems_Zero(t *testing.T) {
	assert.Empty(t, SyntheticItems(0))
}

func TestBuildCatalog(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		catalog, err := BuildCatalog(&models.Config{})
		require.NoError(t, err)
		assert.Len(t, catalog, 4)
	})

	t.Run("defaults plus synthetics", func(t *testing.T) {
		catalog, err := BuildCatalog(&models.Config{SyntheticItems: 6})
		require.NoError(t, err)
		assert.Len(t, catalog, 10)
	})

	t.Run("catalog file wins", func(t *testing.T) {
		content := "name,base_price,cost,popularity,initial_stock\n" +
			"Roses,150,80,0.30,1000\n"
		path := filepath.Join(t.TempDir(), "catalog.csv")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		catalog, err := BuildCatalog(&models.Config{CatalogFile: path})
		require.NoError(t, err)
		require.Len(t, catalog, 1)
		assert.Equal(t, "Roses", catalog[0].Name)
	})

	t.Run("bad catalog file", func(t *testing.T) {
		_, err := BuildCatalog(&models.Config{CatalogFile: filepath.Join(t.TempDir(), "nope.csv")})
		assert.Error(t, err)
	})
}
