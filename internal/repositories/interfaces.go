package repositories

import (
	"context"

	"github.com/florasim/florasim/internal/models"
)

// ReportRepository is the read/maintenance side of the durable log. The
// simulation path never goes through it; only the stats and clear tooling do.
type ReportRepository interface {
	SalesCount(ctx context.Context) (int64, error)
	InventoryCount(ctx context.Context) (int64, error)
	ItemTotals(ctx context.Context) ([]models.ItemTotals, error)
	RecentSales(ctx context.Context, limit int) ([]models.SaleRecord, error)
	Clear(ctx context.Context) error
}
