package shop

import (
	"context"

	"github.com/florasim/florasim/internal/models"
)

// Sink is the only storage contract the simulation depends on: two
// append-only streams, one row per sale event and one row per item per step
// for inventory snapshots. A sink error is fatal to the step that caused it;
// there is no retry policy in the core.
type Sink interface {
	RecordSale(ctx context.Context, sale models.SaleRecord) error
	RecordInventory(ctx context.Context, snapshots []models.InventoryRecord) error
	Close() error
}
