package output

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/florasim/florasim/internal/models"
	"github.com/florasim/florasim/internal/shop"
)

const (
	saleTopic      = "sale_events"
	inventoryTopic = "inventory_events"
)

// FromConfig picks the sink for a run. Kafka wins when enabled; otherwise
// the configured output format decides, with console as the fallback.
func FromConfig(config *models.Config) (shop.Sink, error) {
	if config.KafkaEnabled {
		return NewKafkaSink(config)
	}

	switch config.OutputFormat {
	case "postgres":
		return NewPostgresSink(&config.Database)
	case "parquet":
		return NewParquetSink(config)
	case "jsonl":
		return NewJSONLSink(config.OutputPath, config.OutputFolder)
	case "console", "":
		return &ConsoleSink{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", config.OutputFormat)
	}
}

// ConsoleSink prints every record to stdout as one JSON line per event,
// prefixed with its topic.
type ConsoleSink struct{}

func (c *ConsoleSink) RecordSale(_ context.Context, sale models.SaleRecord) error {
	return c.write(saleTopic, sale)
}

func (c *ConsoleSink) RecordInventory(_ context.Context, snapshots []models.InventoryRecord) error {
	for _, snapshot := range snapshots {
		if err := c.write(inventoryTopic, snapshot); err != nil {
			return err
		}
	}
	return nil
}

func (c *ConsoleSink) write(topic string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(os.Stdout, "[%s] %s\n", topic, data); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}
	return nil
}

func (c *ConsoleSink) Close() error {
	return nil
}

// MemorySink keeps every record in memory. It exists for tests and dry runs.
type MemorySink struct {
	mu        sync.Mutex
	Sales     []models.SaleRecord
	Snapshots []models.InventoryRecord
}

func (m *MemorySink) RecordSale(_ context.Context, sale models.SaleRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sales = append(m.Sales, sale)
	return nil
}

func (m *MemorySink) RecordInventory(_ context.Context, snapshots []models.InventoryRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Snapshots = append(m.Snapshots, snapshots...)
	return nil
}

func (m *MemorySink) Close() error {
	return nil
}
