package output

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/florasim/florasim/internal/models"

	_ "github.com/lib/pq"
)

// PostgresSink appends sale events and inventory snapshots to the two
// durable tables. Nothing in the simulation path ever updates or deletes a
// row; maintenance operations live in the repositories package.
type PostgresSink struct {
	db *sql.DB
}

func NewPostgresSink(config *models.DatabaseConfig) (*PostgresSink, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.Host, config.Port, config.User, config.Password, config.DBName, config.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error pinging database: %w", err)
	}

	sink := &PostgresSink{db: db}
	if err := sink.ensureSchema(); err != nil {
		return nil, err
	}
	return sink, nil
}

func (p *PostgresSink) ensureSchema() error {
	_, err := p.db.Exec(`
        CREATE TABLE IF NOT EXISTS sales (
            id TEXT PRIMARY KEY,
            timestamp TIMESTAMPTZ NOT NULL,
            item TEXT NOT NULL,
            quantity INTEGER NOT NULL,
            price DOUBLE PRECISION NOT NULL,
            profit DOUBLE PRECISION NOT NULL
        )
    `)
	if err != nil {
		return fmt.Errorf("failed to create sales table: %w", err)
	}

	_, err = p.db.Exec(`
        CREATE TABLE IF NOT EXISTS inventory (
            id BIGSERIAL PRIMARY KEY,
            timestamp TIMESTAMPTZ NOT NULL,
            item TEXT NOT NULL,
            quantity INTEGER NOT NULL,
            price DOUBLE PRECISION NOT NULL
        )
    `)
	if err != nil {
		return fmt.Errorf("failed to create inventory table: %w", err)
	}
	return nil
}

func (p *PostgresSink) RecordSale(ctx context.Context, sale models.SaleRecord) error {
	_, err := p.db.ExecContext(ctx, `
        INSERT INTO sales (id, timestamp, item, quantity, price, profit)
        VALUES ($1, $2, $3, $4, $5, $6)
    `, sale.ID, sale.Timestamp, sale.Item, sale.Quantity, sale.Price, sale.Profit)
	if err != nil {
		return fmt.Errorf("failed to insert sale: %w", err)
	}
	return nil
}

func (p *PostgresSink) RecordInventory(ctx context.Context, snapshots []models.InventoryRecord) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
        INSERT INTO inventory (timestamp, item, quantity, price)
        VALUES ($1, $2, $3, $4)
    `)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, snapshot := range snapshots {
		_, err = stmt.ExecContext(ctx, snapshot.Timestamp, snapshot.Item, snapshot.Quantity, snapshot.Price)
		if err != nil {
			return fmt.Errorf("failed to insert snapshot for %s: %w", snapshot.Item, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (p *PostgresSink) Close() error {
	return p.db.Close()
}
