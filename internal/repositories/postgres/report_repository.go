package postgres

import (
	"context"
	"fmt"

	"github.com/florasim/florasim/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReportRepository struct {
	pool *pgxpool.Pool
}

func NewReportRepository(pool *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{pool: pool}
}

// Connect builds a pgx pool from the database config.
func Connect(ctx context.Context, config *models.DatabaseConfig) (*pgxpool.Pool, error) {
	connStr := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.User, config.Password, config.Host, config.Port, config.DBName, config.SSLMode,
	)
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return pool, nil
}

func (r *ReportRepository) SalesCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM sales").Scan(&count)
	return count, err
}

func (r *ReportRepository) InventoryCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM inventory").Scan(&count)
	return count, err
}

func (r *ReportRepository) ItemTotals(ctx context.Context) ([]models.ItemTotals, error) {
	query := `
        SELECT item, SUM(quantity), SUM(profit)
        FROM sales
        GROUP BY item
        ORDER BY SUM(profit) DESC
    `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []models.ItemTotals
	for rows.Next() {
		var t models.ItemTotals
		if err := rows.Scan(&t.Item, &t.Units, &t.Profit); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

func (r *ReportRepository) RecentSales(ctx context.Context, limit int) ([]models.SaleRecord, error) {
	query := `
        SELECT id, timestamp, item, quantity, price, profit
        FROM sales
        ORDER BY timestamp DESC
        LIMIT $1
    `
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []models.SaleRecord
	for rows.Next() {
		var s models.SaleRecord
		if err := rows.Scan(&s.ID, &s.Timestamp, &s.Item, &s.Quantity, &s.Price, &s.Profit); err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

func (r *ReportRepository) Clear(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, "TRUNCATE TABLE sales"); err != nil {
		return fmt.Errorf("failed to clear sales: %w", err)
	}
	if _, err := r.pool.Exec(ctx, "TRUNCATE TABLE inventory"); err != nil {
		return fmt.Errorf("failed to clear inventory: %w", err)
	}
	return nil
}
