// Package storage persists generated datasets to SQLite so other tools
// can seed from the same fixture.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"salesgen/internal/core"
	"salesgen/internal/export"

	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db *sql.DB
}

var _ export.DatasetWriter = (*SQLiteRepository)(nil)

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// WriteDataset implements export.DatasetWriter. The table mirrors the CSV
// fixture, so each run replaces all previous rows inside one transaction.
func (r *SQLiteRepository) WriteDataset(ctx context.Context, ds core.Dataset) (string, error) {
	if err := ds.Validate(); err != nil {
		return "", fmt.Errorf("validation failed: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM sales_records`); err != nil {
		return "", fmt.Errorf("clear sales records: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO sales_records (run_id, month, product, unit_price_cents, quantity, amount_cents)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range ds.Records {
		if _, err := stmt.ExecContext(ctx,
			ds.RunID,
			core.MonthLabel(rec.Month),
			rec.Product,
			rec.UnitPrice.Cents,
			rec.Quantity,
			rec.Amount.Cents,
		); err != nil {
			return "", fmt.Errorf("insert record %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit transaction: %w", err)
	}

	slog.InfoContext(ctx, "Dataset saved to SQLite",
		"run_id", ds.RunID,
		"rows", len(ds.Records))

	return fmt.Sprintf("sqlite:sales_records:%d", len(ds.Records)), nil
}

// CountRecords returns the number of stored sales records.
func (r *SQLiteRepository) CountRecords(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sales_records`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count sales records: %w", err)
	}
	return n, nil
}

// ListByMonth returns the stored records for one month label, in insert
// order.
func (r *SQLiteRepository) ListByMonth(ctx context.Context, monthLabel string) ([]core.Record, error) {
	month, err := time.Parse(core.MonthLabelLayout, monthLabel)
	if err != nil {
		return nil, fmt.Errorf("parse month label %q: %w", monthLabel, err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT product, unit_price_cents, quantity, amount_cents
		FROM sales_records
		WHERE month = ?
		ORDER BY id`, monthLabel)
	if err != nil {
		return nil, fmt.Errorf("query records for %s: %w", monthLabel, err)
	}
	defer rows.Close()

	var records []core.Record
	for rows.Next() {
		var (
			product                 string
			priceCents, amountCents int64
			quantity                int
		)
		if err := rows.Scan(&product, &priceCents, &quantity, &amountCents); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, core.Record{
			Month:     month,
			Product:   product,
			UnitPrice: core.Money{Cents: priceCents},
			Quantity:  quantity,
			Amount:    core.Money{Cents: amountCents},
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return records, nil
}

// MonthOverview aggregates one month: the grand total plus per-product
// totals, largest first.
func (r *SQLiteRepository) MonthOverview(ctx context.Context, monthLabel string) (core.MonthOverview, error) {
	overview := core.MonthOverview{Month: monthLabel}

	var total int64
	if err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(amount_cents), 0)
		FROM sales_records
		WHERE month = ?`, monthLabel).Scan(&total); err != nil {
		return overview, fmt.Errorf("get month total: %w", err)
	}
	overview.Total = core.Money{Cents: total}

	rows, err := r.db.QueryContext(ctx, `
		SELECT product, SUM(amount_cents) AS total_amount
		FROM sales_records
		WHERE month = ?
		GROUP BY product
		ORDER BY total_amount DESC, product`, monthLabel)
	if err != nil {
		return overview, fmt.Errorf("get product sums: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			product string
			amount  int64
		)
		if err := rows.Scan(&product, &amount); err != nil {
			return overview, fmt.Errorf("scan product sum: %w", err)
		}
		overview.ByProduct = append(overview.ByProduct, core.ProductAmount{
			Name:   product,
			Amount: core.Money{Cents: amount},
		})
	}
	if err := rows.Err(); err != nil {
		return overview, fmt.Errorf("iterate product sums: %w", err)
	}
	return overview, nil
}
