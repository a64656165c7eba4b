package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/halcyonic/pulse/internal/model"
)

// SaveInvoices inserts multiple invoices in one transaction. Existing
// IDs are ignored so re-importing the same file is idempotent.
func (s *SQLiteStorage) SaveInvoices(ctx context.Context, invoices []model.Invoice) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateInvoices(invoices); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO invoices (id, customer_id, customer_name, number, amount, currency, date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, inv := range invoices {
		// Unknown timestamps persist as NULL so they round-trip as zero
		// and stay excluded from classification; backfilling a created
		// time here would make a dateless invoice look freshly issued.
		if _, err := stmt.ExecContext(ctx,
			inv.ID,
			nullString(inv.CustomerID),
			nullString(inv.CustomerName),
			inv.Number,
			inv.Amount,
			inv.Currency,
			nullTime(inv.Date),
			nullTime(inv.CreatedAt),
		); err != nil {
			return fmt.Errorf("failed to save invoice %s: %w", inv.ID, err)
		}
	}

	return tx.Commit()
}

// ListInvoices returns all invoices ordered by date descending. Invoices
// without a date sort last.
func (s *SQLiteStorage) ListInvoices(ctx context.Context) ([]model.Invoice, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	return s.queryInvoices(ctx, `
		SELECT id, customer_id, customer_name, number, amount, currency, date, created_at
		FROM invoices
		ORDER BY date DESC NULLS LAST, id
	`)
}

// ListInvoicesForCustomer returns the invoices correlated to a customer
// by the stable ID or, for legacy rows without one, the company name.
func (s *SQLiteStorage) ListInvoicesForCustomer(ctx context.Context, customerID string) ([]model.Invoice, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(customerID, "customerID"); err != nil {
		return nil, err
	}
	return s.queryInvoices(ctx, `
		SELECT id, customer_id, customer_name, number, amount, currency, date, created_at
		FROM invoices
		WHERE customer_id = ? OR ((customer_id IS NULL OR customer_id = '') AND customer_name = ?)
		ORDER BY date DESC NULLS LAST, id
	`, customerID, customerID)
}

func (s *SQLiteStorage) queryInvoices(ctx context.Context, query string, args ...any) ([]model.Invoice, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var invoices []model.Invoice
	for rows.Next() {
		var inv model.Invoice
		var customerID, customerName, number, currency sql.NullString
		var date, createdAt sql.NullTime
		if err := rows.Scan(
			&inv.ID,
			&customerID,
			&customerName,
			&number,
			&inv.Amount,
			&currency,
			&date,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}
		inv.CustomerID = customerID.String
		inv.CustomerName = customerName.String
		inv.Number = number.String
		inv.Currency = currency.String
		if date.Valid {
			inv.Date = date.Time
		}
		if createdAt.Valid {
			inv.CreatedAt = createdAt.Time
		}
		invoices = append(invoices, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate invoices: %w", err)
	}
	return invoices, nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}
