package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/halcyonic/pulse/internal/common"
	"github.com/halcyonic/pulse/internal/model"
)

// SaveCustomers inserts or updates multiple customers in one transaction.
func (s *SQLiteStorage) SaveCustomers(ctx context.Context, customers []model.Customer) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateCustomers(customers); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO customers (id, company_name, sector, country, contact_name, email, phone, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			company_name = excluded.company_name,
			sector = excluded.sector,
			country = excluded.country,
			contact_name = excluded.contact_name,
			email = excluded.email,
			phone = excluded.phone
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, cust := range customers {
		createdAt := cust.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now().UTC()
		}
		if _, err := stmt.ExecContext(ctx,
			cust.ID,
			cust.CompanyName,
			cust.Sector,
			cust.Country,
			cust.ContactName,
			cust.Email,
			cust.Phone,
			createdAt,
		); err != nil {
			return fmt.Errorf("failed to save customer %s: %w", cust.ID, err)
		}
	}

	return tx.Commit()
}

// ListCustomers returns all customers ordered by company name.
func (s *SQLiteStorage) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, company_name, sector, country, contact_name, email, phone, created_at
		FROM customers
		ORDER BY company_name, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var customers []model.Customer
	for rows.Next() {
		var cust model.Customer
		var sector, country, contact, email, phone sql.NullString
		if err := rows.Scan(
			&cust.ID,
			&cust.CompanyName,
			&sector,
			&country,
			&contact,
			&email,
			&phone,
			&cust.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		cust.Sector = sector.String
		cust.Country = country.String
		cust.ContactName = contact.String
		cust.Email = email.String
		cust.Phone = phone.String
		customers = append(customers, cust)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate customers: %w", err)
	}
	return customers, nil
}

// GetCustomer returns a single customer by ID.
func (s *SQLiteStorage) GetCustomer(ctx context.Context, id string) (*model.Customer, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	var cust model.Customer
	var sector, country, contact, email, phone sql.NullString
	err := s.db.QueryRowContext(ctx, `
		SELECT id, company_name, sector, country, contact_name, email, phone, created_at
		FROM customers
		WHERE id = ?
	`, id).Scan(
		&cust.ID,
		&cust.CompanyName,
		&sector,
		&country,
		&contact,
		&email,
		&phone,
		&cust.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("customer %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	cust.Sector = sector.String
	cust.Country = country.String
	cust.ContactName = contact.String
	cust.Email = email.String
	cust.Phone = phone.String
	return &cust, nil
}
