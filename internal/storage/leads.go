package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/halcyonic/pulse/internal/common"
	"github.com/halcyonic/pulse/internal/model"
)

// SaveLeads inserts or updates multiple leads in one transaction.
func (s *SQLiteStorage) SaveLeads(ctx context.Context, leads []model.Lead) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateLeads(leads); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO leads (id, name, company, source, stage, value, last_activity, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			company = excluded.company,
			source = excluded.source,
			stage = excluded.stage,
			value = excluded.value,
			last_activity = excluded.last_activity
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, lead := range leads {
		// Unknown timestamps persist as NULL; a backfilled created time
		// would feed the activity fallback and hide a dateless lead
		// from the passivity exclusion.
		if _, err := stmt.ExecContext(ctx,
			lead.ID,
			lead.Name,
			lead.Company,
			lead.Source,
			lead.Stage,
			lead.Value,
			nullTime(lead.LastActivity),
			nullTime(lead.CreatedAt),
		); err != nil {
			return fmt.Errorf("failed to save lead %s: %w", lead.ID, err)
		}
	}

	return tx.Commit()
}

// ListLeads returns all leads ordered by last activity ascending, the
// longest-dormant first. Leads without a recorded activity sort first.
func (s *SQLiteStorage) ListLeads(ctx context.Context) ([]model.Lead, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, company, source, stage, value, last_activity, created_at
		FROM leads
		ORDER BY last_activity ASC NULLS FIRST, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query leads: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var leads []model.Lead
	for rows.Next() {
		var lead model.Lead
		var company, source, stage sql.NullString
		var lastActivity, createdAt sql.NullTime
		if err := rows.Scan(
			&lead.ID,
			&lead.Name,
			&company,
			&source,
			&stage,
			&lead.Value,
			&lastActivity,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan lead: %w", err)
		}
		lead.Company = company.String
		lead.Source = source.String
		lead.Stage = stage.String
		if lastActivity.Valid {
			lead.LastActivity = lastActivity.Time
		}
		if createdAt.Valid {
			lead.CreatedAt = createdAt.Time
		}
		leads = append(leads, lead)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leads: %w", err)
	}
	return leads, nil
}

// TouchLead records a new interaction timestamp for a lead.
func (s *SQLiteStorage) TouchLead(ctx context.Context, id string, at time.Time) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `UPDATE leads SET last_activity = ? WHERE id = ?`, at, id)
	if err != nil {
		return fmt.Errorf("failed to update lead %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update of lead %s: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("lead %s: %w", id, common.ErrNotFound)
	}
	return nil
}
