package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/finflow/family_finance_app/internal/apperrors"
	"github.com/finflow/family_finance_app/internal/core/domain"
	portsrepo "github.com/finflow/family_finance_app/internal/core/ports/repositories"
	"github.com/finflow/family_finance_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxObligationRepository struct {
	pool *pgxpool.Pool
}

// NewPgxObligationRepository creates a new repository for scheduled obligation data.
func NewPgxObligationRepository(pool *pgxpool.Pool) portsrepo.ObligationRepositoryFacade {
	return &PgxObligationRepository{pool: pool}
}

var _ portsrepo.ObligationRepositoryFacade = (*PgxObligationRepository)(nil)

func toModelObligation(d domain.ScheduledObligation) models.ScheduledObligation {
	return models.ScheduledObligation{
		ObligationID:  d.ObligationID,
		UserID:        d.UserID,
		AccountNumber: d.AccountNumber,
		Title:         d.Title,
		Amount:        d.Amount,
		DueDate:       d.DueDate,
		Frequency:     string(d.Frequency),
		Category:      d.Category,
		IsActive:      d.IsActive,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainObligation(m models.ScheduledObligation) domain.ScheduledObligation {
	return domain.ScheduledObligation{
		ObligationID:  m.ObligationID,
		UserID:        m.UserID,
		AccountNumber: m.AccountNumber,
		Title:         m.Title,
		Amount:        m.Amount,
		DueDate:       m.DueDate,
		Frequency:     domain.ObligationFrequency(m.Frequency),
		Category:      m.Category,
		IsActive:      m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const obligationColumns = `obligation_id, user_id, account_number, title, amount, due_date, frequency, category, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanObligation(row pgx.Row) (models.ScheduledObligation, error) {
	var m models.ScheduledObligation
	err := row.Scan(
		&m.ObligationID,
		&m.UserID,
		&m.AccountNumber,
		&m.Title,
		&m.Amount,
		&m.DueDate,
		&m.Frequency,
		&m.Category,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveObligation inserts a new scheduled obligation.
func (r *PgxObligationRepository) SaveObligation(ctx context.Context, obligation domain.ScheduledObligation) error {
	m := toModelObligation(obligation)

	query := `
		INSERT INTO scheduled_obligations (` + obligationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.pool.Exec(ctx, query,
		m.ObligationID,
		m.UserID,
		m.AccountNumber,
		m.Title,
		m.Amount,
		m.DueDate,
		m.Frequency,
		m.Category,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save obligation %s: %w", m.ObligationID, err)
	}
	return nil
}

// FindObligationByID retrieves an obligation by its ID.
func (r *PgxObligationRepository) FindObligationByID(ctx context.Context, obligationID string) (*domain.ScheduledObligation, error) {
	query := `SELECT ` + obligationColumns + ` FROM scheduled_obligations WHERE obligation_id = $1;`

	m, err := scanObligation(r.pool.QueryRow(ctx, query, obligationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find obligation %s: %w", obligationID, err)
	}

	obligation := toDomainObligation(m)
	return &obligation, nil
}

// ListObligationsByUser retrieves a user's obligations, optionally only active ones.
func (r *PgxObligationRepository) ListObligationsByUser(ctx context.Context, userID string, activeOnly bool) ([]domain.ScheduledObligation, error) {
	query := `SELECT ` + obligationColumns + ` FROM scheduled_obligations WHERE user_id = $1`
	if activeOnly {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY due_date;`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list obligations for user %s: %w", userID, err)
	}
	defer rows.Close()

	obligations := make([]domain.ScheduledObligation, 0)
	for rows.Next() {
		m, err := scanObligation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan obligation row: %w", err)
		}
		obligations = append(obligations, toDomainObligation(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating obligation rows: %w", err)
	}
	return obligations, nil
}

// UpdateObligation updates an existing obligation.
func (r *PgxObligationRepository) UpdateObligation(ctx context.Context, obligation domain.ScheduledObligation) error {
	m := toModelObligation(obligation)

	query := `
		UPDATE scheduled_obligations
		SET title = $2, amount = $3, due_date = $4, frequency = $5, category = $6, is_active = $7, last_updated_at = $8, last_updated_by = $9
		WHERE obligation_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		m.ObligationID,
		m.Title,
		m.Amount,
		m.DueDate,
		m.Frequency,
		m.Category,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update obligation %s: %w", m.ObligationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteObligation removes an obligation owned by the user.
func (r *PgxObligationRepository) DeleteObligation(ctx context.Context, obligationID string, userID string) error {
	query := `DELETE FROM scheduled_obligations WHERE obligation_id = $1 AND user_id = $2;`

	tag, err := r.pool.Exec(ctx, query, obligationID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete obligation %s: %w", obligationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
