package pgsql

import (
	"context"
	"fmt"

	"github.com/finflow/family_finance_app/internal/core/domain"
	portsrepo "github.com/finflow/family_finance_app/internal/core/ports/repositories"
	"github.com/finflow/family_finance_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCashEntryRepository struct {
	pool *pgxpool.Pool
}

// NewPgxCashEntryRepository creates a new repository for cash entries.
func NewPgxCashEntryRepository(pool *pgxpool.Pool) portsrepo.CashEntryRepositoryFacade {
	return &PgxCashEntryRepository{pool: pool}
}

var _ portsrepo.CashEntryRepositoryFacade = (*PgxCashEntryRepository)(nil)

const cashEntryColumns = `entry_id, user_id, entry_type, amount, entry_date, note, created_at, created_by, last_updated_at, last_updated_by`

func scanCashEntry(row pgx.Row) (models.CashEntry, error) {
	var m models.CashEntry
	err := row.Scan(
		&m.EntryID,
		&m.UserID,
		&m.Type,
		&m.Amount,
		&m.Date,
		&m.Note,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveCashEntry inserts a new cash entry.
func (r *PgxCashEntryRepository) SaveCashEntry(ctx context.Context, entry domain.CashEntry) error {
	query := `
		INSERT INTO cash_entries (` + cashEntryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.pool.Exec(ctx, query,
		entry.EntryID,
		entry.UserID,
		string(entry.Type),
		entry.Amount,
		entry.Date,
		entry.Note,
		entry.CreatedAt,
		entry.CreatedBy,
		entry.LastUpdatedAt,
		entry.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save cash entry %s: %w", entry.EntryID, err)
	}
	return nil
}

// ListCashEntriesByUser retrieves all cash entries belonging to a user.
func (r *PgxCashEntryRepository) ListCashEntriesByUser(ctx context.Context, userID string) ([]domain.CashEntry, error) {
	query := `SELECT ` + cashEntryColumns + ` FROM cash_entries WHERE user_id = $1 ORDER BY entry_date DESC;`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cash entries for user %s: %w", userID, err)
	}
	defer rows.Close()

	entries := make([]domain.CashEntry, 0)
	for rows.Next() {
		m, err := scanCashEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cash entry row: %w", err)
		}
		entries = append(entries, domain.CashEntry{
			EntryID: m.EntryID,
			UserID:  m.UserID,
			Type:    domain.EntryType(m.Type),
			Amount:  m.Amount,
			Date:    m.Date,
			Note:    m.Note,
			AuditFields: domain.AuditFields{
				CreatedAt:     m.CreatedAt,
				CreatedBy:     m.CreatedBy,
				LastUpdatedAt: m.LastUpdatedAt,
				LastUpdatedBy: m.LastUpdatedBy,
			},
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating cash entry rows: %w", err)
	}
	return entries, nil
}

type PgxRecordRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRecordRepository creates a new repository for income/expense records.
func NewPgxRecordRepository(pool *pgxpool.Pool) portsrepo.RecordRepositoryFacade {
	return &PgxRecordRepository{pool: pool}
}

var _ portsrepo.RecordRepositoryFacade = (*PgxRecordRepository)(nil)

const recordColumns = `record_id, user_id, record_type, amount, record_date, category, created_at, created_by, last_updated_at, last_updated_by`

// SaveRecord inserts a new income/expense record.
func (r *PgxRecordRepository) SaveRecord(ctx context.Context, record domain.RecordEntry) error {
	query := `
		INSERT INTO records (` + recordColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.pool.Exec(ctx, query,
		record.RecordID,
		record.UserID,
		string(record.Type),
		record.Amount,
		record.Date,
		record.Category,
		record.CreatedAt,
		record.CreatedBy,
		record.LastUpdatedAt,
		record.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save record %s: %w", record.RecordID, err)
	}
	return nil
}

// ListRecordsByUser retrieves all records belonging to a user.
func (r *PgxRecordRepository) ListRecordsByUser(ctx context.Context, userID string) ([]domain.RecordEntry, error) {
	query := `SELECT ` + recordColumns + ` FROM records WHERE user_id = $1 ORDER BY record_date DESC;`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list records for user %s: %w", userID, err)
	}
	defer rows.Close()

	records := make([]domain.RecordEntry, 0)
	for rows.Next() {
		var m models.RecordEntry
		err := rows.Scan(
			&m.RecordID,
			&m.UserID,
			&m.Type,
			&m.Amount,
			&m.Date,
			&m.Category,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record row: %w", err)
		}
		records = append(records, domain.RecordEntry{
			RecordID: m.RecordID,
			UserID:   m.UserID,
			Type:     domain.EntryType(m.Type),
			Amount:   m.Amount,
			Date:     m.Date,
			Category: m.Category,
			AuditFields: domain.AuditFields{
				CreatedAt:     m.CreatedAt,
				CreatedBy:     m.CreatedBy,
				LastUpdatedAt: m.LastUpdatedAt,
				LastUpdatedBy: m.LastUpdatedBy,
			},
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating record rows: %w", err)
	}
	return records, nil
}
