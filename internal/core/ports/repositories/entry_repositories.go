package repositories

import (
	"context"

	"github.com/finflow/family_finance_app/internal/core/domain"
)

// CashEntryRepositoryFacade defines operations for cash entries.
type CashEntryRepositoryFacade interface {
	// SaveCashEntry persists a new cash entry.
	SaveCashEntry(ctx context.Context, entry domain.CashEntry) error

	// ListCashEntriesByUser retrieves all cash entries belonging to a user.
	ListCashEntriesByUser(ctx context.Context, userID string) ([]domain.CashEntry, error)
}

// RecordRepositoryFacade defines operations for structured income/expense records.
type RecordRepositoryFacade interface {
	// SaveRecord persists a new record.
	SaveRecord(ctx context.Context, record domain.RecordEntry) error

	// ListRecordsByUser retrieves all records belonging to a user.
	ListRecordsByUser(ctx context.Context, userID string) ([]domain.RecordEntry, error)
}
