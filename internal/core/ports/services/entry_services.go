package services

import (
	"context"

	"github.com/finflow/family_finance_app/internal/core/domain"
	"github.com/finflow/family_finance_app/internal/dto"
)

// CardSvcFacade defines operations for cards and their embedded transactions
type CardSvcFacade interface {
	// CreateCard persists a new card for the user.
	CreateCard(ctx context.Context, req dto.CreateCardRequest, userID string) (*domain.Card, error)

	// ListCards retrieves all cards belonging to the user.
	ListCards(ctx context.Context, userID string) ([]domain.Card, error)

	// AddCardTransaction appends one entry to a card's embedded list.
	AddCardTransaction(ctx context.Context, cardID string, req dto.CreateCardTransactionRequest, userID string) error
}

// CashEntrySvcFacade defines operations for cash entries
type CashEntrySvcFacade interface {
	// CreateCashEntry persists a new cash entry for the user.
	CreateCashEntry(ctx context.Context, req dto.CreateEntryRequest, userID string) (*domain.CashEntry, error)

	// ListCashEntries retrieves all cash entries belonging to the user.
	ListCashEntries(ctx context.Context, userID string) ([]domain.CashEntry, error)
}

// RecordSvcFacade defines operations for structured income/expense records
type RecordSvcFacade interface {
	// CreateRecord persists a new record for the user.
	CreateRecord(ctx context.Context, req dto.CreateEntryRequest, userID string) (*domain.RecordEntry, error)

	// ListRecords retrieves all records belonging to the user.
	ListRecords(ctx context.Context, userID string) ([]domain.RecordEntry, error)
}
