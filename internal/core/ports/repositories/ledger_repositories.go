package repositories

import (
	"context"

	"github.com/finflow/family_finance_app/internal/core/domain"
)

// LedgerReader loads the working set of the cash-flow engine for one user:
// accounts, the full unfiltered transaction history, and the active scheduled
// obligations. The engine assumes the whole set fits in memory; there is no
// pagination. Any read error aborts the analysis.
type LedgerReader interface {
	AccountReader
	TransactionReader

	// ListActiveObligationsByUser retrieves the user's active obligations.
	ListActiveObligationsByUser(ctx context.Context, userID string) ([]domain.ScheduledObligation, error)
}

// PeriodReader loads the collections summed by the period income/expense
// aggregator, beyond what LedgerReader already provides.
type PeriodReader interface {
	TransactionReader

	// ListRecordsByUser retrieves the user's structured income/expense records.
	ListRecordsByUser(ctx context.Context, userID string) ([]domain.RecordEntry, error)

	// ListCashEntriesByUser retrieves the user's cash entries.
	ListCashEntriesByUser(ctx context.Context, userID string) ([]domain.CashEntry, error)

	// ListCardsByUser retrieves the user's cards with their embedded transactions.
	ListCardsByUser(ctx context.Context, userID string) ([]domain.Card, error)
}
