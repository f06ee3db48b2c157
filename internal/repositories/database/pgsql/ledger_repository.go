package pgsql

import (
	"context"

	"github.com/finflow/family_finance_app/internal/core/domain"
	portsrepo "github.com/finflow/family_finance_app/internal/core/ports/repositories"
)

// PgxLedgerReader assembles the working set of the cash-flow engine from the
// per-table repositories. It adds no queries of its own.
type PgxLedgerReader struct {
	portsrepo.AccountReader
	portsrepo.TransactionReader
	obligations portsrepo.ObligationReader
}

// NewPgxLedgerReader creates the combined reader used by the analysis path.
func NewPgxLedgerReader(accounts portsrepo.AccountReader, transactions portsrepo.TransactionReader, obligations portsrepo.ObligationReader) *PgxLedgerReader {
	return &PgxLedgerReader{
		AccountReader:     accounts,
		TransactionReader: transactions,
		obligations:       obligations,
	}
}

var _ portsrepo.LedgerReader = (*PgxLedgerReader)(nil)

// ListActiveObligationsByUser retrieves the user's active obligations.
func (r *PgxLedgerReader) ListActiveObligationsByUser(ctx context.Context, userID string) ([]domain.ScheduledObligation, error) {
	return r.obligations.ListObligationsByUser(ctx, userID, true)
}

// PgxPeriodReader assembles the collections summed by the period aggregator.
type PgxPeriodReader struct {
	portsrepo.TransactionReader
	records portsrepo.RecordRepositoryFacade
	cash    portsrepo.CashEntryRepositoryFacade
	cards   portsrepo.CardRepositoryFacade
}

// NewPgxPeriodReader creates the combined reader used by the income/expense
// summary paths.
func NewPgxPeriodReader(transactions portsrepo.TransactionReader, records portsrepo.RecordRepositoryFacade, cash portsrepo.CashEntryRepositoryFacade, cards portsrepo.CardRepositoryFacade) *PgxPeriodReader {
	return &PgxPeriodReader{
		TransactionReader: transactions,
		records:           records,
		cash:              cash,
		cards:             cards,
	}
}

var _ portsrepo.PeriodReader = (*PgxPeriodReader)(nil)

// ListRecordsByUser retrieves the user's structured income/expense records.
func (r *PgxPeriodReader) ListRecordsByUser(ctx context.Context, userID string) ([]domain.RecordEntry, error) {
	return r.records.ListRecordsByUser(ctx, userID)
}

// ListCashEntriesByUser retrieves the user's cash entries.
func (r *PgxPeriodReader) ListCashEntriesByUser(ctx context.Context, userID string) ([]domain.CashEntry, error) {
	return r.cash.ListCashEntriesByUser(ctx, userID)
}

// ListCardsByUser retrieves the user's cards with their embedded transactions.
func (r *PgxPeriodReader) ListCardsByUser(ctx context.Context, userID string) ([]domain.Card, error) {
	return r.cards.ListCardsByUser(ctx, userID)
}
