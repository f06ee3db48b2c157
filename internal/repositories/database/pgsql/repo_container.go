package pgsql

import (
	portsrepo "github.com/finflow/family_finance_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires all concrete repositories against one pool,
// including the combined readers used by the cash-flow paths.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := NewPgxAccountRepository(dbPool)
	transactionRepo := NewPgxTransactionRepository(dbPool)
	obligationRepo := NewPgxObligationRepository(dbPool)
	cardRepo := NewPgxCardRepository(dbPool)
	cashEntryRepo := NewPgxCashEntryRepository(dbPool)
	recordRepo := NewPgxRecordRepository(dbPool)
	userRepo := NewPgxUserRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:     accountRepo,
		TransactionRepo: transactionRepo,
		ObligationRepo:  obligationRepo,
		CardRepo:        cardRepo,
		CashEntryRepo:   cashEntryRepo,
		RecordRepo:      recordRepo,
		UserRepo:        userRepo,
		Ledger:          NewPgxLedgerReader(accountRepo, transactionRepo, obligationRepo),
		Period:          NewPgxPeriodReader(transactionRepo, recordRepo, cashEntryRepo, cardRepo),
	}
}
