package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	AccountRepo     AccountRepositoryFacade
	TransactionRepo TransactionRepositoryFacade
	ObligationRepo  ObligationRepositoryFacade
	CardRepo        CardRepositoryFacade
	CashEntryRepo   CashEntryRepositoryFacade
	RecordRepo      RecordRepositoryFacade
	UserRepo        UserRepositoryFacade
	Ledger          LedgerReader
	Period          PeriodReader
}
