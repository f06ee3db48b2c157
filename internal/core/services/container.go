package services

import (
	portsrepo "github.com/finflow/family_finance_app/internal/core/ports/repositories"
	portssvc "github.com/finflow/family_finance_app/internal/core/ports/services"
	"github.com/finflow/family_finance_app/internal/platform/config"
)

// NewServiceContainer creates the full service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account:     NewAccountService(repos.AccountRepo),
		Transaction: NewTransactionService(repos.TransactionRepo, repos.AccountRepo),
		Obligation:  NewObligationService(repos.ObligationRepo),
		Card:        NewCardService(repos.CardRepo),
		CashEntry:   NewCashEntryService(repos.CashEntryRepo),
		Record:      NewRecordService(repos.RecordRepo),
		User:        NewUserService(repos.UserRepo),
		Token:       NewTokenService(cfg),
		GoogleOAuth: NewGoogleOAuthService(cfg),
		Cashflow:    NewCashflowService(repos.Ledger, repos.Period),
	}
}
