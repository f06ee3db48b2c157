package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/finflow/family_finance_app/internal/core/domain"
	portsrepo "github.com/finflow/family_finance_app/internal/core/ports/repositories"
	portssvc "github.com/finflow/family_finance_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// Classification thresholds. Ratios are relative to an account's own monthly
// obligations (warning buffer, comfort) or balance (drain cap).
var (
	warningBufferRatio = decimal.NewFromFloat(0.2) // below this buffer a surplus account is "warning"
	comfortRatio       = decimal.NewFromFloat(0.5) // surplus must exceed this share of obligations to be tapped
	surplusTapRatio    = decimal.NewFromFloat(0.7) // max share of remaining surplus moved per suggestion
	balanceDrainRatio  = decimal.NewFromFloat(0.5) // max share of the source balance moved per suggestion
	minTransferAmount  = decimal.NewFromInt(1000)  // suggestions below this are not worth acting on
)

// cashflowService implements the cash-flow analysis engine and the period
// income/expense aggregator. Both are pure read paths over the same stores.
type cashflowService struct {
	BaseService
	ledger portsrepo.LedgerReader
	period portsrepo.PeriodReader
	now    func() time.Time
}

// CashflowServiceOption is a functional option for configuring the cashflow service
type CashflowServiceOption func(*cashflowService)

// WithClock overrides the time source, used by tests to pin the current month.
func WithClock(now func() time.Time) CashflowServiceOption {
	return func(s *cashflowService) {
		s.now = now
	}
}

// NewCashflowService creates a new cashflow service with the provided options
func NewCashflowService(ledger portsrepo.LedgerReader, period portsrepo.PeriodReader, options ...CashflowServiceOption) portssvc.CashflowSvcFacade {
	svc := &cashflowService{
		ledger: ledger,
		period: period,
		now:    time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.CashflowSvcFacade = (*cashflowService)(nil)

// AnalyzeCashflow runs the full pipeline for one user: load the ledger,
// reconstruct balances, normalize obligations, classify every account and
// derive transfer suggestions. Any read error aborts the whole analysis;
// there are no partial results.
func (s *cashflowService) AnalyzeCashflow(ctx context.Context, userID string) (*domain.CashflowAnalysis, error) {
	accounts, err := s.ledger.ListAccountsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load accounts for cashflow analysis", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}

	transactions, err := s.ledger.ListTransactionsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for cashflow analysis", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	obligations, err := s.ledger.ListActiveObligationsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load obligations for cashflow analysis", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to load scheduled obligations: %w", err)
	}

	now := s.now()
	classified := classifyAccounts(accounts, transactions, obligations, now)
	suggestions := suggestTransfers(classified)

	analysis := &domain.CashflowAnalysis{
		Summary:     summarize(classified),
		Banks:       classified,
		Suggestions: suggestions,
	}

	s.LogInfo(ctx, "Cashflow analysis generated",
		slog.String("user_id", userID),
		slog.Int("accounts", len(classified)),
		slog.Int("suggestions", len(suggestions)))
	return analysis, nil
}

// reconstructBalance replays the full transaction history of one account
// against its stated balance snapshot. There is no as-of cutoff: if the
// stored balance already reflects some of these transactions they are
// double-counted. That matches the source data model, which records no
// "balance as-of" timestamp.
func reconstructBalance(acc domain.Account, transactions []domain.Transaction) decimal.Decimal {
	balance := acc.Balance
	for _, txn := range transactions {
		if txn.AccountID != acc.AccountID {
			continue
		}
		balance = balance.Add(txn.Signed())
	}
	return balance
}

// classifyAccounts runs reconstruction, normalization and classification for
// every account. Obligations join to accounts via the denormalized account
// number; the index is built once per call instead of scanning per account.
func classifyAccounts(accounts []domain.Account, transactions []domain.Transaction, obligations []domain.ScheduledObligation, now time.Time) []domain.ClassifiedAccount {
	byAccountNumber := make(map[string][]domain.ScheduledObligation, len(obligations))
	for _, o := range obligations {
		if !o.IsActive {
			continue
		}
		byAccountNumber[o.AccountNumber] = append(byAccountNumber[o.AccountNumber], o)
	}

	classified := make([]domain.ClassifiedAccount, 0, len(accounts))
	for _, acc := range accounts {
		classified = append(classified, classifyAccount(acc, transactions, byAccountNumber[acc.AccountNumber], now))
	}
	return classified
}

func classifyAccount(acc domain.Account, transactions []domain.Transaction, obligations []domain.ScheduledObligation, now time.Time) domain.ClassifiedAccount {
	effective := reconstructBalance(acc, transactions)

	monthlyTotal := decimal.Zero
	shares := make([]domain.ObligationShare, 0, len(obligations))
	for _, o := range obligations {
		monthly := o.MonthlyEquivalent(now)
		monthlyTotal = monthlyTotal.Add(monthly)
		shares = append(shares, domain.ObligationShare{
			Title:         o.Title,
			Frequency:     o.Frequency,
			MonthlyAmount: monthly,
		})
	}

	// Round after the subtraction, not before.
	cashFlow := effective.Sub(monthlyTotal).Round(2)

	status := domain.StatusSurplus
	if cashFlow.IsNegative() {
		status = domain.StatusDeficit
	}

	var health domain.HealthTier
	switch {
	case cashFlow.IsNegative():
		health = domain.HealthCritical
	case cashFlow.LessThan(monthlyTotal.Mul(warningBufferRatio)):
		// Non-negative but with less than a 20% buffer over obligations.
		// With zero obligations the threshold is zero and this never fires.
		health = domain.HealthWarning
	default:
		health = domain.HealthHealthy
	}

	return domain.ClassifiedAccount{
		AccountID:          acc.AccountID,
		Name:               acc.Name,
		BankName:           acc.BankName,
		AccountNumber:      acc.AccountNumber,
		EffectiveBalance:   effective,
		MonthlyObligations: monthlyTotal,
		CashFlow:           cashFlow,
		Status:             status,
		Health:             health,
		Obligations:        shares,
	}
}

func summarize(classified []domain.ClassifiedAccount) domain.CashflowSummary {
	summary := domain.CashflowSummary{
		TotalBanks:           len(classified),
		TotalBalance:         decimal.Zero,
		TotalMonthlyExpenses: decimal.Zero,
		TotalCashFlow:        decimal.Zero,
	}
	for _, acc := range classified {
		summary.TotalBalance = summary.TotalBalance.Add(acc.EffectiveBalance)
		summary.TotalMonthlyExpenses = summary.TotalMonthlyExpenses.Add(acc.MonthlyObligations)
		summary.TotalCashFlow = summary.TotalCashFlow.Add(acc.CashFlow)
		switch acc.Status {
		case domain.StatusDeficit:
			summary.BanksInDeficit++
		case domain.StatusSurplus:
			summary.BanksInSurplus++
		}
		switch acc.Health {
		case domain.HealthCritical:
			summary.CriticalBanks++
		case domain.HealthWarning:
			summary.WarningBanks++
		}
	}
	return summary
}
