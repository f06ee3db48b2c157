package services

import (
	"context"

	"github.com/finflow/family_finance_app/internal/core/domain"
)

// CashflowAnalyzerSvc runs the cash-flow analysis and inter-account transfer
// suggestion engine for one user. The computation is a pure read path: it
// never writes back to the store and its output is never persisted.
type CashflowAnalyzerSvc interface {
	// AnalyzeCashflow reconstructs each account's effective balance,
	// normalizes the user's active obligations into monthly equivalents,
	// classifies every account and proposes safe transfers from surplus
	// accounts to deficit accounts.
	AnalyzeCashflow(ctx context.Context, userID string) (*domain.CashflowAnalysis, error)
}

// PeriodAggregatorSvc sums income and expenses over fixed calendar windows.
// It shares data sources with the analyzer but applies no obligation
// normalization; these are literal sums over a date window.
type PeriodAggregatorSvc interface {
	// LastMonthIncome totals income across records, bank deposits
	// (internal transfers excluded) and cash entries for the previous
	// calendar month.
	LastMonthIncome(ctx context.Context, userID string) (*domain.IncomeSummary, error)

	// ExpenseSummary totals expenses across records, bank withdrawals,
	// cash entries and card sub-lists for the previous calendar month,
	// plus a current-month-to-date total.
	ExpenseSummary(ctx context.Context, userID string) (*domain.ExpenseSummary, error)
}

// CashflowSvcFacade combines the analysis and aggregation read paths.
type CashflowSvcFacade interface {
	CashflowAnalyzerSvc
	PeriodAggregatorSvc
}
