package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountStatus is the projected monthly cash position of an account.
type AccountStatus string

const (
	StatusSurplus AccountStatus = "surplus"
	StatusDeficit AccountStatus = "deficit"
)

// HealthTier is the qualitative bucket derived from cash-flow relative to
// monthly obligations.
type HealthTier string

const (
	HealthHealthy  HealthTier = "healthy"
	HealthWarning  HealthTier = "warning"
	HealthCritical HealthTier = "critical"
)

// SuggestionPriority orders transfer suggestions by urgency.
type SuggestionPriority string

const (
	PriorityHigh   SuggestionPriority = "high"
	PriorityMedium SuggestionPriority = "medium"
)

// ObligationShare is one obligation's contribution to an account's monthly
// total, as attributed by the classifier.
type ObligationShare struct {
	Title         string              `json:"title"`
	Frequency     ObligationFrequency `json:"frequency"`
	MonthlyAmount decimal.Decimal     `json:"monthlyAmount"`
}

// ClassifiedAccount is the per-account output of the cash-flow classifier.
// It is derived fresh on every analysis and never persisted.
type ClassifiedAccount struct {
	AccountID          string            `json:"accountID"`
	Name               string            `json:"name"`
	BankName           string            `json:"bankName"`
	AccountNumber      string            `json:"accountNumber"`
	EffectiveBalance   decimal.Decimal   `json:"effectiveBalance"`
	MonthlyObligations decimal.Decimal   `json:"monthlyObligations"`
	CashFlow           decimal.Decimal   `json:"cashFlow"` // EffectiveBalance - MonthlyObligations
	Status             AccountStatus     `json:"status"`
	Health             HealthTier        `json:"health"`
	Obligations        []ObligationShare `json:"obligations"`
}

// TransferParty is the snapshot of one side of a suggested transfer.
type TransferParty struct {
	AccountID     string          `json:"accountID"`
	Name          string          `json:"name"`
	BankName      string          `json:"bankName"`
	AccountNumber string          `json:"accountNumber"`
	Balance       decimal.Decimal `json:"balance"`
	CashFlow      decimal.Decimal `json:"cashFlow"`
}

// TransferSuggestion is one recommended inter-account transfer. It is
// advisory only; the engine never executes or persists transfers.
type TransferSuggestion struct {
	From     TransferParty      `json:"from"`
	To       TransferParty      `json:"to"`
	Amount   decimal.Decimal    `json:"amount"`
	Reason   string             `json:"reason"`
	Priority SuggestionPriority `json:"priority"`
}

// CashflowSummary aggregates the classified accounts of one analysis.
type CashflowSummary struct {
	TotalBanks           int             `json:"totalBanks"`
	TotalBalance         decimal.Decimal `json:"totalBalance"`
	TotalMonthlyExpenses decimal.Decimal `json:"totalMonthlyExpenses"`
	TotalCashFlow        decimal.Decimal `json:"totalCashFlow"`
	BanksInDeficit       int             `json:"banksInDeficit"`
	BanksInSurplus       int             `json:"banksInSurplus"`
	CriticalBanks        int             `json:"criticalBanks"`
	WarningBanks         int             `json:"warningBanks"`
}

// CashflowAnalysis is the full result of one analysis request.
type CashflowAnalysis struct {
	Summary     CashflowSummary      `json:"summary"`
	Banks       []ClassifiedAccount  `json:"banks"`
	Suggestions []TransferSuggestion `json:"suggestions"`
}

// Period is a closed date window.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// IncomeBreakdown splits a period's income by source.
type IncomeBreakdown struct {
	IncomeExpense decimal.Decimal `json:"incomeExpense"` // structured records
	Bank          decimal.Decimal `json:"bank"`          // deposit transactions, internal transfers excluded
	Cash          decimal.Decimal `json:"cash"`
}

// IncomeSummary is the output of the last-month income aggregation.
type IncomeSummary struct {
	LastMonthIncome decimal.Decimal `json:"lastMonthIncome"`
	LastMonthPeriod Period          `json:"lastMonthPeriod"`
	Breakdown       IncomeBreakdown `json:"breakdown"`
}

// ExpenseBreakdown splits a period's expenses by source. Cards contribute
// through their embedded transaction sub-lists.
type ExpenseBreakdown struct {
	IncomeExpense decimal.Decimal `json:"incomeExpense"`
	Bank          decimal.Decimal `json:"bank"`
	Cash          decimal.Decimal `json:"cash"`
	Card          decimal.Decimal `json:"card"`
}

// ExpenseSummary is the output of the expense aggregation: last calendar
// month plus current-month-to-date.
type ExpenseSummary struct {
	LastMonthExpenses    decimal.Decimal  `json:"lastMonthExpenses"`
	CurrentMonthExpenses decimal.Decimal  `json:"currentMonthExpenses"`
	LastMonthPeriod      Period           `json:"lastMonthPeriod"`
	Breakdown            ExpenseBreakdown `json:"breakdown"` // last-month sources
}
