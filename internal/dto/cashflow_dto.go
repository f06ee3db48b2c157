package dto

import (
	"github.com/finflow/family_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CashflowSummaryResponse mirrors domain.CashflowSummary with rounded totals.
type CashflowSummaryResponse struct {
	TotalBanks           int             `json:"totalBanks"`
	TotalBalance         decimal.Decimal `json:"totalBalance"`
	TotalMonthlyExpenses decimal.Decimal `json:"totalMonthlyExpenses"`
	TotalCashFlow        decimal.Decimal `json:"totalCashFlow"`
	BanksInDeficit       int             `json:"banksInDeficit"`
	BanksInSurplus       int             `json:"banksInSurplus"`
	CriticalBanks        int             `json:"criticalBanks"`
	WarningBanks         int             `json:"warningBanks"`
}

// ClassifiedAccountResponse is one classified account in the analysis
// payload. Monetary fields are rounded to 2 decimal places.
type ClassifiedAccountResponse struct {
	AccountID          string                   `json:"accountID"`
	Name               string                   `json:"name"`
	BankName           string                   `json:"bankName"`
	AccountNumber      string                   `json:"accountNumber"`
	EffectiveBalance   decimal.Decimal          `json:"effectiveBalance"`
	MonthlyObligations decimal.Decimal          `json:"monthlyObligations"`
	CashFlow           decimal.Decimal          `json:"cashFlow"`
	Status             domain.AccountStatus     `json:"status"`
	Health             domain.HealthTier        `json:"health"`
	Obligations        []domain.ObligationShare `json:"obligations"`
}

// TransferPartyResponse is one side of a suggested transfer.
type TransferPartyResponse struct {
	AccountID     string          `json:"accountID"`
	Name          string          `json:"name"`
	BankName      string          `json:"bankName"`
	AccountNumber string          `json:"accountNumber"`
	Balance       decimal.Decimal `json:"balance"`
	CashFlow      decimal.Decimal `json:"cashFlow"`
}

// TransferSuggestionResponse is one suggested transfer in the payload.
type TransferSuggestionResponse struct {
	From     TransferPartyResponse     `json:"from"`
	To       TransferPartyResponse     `json:"to"`
	Amount   decimal.Decimal           `json:"amount"`
	Reason   string                    `json:"reason"`
	Priority domain.SuggestionPriority `json:"priority"`
}

// CashflowAnalysisResponse is the full analysis payload.
type CashflowAnalysisResponse struct {
	Success     bool                         `json:"success"`
	Summary     CashflowSummaryResponse      `json:"summary"`
	Banks       []ClassifiedAccountResponse  `json:"banks"`
	Suggestions []TransferSuggestionResponse `json:"suggestions"`
}

// PeriodResponse is a date window formatted as dates.
type PeriodResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// IncomeSummaryResponse is the last-month income payload.
type IncomeSummaryResponse struct {
	Success bool `json:"success"`
	Data    struct {
		LastMonthIncome decimal.Decimal        `json:"lastMonthIncome"`
		LastMonthPeriod PeriodResponse         `json:"lastMonthPeriod"`
		Breakdown       domain.IncomeBreakdown `json:"breakdown"`
	} `json:"data"`
}

// ExpenseSummaryResponse is the expense payload, covering last month and
// current month to date.
type ExpenseSummaryResponse struct {
	Success bool `json:"success"`
	Data    struct {
		LastMonthExpenses    decimal.Decimal         `json:"lastMonthExpenses"`
		CurrentMonthExpenses decimal.Decimal         `json:"currentMonthExpenses"`
		LastMonthPeriod      PeriodResponse          `json:"lastMonthPeriod"`
		Breakdown            domain.ExpenseBreakdown `json:"breakdown"`
	} `json:"data"`
}

func toTransferPartyResponse(p domain.TransferParty) TransferPartyResponse {
	return TransferPartyResponse{
		AccountID:     p.AccountID,
		Name:          p.Name,
		BankName:      p.BankName,
		AccountNumber: p.AccountNumber,
		Balance:       p.Balance.Round(2),
		CashFlow:      p.CashFlow.Round(2),
	}
}

// ToCashflowAnalysisResponse converts the engine output into the response
// payload, rounding monetary fields to 2 decimal places.
func ToCashflowAnalysisResponse(a *domain.CashflowAnalysis) CashflowAnalysisResponse {
	banks := make([]ClassifiedAccountResponse, len(a.Banks))
	for i, b := range a.Banks {
		banks[i] = ClassifiedAccountResponse{
			AccountID:          b.AccountID,
			Name:               b.Name,
			BankName:           b.BankName,
			AccountNumber:      b.AccountNumber,
			EffectiveBalance:   b.EffectiveBalance.Round(2),
			MonthlyObligations: b.MonthlyObligations.Round(2),
			CashFlow:           b.CashFlow.Round(2),
			Status:             b.Status,
			Health:             b.Health,
			Obligations:        b.Obligations,
		}
	}

	suggestions := make([]TransferSuggestionResponse, len(a.Suggestions))
	for i, s := range a.Suggestions {
		suggestions[i] = TransferSuggestionResponse{
			From:     toTransferPartyResponse(s.From),
			To:       toTransferPartyResponse(s.To),
			Amount:   s.Amount.Round(2),
			Reason:   s.Reason,
			Priority: s.Priority,
		}
	}

	return CashflowAnalysisResponse{
		Success: true,
		Summary: CashflowSummaryResponse{
			TotalBanks:           a.Summary.TotalBanks,
			TotalBalance:         a.Summary.TotalBalance.Round(2),
			TotalMonthlyExpenses: a.Summary.TotalMonthlyExpenses.Round(2),
			TotalCashFlow:        a.Summary.TotalCashFlow.Round(2),
			BanksInDeficit:       a.Summary.BanksInDeficit,
			BanksInSurplus:       a.Summary.BanksInSurplus,
			CriticalBanks:        a.Summary.CriticalBanks,
			WarningBanks:         a.Summary.WarningBanks,
		},
		Banks:       banks,
		Suggestions: suggestions,
	}
}

const periodDateLayout = "2006-01-02"

// ToIncomeSummaryResponse converts the aggregator output into its payload.
func ToIncomeSummaryResponse(s *domain.IncomeSummary) IncomeSummaryResponse {
	var resp IncomeSummaryResponse
	resp.Success = true
	resp.Data.LastMonthIncome = s.LastMonthIncome.Round(2)
	resp.Data.LastMonthPeriod = PeriodResponse{
		Start: s.LastMonthPeriod.Start.Format(periodDateLayout),
		End:   s.LastMonthPeriod.End.Format(periodDateLayout),
	}
	resp.Data.Breakdown = s.Breakdown
	return resp
}

// ToExpenseSummaryResponse converts the aggregator output into its payload.
func ToExpenseSummaryResponse(s *domain.ExpenseSummary) ExpenseSummaryResponse {
	var resp ExpenseSummaryResponse
	resp.Success = true
	resp.Data.LastMonthExpenses = s.LastMonthExpenses.Round(2)
	resp.Data.CurrentMonthExpenses = s.CurrentMonthExpenses.Round(2)
	resp.Data.LastMonthPeriod = PeriodResponse{
		Start: s.LastMonthPeriod.Start.Format(periodDateLayout),
		End:   s.LastMonthPeriod.End.Format(periodDateLayout),
	}
	resp.Data.Breakdown = s.Breakdown
	return resp
}
