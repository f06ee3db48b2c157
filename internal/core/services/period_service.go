package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/finflow/family_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// lastMonthWindow returns the previous calendar month: first day 00:00:00
// through last day 23:59:59.
func lastMonthWindow(now time.Time) domain.Period {
	firstOfCurrent := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return domain.Period{
		Start: firstOfCurrent.AddDate(0, -1, 0),
		End:   firstOfCurrent.Add(-time.Second),
	}
}

func inPeriod(t time.Time, p domain.Period) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// LastMonthIncome sums income over the previous calendar month across three
// sources: structured income records, bank deposits (internal transfers
// excluded) and cash income entries. This is a literal sum over the window;
// no obligation normalization applies.
func (s *cashflowService) LastMonthIncome(ctx context.Context, userID string) (*domain.IncomeSummary, error) {
	window := lastMonthWindow(s.now())

	records, err := s.period.ListRecordsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load records for income aggregation", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to load income/expense records: %w", err)
	}
	transactions, err := s.period.ListTransactionsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for income aggregation", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	cashEntries, err := s.period.ListCashEntriesByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load cash entries for income aggregation", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to load cash entries: %w", err)
	}

	breakdown := domain.IncomeBreakdown{
		IncomeExpense: decimal.Zero,
		Bank:          decimal.Zero,
		Cash:          decimal.Zero,
	}
	for _, r := range records {
		if r.Type == domain.Income && inPeriod(r.Date, window) {
			breakdown.IncomeExpense = breakdown.IncomeExpense.Add(r.Amount)
		}
	}
	for _, txn := range transactions {
		if txn.Type == domain.Deposit && !txn.IsInternalTransfer && inPeriod(txn.Date, window) {
			breakdown.Bank = breakdown.Bank.Add(txn.Amount)
		}
	}
	for _, entry := range cashEntries {
		if entry.Type == domain.Income && inPeriod(entry.Date, window) {
			breakdown.Cash = breakdown.Cash.Add(entry.Amount)
		}
	}

	summary := &domain.IncomeSummary{
		LastMonthIncome: breakdown.IncomeExpense.Add(breakdown.Bank).Add(breakdown.Cash),
		LastMonthPeriod: window,
		Breakdown:       breakdown,
	}

	s.LogInfo(ctx, "Last month income aggregated",
		slog.String("user_id", userID),
		slog.String("total", summary.LastMonthIncome.String()))
	return summary, nil
}

// ExpenseSummary sums expenses over the previous calendar month across four
// sources (records, bank withdrawals/payments, cash entries, card embedded
// transaction lists) and additionally totals the current month to date.
func (s *cashflowService) ExpenseSummary(ctx context.Context, userID string) (*domain.ExpenseSummary, error) {
	now := s.now()
	lastMonth := lastMonthWindow(now)
	currentMonth := domain.Period{
		Start: time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()),
		End:   now,
	}

	records, err := s.period.ListRecordsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load records for expense aggregation", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to load income/expense records: %w", err)
	}
	transactions, err := s.period.ListTransactionsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for expense aggregation", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	cashEntries, err := s.period.ListCashEntriesByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load cash entries for expense aggregation", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to load cash entries: %w", err)
	}
	cards, err := s.period.ListCardsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load cards for expense aggregation", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to load cards: %w", err)
	}

	breakdown := sumExpenses(records, transactions, cashEntries, cards, lastMonth)
	currentBreakdown := sumExpenses(records, transactions, cashEntries, cards, currentMonth)

	summary := &domain.ExpenseSummary{
		LastMonthExpenses:    breakdownTotal(breakdown),
		CurrentMonthExpenses: breakdownTotal(currentBreakdown),
		LastMonthPeriod:      lastMonth,
		Breakdown:            breakdown,
	}

	s.LogInfo(ctx, "Expense summary aggregated",
		slog.String("user_id", userID),
		slog.String("last_month", summary.LastMonthExpenses.String()),
		slog.String("current_month", summary.CurrentMonthExpenses.String()))
	return summary, nil
}

func sumExpenses(records []domain.RecordEntry, transactions []domain.Transaction, cashEntries []domain.CashEntry, cards []domain.Card, window domain.Period) domain.ExpenseBreakdown {
	breakdown := domain.ExpenseBreakdown{
		IncomeExpense: decimal.Zero,
		Bank:          decimal.Zero,
		Cash:          decimal.Zero,
		Card:          decimal.Zero,
	}
	for _, r := range records {
		if r.Type == domain.Expense && inPeriod(r.Date, window) {
			breakdown.IncomeExpense = breakdown.IncomeExpense.Add(r.Amount)
		}
	}
	for _, txn := range transactions {
		if (txn.Type == domain.Withdrawal || txn.Type == domain.Payment) && !txn.IsInternalTransfer && inPeriod(txn.Date, window) {
			breakdown.Bank = breakdown.Bank.Add(txn.Amount)
		}
	}
	for _, entry := range cashEntries {
		if entry.Type == domain.Expense && inPeriod(entry.Date, window) {
			breakdown.Cash = breakdown.Cash.Add(entry.Amount)
		}
	}
	for _, card := range cards {
		for _, txn := range card.Transactions {
			// Amounts come from a schemaless column; malformed entries were
			// already defaulted to zero at scan time and simply add nothing.
			if txn.Type == "expense" && inPeriod(txn.Date, window) {
				breakdown.Card = breakdown.Card.Add(txn.Amount)
			}
		}
	}
	return breakdown
}

func breakdownTotal(b domain.ExpenseBreakdown) decimal.Decimal {
	return b.IncomeExpense.Add(b.Bank).Add(b.Cash).Add(b.Card)
}
