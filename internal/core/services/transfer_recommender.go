package services

import (
	"fmt"
	"sort"

	"github.com/finflow/family_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// surplusPool tracks how much of a surplus account's cash-flow is still
// available while suggestions are generated. The running remainder is local
// to one recommendation pass; nothing leaks across requests.
type surplusPool struct {
	account   domain.ClassifiedAccount
	remaining decimal.Decimal
}

// suggestTransfers greedily matches deficit accounts to surplus accounts.
// The pass is single and not globally optimal: the most urgent deficit is
// served first from the largest comfortable surplus. A surplus account may
// fund several deficits until its surplus is spent, but each deficit gets at
// most one source, and a source is never asked for more than 70% of its
// available surplus or half of its balance.
func suggestTransfers(classified []domain.ClassifiedAccount) []domain.TransferSuggestion {
	var deficits []domain.ClassifiedAccount
	var pools []*surplusPool

	for _, acc := range classified {
		switch {
		case acc.Status == domain.StatusDeficit:
			deficits = append(deficits, acc)
		case acc.CashFlow.GreaterThan(acc.MonthlyObligations.Mul(comfortRatio)):
			// Only comfortable surpluses are tapped: cash-flow must exceed
			// half of the account's own monthly obligations.
			pools = append(pools, &surplusPool{account: acc, remaining: acc.CashFlow})
		}
	}

	// Most negative cash-flow first: the most urgent need is served first.
	sort.Slice(deficits, func(i, j int) bool {
		return deficits[i].CashFlow.LessThan(deficits[j].CashFlow)
	})
	// Largest surplus first.
	sort.Slice(pools, func(i, j int) bool {
		return pools[i].account.CashFlow.GreaterThan(pools[j].account.CashFlow)
	})

	suggestions := make([]domain.TransferSuggestion, 0, len(deficits))
	for _, deficit := range deficits {
		need := deficit.CashFlow.Abs()

		for _, pool := range pools {
			if !pool.remaining.IsPositive() {
				continue
			}

			safe := decimal.Min(need,
				pool.remaining.Mul(surplusTapRatio),
				pool.account.EffectiveBalance.Mul(balanceDrainRatio),
			)
			if safe.LessThan(minTransferAmount) {
				continue
			}

			amount := safe.Round(2)
			priority := domain.PriorityMedium
			if deficit.Health == domain.HealthCritical {
				priority = domain.PriorityHigh
			}

			suggestions = append(suggestions, domain.TransferSuggestion{
				From: domain.TransferParty{
					AccountID:     pool.account.AccountID,
					Name:          pool.account.Name,
					BankName:      pool.account.BankName,
					AccountNumber: pool.account.AccountNumber,
					Balance:       pool.account.EffectiveBalance,
					CashFlow:      pool.account.CashFlow,
				},
				To: domain.TransferParty{
					AccountID:     deficit.AccountID,
					Name:          deficit.Name,
					BankName:      deficit.BankName,
					AccountNumber: deficit.AccountNumber,
					Balance:       deficit.EffectiveBalance,
					CashFlow:      deficit.CashFlow,
				},
				Amount:   amount,
				Reason:   fmt.Sprintf("%s is projected to fall %s short of its monthly obligations", deficit.Name, need.Round(2)),
				Priority: priority,
			})

			pool.remaining = pool.remaining.Sub(safe)
			break // at most one source per deficit
		}
	}

	return suggestions
}
