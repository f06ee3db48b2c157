package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ObligationFrequency is the recurrence cadence of a scheduled obligation.
type ObligationFrequency string

const (
	Monthly   ObligationFrequency = "MONTHLY"
	Quarterly ObligationFrequency = "QUARTERLY"
	Yearly    ObligationFrequency = "YEARLY"
	OneTime   ObligationFrequency = "ONE_TIME"
)

// ScheduledObligation represents a recurring or one-time future expense.
//
// It is tied to an account through the account *number*, not the account id.
// The denormalized key comes from the source system and is preserved; the
// engine resolves it through a per-request secondary index.
type ScheduledObligation struct {
	ObligationID  string              `json:"obligationID"` // Primary Key (UUID)
	UserID        string              `json:"userID"`       // FK -> users.user_id (Not Null)
	AccountNumber string              `json:"accountNumber"`
	Title         string              `json:"title"`
	Amount        decimal.Decimal     `json:"amount"`
	DueDate       time.Time           `json:"dueDate"`
	Frequency     ObligationFrequency `json:"frequency"`
	Category      string              `json:"category"`
	IsActive      bool                `json:"isActive"`
	AuditFields
}

// MonthlyEquivalent converts the obligation amount into its contribution to
// one calendar month. One-time obligations contribute only when due within
// the month containing now; an unknown frequency contributes zero rather
// than failing.
func (o ScheduledObligation) MonthlyEquivalent(now time.Time) decimal.Decimal {
	switch o.Frequency {
	case Monthly:
		return o.Amount
	case Quarterly:
		return o.Amount.Div(decimal.NewFromInt(3))
	case Yearly:
		return o.Amount.Div(decimal.NewFromInt(12))
	case OneTime:
		if o.DueDate.Year() == now.Year() && o.DueDate.Month() == now.Month() {
			return o.Amount
		}
		return decimal.Zero
	default:
		return decimal.Zero
	}
}
