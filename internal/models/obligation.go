package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ScheduledObligation represents one scheduled obligation row. Obligations
// reference accounts by account number, a denormalization carried over from
// the source system.
type ScheduledObligation struct {
	ObligationID  string          `db:"obligation_id"`
	UserID        string          `db:"user_id"`
	AccountNumber string          `db:"account_number"`
	Title         string          `db:"title"`
	Amount        decimal.Decimal `db:"amount"`
	DueDate       time.Time       `db:"due_date"`
	Frequency     string          `db:"frequency"`
	Category      string          `db:"category"`
	IsActive      bool            `db:"is_active"`
	AuditFields
}
