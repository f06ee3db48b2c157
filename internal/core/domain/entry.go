package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType distinguishes income from expense entries.
type EntryType string

const (
	Income  EntryType = "INCOME"
	Expense EntryType = "EXPENSE"
)

// CashEntry represents one cash movement outside any bank account.
type CashEntry struct {
	EntryID string          `json:"entryID"` // Primary Key (UUID)
	UserID  string          `json:"userID"`  // FK -> users.user_id (Not Null)
	Type    EntryType       `json:"type"`
	Amount  decimal.Decimal `json:"amount"`
	Date    time.Time       `json:"date"`
	Note    string          `json:"note"`
	AuditFields
}

// RecordEntry is a structured income/expense record entered directly by the
// user, independent of any bank or cash movement.
type RecordEntry struct {
	RecordID string          `json:"recordID"` // Primary Key (UUID)
	UserID   string          `json:"userID"`   // FK -> users.user_id (Not Null)
	Type     EntryType       `json:"type"`
	Amount   decimal.Decimal `json:"amount"`
	Date     time.Time       `json:"date"`
	Category string          `json:"category"`
	AuditFields
}
