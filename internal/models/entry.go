package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashEntry represents one cash movement row.
type CashEntry struct {
	EntryID string          `db:"entry_id"`
	UserID  string          `db:"user_id"`
	Type    string          `db:"entry_type"`
	Amount  decimal.Decimal `db:"amount"`
	Date    time.Time       `db:"entry_date"`
	Note    string          `db:"note"`
	AuditFields
}

// RecordEntry represents one structured income/expense record row.
type RecordEntry struct {
	RecordID string          `db:"record_id"`
	UserID   string          `db:"user_id"`
	Type     string          `db:"record_type"`
	Amount   decimal.Decimal `db:"amount"`
	Date     time.Time       `db:"record_date"`
	Category string          `db:"category"`
	AuditFields
}
