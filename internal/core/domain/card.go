package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CardTransaction is one entry of a card's embedded transaction sub-list.
// Amounts arrive from a schemaless JSON column; a missing or non-numeric
// amount is treated as zero by the aggregation layer.
type CardTransaction struct {
	Type   string          `json:"type"` // "expense" or "payment"
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
	Note   string          `json:"note"`
}

// Card represents a credit/debit card with its embedded transaction list.
type Card struct {
	CardID       string            `json:"cardID"` // Primary Key (UUID)
	UserID       string            `json:"userID"` // FK -> users.user_id (Not Null)
	Name         string            `json:"name"`
	LastFour     string            `json:"lastFour"`
	Transactions []CardTransaction `json:"transactions"`
	AuditFields
}
