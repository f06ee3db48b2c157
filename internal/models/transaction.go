package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType mirrors the domain transaction type for storage.
type TransactionType string

const (
	Deposit    TransactionType = "DEPOSIT"
	Withdrawal TransactionType = "WITHDRAWAL"
	Payment    TransactionType = "PAYMENT"
	Transfer   TransactionType = "TRANSFER"
)

// Transaction represents one ledger movement row.
type Transaction struct {
	TransactionID      string          `db:"transaction_id"`
	UserID             string          `db:"user_id"`
	AccountID          string          `db:"account_id"`
	Type               TransactionType `db:"txn_type"`
	Amount             decimal.Decimal `db:"amount"`
	Date               time.Time       `db:"txn_date"`
	Description        string          `db:"description"`
	IsInternalTransfer bool            `db:"is_internal_transfer"`
	AuditFields
}
