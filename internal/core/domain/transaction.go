package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates the signed effect of a transaction on its account.
type TransactionType string

const (
	Deposit    TransactionType = "DEPOSIT"    // increases the effective balance
	Withdrawal TransactionType = "WITHDRAWAL" // decreases the effective balance
	Payment    TransactionType = "PAYMENT"    // decreases the effective balance
	Transfer   TransactionType = "TRANSFER"   // outgoing transfer, decreases the effective balance
)

// Transaction represents a single ledger movement against one account.
//
// AccountID is a weak reference used for lookup only. Clients may submit the
// account either as a bare identifier or as an expanded object; the DTO layer
// normalizes both shapes to the identifier before it reaches the domain.
type Transaction struct {
	TransactionID      string          `json:"transactionID"` // Primary Key (UUID)
	UserID             string          `json:"userID"`        // FK -> users.user_id (Not Null)
	AccountID          string          `json:"accountID"`     // Weak reference to Account.accountID
	Type               TransactionType `json:"type"`
	Amount             decimal.Decimal `json:"amount"` // Non-negative
	Date               time.Time       `json:"date"`
	Description        string          `json:"description"` // Nullable
	IsInternalTransfer bool            `json:"isInternalTransfer"`
	AuditFields
}

// Signed returns the transaction amount with its balance effect applied:
// positive for deposits, negative for withdrawals, payments and transfers,
// and zero for unrecognized types.
func (t Transaction) Signed() decimal.Decimal {
	switch t.Type {
	case Deposit:
		return t.Amount
	case Withdrawal, Payment, Transfer:
		return t.Amount.Neg()
	default:
		return decimal.Zero
	}
}
