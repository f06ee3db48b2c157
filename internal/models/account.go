package models

import (
	"github.com/shopspring/decimal"
)

// Account represents one bank account row.
type Account struct {
	AccountID     string          `db:"account_id"`
	UserID        string          `db:"user_id"`
	Name          string          `db:"name"`
	BankName      string          `db:"bank_name"`
	AccountNumber string          `db:"account_number"`
	CurrencyCode  string          `db:"currency_code"`
	Balance       decimal.Decimal `db:"balance"` // Stated balance snapshot
	IsActive      bool            `db:"is_active"`
	AuditFields
}
