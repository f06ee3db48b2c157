package domain

import (
	"github.com/shopspring/decimal"
)

// Account represents one bank account belonging to a user.
// This is the primary representation used by services.
//
// Balance is the stated balance snapshot as of the last manual update; the
// cash-flow engine replays the account's transactions against it to obtain
// the effective balance.
type Account struct {
	AccountID     string          `json:"accountID"`     // Primary Key (UUID)
	UserID        string          `json:"userID"`        // FK -> users.user_id (NON-NULL)
	Name          string          `json:"name"`          // User-defined display name
	BankName      string          `json:"bankName"`      // Institution name
	AccountNumber string          `json:"accountNumber"` // Join key for scheduled obligations
	CurrencyCode  string          `json:"currencyCode"`  // ISO 4217 code
	Balance       decimal.Decimal `json:"balance"`       // Stated balance snapshot
	IsActive      bool            `json:"isActive"`      // Soft delete or dormant flag
	AuditFields
}
