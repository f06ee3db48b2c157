package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/finflow/family_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountRef normalizes the two shapes clients use when referencing an
// account on a transaction: a bare identifier string, or an expanded account
// object carrying its own identifier field (an artifact of the store's
// optional eager-loading). Whatever the shape, only the identifier survives.
type AccountRef struct {
	ID string
}

// UnmarshalJSON accepts either "acc-id" or {"accountID": "acc-id"} (with
// "id" and "_id" as fallback keys for the expanded shape).
func (r *AccountRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		r.ID = id
		return nil
	}

	var expanded map[string]json.RawMessage
	if err := json.Unmarshal(data, &expanded); err != nil {
		return fmt.Errorf("account reference must be a string id or an object: %w", err)
	}
	for _, key := range []string{"accountID", "id", "_id"} {
		raw, ok := expanded[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, &id); err == nil && id != "" {
			r.ID = id
			return nil
		}
	}
	return fmt.Errorf("account reference object carries no usable identifier")
}

// MarshalJSON always emits the bare identifier.
func (r AccountRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ID)
}

// CreateTransactionRequest defines the data needed to record a transaction.
type CreateTransactionRequest struct {
	Account            AccountRef             `json:"account" binding:"required"`
	Type               domain.TransactionType `json:"type" binding:"required,oneof=DEPOSIT WITHDRAWAL PAYMENT TRANSFER"`
	Amount             decimal.Decimal        `json:"amount" binding:"required"`
	Date               time.Time              `json:"date" binding:"required"`
	Description        string                 `json:"description"`
	IsInternalTransfer bool                   `json:"isInternalTransfer"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID      string                 `json:"transactionID"`
	AccountID          string                 `json:"accountID"`
	Type               domain.TransactionType `json:"type"`
	Amount             decimal.Decimal        `json:"amount"`
	Date               time.Time              `json:"date"`
	Description        string                 `json:"description"`
	IsInternalTransfer bool                   `json:"isInternalTransfer"`
	CreatedAt          time.Time              `json:"createdAt"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:      txn.TransactionID,
		AccountID:          txn.AccountID,
		Type:               txn.Type,
		Amount:             txn.Amount,
		Date:               txn.Date,
		Description:        txn.Description,
		IsInternalTransfer: txn.IsInternalTransfer,
		CreatedAt:          txn.CreatedAt,
	}
}

// ToListTransactionResponse converts a slice of transactions to response DTOs
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(&txn)
	}
	return res
}
