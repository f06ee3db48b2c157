package dto

import (
	"time"

	"github.com/finflow/family_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEntryRequest defines the data needed to create a cash entry or a
// structured income/expense record (same shape for both).
type CreateEntryRequest struct {
	Type     domain.EntryType `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Amount   decimal.Decimal  `json:"amount" binding:"required"`
	Date     time.Time        `json:"date" binding:"required"`
	Note     string           `json:"note"`
	Category string           `json:"category"`
}

// CreateCardRequest defines the data needed to create a card.
type CreateCardRequest struct {
	Name     string `json:"name" binding:"required"`
	LastFour string `json:"lastFour" binding:"required,len=4,numeric"`
}

// CreateCardTransactionRequest defines one entry appended to a card's
// embedded transaction list.
type CreateCardTransactionRequest struct {
	Type   string          `json:"type" binding:"required,oneof=expense payment"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Date   time.Time       `json:"date" binding:"required"`
	Note   string          `json:"note"`
}

// CardResponse defines the data returned for a card, including its embedded
// transaction list.
type CardResponse struct {
	CardID       string                   `json:"cardID"`
	Name         string                   `json:"name"`
	LastFour     string                   `json:"lastFour"`
	Transactions []domain.CardTransaction `json:"transactions"`
	CreatedAt    time.Time                `json:"createdAt"`
}

// ToCardResponse converts a domain.Card to its response DTO
func ToCardResponse(card *domain.Card) CardResponse {
	return CardResponse{
		CardID:       card.CardID,
		Name:         card.Name,
		LastFour:     card.LastFour,
		Transactions: card.Transactions,
		CreatedAt:    card.CreatedAt,
	}
}

// ToListCardResponse converts a slice of cards to response DTOs
func ToListCardResponse(cards []domain.Card) []CardResponse {
	res := make([]CardResponse, len(cards))
	for i, card := range cards {
		res[i] = ToCardResponse(&card)
	}
	return res
}

// CashEntryResponse defines the data returned for a cash entry.
type CashEntryResponse struct {
	EntryID   string           `json:"entryID"`
	Type      domain.EntryType `json:"type"`
	Amount    decimal.Decimal  `json:"amount"`
	Date      time.Time        `json:"date"`
	Note      string           `json:"note"`
	CreatedAt time.Time        `json:"createdAt"`
}

// ToCashEntryResponse converts a domain.CashEntry to its response DTO
func ToCashEntryResponse(e *domain.CashEntry) CashEntryResponse {
	return CashEntryResponse{
		EntryID:   e.EntryID,
		Type:      e.Type,
		Amount:    e.Amount,
		Date:      e.Date,
		Note:      e.Note,
		CreatedAt: e.CreatedAt,
	}
}

// ToListCashEntryResponse converts a slice of cash entries to response DTOs
func ToListCashEntryResponse(entries []domain.CashEntry) []CashEntryResponse {
	res := make([]CashEntryResponse, len(entries))
	for i, e := range entries {
		res[i] = ToCashEntryResponse(&e)
	}
	return res
}

// RecordResponse defines the data returned for an income/expense record.
type RecordResponse struct {
	RecordID  string           `json:"recordID"`
	Type      domain.EntryType `json:"type"`
	Amount    decimal.Decimal  `json:"amount"`
	Date      time.Time        `json:"date"`
	Category  string           `json:"category"`
	CreatedAt time.Time        `json:"createdAt"`
}

// ToRecordResponse converts a domain.RecordEntry to its response DTO
func ToRecordResponse(r *domain.RecordEntry) RecordResponse {
	return RecordResponse{
		RecordID:  r.RecordID,
		Type:      r.Type,
		Amount:    r.Amount,
		Date:      r.Date,
		Category:  r.Category,
		CreatedAt: r.CreatedAt,
	}
}

// ToListRecordResponse converts a slice of records to response DTOs
func ToListRecordResponse(records []domain.RecordEntry) []RecordResponse {
	res := make([]RecordResponse, len(records))
	for i, r := range records {
		res[i] = ToRecordResponse(&r)
	}
	return res
}
