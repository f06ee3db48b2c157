package dto

import (
	"time"

	"github.com/finflow/family_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateObligationRequest defines the data needed to create a scheduled obligation.
type CreateObligationRequest struct {
	AccountNumber string                     `json:"accountNumber" binding:"required"`
	Title         string                     `json:"title" binding:"required"`
	Amount        decimal.Decimal            `json:"amount" binding:"required"`
	DueDate       time.Time                  `json:"dueDate" binding:"required"`
	Frequency     domain.ObligationFrequency `json:"frequency" binding:"required,oneof=MONTHLY QUARTERLY YEARLY ONE_TIME"`
	Category      string                     `json:"category"`
}

// UpdateObligationRequest defines the data allowed for updating an obligation.
type UpdateObligationRequest struct {
	Title     *string                     `json:"title"`
	Amount    *decimal.Decimal            `json:"amount"`
	DueDate   *time.Time                  `json:"dueDate"`
	Frequency *domain.ObligationFrequency `json:"frequency" binding:"omitempty,oneof=MONTHLY QUARTERLY YEARLY ONE_TIME"`
	Category  *string                     `json:"category"`
	IsActive  *bool                       `json:"isActive"`
}

// ObligationResponse defines the data returned for a scheduled obligation.
type ObligationResponse struct {
	ObligationID  string                     `json:"obligationID"`
	AccountNumber string                     `json:"accountNumber"`
	Title         string                     `json:"title"`
	Amount        decimal.Decimal            `json:"amount"`
	DueDate       time.Time                  `json:"dueDate"`
	Frequency     domain.ObligationFrequency `json:"frequency"`
	Category      string                     `json:"category"`
	IsActive      bool                       `json:"isActive"`
	CreatedAt     time.Time                  `json:"createdAt"`
}

// ToObligationResponse converts a domain.ScheduledObligation to its response DTO
func ToObligationResponse(o *domain.ScheduledObligation) ObligationResponse {
	return ObligationResponse{
		ObligationID:  o.ObligationID,
		AccountNumber: o.AccountNumber,
		Title:         o.Title,
		Amount:        o.Amount,
		DueDate:       o.DueDate,
		Frequency:     o.Frequency,
		Category:      o.Category,
		IsActive:      o.IsActive,
		CreatedAt:     o.CreatedAt,
	}
}

// ToListObligationResponse converts a slice of obligations to response DTOs
func ToListObligationResponse(obligations []domain.ScheduledObligation) []ObligationResponse {
	res := make([]ObligationResponse, len(obligations))
	for i, o := range obligations {
		res[i] = ToObligationResponse(&o)
	}
	return res
}
