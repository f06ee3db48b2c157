package services

import (
	"context"

	"github.com/finflow/family_finance_app/internal/core/domain"
	"github.com/finflow/family_finance_app/internal/dto"
)

// ObligationSvcFacade defines operations for scheduled obligations
type ObligationSvcFacade interface {
	// CreateObligation persists a new scheduled obligation for the user.
	CreateObligation(ctx context.Context, req dto.CreateObligationRequest, userID string) (*domain.ScheduledObligation, error)

	// ListObligations retrieves the user's obligations, optionally only active ones.
	ListObligations(ctx context.Context, userID string, activeOnly bool) ([]domain.ScheduledObligation, error)

	// UpdateObligation updates an existing obligation owned by the user.
	UpdateObligation(ctx context.Context, obligationID string, req dto.UpdateObligationRequest, userID string) (*domain.ScheduledObligation, error)

	// DeleteObligation removes an obligation owned by the user.
	DeleteObligation(ctx context.Context, obligationID string, userID string) error
}
