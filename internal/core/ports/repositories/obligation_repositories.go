package repositories

import (
	"context"

	"github.com/finflow/family_finance_app/internal/core/domain"
)

// ObligationReader defines read operations for scheduled obligations
type ObligationReader interface {
	// FindObligationByID retrieves a specific obligation by its identifier.
	FindObligationByID(ctx context.Context, obligationID string) (*domain.ScheduledObligation, error)

	// ListObligationsByUser retrieves a user's obligations, optionally only active ones.
	ListObligationsByUser(ctx context.Context, userID string, activeOnly bool) ([]domain.ScheduledObligation, error)
}

// ObligationWriter defines write operations for scheduled obligations
type ObligationWriter interface {
	// SaveObligation persists a new scheduled obligation.
	SaveObligation(ctx context.Context, obligation domain.ScheduledObligation) error

	// UpdateObligation updates an existing obligation.
	UpdateObligation(ctx context.Context, obligation domain.ScheduledObligation) error

	// DeleteObligation removes an obligation owned by the user.
	DeleteObligation(ctx context.Context, obligationID string, userID string) error
}

// ObligationRepositoryFacade combines all obligation repository interfaces
type ObligationRepositoryFacade interface {
	ObligationReader
	ObligationWriter
}
