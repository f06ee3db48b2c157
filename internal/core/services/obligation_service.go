package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/finflow/family_finance_app/internal/apperrors"
	"github.com/finflow/family_finance_app/internal/core/domain"
	portsrepo "github.com/finflow/family_finance_app/internal/core/ports/repositories"
	portssvc "github.com/finflow/family_finance_app/internal/core/ports/services"
	"github.com/finflow/family_finance_app/internal/dto"
	"github.com/google/uuid"
)

// obligationService implements the ObligationSvcFacade interface
type obligationService struct {
	BaseService
	obligationRepo portsrepo.ObligationRepositoryFacade
}

// NewObligationService creates a new obligation service
func NewObligationService(repo portsrepo.ObligationRepositoryFacade) portssvc.ObligationSvcFacade {
	return &obligationService{obligationRepo: repo}
}

var _ portssvc.ObligationSvcFacade = (*obligationService)(nil)

func (s *obligationService) CreateObligation(ctx context.Context, req dto.CreateObligationRequest, userID string) (*domain.ScheduledObligation, error) {
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: obligation amount must be non-negative", apperrors.ErrValidation)
	}

	now := time.Now()
	obligation := domain.ScheduledObligation{
		ObligationID:  uuid.NewString(),
		UserID:        userID,
		AccountNumber: req.AccountNumber,
		Title:         req.Title,
		Amount:        req.Amount,
		DueDate:       req.DueDate,
		Frequency:     req.Frequency,
		Category:      req.Category,
		IsActive:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.obligationRepo.SaveObligation(ctx, obligation); err != nil {
		s.LogError(ctx, err, "Failed to save obligation", slog.String("obligation_id", obligation.ObligationID))
		return nil, fmt.Errorf("failed to create obligation: %w", err)
	}

	s.LogInfo(ctx, "Obligation created",
		slog.String("obligation_id", obligation.ObligationID),
		slog.String("frequency", string(obligation.Frequency)))
	return &obligation, nil
}

func (s *obligationService) ListObligations(ctx context.Context, userID string, activeOnly bool) ([]domain.ScheduledObligation, error) {
	obligations, err := s.obligationRepo.ListObligationsByUser(ctx, userID, activeOnly)
	if err != nil {
		s.LogError(ctx, err, "Failed to list obligations", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list obligations: %w", err)
	}
	return obligations, nil
}

func (s *obligationService) UpdateObligation(ctx context.Context, obligationID string, req dto.UpdateObligationRequest, userID string) (*domain.ScheduledObligation, error) {
	obligation, err := s.obligationRepo.FindObligationByID(ctx, obligationID)
	if err != nil {
		return nil, err
	}
	if obligation.UserID != userID {
		return nil, apperrors.ErrNotFound
	}

	if req.Title != nil {
		obligation.Title = *req.Title
	}
	if req.Amount != nil {
		obligation.Amount = *req.Amount
	}
	if req.DueDate != nil {
		obligation.DueDate = *req.DueDate
	}
	if req.Frequency != nil {
		obligation.Frequency = *req.Frequency
	}
	if req.Category != nil {
		obligation.Category = *req.Category
	}
	if req.IsActive != nil {
		obligation.IsActive = *req.IsActive
	}
	obligation.LastUpdatedAt = time.Now()
	obligation.LastUpdatedBy = userID

	if err := s.obligationRepo.UpdateObligation(ctx, *obligation); err != nil {
		s.LogError(ctx, err, "Failed to update obligation", slog.String("obligation_id", obligationID))
		return nil, fmt.Errorf("failed to update obligation: %w", err)
	}
	return obligation, nil
}

func (s *obligationService) DeleteObligation(ctx context.Context, obligationID string, userID string) error {
	obligation, err := s.obligationRepo.FindObligationByID(ctx, obligationID)
	if err != nil {
		return err
	}
	if obligation.UserID != userID {
		return apperrors.ErrNotFound
	}
	if err := s.obligationRepo.DeleteObligation(ctx, obligationID, userID); err != nil {
		s.LogError(ctx, err, "Failed to delete obligation", slog.String("obligation_id", obligationID))
		return fmt.Errorf("failed to delete obligation: %w", err)
	}
	return nil
}
