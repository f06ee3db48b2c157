package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/finflow/family_finance_app/internal/core/domain"
	portsrepo "github.com/finflow/family_finance_app/internal/core/ports/repositories"
	portssvc "github.com/finflow/family_finance_app/internal/core/ports/services"
	"github.com/finflow/family_finance_app/internal/dto"
	"github.com/google/uuid"
)

// cardService implements the CardSvcFacade interface
type cardService struct {
	BaseService
	cardRepo portsrepo.CardRepositoryFacade
}

// NewCardService creates a new card service
func NewCardService(repo portsrepo.CardRepositoryFacade) portssvc.CardSvcFacade {
	return &cardService{cardRepo: repo}
}

var _ portssvc.CardSvcFacade = (*cardService)(nil)

func (s *cardService) CreateCard(ctx context.Context, req dto.CreateCardRequest, userID string) (*domain.Card, error) {
	now := time.Now()
	card := domain.Card{
		CardID:       uuid.NewString(),
		UserID:       userID,
		Name:         req.Name,
		LastFour:     req.LastFour,
		Transactions: []domain.CardTransaction{},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.cardRepo.SaveCard(ctx, card); err != nil {
		s.LogError(ctx, err, "Failed to save card", slog.String("card_id", card.CardID))
		return nil, fmt.Errorf("failed to create card: %w", err)
	}
	return &card, nil
}

func (s *cardService) ListCards(ctx context.Context, userID string) ([]domain.Card, error) {
	cards, err := s.cardRepo.ListCardsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list cards", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	return cards, nil
}

func (s *cardService) AddCardTransaction(ctx context.Context, cardID string, req dto.CreateCardTransactionRequest, userID string) error {
	txn := domain.CardTransaction{
		Type:   req.Type,
		Amount: req.Amount,
		Date:   req.Date,
		Note:   req.Note,
	}
	if err := s.cardRepo.AppendCardTransaction(ctx, cardID, userID, txn); err != nil {
		s.LogError(ctx, err, "Failed to append card transaction", slog.String("card_id", cardID))
		return fmt.Errorf("failed to append card transaction: %w", err)
	}
	return nil
}

// cashEntryService implements the CashEntrySvcFacade interface
type cashEntryService struct {
	BaseService
	cashEntryRepo portsrepo.CashEntryRepositoryFacade
}

// NewCashEntryService creates a new cash entry service
func NewCashEntryService(repo portsrepo.CashEntryRepositoryFacade) portssvc.CashEntrySvcFacade {
	return &cashEntryService{cashEntryRepo: repo}
}

var _ portssvc.CashEntrySvcFacade = (*cashEntryService)(nil)

func (s *cashEntryService) CreateCashEntry(ctx context.Context, req dto.CreateEntryRequest, userID string) (*domain.CashEntry, error) {
	now := time.Now()
	entry := domain.CashEntry{
		EntryID: uuid.NewString(),
		UserID:  userID,
		Type:    req.Type,
		Amount:  req.Amount,
		Date:    req.Date,
		Note:    req.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.cashEntryRepo.SaveCashEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save cash entry", slog.String("entry_id", entry.EntryID))
		return nil, fmt.Errorf("failed to create cash entry: %w", err)
	}
	return &entry, nil
}

func (s *cashEntryService) ListCashEntries(ctx context.Context, userID string) ([]domain.CashEntry, error) {
	entries, err := s.cashEntryRepo.ListCashEntriesByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list cash entries", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list cash entries: %w", err)
	}
	return entries, nil
}

// recordService implements the RecordSvcFacade interface
type recordService struct {
	BaseService
	recordRepo portsrepo.RecordRepositoryFacade
}

// NewRecordService creates a new record service
func NewRecordService(repo portsrepo.RecordRepositoryFacade) portssvc.RecordSvcFacade {
	return &recordService{recordRepo: repo}
}

var _ portssvc.RecordSvcFacade = (*recordService)(nil)

func (s *recordService) CreateRecord(ctx context.Context, req dto.CreateEntryRequest, userID string) (*domain.RecordEntry, error) {
	now := time.Now()
	record := domain.RecordEntry{
		RecordID: uuid.NewString(),
		UserID:   userID,
		Type:     req.Type,
		Amount:   req.Amount,
		Date:     req.Date,
		Category: req.Category,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.recordRepo.SaveRecord(ctx, record); err != nil {
		s.LogError(ctx, err, "Failed to save record", slog.String("record_id", record.RecordID))
		return nil, fmt.Errorf("failed to create record: %w", err)
	}
	return &record, nil
}

func (s *recordService) ListRecords(ctx context.Context, userID string) ([]domain.RecordEntry, error) {
	records, err := s.recordRepo.ListRecordsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list records", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return records, nil
}
