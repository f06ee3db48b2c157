package services

import (
	"context"

	"github.com/finflow/family_finance_app/internal/core/domain"
	"github.com/finflow/family_finance_app/internal/dto"
)

// TransactionSvcFacade defines operations for ledger transactions
type TransactionSvcFacade interface {
	// CreateTransaction persists a new transaction for the user.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error)

	// ListTransactions retrieves all transactions for the user, newest first.
	ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)

	// DeleteTransaction removes a transaction owned by the user.
	DeleteTransaction(ctx context.Context, transactionID string, userID string) error
}
