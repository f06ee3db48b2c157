package repositories

import (
	"context"

	"github.com/finflow/family_finance_app/internal/core/domain"
)

// CardRepositoryFacade defines operations for card data, including the
// embedded transaction sub-lists.
type CardRepositoryFacade interface {
	// SaveCard persists a new card.
	SaveCard(ctx context.Context, card domain.Card) error

	// ListCardsByUser retrieves all cards belonging to a user.
	ListCardsByUser(ctx context.Context, userID string) ([]domain.Card, error)

	// AppendCardTransaction appends one entry to a card's embedded list.
	AppendCardTransaction(ctx context.Context, cardID string, userID string, txn domain.CardTransaction) error
}
