package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/finflow/family_finance_app/internal/apperrors"
	"github.com/finflow/family_finance_app/internal/core/domain"
	portsrepo "github.com/finflow/family_finance_app/internal/core/ports/repositories"
	"github.com/finflow/family_finance_app/internal/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCardRepository struct {
	pool *pgxpool.Pool
}

// NewPgxCardRepository creates a new repository for card data.
func NewPgxCardRepository(pool *pgxpool.Pool) portsrepo.CardRepositoryFacade {
	return &PgxCardRepository{pool: pool}
}

var _ portsrepo.CardRepositoryFacade = (*PgxCardRepository)(nil)

func toModelCardTransactions(txns []domain.CardTransaction) ([]byte, error) {
	entries := make([]models.CardTransaction, 0, len(txns))
	for _, t := range txns {
		entries = append(entries, models.CardTransaction{
			Type:   t.Type,
			Amount: t.Amount,
			Date:   t.Date,
			Note:   t.Note,
		})
	}
	return json.Marshal(entries)
}

func toDomainCard(m models.Card) (domain.Card, error) {
	// The column is schemaless; tolerant decoding in models.CardTransaction
	// turns unusable amounts into zero rather than failing the row.
	var entries []models.CardTransaction
	if len(m.Transactions) > 0 {
		if err := json.Unmarshal(m.Transactions, &entries); err != nil {
			return domain.Card{}, fmt.Errorf("failed to decode transactions for card %s: %w", m.CardID, err)
		}
	}

	txns := make([]domain.CardTransaction, 0, len(entries))
	for _, e := range entries {
		txns = append(txns, domain.CardTransaction{
			Type:   e.Type,
			Amount: e.Amount,
			Date:   e.Date,
			Note:   e.Note,
		})
	}

	return domain.Card{
		CardID:       m.CardID,
		UserID:       m.UserID,
		Name:         m.Name,
		LastFour:     m.LastFour,
		Transactions: txns,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}, nil
}

const cardColumns = `card_id, user_id, name, last_four, transactions, created_at, created_by, last_updated_at, last_updated_by`

// SaveCard inserts a new card with its embedded transaction list.
func (r *PgxCardRepository) SaveCard(ctx context.Context, card domain.Card) error {
	raw, err := toModelCardTransactions(card.Transactions)
	if err != nil {
		return fmt.Errorf("failed to encode transactions for card %s: %w", card.CardID, err)
	}

	query := `
		INSERT INTO cards (` + cardColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = r.pool.Exec(ctx, query,
		card.CardID,
		card.UserID,
		card.Name,
		card.LastFour,
		raw,
		card.CreatedAt,
		card.CreatedBy,
		card.LastUpdatedAt,
		card.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save card %s: %w", card.CardID, err)
	}
	return nil
}

// ListCardsByUser retrieves all cards belonging to a user.
func (r *PgxCardRepository) ListCardsByUser(ctx context.Context, userID string) ([]domain.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE user_id = $1 ORDER BY created_at;`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards for user %s: %w", userID, err)
	}
	defer rows.Close()

	cards := make([]domain.Card, 0)
	for rows.Next() {
		var m models.Card
		err := rows.Scan(
			&m.CardID,
			&m.UserID,
			&m.Name,
			&m.LastFour,
			&m.Transactions,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan card row: %w", err)
		}
		card, err := toDomainCard(m)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating card rows: %w", err)
	}
	return cards, nil
}

// AppendCardTransaction appends one entry to a card's embedded JSONB list.
func (r *PgxCardRepository) AppendCardTransaction(ctx context.Context, cardID string, userID string, txn domain.CardTransaction) error {
	raw, err := json.Marshal(models.CardTransaction{
		Type:   txn.Type,
		Amount: txn.Amount,
		Date:   txn.Date,
		Note:   txn.Note,
	})
	if err != nil {
		return fmt.Errorf("failed to encode transaction for card %s: %w", cardID, err)
	}

	query := `
		UPDATE cards
		SET transactions = COALESCE(transactions, '[]'::jsonb) || $3::jsonb
		WHERE card_id = $1 AND user_id = $2;
	`
	tag, err := r.pool.Exec(ctx, query, cardID, userID, raw)
	if err != nil {
		return fmt.Errorf("failed to append transaction to card %s: %w", cardID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
