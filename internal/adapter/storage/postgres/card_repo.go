package postgres

import (
	"context"
	"errors"
	"fmt"

	"digiteen-wallet/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CardRepo implements ports.CardRepository.
type CardRepo struct {
	pool Pool
}

// NewCardRepo creates a new CardRepo.
func NewCardRepo(pool Pool) *CardRepo {
	return &CardRepo{pool: pool}
}

// Create inserts a new card request.
func (r *CardRepo) Create(ctx context.Context, c *domain.CardRequest) error {
	query := `INSERT INTO card_requests (id, teen_id, design_id, status, card_number, activated_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		c.ID, c.TeenID, c.DesignID, c.Status, c.CardNumber, c.ActivatedAt, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert card request: %w", err)
	}
	return nil
}

// GetByTeenID fetches a teen's card request. Returns nil, nil when the
// teen has never requested a card (lifecycle status "none").
func (r *CardRepo) GetByTeenID(ctx context.Context, teenID uuid.UUID) (*domain.CardRequest, error) {
	query := `SELECT id, teen_id, design_id, status, card_number, activated_at, created_at, updated_at
		FROM card_requests WHERE teen_id = $1`

	c := &domain.CardRequest{}
	err := r.pool.QueryRow(ctx, query, teenID).Scan(
		&c.ID, &c.TeenID, &c.DesignID, &c.Status, &c.CardNumber, &c.ActivatedAt, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get card request by teen id: %w", err)
	}
	return c, nil
}

// Update persists status, card number and activation time.
func (r *CardRepo) Update(ctx context.Context, c *domain.CardRequest) error {
	query := `UPDATE card_requests SET status = $1, card_number = $2, activated_at = $3, updated_at = NOW() WHERE id = $4`

	tag, err := r.pool.Exec(ctx, query, c.Status, c.CardNumber, c.ActivatedAt, c.ID)
	if err != nil {
		return fmt.Errorf("update card request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("card request not found: %s", c.ID)
	}
	return nil
}
