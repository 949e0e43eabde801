package postgres

import (
	"context"
	"fmt"

	"digiteen-wallet/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// DepositRequestRepo implements ports.DepositRequestRepository.
type DepositRequestRepo struct {
	pool Pool
}

// NewDepositRequestRepo creates a new DepositRequestRepo.
func NewDepositRequestRepo(pool Pool) *DepositRequestRepo {
	return &DepositRequestRepo{pool: pool}
}

// Create inserts a deposit request record within a database transaction,
// alongside the balance update and ledger entry of the same workflow.
func (r *DepositRequestRepo) Create(ctx context.Context, tx pgx.Tx, d *domain.DepositRequest) error {
	query := `INSERT INTO deposit_requests (id, teen_id, transaction_id, amount, reason, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := tx.Exec(ctx, query,
		d.ID, d.TeenID, d.TransactionID, d.Amount, d.Reason, d.Status, d.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert deposit request: %w", err)
	}
	return nil
}

// ListByTeenID returns a teen's deposit requests newest-first.
func (r *DepositRequestRepo) ListByTeenID(ctx context.Context, teenID uuid.UUID) ([]domain.DepositRequest, error) {
	query := `SELECT id, teen_id, transaction_id, amount, reason, status, created_at
		FROM deposit_requests WHERE teen_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, teenID)
	if err != nil {
		return nil, fmt.Errorf("list deposit requests: %w", err)
	}
	defer rows.Close()

	var requests []domain.DepositRequest
	for rows.Next() {
		var d domain.DepositRequest
		if err := rows.Scan(
			&d.ID, &d.TeenID, &d.TransactionID, &d.Amount, &d.Reason, &d.Status, &d.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan deposit request: %w", err)
		}
		requests = append(requests, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate deposit requests: %w", err)
	}
	return requests, nil
}
