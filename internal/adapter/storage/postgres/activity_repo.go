package postgres

import (
	"context"
	"fmt"

	"digiteen-wallet/internal/core/domain"
	"digiteen-wallet/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ActivityRepo implements ports.ActivityRepository. The activities table
// is append-only; nothing here updates or deletes rows.
type ActivityRepo struct {
	pool Pool
}

// NewActivityRepo creates a new ActivityRepo.
func NewActivityRepo(pool Pool) *ActivityRepo {
	return &ActivityRepo{pool: pool}
}

// Create inserts a ledger entry within a database transaction. The entry
// commits or rolls back together with the balance update it describes.
func (r *ActivityRepo) Create(ctx context.Context, tx pgx.Tx, a *domain.Activity) error {
	query := `INSERT INTO activities (id, wallet_id, transaction_id, title, amount, kind, icon, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := tx.Exec(ctx, query,
		a.ID, a.WalletID, a.TransactionID, a.Title, a.Amount, a.Kind, a.Icon, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

// List returns activities newest-first. limit <= 0 returns the full history.
func (r *ActivityRepo) List(ctx context.Context, walletID uuid.UUID, limit int) ([]domain.Activity, error) {
	query := `SELECT id, wallet_id, transaction_id, title, amount, kind, icon, created_at
		FROM activities WHERE wallet_id = $1 ORDER BY created_at DESC, id DESC`

	var rows pgx.Rows
	var err error
	if limit > 0 {
		rows, err = r.pool.Query(ctx, query+` LIMIT $2`, walletID, limit)
	} else {
		rows, err = r.pool.Query(ctx, query, walletID)
	}
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	var activities []domain.Activity
	for rows.Next() {
		var a domain.Activity
		if err := rows.Scan(
			&a.ID, &a.WalletID, &a.TransactionID, &a.Title, &a.Amount, &a.Kind, &a.Icon, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activities: %w", err)
	}
	return activities, nil
}

// GetStats folds over the complete activity history of a wallet. The
// aggregates always cover every row, never a limited page.
func (r *ActivityRepo) GetStats(ctx context.Context, walletID uuid.UUID) (*ports.ActivityStats, error) {
	query := `SELECT
		COALESCE(SUM(amount) FILTER (WHERE kind = 'income'), 0),
		COALESCE(SUM(amount) FILTER (WHERE kind = 'expense'), 0),
		COUNT(*)
		FROM activities WHERE wallet_id = $1`

	stats := &ports.ActivityStats{}
	err := r.pool.QueryRow(ctx, query, walletID).Scan(
		&stats.TotalIncome, &stats.TotalExpense, &stats.TransactionsCount,
	)
	if err != nil {
		return nil, fmt.Errorf("get activity stats: %w", err)
	}
	return stats, nil
}
