package postgres

import (
	"context"
	"errors"
	"fmt"

	"digiteen-wallet/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TeenRepo implements ports.TeenRepository.
type TeenRepo struct {
	pool Pool
}

// NewTeenRepo creates a new TeenRepo.
func NewTeenRepo(pool Pool) *TeenRepo {
	return &TeenRepo{pool: pool}
}

// Create inserts a new teen profile within a database transaction.
// Registration creates the teen and the seeded wallet atomically, so
// the insert always runs on a tx.
func (r *TeenRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Teen) error {
	query := `INSERT INTO teens (id, username, password_hash, invite_code, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := tx.Exec(ctx, query,
		t.ID, t.Username, t.PasswordHash, t.InviteCode, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert teen: %w", err)
	}
	return nil
}

// GetByID fetches a teen by UUID. Returns nil, nil when absent.
func (r *TeenRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Teen, error) {
	query := `SELECT id, username, password_hash, invite_code, created_at
		FROM teens WHERE id = $1`

	t := &domain.Teen{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Username, &t.PasswordHash, &t.InviteCode, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get teen by id: %w", err)
	}
	return t, nil
}

// GetByUsername fetches a teen by username. Returns nil, nil when absent.
func (r *TeenRepo) GetByUsername(ctx context.Context, username string) (*domain.Teen, error) {
	query := `SELECT id, username, password_hash, invite_code, created_at
		FROM teens WHERE username = $1`

	t := &domain.Teen{}
	err := r.pool.QueryRow(ctx, query, username).Scan(
		&t.ID, &t.Username, &t.PasswordHash, &t.InviteCode, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get teen by username: %w", err)
	}
	return t, nil
}
