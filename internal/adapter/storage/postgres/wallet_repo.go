package postgres

import (
	"context"
	"errors"
	"fmt"

	"digiteen-wallet/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

// Create inserts a new wallet within a database transaction.
func (r *WalletRepo) Create(ctx context.Context, tx pgx.Tx, w *domain.Wallet) error {
	query := `INSERT INTO wallets (id, teen_id, money, digits, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := tx.Exec(ctx, query,
		w.ID, w.TeenID, w.Money, w.Digits, w.Version, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert wallet: %w", err)
	}
	return nil
}

// GetByTeenID fetches a wallet by teen ID (non-locking read).
func (r *WalletRepo) GetByTeenID(ctx context.Context, teenID uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT id, teen_id, money, digits, version, created_at, updated_at
		FROM wallets WHERE teen_id = $1`

	w := &domain.Wallet{}
	err := r.pool.QueryRow(ctx, query, teenID).Scan(
		&w.ID, &w.TeenID, &w.Money, &w.Digits, &w.Version, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet by teen id: %w", err)
	}
	return w, nil
}

// GetByTeenIDForUpdate fetches a wallet by teen ID with pessimistic locking.
// This MUST be called within a transaction.
func (r *WalletRepo) GetByTeenIDForUpdate(ctx context.Context, tx pgx.Tx, teenID uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT id, teen_id, money, digits, version, created_at, updated_at
		FROM wallets WHERE teen_id = $1 FOR UPDATE`

	w := &domain.Wallet{}
	err := tx.QueryRow(ctx, query, teenID).Scan(
		&w.ID, &w.TeenID, &w.Money, &w.Digits, &w.Version, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet for update: %w", err)
	}
	return w, nil
}

// UpdateBalances writes both balances within a transaction and bumps the
// wallet version so readers can tell a stale snapshot from a fresh one.
func (r *WalletRepo) UpdateBalances(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, money, digits int64) error {
	query := `UPDATE wallets SET money = $1, digits = $2, version = version + 1, updated_at = NOW() WHERE id = $3`

	tag, err := tx.Exec(ctx, query, money, digits, walletID)
	if err != nil {
		return fmt.Errorf("update wallet balances: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wallet not found: %s", walletID)
	}
	return nil
}
