package ports

import (
	"context"

	"digiteen-wallet/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TeenRepository defines persistence operations for teen profiles.
type TeenRepository interface {
	Create(ctx context.Context, tx pgx.Tx, teen *domain.Teen) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Teen, error)
	GetByUsername(ctx context.Context, username string) (*domain.Teen, error)
}

// WalletRepository defines persistence operations for wallets.
// Methods accepting pgx.Tx run inside transaction blocks; ForUpdate reads
// take a pessimistic row lock so balance mutations serialize.
type WalletRepository interface {
	Create(ctx context.Context, tx pgx.Tx, wallet *domain.Wallet) error
	GetByTeenID(ctx context.Context, teenID uuid.UUID) (*domain.Wallet, error)
	GetByTeenIDForUpdate(ctx context.Context, tx pgx.Tx, teenID uuid.UUID) (*domain.Wallet, error)
	// UpdateBalances writes both balances and bumps the wallet version.
	UpdateBalances(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, money, digits int64) error
}

// ActivityRepository defines persistence for the append-only ledger.
// Activities are only ever inserted; there is no update or delete.
type ActivityRepository interface {
	Create(ctx context.Context, tx pgx.Tx, activity *domain.Activity) error
	// List returns activities newest-first. limit <= 0 means no limit.
	List(ctx context.Context, walletID uuid.UUID, limit int) ([]domain.Activity, error)
	// GetStats folds over the complete activity history, never a subset.
	GetStats(ctx context.Context, walletID uuid.UUID) (*ActivityStats, error)
}

// ActivityStats holds ledger aggregates computed over the full history.
type ActivityStats struct {
	TotalIncome       int64
	TotalExpense      int64
	TransactionsCount int64
}

// CardRepository defines persistence for card lifecycle state.
type CardRepository interface {
	Create(ctx context.Context, card *domain.CardRequest) error
	GetByTeenID(ctx context.Context, teenID uuid.UUID) (*domain.CardRequest, error)
	// Update persists status, card number and activation time.
	Update(ctx context.Context, card *domain.CardRequest) error
}

// InvitationRepository defines persistence for parent invitations.
// One invitation per teen; Upsert replaces any previous record.
type InvitationRepository interface {
	GetByTeenID(ctx context.Context, teenID uuid.UUID) (*domain.ParentInvitation, error)
	Upsert(ctx context.Context, invitation *domain.ParentInvitation) error
}

// DepositRequestRepository persists the audit records written by the
// deposit workflow.
type DepositRequestRepository interface {
	Create(ctx context.Context, tx pgx.Tx, req *domain.DepositRequest) error
	ListByTeenID(ctx context.Context, teenID uuid.UUID) ([]domain.DepositRequest, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
