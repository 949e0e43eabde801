package service

import (
	"context"
	"fmt"

	"digiteen-wallet/internal/core/domain"
	"digiteen-wallet/internal/core/ports"
	"digiteen-wallet/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// LedgerServiceImpl implements ports.LedgerService. Read-only: every
// balance mutation goes through the transaction workflows, so nothing
// here ever writes.
type LedgerServiceImpl struct {
	walletRepo   ports.WalletRepository
	activityRepo ports.ActivityRepository
	log          zerolog.Logger
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(
	walletRepo ports.WalletRepository,
	activityRepo ports.ActivityRepository,
	log zerolog.Logger,
) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		walletRepo:   walletRepo,
		activityRepo: activityRepo,
		log:          log,
	}
}

// GetBalance returns the teen's wallet snapshot. Wallets exist from
// registration on, so a missing row is an error, never a seeding cue.
func (s *LedgerServiceImpl) GetBalance(ctx context.Context, teenID uuid.UUID) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetByTeenID(ctx, teenID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("wallet")
	}
	return wallet, nil
}

// ListActivities returns the teen's ledger entries newest-first.
// limit <= 0 returns the full history.
func (s *LedgerServiceImpl) ListActivities(ctx context.Context, teenID uuid.UUID, limit int) ([]domain.Activity, error) {
	wallet, err := s.GetBalance(ctx, teenID)
	if err != nil {
		return nil, err
	}

	activities, err := s.activityRepo.List(ctx, wallet.ID, limit)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list activities: %w", err))
	}
	return activities, nil
}

// GetStats folds over the complete activity history. The aggregation is
// done by the database, never over a limited page.
func (s *LedgerServiceImpl) GetStats(ctx context.Context, teenID uuid.UUID) (*ports.ActivityStats, error) {
	wallet, err := s.GetBalance(ctx, teenID)
	if err != nil {
		return nil, err
	}

	stats, err := s.activityRepo.GetStats(ctx, wallet.ID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get stats: %w", err))
	}
	return stats, nil
}
