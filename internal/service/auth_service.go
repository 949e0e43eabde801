package service

import (
	"context"
	"fmt"
	"time"

	"digiteen-wallet/internal/core/domain"
	"digiteen-wallet/internal/core/ports"
	"digiteen-wallet/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AuthServiceImpl implements ports.AuthService.
type AuthServiceImpl struct {
	teenRepo   ports.TeenRepository
	walletRepo ports.WalletRepository
	hashSvc    ports.HashService
	tokenSvc   ports.TokenService
	transactor ports.DBTransactor
	seedDigits int64
	log        zerolog.Logger
}

// NewAuthService creates a new AuthServiceImpl. seedDigits is the digit
// balance granted to every new wallet.
func NewAuthService(
	teenRepo ports.TeenRepository,
	walletRepo ports.WalletRepository,
	hashSvc ports.HashService,
	tokenSvc ports.TokenService,
	transactor ports.DBTransactor,
	seedDigits int64,
	log zerolog.Logger,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		teenRepo:   teenRepo,
		walletRepo: walletRepo,
		hashSvc:    hashSvc,
		tokenSvc:   tokenSvc,
		transactor: transactor,
		seedDigits: seedDigits,
		log:        log,
	}
}

// Register creates a teen profile and its seeded wallet in one database
// transaction. The invite code is generated exactly once here and never
// changes; wallet seeding happens only on this path, so later balance
// reads can never re-seed.
func (s *AuthServiceImpl) Register(ctx context.Context, req ports.RegisterRequest) (*ports.RegisterResult, error) {
	existing, err := s.teenRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check username: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrUsernameExists()
	}

	passwordHash, err := s.hashSvc.Hash(req.Password)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("hash password: %w", err))
	}

	now := time.Now().UTC()
	teen := &domain.Teen{
		ID:           uuid.New(),
		Username:     req.Username,
		PasswordHash: passwordHash,
		InviteCode:   domain.NewInviteCode(),
		CreatedAt:    now,
	}

	wallet := &domain.Wallet{
		ID:        uuid.New(),
		TeenID:    teen.ID,
		Money:     0,
		Digits:    s.seedDigits,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.teenRepo.Create(ctx, dbTx, teen); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create teen: %w", err))
	}
	if err := s.walletRepo.Create(ctx, dbTx, wallet); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create wallet: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("teen_id", teen.ID.String()).
		Str("username", teen.Username).
		Int64("seed_digits", s.seedDigits).
		Msg("teen registered")

	return &ports.RegisterResult{
		TeenID:     teen.ID,
		InviteCode: teen.InviteCode,
	}, nil
}

// Login validates credentials and returns a JWT token.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	teen, err := s.teenRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("find teen: %w", err))
	}
	if teen == nil {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	valid, err := s.hashSvc.Verify(password, teen.PasswordHash)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("verify password: %w", err))
	}
	if !valid {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	token, expiry, err := s.tokenSvc.Generate(teen.ID, teen.Username)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}

	return token, expiry, nil
}
