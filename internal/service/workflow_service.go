package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"digiteen-wallet/internal/core/domain"
	"digiteen-wallet/internal/core/ports"
	"digiteen-wallet/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// WorkflowServiceImpl implements ports.WorkflowService. Every workflow
// runs validate -> gate -> lock wallet -> apply deltas -> append activity
// -> commit, all balance writes inside one database transaction with the
// wallet row locked FOR UPDATE. Once a mutation has begun, any failure
// still ends in a terminal failed Receipt; failures before that return
// typed errors and touch nothing.
type WorkflowServiceImpl struct {
	walletRepo   ports.WalletRepository
	activityRepo ports.ActivityRepository
	depositRepo  ports.DepositRequestRepository
	receiptCache ports.ReceiptCache
	feed         ports.ChangeFeed
	transactor   ports.DBTransactor
	receiptTTL   time.Duration
	log          zerolog.Logger
}

// NewWorkflowService creates a new WorkflowServiceImpl.
func NewWorkflowService(
	walletRepo ports.WalletRepository,
	activityRepo ports.ActivityRepository,
	depositRepo ports.DepositRequestRepository,
	receiptCache ports.ReceiptCache,
	feed ports.ChangeFeed,
	transactor ports.DBTransactor,
	receiptTTL time.Duration,
	log zerolog.Logger,
) *WorkflowServiceImpl {
	return &WorkflowServiceImpl{
		walletRepo:   walletRepo,
		activityRepo: activityRepo,
		depositRepo:  depositRepo,
		receiptCache: receiptCache,
		feed:         feed,
		transactor:   transactor,
		receiptTTL:   receiptTTL,
		log:          log,
	}
}

// Charge credits the money balance and appends the matching income
// activity in the same transaction.
func (s *WorkflowServiceImpl) Charge(ctx context.Context, teenID uuid.UUID, amount int64) (*domain.Receipt, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet, err := s.walletRepo.GetByTeenIDForUpdate(ctx, dbTx, teenID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("wallet")
	}

	now := time.Now().UTC()
	txID := domain.NewTransactionID(domain.PrefixCharge)
	activity := &domain.Activity{
		ID:            uuid.New(),
		WalletID:      wallet.ID,
		TransactionID: txID,
		Title:         domain.TitleCharge,
		Amount:        amount,
		Kind:          domain.ActivityKindIncome,
		Icon:          domain.ActivityIconWallet,
		CreatedAt:     now,
	}

	if err := s.walletRepo.UpdateBalances(ctx, dbTx, wallet.ID, wallet.Money+amount, wallet.Digits); err != nil {
		return s.failedReceipt(ctx, domain.ReceiptKindCharge, amount, err)
	}
	if err := s.activityRepo.Create(ctx, dbTx, activity); err != nil {
		return s.failedReceipt(ctx, domain.ReceiptKindCharge, amount, err)
	}
	if err := dbTx.Commit(ctx); err != nil {
		return s.failedReceipt(ctx, domain.ReceiptKindCharge, amount, err)
	}

	receipt := &domain.Receipt{
		TransactionID: txID,
		Amount:        amount,
		Kind:          domain.ReceiptKindCharge,
		Status:        domain.ReceiptStatusSuccess,
		CreatedAt:     now,
	}
	s.finish(ctx, teenID, wallet.Version+1, receipt)
	return receipt, nil
}

// RequestDeposit records a deposit request and credits the ledger in the
// same transaction. Requesting and approval are deliberately one step
// here: the audit row stays "requested" while the money lands at once.
func (s *WorkflowServiceImpl) RequestDeposit(ctx context.Context, teenID uuid.UUID, amount int64, reason string) (*domain.Receipt, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet, err := s.walletRepo.GetByTeenIDForUpdate(ctx, dbTx, teenID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("wallet")
	}

	now := time.Now().UTC()
	txID := domain.NewTransactionID(domain.PrefixDeposit)
	activity := &domain.Activity{
		ID:            uuid.New(),
		WalletID:      wallet.ID,
		TransactionID: txID,
		Title:         domain.TitleDepositRequest,
		Amount:        amount,
		Kind:          domain.ActivityKindIncome,
		Icon:          domain.ActivityIconGift,
		CreatedAt:     now,
	}
	deposit := &domain.DepositRequest{
		ID:            uuid.New(),
		TeenID:        teenID,
		TransactionID: txID,
		Amount:        amount,
		Reason:        reason,
		Status:        domain.DepositStatusRequested,
		CreatedAt:     now,
	}

	if err := s.walletRepo.UpdateBalances(ctx, dbTx, wallet.ID, wallet.Money+amount, wallet.Digits); err != nil {
		return s.failedReceipt(ctx, domain.ReceiptKindDeposit, amount, err)
	}
	if err := s.activityRepo.Create(ctx, dbTx, activity); err != nil {
		return s.failedReceipt(ctx, domain.ReceiptKindDeposit, amount, err)
	}
	if err := s.depositRepo.Create(ctx, dbTx, deposit); err != nil {
		return s.failedReceipt(ctx, domain.ReceiptKindDeposit, amount, err)
	}
	if err := dbTx.Commit(ctx); err != nil {
		return s.failedReceipt(ctx, domain.ReceiptKindDeposit, amount, err)
	}

	receipt := &domain.Receipt{
		TransactionID: txID,
		Amount:        amount,
		Kind:          domain.ReceiptKindDeposit,
		Status:        domain.ReceiptStatusSuccess,
		CreatedAt:     now,
	}
	s.finish(ctx, teenID, wallet.Version+1, receipt)
	return receipt, nil
}

// TransferToSaving debits the money balance. Amount equal to the balance
// is allowed (draining to zero); one Toman over is refused with nothing
// written.
func (s *WorkflowServiceImpl) TransferToSaving(ctx context.Context, teenID uuid.UUID, amount int64) (*domain.Receipt, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet, err := s.walletRepo.GetByTeenIDForUpdate(ctx, dbTx, teenID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("wallet")
	}

	if !wallet.CanDebit(amount) {
		return nil, apperror.ErrInsufficientFunds()
	}

	now := time.Now().UTC()
	txID := domain.NewTransactionID(domain.PrefixTransfer)
	activity := &domain.Activity{
		ID:            uuid.New(),
		WalletID:      wallet.ID,
		TransactionID: txID,
		Title:         domain.TitleTransferSaving,
		Amount:        amount,
		Kind:          domain.ActivityKindExpense,
		Icon:          domain.ActivityIconPiggy,
		CreatedAt:     now,
	}

	if err := s.walletRepo.UpdateBalances(ctx, dbTx, wallet.ID, wallet.Money-amount, wallet.Digits); err != nil {
		return s.failedReceipt(ctx, domain.ReceiptKindTransfer, amount, err)
	}
	if err := s.activityRepo.Create(ctx, dbTx, activity); err != nil {
		return s.failedReceipt(ctx, domain.ReceiptKindTransfer, amount, err)
	}
	if err := dbTx.Commit(ctx); err != nil {
		return s.failedReceipt(ctx, domain.ReceiptKindTransfer, amount, err)
	}

	receipt := &domain.Receipt{
		TransactionID: txID,
		Amount:        amount,
		Kind:          domain.ReceiptKindTransfer,
		Status:        domain.ReceiptStatusSuccess,
		CreatedAt:     now,
	}
	s.finish(ctx, teenID, wallet.Version+1, receipt)
	return receipt, nil
}

// PurchaseDigits spends money on digits. Only the Toman cost is
// ledgered; the digit credit rides on the same balance write without an
// activity of its own.
func (s *WorkflowServiceImpl) PurchaseDigits(ctx context.Context, teenID uuid.UUID, digits, price int64) (*domain.Receipt, error) {
	if digits <= 0 || price <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet, err := s.walletRepo.GetByTeenIDForUpdate(ctx, dbTx, teenID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("wallet")
	}

	if !wallet.CanDebit(price) {
		return nil, apperror.ErrInsufficientFunds()
	}

	now := time.Now().UTC()
	txID := domain.NewTransactionID(domain.PrefixDigits)
	activity := &domain.Activity{
		ID:            uuid.New(),
		WalletID:      wallet.ID,
		TransactionID: txID,
		Title:         domain.TitleDigitPurchase,
		Amount:        price,
		Kind:          domain.ActivityKindExpense,
		Icon:          domain.ActivityIconShop,
		CreatedAt:     now,
	}

	if err := s.walletRepo.UpdateBalances(ctx, dbTx, wallet.ID, wallet.Money-price, wallet.Digits+digits); err != nil {
		return s.failedReceipt(ctx, domain.ReceiptKindDigits, price, err)
	}
	if err := s.activityRepo.Create(ctx, dbTx, activity); err != nil {
		return s.failedReceipt(ctx, domain.ReceiptKindDigits, price, err)
	}
	if err := dbTx.Commit(ctx); err != nil {
		return s.failedReceipt(ctx, domain.ReceiptKindDigits, price, err)
	}

	receipt := &domain.Receipt{
		TransactionID: txID,
		Amount:        price,
		Kind:          domain.ReceiptKindDigits,
		Status:        domain.ReceiptStatusSuccess,
		CreatedAt:     now,
	}
	s.finish(ctx, teenID, wallet.Version+1, receipt)
	return receipt, nil
}

// GetReceipt re-fetches a cached receipt for the receipt screen.
func (s *WorkflowServiceImpl) GetReceipt(ctx context.Context, transactionID string) (*domain.Receipt, error) {
	payload, err := s.receiptCache.Get(ctx, transactionID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get receipt: %w", err))
	}
	if payload == nil {
		return nil, apperror.ErrNotFound("receipt")
	}

	receipt := &domain.Receipt{}
	if err := json.Unmarshal(payload, receipt); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("unmarshal receipt: %w", err))
	}
	return receipt, nil
}

// failedReceipt turns a failure after mutation start into a terminal
// failed Receipt. The transaction has already been rolled back by the
// deferred Rollback; nothing reached the ledger.
func (s *WorkflowServiceImpl) failedReceipt(ctx context.Context, kind domain.ReceiptKind, amount int64, cause error) (*domain.Receipt, error) {
	receipt := &domain.Receipt{
		TransactionID: domain.NewTransactionID(domain.PrefixTestFail),
		Amount:        amount,
		Kind:          kind,
		Status:        domain.ReceiptStatusFailed,
		ErrorMessage:  cause.Error(),
		CreatedAt:     time.Now().UTC(),
	}

	s.log.Error().
		Err(cause).
		Str("tx_id", receipt.TransactionID).
		Str("kind", string(kind)).
		Msg("workflow failed after mutation started")

	s.cacheReceipt(ctx, receipt)
	return receipt, nil
}

// finish runs the post-commit steps: receipt caching and the change-feed
// broadcast. Both are best-effort; the committed state is already owed.
func (s *WorkflowServiceImpl) finish(ctx context.Context, teenID uuid.UUID, version int64, receipt *domain.Receipt) {
	s.cacheReceipt(ctx, receipt)

	if err := s.feed.Publish(ctx, ports.WalletEvent{
		TeenID:  teenID,
		Key:     ports.FeedKeyWallet,
		Version: version,
		At:      receipt.CreatedAt,
	}); err != nil {
		s.log.Warn().Err(err).Msg("failed to publish wallet event")
	}

	s.log.Info().
		Str("tx_id", receipt.TransactionID).
		Str("teen_id", teenID.String()).
		Str("kind", string(receipt.Kind)).
		Int64("amount", receipt.Amount).
		Msg("workflow completed")
}

func (s *WorkflowServiceImpl) cacheReceipt(ctx context.Context, receipt *domain.Receipt) {
	payload, err := json.Marshal(receipt)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to marshal receipt")
		return
	}
	if err := s.receiptCache.Set(ctx, receipt.TransactionID, payload, s.receiptTTL); err != nil {
		s.log.Warn().Err(err).Str("tx_id", receipt.TransactionID).Msg("failed to cache receipt")
	}
}
