package service

import (
	"context"
	"testing"

	"digiteen-wallet/internal/core/domain"
	"digiteen-wallet/internal/core/ports"
	"digiteen-wallet/internal/core/ports/mocks"
	"digiteen-wallet/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type ledgerTestDeps struct {
	svc          *LedgerServiceImpl
	walletRepo   *mocks.MockWalletRepository
	activityRepo *mocks.MockActivityRepository
	ctrl         *gomock.Controller
}

func setupLedgerService(t *testing.T) *ledgerTestDeps {
	ctrl := gomock.NewController(t)
	d := &ledgerTestDeps{
		walletRepo:   mocks.NewMockWalletRepository(ctrl),
		activityRepo: mocks.NewMockActivityRepository(ctrl),
		ctrl:         ctrl,
	}
	d.svc = NewLedgerService(d.walletRepo, d.activityRepo, zerolog.Nop())
	return d
}

func TestLedgerService_GetBalance(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	teenID := uuid.New()
	wallet := &domain.Wallet{ID: uuid.New(), TeenID: teenID, Money: 50000, Digits: 1000}

	d.walletRepo.EXPECT().GetByTeenID(ctx, teenID).Return(wallet, nil)

	result, err := d.svc.GetBalance(ctx, teenID)
	require.NoError(t, err)
	assert.Equal(t, int64(50000), result.Money)
	assert.Equal(t, int64(1000), result.Digits)
}

func TestLedgerService_GetBalance_WalletMissing(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	teenID := uuid.New()

	d.walletRepo.EXPECT().GetByTeenID(ctx, teenID).Return(nil, nil)

	_, err := d.svc.GetBalance(ctx, teenID)
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "LED_002", appErr.Code)
}

func TestLedgerService_ListActivities(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	teenID := uuid.New()
	wallet := &domain.Wallet{ID: uuid.New(), TeenID: teenID}
	activities := []domain.Activity{
		{ID: uuid.New(), WalletID: wallet.ID, Title: domain.TitleCharge, Amount: 50000, Kind: domain.ActivityKindIncome},
	}

	d.walletRepo.EXPECT().GetByTeenID(ctx, teenID).Return(wallet, nil)
	d.activityRepo.EXPECT().List(ctx, wallet.ID, 10).Return(activities, nil)

	result, err := d.svc.ListActivities(ctx, teenID, 10)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, domain.TitleCharge, result[0].Title)
}

func TestLedgerService_GetStats(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	teenID := uuid.New()
	wallet := &domain.Wallet{ID: uuid.New(), TeenID: teenID}
	stats := &ports.ActivityStats{TotalIncome: 80000, TotalExpense: 30000, TransactionsCount: 5}

	d.walletRepo.EXPECT().GetByTeenID(ctx, teenID).Return(wallet, nil)
	d.activityRepo.EXPECT().GetStats(ctx, wallet.ID).Return(stats, nil)

	result, err := d.svc.GetStats(ctx, teenID)
	require.NoError(t, err)
	assert.Equal(t, int64(80000), result.TotalIncome)
	assert.Equal(t, int64(30000), result.TotalExpense)
	assert.Equal(t, int64(5), result.TransactionsCount)
}
