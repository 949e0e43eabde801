package postgres

import (
	"context"
	"testing"
	"time"

	"digiteen-wallet/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activityColumns() []string {
	return []string{"id", "wallet_id", "transaction_id", "title", "amount", "kind", "icon", "created_at"}
}

func newTestActivity(walletID uuid.UUID, kind domain.ActivityKind, amount int64) *domain.Activity {
	return &domain.Activity{
		ID:            uuid.New(),
		WalletID:      walletID,
		TransactionID: domain.NewTransactionID(domain.PrefixCharge),
		Title:         domain.TitleCharge,
		Amount:        amount,
		Kind:          kind,
		Icon:          domain.ActivityIconWallet,
		CreatedAt:     time.Now().UTC().Truncate(time.Microsecond),
	}
}

func TestActivityRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewActivityRepo(mock)
	a := newTestActivity(uuid.New(), domain.ActivityKindIncome, 50000)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO activities").
		WithArgs(a.ID, a.WalletID, a.TransactionID, a.Title, a.Amount, a.Kind, a.Icon, a.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), tx, a)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivityRepo_List_Limited(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewActivityRepo(mock)
	walletID := uuid.New()

	newer := newTestActivity(walletID, domain.ActivityKindIncome, 30000)
	older := newTestActivity(walletID, domain.ActivityKindExpense, 10000)

	rows := pgxmock.NewRows(activityColumns()).
		AddRow(newer.ID, newer.WalletID, newer.TransactionID, newer.Title, newer.Amount, newer.Kind, newer.Icon, newer.CreatedAt).
		AddRow(older.ID, older.WalletID, older.TransactionID, older.Title, older.Amount, older.Kind, older.Icon, older.CreatedAt)

	mock.ExpectQuery("SELECT .+ FROM activities WHERE wallet_id .+ ORDER BY created_at DESC.+ LIMIT").
		WithArgs(walletID, 2).
		WillReturnRows(rows)

	result, err := repo.List(context.Background(), walletID, 2)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, newer.ID, result[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivityRepo_List_NoLimit(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewActivityRepo(mock)
	walletID := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM activities WHERE wallet_id").
		WithArgs(walletID).
		WillReturnRows(pgxmock.NewRows(activityColumns()))

	result, err := repo.List(context.Background(), walletID, 0)
	assert.NoError(t, err)
	assert.Empty(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivityRepo_GetStats(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewActivityRepo(mock)
	walletID := uuid.New()

	rows := pgxmock.NewRows([]string{"total_income", "total_expense", "count"}).
		AddRow(int64(80000), int64(30000), int64(5))

	mock.ExpectQuery("SELECT .+ FROM activities WHERE wallet_id").
		WithArgs(walletID).
		WillReturnRows(rows)

	stats, err := repo.GetStats(context.Background(), walletID)
	require.NoError(t, err)
	assert.Equal(t, int64(80000), stats.TotalIncome)
	assert.Equal(t, int64(30000), stats.TotalExpense)
	assert.Equal(t, int64(5), stats.TransactionsCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}
