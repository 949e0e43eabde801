// Package integration wires the full HTTP stack against in-memory
// repositories and a miniredis instance, exercising the same code paths
// the production composition root uses.
package integration

import (
	"context"
	"sort"
	"sync"
	"time"

	"digiteen-wallet/internal/core/domain"
	"digiteen-wallet/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// memTx satisfies pgx.Tx for repositories that only thread the handle
// through. The in-memory stores apply writes immediately; Commit and
// Rollback just release the transactor lock, whichever runs first.
type memTx struct {
	pgx.Tx
	once    sync.Once
	release func()
}

func (t *memTx) Commit(ctx context.Context) error   { t.once.Do(t.release); return nil }
func (t *memTx) Rollback(ctx context.Context) error { t.once.Do(t.release); return nil }

// memTransactor serializes transactions behind one mutex, standing in
// for the FOR UPDATE row lock the SQL wallet repository takes.
type memTransactor struct {
	mu sync.Mutex
}

func (t *memTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	t.mu.Lock()
	return &memTx{release: t.mu.Unlock}, nil
}

// --- Teens ---

type inmemTeenRepo struct {
	mu    sync.Mutex
	teens map[uuid.UUID]domain.Teen
}

func newInmemTeenRepo() *inmemTeenRepo {
	return &inmemTeenRepo{teens: make(map[uuid.UUID]domain.Teen)}
}

func (r *inmemTeenRepo) Create(ctx context.Context, tx pgx.Tx, teen *domain.Teen) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.teens[teen.ID] = *teen
	return nil
}

func (r *inmemTeenRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Teen, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.teens[id]; ok {
		copied := t
		return &copied, nil
	}
	return nil, nil
}

func (r *inmemTeenRepo) GetByUsername(ctx context.Context, username string) (*domain.Teen, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.teens {
		if t.Username == username {
			copied := t
			return &copied, nil
		}
	}
	return nil, nil
}

// --- Wallets ---

// inmemWalletRepo serializes all balance writes behind one mutex, which
// stands in for the row lock the SQL repository takes.
type inmemWalletRepo struct {
	mu      sync.Mutex
	wallets map[uuid.UUID]domain.Wallet // keyed by wallet ID
}

func newInmemWalletRepo() *inmemWalletRepo {
	return &inmemWalletRepo{wallets: make(map[uuid.UUID]domain.Wallet)}
}

func (r *inmemWalletRepo) Create(ctx context.Context, tx pgx.Tx, wallet *domain.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.wallets[wallet.ID] = *wallet
	return nil
}

func (r *inmemWalletRepo) GetByTeenID(ctx context.Context, teenID uuid.UUID) (*domain.Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.findByTeenLocked(teenID), nil
}

func (r *inmemWalletRepo) GetByTeenIDForUpdate(ctx context.Context, tx pgx.Tx, teenID uuid.UUID) (*domain.Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.findByTeenLocked(teenID), nil
}

func (r *inmemWalletRepo) UpdateBalances(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, money, digits int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w := r.wallets[walletID]
	w.Money = money
	w.Digits = digits
	w.Version++
	w.UpdatedAt = time.Now()
	r.wallets[walletID] = w
	return nil
}

func (r *inmemWalletRepo) findByTeenLocked(teenID uuid.UUID) *domain.Wallet {
	for _, w := range r.wallets {
		if w.TeenID == teenID {
			copied := w
			return &copied
		}
	}
	return nil
}

// --- Activities ---

type inmemActivityRepo struct {
	mu         sync.Mutex
	activities []domain.Activity
}

func newInmemActivityRepo() *inmemActivityRepo {
	return &inmemActivityRepo{}
}

func (r *inmemActivityRepo) Create(ctx context.Context, tx pgx.Tx, activity *domain.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.activities = append(r.activities, *activity)
	return nil
}

func (r *inmemActivityRepo) List(ctx context.Context, walletID uuid.UUID, limit int) ([]domain.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []domain.Activity
	for _, a := range r.activities {
		if a.WalletID == walletID {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *inmemActivityRepo) GetStats(ctx context.Context, walletID uuid.UUID) (*ports.ActivityStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats := &ports.ActivityStats{}
	for _, a := range r.activities {
		if a.WalletID != walletID {
			continue
		}
		stats.TransactionsCount++
		if a.Kind == domain.ActivityKindIncome {
			stats.TotalIncome += a.Amount
		} else {
			stats.TotalExpense += a.Amount
		}
	}
	return stats, nil
}

// --- Cards ---

type inmemCardRepo struct {
	mu    sync.Mutex
	cards map[uuid.UUID]domain.CardRequest // keyed by teen ID
}

func newInmemCardRepo() *inmemCardRepo {
	return &inmemCardRepo{cards: make(map[uuid.UUID]domain.CardRequest)}
}

func (r *inmemCardRepo) Create(ctx context.Context, card *domain.CardRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cards[card.TeenID] = *card
	return nil
}

func (r *inmemCardRepo) GetByTeenID(ctx context.Context, teenID uuid.UUID) (*domain.CardRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.cards[teenID]; ok {
		copied := c
		return &copied, nil
	}
	return nil, nil
}

func (r *inmemCardRepo) Update(ctx context.Context, card *domain.CardRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cards[card.TeenID] = *card
	return nil
}

// --- Invitations ---

type inmemInvitationRepo struct {
	mu          sync.Mutex
	invitations map[uuid.UUID]domain.ParentInvitation // keyed by teen ID
}

func newInmemInvitationRepo() *inmemInvitationRepo {
	return &inmemInvitationRepo{invitations: make(map[uuid.UUID]domain.ParentInvitation)}
}

func (r *inmemInvitationRepo) GetByTeenID(ctx context.Context, teenID uuid.UUID) (*domain.ParentInvitation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if inv, ok := r.invitations[teenID]; ok {
		copied := inv
		return &copied, nil
	}
	return nil, nil
}

func (r *inmemInvitationRepo) Upsert(ctx context.Context, invitation *domain.ParentInvitation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invitations[invitation.TeenID] = *invitation
	return nil
}

// --- Deposit requests ---

type inmemDepositRepo struct {
	mu       sync.Mutex
	requests []domain.DepositRequest
}

func newInmemDepositRepo() *inmemDepositRepo {
	return &inmemDepositRepo{}
}

func (r *inmemDepositRepo) Create(ctx context.Context, tx pgx.Tx, req *domain.DepositRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, *req)
	return nil
}

func (r *inmemDepositRepo) ListByTeenID(ctx context.Context, teenID uuid.UUID) ([]domain.DepositRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []domain.DepositRequest
	for _, req := range r.requests {
		if req.TeenID == teenID {
			out = append(out, req)
		}
	}
	return out, nil
}
