package ports

import (
	"context"
	"time"

	"digiteen-wallet/internal/core/domain"

	"github.com/google/uuid"
)

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(teenID uuid.UUID, username string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	TeenID   uuid.UUID
	Username string
}

// ReceiptCache stores terminal receipts so the UI can re-fetch the
// receipt screen. Best-effort: a cache failure never fails a workflow.
type ReceiptCache interface {
	Get(ctx context.Context, transactionID string) ([]byte, error) // nil if absent
	Set(ctx context.Context, transactionID string, payload []byte, ttl time.Duration) error
}

// WalletEvent describes a committed mutation, broadcast so other clients
// of the same wallet can refresh. The analog of a storage-changed event.
type WalletEvent struct {
	TeenID  uuid.UUID `json:"teen_id"`
	Key     string    `json:"key"` // wallet, activities, card, invitation
	Version int64     `json:"version,omitempty"`
	At      time.Time `json:"at"`
}

// Change-feed keys.
const (
	FeedKeyWallet     = "wallet"
	FeedKeyActivities = "activities"
	FeedKeyCard       = "card"
	FeedKeyInvitation = "invitation"
)

// ChangeFeed broadcasts wallet events across service instances.
// Delivery is best-effort; durable state lives only in the database.
type ChangeFeed interface {
	Publish(ctx context.Context, event WalletEvent) error
	// Subscribe delivers events until ctx is cancelled; the returned
	// channel is closed afterwards.
	Subscribe(ctx context.Context) (<-chan WalletEvent, error)
}

// --- Service Ports (Business Logic) ---

// AuthService defines registration and login for teen profiles.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error)
	Login(ctx context.Context, username, password string) (string, time.Time, error) // token, expiry, error
}

// RegisterRequest holds input for teen registration.
type RegisterRequest struct {
	Username string
	Password string
}

// RegisterResult holds the registration outcome.
type RegisterResult struct {
	TeenID     uuid.UUID
	InviteCode string
}

// LedgerService exposes read operations over the wallet ledger.
type LedgerService interface {
	GetBalance(ctx context.Context, teenID uuid.UUID) (*domain.Wallet, error)
	ListActivities(ctx context.Context, teenID uuid.UUID, limit int) ([]domain.Activity, error)
	GetStats(ctx context.Context, teenID uuid.UUID) (*ActivityStats, error)
}

// WorkflowService runs the transaction workflows. Each call ends in
// exactly one Receipt or a typed pre-mutation error; never both, never
// neither.
type WorkflowService interface {
	Charge(ctx context.Context, teenID uuid.UUID, amount int64) (*domain.Receipt, error)
	RequestDeposit(ctx context.Context, teenID uuid.UUID, amount int64, reason string) (*domain.Receipt, error)
	TransferToSaving(ctx context.Context, teenID uuid.UUID, amount int64) (*domain.Receipt, error)
	PurchaseDigits(ctx context.Context, teenID uuid.UUID, digits, price int64) (*domain.Receipt, error)
	GetReceipt(ctx context.Context, transactionID string) (*domain.Receipt, error)
}

// CardService drives the physical card lifecycle.
type CardService interface {
	Get(ctx context.Context, teenID uuid.UUID) (*domain.CardRequest, error) // nil = status none
	Request(ctx context.Context, teenID uuid.UUID, designID string) (*domain.CardRequest, error)
	Approve(ctx context.Context, teenID uuid.UUID) (*domain.CardRequest, error)
	Activate(ctx context.Context, teenID uuid.UUID, cardNumber string) (*domain.CardRequest, error)
}

// TeenProfile is the account view a teen sees on their profile screen.
type TeenProfile struct {
	ID         uuid.UUID `json:"id"`
	Username   string    `json:"username"`
	InviteCode string    `json:"invite_code"`
	HasCard    bool      `json:"has_card"`
	CreatedAt  string    `json:"created_at"`
}

// ProfileService exposes a teen's own account view.
type ProfileService interface {
	GetProfile(ctx context.Context, teenID uuid.UUID) (*TeenProfile, error)
}

// InvitationService manages the parent invitation gate.
type InvitationService interface {
	IsInvited(ctx context.Context, teenID uuid.UUID) (bool, error)
	Send(ctx context.Context, teenID uuid.UUID, phoneNumber string) (*domain.ParentInvitation, error)
	Get(ctx context.Context, teenID uuid.UUID) (*domain.ParentInvitation, error)
}
