package domain

import (
	"time"

	"github.com/google/uuid"
)

// ActivityKind classifies a ledger entry as money in or money out.
type ActivityKind string

const (
	ActivityKindIncome  ActivityKind = "income"
	ActivityKindExpense ActivityKind = "expense"
)

// ActivityIcon is the closed set of icon tags the presentation layer can
// render. Free-form strings are rejected at the ledger boundary so a typo
// cannot produce an unrenderable entry.
type ActivityIcon string

const (
	ActivityIconWallet   ActivityIcon = "wallet"
	ActivityIconCard     ActivityIcon = "card"
	ActivityIconTransfer ActivityIcon = "transfer"
	ActivityIconGift     ActivityIcon = "gift"
	ActivityIconShop     ActivityIcon = "shop"
	ActivityIconPiggy    ActivityIcon = "piggy"
)

// Valid reports whether the icon belongs to the closed set.
func (i ActivityIcon) Valid() bool {
	switch i {
	case ActivityIconWallet, ActivityIconCard, ActivityIconTransfer,
		ActivityIconGift, ActivityIconShop, ActivityIconPiggy:
		return true
	}
	return false
}

// Well-known activity titles shown in the wallet feed.
const (
	TitleCharge         = "افزایش موجودی"
	TitleDepositRequest = "درخواست واریز"
	TitleTransferSaving = "انتقال به پس‌انداز"
	TitleDigitPurchase  = "خرید دیجیت"
)

// Activity is an immutable, append-only ledger entry. Amount is always
// positive; Kind carries the sign. Activities are never updated or deleted.
type Activity struct {
	ID            uuid.UUID    `json:"id"`
	WalletID      uuid.UUID    `json:"wallet_id"`
	TransactionID string       `json:"transaction_id"`
	Title         string       `json:"title"`
	Amount        int64        `json:"amount"`
	Kind          ActivityKind `json:"kind"`
	Icon          ActivityIcon `json:"icon"`
	CreatedAt     time.Time    `json:"created_at"`
}

// Signed returns the activity's contribution to the money balance.
func (a *Activity) Signed() int64 {
	if a.Kind == ActivityKindExpense {
		return -a.Amount
	}
	return a.Amount
}
