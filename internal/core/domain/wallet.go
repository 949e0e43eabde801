package domain

import (
	"time"

	"github.com/google/uuid"
)

// Wallet holds a teen's money balance (Toman, integral) and digit balance.
// Both balances are derived state: they must always equal the seed plus the
// sum of signed deltas of every Activity ever recorded. Version increments
// on every balance write and gives readers a monotonic change stamp.
type Wallet struct {
	ID        uuid.UUID `json:"id"`
	TeenID    uuid.UUID `json:"teen_id"`
	Money     int64     `json:"money"`
	Digits    int64     `json:"digits"`
	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CanDebit reports whether the wallet holds at least amount Toman.
func (w *Wallet) CanDebit(amount int64) bool {
	return w.Money >= amount
}
