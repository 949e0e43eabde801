package domain

import (
	"crypto/rand"
	"math/big"
	"time"

	"github.com/google/uuid"
)

// Teen represents one DigiTeen installation owner.
type Teen struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Argon2id, never exposed
	InviteCode   string    `json:"invite_code"`
	CreatedAt    time.Time `json:"created_at"`
}

const inviteCodeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewInviteCode generates a stable invite code of the form DIGI-XXXXXX
// (6 base36 characters, uppercased). Generated once per teen and reused
// for every subsequent parent invitation.
func NewInviteCode() string {
	code := make([]byte, 6)
	max := big.NewInt(int64(len(inviteCodeAlphabet)))
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand failure is not recoverable here; fall back to
			// a uuid-derived character so the code is still well-formed.
			code[i] = inviteCodeAlphabet[uuid.New()[0]%36]
			continue
		}
		code[i] = inviteCodeAlphabet[n.Int64()]
	}
	return "DIGI-" + string(code)
}
