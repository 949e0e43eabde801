package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// CardStatus is the lifecycle state of a physical card request.
// Legal transitions: none -> pending -> approved -> activated.
// activated is terminal; there are no backward transitions.
type CardStatus string

const (
	CardStatusNone      CardStatus = "none"
	CardStatusPending   CardStatus = "pending"
	CardStatusApproved  CardStatus = "approved"
	CardStatusActivated CardStatus = "activated"
)

// CanTransitionTo reports whether moving to next is a legal step.
func (s CardStatus) CanTransitionTo(next CardStatus) bool {
	switch s {
	case CardStatusNone:
		return next == CardStatusPending
	case CardStatusPending:
		return next == CardStatusApproved
	case CardStatusApproved:
		return next == CardStatusActivated
	}
	return false
}

// CardRequest tracks one teen's physical card through its lifecycle.
type CardRequest struct {
	ID          uuid.UUID  `json:"id"`
	TeenID      uuid.UUID  `json:"teen_id"`
	DesignID    string     `json:"design_id"`
	Status      CardStatus `json:"status"`
	CardNumber  *string    `json:"card_number,omitempty"`
	ActivatedAt *time.Time `json:"activated_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// HasPhysicalCard is derived from the lifecycle state rather than stored
// separately, so the flag can never drift from the status.
func (c *CardRequest) HasPhysicalCard() bool {
	return c != nil && c.Status == CardStatusActivated
}

// NormalizeCardNumber strips spaces and dashes from user input.
func NormalizeCardNumber(input string) string {
	replacer := strings.NewReplacer(" ", "", "-", "")
	return replacer.Replace(input)
}

// ValidCardNumber reports whether the normalized input is exactly 16
// numeric digits.
func ValidCardNumber(normalized string) bool {
	if len(normalized) != 16 {
		return false
	}
	for _, r := range normalized {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// FormatCardNumber groups 16 digits in blocks of 4 for display.
func FormatCardNumber(normalized string) string {
	if len(normalized) != 16 {
		return normalized
	}
	var b strings.Builder
	for i := 0; i < 16; i += 4 {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(normalized[i : i+4])
	}
	return b.String()
}

// cardAccents maps known card designs to their accent colors. Unknown
// designs fall back to the default accent so derivation is total.
var cardAccents = map[string]string{
	"ocean":  "#1E6FD9",
	"sunset": "#F2542D",
	"forest": "#2E8B57",
	"night":  "#1C1B33",
	"candy":  "#E84393",
}

const defaultAccent = "#1E6FD9"

// DesignAccent derives the visual accent color for a card design.
// Derivation is a pure function: the same design always yields the same
// color, so callers may re-derive freely.
func DesignAccent(designID string) string {
	if accent, ok := cardAccents[strings.ToLower(designID)]; ok {
		return accent
	}
	return defaultAccent
}
