package domain

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// InvitationStatus tracks a parent invitation. The prototype flips to the
// accepted-equivalent immediately after sending; the gate only checks for
// the record's existence, not its status.
type InvitationStatus string

const (
	InvitationStatusPending  InvitationStatus = "pending"
	InvitationStatusAccepted InvitationStatus = "accepted"
)

// ParentInvitation records that a guardian was invited. Its existence is
// what opens the gate for card requests. One invitation per teen;
// re-sending replaces the previous record.
type ParentInvitation struct {
	ID          uuid.UUID        `json:"id"`
	TeenID      uuid.UUID        `json:"teen_id"`
	PhoneNumber string           `json:"phone_number"`
	InviteCode  string           `json:"invite_code"`
	Status      InvitationStatus `json:"status"`
	SentAt      time.Time        `json:"sent_at"`
}

var mobileRe = regexp.MustCompile(`^09[0-9]{9}$`)

var nonDigitRe = regexp.MustCompile(`[^0-9]`)

// NormalizePhone strips non-digit characters and truncates to 11 digits.
func NormalizePhone(input string) string {
	digits := nonDigitRe.ReplaceAllString(input, "")
	if len(digits) > 11 {
		digits = digits[:11]
	}
	return digits
}

// ValidPhone reports whether the normalized number is a local mobile
// number: 11 digits with the 09 prefix.
func ValidPhone(normalized string) bool {
	return mobileRe.MatchString(normalized)
}
