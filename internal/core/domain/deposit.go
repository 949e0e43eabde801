package domain

import (
	"time"

	"github.com/google/uuid"
)

// DepositRequestStatus tracks a deposit request. The prototype credits the
// wallet in the same operation that records the request, so every row is
// written as "requested" while the funds are already available. A genuine
// guardian approval step would introduce an "approved" status; that change
// needs product sign-off and is deliberately not made here.
type DepositRequestStatus string

const (
	DepositStatusRequested DepositRequestStatus = "requested"
)

// DepositRequest is the audit record written by the deposit workflow.
type DepositRequest struct {
	ID            uuid.UUID            `json:"id"`
	TeenID        uuid.UUID            `json:"teen_id"`
	TransactionID string               `json:"transaction_id"`
	Amount        int64                `json:"amount"`
	Reason        string               `json:"reason,omitempty"`
	Status        DepositRequestStatus `json:"status"`
	CreatedAt     time.Time            `json:"created_at"`
}
