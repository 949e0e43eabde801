package domain

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// ReceiptKind identifies which workflow produced a receipt.
type ReceiptKind string

const (
	ReceiptKindCharge   ReceiptKind = "charge"
	ReceiptKindDeposit  ReceiptKind = "deposit"
	ReceiptKindTransfer ReceiptKind = "transfer"
	ReceiptKindDigits   ReceiptKind = "digits"
)

// ReceiptStatus is the terminal outcome of a workflow invocation.
type ReceiptStatus string

const (
	ReceiptStatusSuccess ReceiptStatus = "success"
	ReceiptStatusFailed  ReceiptStatus = "failed"
)

// Transaction ID prefixes per workflow.
const (
	PrefixCharge   = "CHG"
	PrefixDeposit  = "DEP"
	PrefixTransfer = "TRF"
	PrefixDigits   = "DGT"
	PrefixTestFail = "TEST-FAIL"
)

// Receipt is the terminal result of a transaction workflow. Every workflow
// invocation ends in exactly one Receipt — success or failed, never silent.
type Receipt struct {
	TransactionID string        `json:"transaction_id"`
	Amount        int64         `json:"amount"`
	Kind          ReceiptKind   `json:"kind"`
	Status        ReceiptStatus `json:"status"`
	ErrorMessage  string        `json:"error_message,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}

// Failed reports whether the receipt records a failed workflow.
func (r *Receipt) Failed() bool {
	return r.Status == ReceiptStatusFailed
}

// NewTransactionID builds an identifier of the form
// {PREFIX}-{epochMillis}-{random base36 suffix, uppercased}. Uniqueness is
// probabilistic; there is no server-side deduplication requirement.
func NewTransactionID(prefix string) string {
	suffix := strings.ToUpper(strconv.FormatInt(rand.Int63n(36*36*36*36*36*36), 36))
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), suffix)
}
