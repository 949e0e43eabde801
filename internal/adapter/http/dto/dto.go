package dto

// --- Requests ---

// RegisterRequest is the payload for POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50,safe_id"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// LoginRequest is the payload for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ChargeRequest is the payload for POST /wallet/charge.
type ChargeRequest struct {
	Amount int64 `json:"amount" binding:"required"`
}

// DepositRequest is the payload for POST /wallet/deposit-requests.
type DepositRequest struct {
	Amount int64  `json:"amount" binding:"required"`
	Reason string `json:"reason" binding:"omitempty,max=200"`
}

// TransferRequest is the payload for POST /wallet/transfers/saving.
type TransferRequest struct {
	Amount int64 `json:"amount" binding:"required"`
}

// PurchaseDigitsRequest is the payload for POST /wallet/digits/purchase.
type PurchaseDigitsRequest struct {
	Digits int64 `json:"digits" binding:"required"`
	Price  int64 `json:"price" binding:"required"`
}

// CardRequestRequest is the payload for POST /cards/request.
type CardRequestRequest struct {
	DesignID string `json:"design_id" binding:"required,safe_id"`
}

// ActivateCardRequest is the payload for POST /cards/activate.
type ActivateCardRequest struct {
	CardNumber string `json:"card_number" binding:"required,max=25"`
}

// InvitationRequest is the payload for POST /invitations.
type InvitationRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required,ir_mobile"`
}

// --- Responses ---

// RegisterResponse is returned after a successful registration.
type RegisterResponse struct {
	TeenID     string `json:"teen_id"`
	InviteCode string `json:"invite_code"`
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"`
}

// BalanceResponse is the wallet balance view.
type BalanceResponse struct {
	Money   int64 `json:"money"`
	Digits  int64 `json:"digits"`
	Version int64 `json:"version"`
}

// ActivityResponse is one ledger entry.
type ActivityResponse struct {
	ID            string `json:"id"`
	TransactionID string `json:"transaction_id"`
	Title         string `json:"title"`
	Amount        int64  `json:"amount"`
	Kind          string `json:"kind"`
	Icon          string `json:"icon"`
	CreatedAt     string `json:"created_at"`
}

// StatsResponse aggregates the ledger.
type StatsResponse struct {
	TotalIncome       int64 `json:"total_income"`
	TotalExpense      int64 `json:"total_expense"`
	TransactionsCount int64 `json:"transactions_count"`
}

// ReceiptResponse is the terminal result of a workflow.
type ReceiptResponse struct {
	TransactionID string `json:"transaction_id"`
	Amount        int64  `json:"amount"`
	Kind          string `json:"kind"`
	Status        string `json:"status"`
	ErrorMessage  string `json:"error_message,omitempty"`
	CreatedAt     string `json:"created_at"`
}

// CardResponse is the card lifecycle view. Status "none" is represented
// by a response with only the status field set.
type CardResponse struct {
	Status      string `json:"status"`
	DesignID    string `json:"design_id,omitempty"`
	Accent      string `json:"accent,omitempty"`
	CardNumber  string `json:"card_number,omitempty"`
	ActivatedAt string `json:"activated_at,omitempty"`
}

// InvitationResponse is the parent invitation view.
type InvitationResponse struct {
	PhoneNumber string `json:"phone_number"`
	InviteCode  string `json:"invite_code"`
	Status      string `json:"status"`
	SentAt      string `json:"sent_at"`
}

// ProfileResponse is the teen's own account view.
type ProfileResponse struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	InviteCode string `json:"invite_code"`
	HasCard    bool   `json:"has_card"`
	CreatedAt  string `json:"created_at"`
}
