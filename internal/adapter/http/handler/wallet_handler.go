package handler

import (
	"strconv"
	"time"

	"digiteen-wallet/internal/adapter/http/dto"
	"digiteen-wallet/internal/adapter/http/middleware"
	"digiteen-wallet/internal/core/domain"
	"digiteen-wallet/internal/core/ports"
	"digiteen-wallet/pkg/apperror"
	"digiteen-wallet/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WalletHandler handles wallet ledger and workflow endpoints.
type WalletHandler struct {
	ledgerSvc   ports.LedgerService
	workflowSvc ports.WorkflowService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(ledgerSvc ports.LedgerService, workflowSvc ports.WorkflowService) *WalletHandler {
	return &WalletHandler{ledgerSvc: ledgerSvc, workflowSvc: workflowSvc}
}

// teenFromCtx extracts the authenticated teen ID set by JWTAuth.
func teenFromCtx(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(middleware.CtxTeenID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return uuid.Nil, false
	}
	return id, true
}

// GetBalance handles GET /api/v1/wallet/balance.
func (h *WalletHandler) GetBalance(c *gin.Context) {
	teenID, ok := teenFromCtx(c)
	if !ok {
		return
	}

	wallet, err := h.ledgerSvc.GetBalance(c.Request.Context(), teenID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BalanceResponse{
		Money:   wallet.Money,
		Digits:  wallet.Digits,
		Version: wallet.Version,
	})
}

// ListActivities handles GET /api/v1/wallet/activities?limit=.
func (h *WalletHandler) ListActivities(c *gin.Context) {
	teenID, ok := teenFromCtx(c)
	if !ok {
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			response.Error(c, apperror.Validation("limit must be a non-negative integer"))
			return
		}
		limit = parsed
	}

	activities, err := h.ledgerSvc.ListActivities(c.Request.Context(), teenID, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.ActivityResponse, 0, len(activities))
	for _, a := range activities {
		items = append(items, dto.ActivityResponse{
			ID:            a.ID.String(),
			TransactionID: a.TransactionID,
			Title:         a.Title,
			Amount:        a.Amount,
			Kind:          string(a.Kind),
			Icon:          string(a.Icon),
			CreatedAt:     a.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	response.OK(c, items)
}

// GetStats handles GET /api/v1/wallet/stats.
func (h *WalletHandler) GetStats(c *gin.Context) {
	teenID, ok := teenFromCtx(c)
	if !ok {
		return
	}

	stats, err := h.ledgerSvc.GetStats(c.Request.Context(), teenID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.StatsResponse{
		TotalIncome:       stats.TotalIncome,
		TotalExpense:      stats.TotalExpense,
		TransactionsCount: stats.TransactionsCount,
	})
}

// Charge handles POST /api/v1/wallet/charge.
func (h *WalletHandler) Charge(c *gin.Context) {
	teenID, ok := teenFromCtx(c)
	if !ok {
		return
	}

	var req dto.ChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	receipt, err := h.workflowSvc.Charge(c.Request.Context(), teenID, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toReceiptResponse(receipt))
}

// RequestDeposit handles POST /api/v1/wallet/deposit-requests.
func (h *WalletHandler) RequestDeposit(c *gin.Context) {
	teenID, ok := teenFromCtx(c)
	if !ok {
		return
	}

	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	receipt, err := h.workflowSvc.RequestDeposit(c.Request.Context(), teenID, req.Amount, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toReceiptResponse(receipt))
}

// TransferToSaving handles POST /api/v1/wallet/transfers/saving.
func (h *WalletHandler) TransferToSaving(c *gin.Context) {
	teenID, ok := teenFromCtx(c)
	if !ok {
		return
	}

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	receipt, err := h.workflowSvc.TransferToSaving(c.Request.Context(), teenID, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toReceiptResponse(receipt))
}

// PurchaseDigits handles POST /api/v1/wallet/digits/purchase.
func (h *WalletHandler) PurchaseDigits(c *gin.Context) {
	teenID, ok := teenFromCtx(c)
	if !ok {
		return
	}

	var req dto.PurchaseDigitsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	receipt, err := h.workflowSvc.PurchaseDigits(c.Request.Context(), teenID, req.Digits, req.Price)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toReceiptResponse(receipt))
}

// GetReceipt handles GET /api/v1/wallet/receipts/:id.
func (h *WalletHandler) GetReceipt(c *gin.Context) {
	if _, ok := teenFromCtx(c); !ok {
		return
	}

	receipt, err := h.workflowSvc.GetReceipt(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toReceiptResponse(receipt))
}

func toReceiptResponse(r *domain.Receipt) dto.ReceiptResponse {
	return dto.ReceiptResponse{
		TransactionID: r.TransactionID,
		Amount:        r.Amount,
		Kind:          string(r.Kind),
		Status:        string(r.Status),
		ErrorMessage:  r.ErrorMessage,
		CreatedAt:     r.CreatedAt.UTC().Format(time.RFC3339),
	}
}
