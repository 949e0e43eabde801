package handler

import (
	"time"

	"digiteen-wallet/internal/adapter/http/dto"
	"digiteen-wallet/internal/core/ports"
	"digiteen-wallet/pkg/apperror"
	"digiteen-wallet/pkg/response"

	"github.com/gin-gonic/gin"
)

// InvitationHandler handles parent invitation endpoints.
type InvitationHandler struct {
	invitationSvc ports.InvitationService
}

// NewInvitationHandler creates a new InvitationHandler.
func NewInvitationHandler(invitationSvc ports.InvitationService) *InvitationHandler {
	return &InvitationHandler{invitationSvc: invitationSvc}
}

// Get handles GET /api/v1/invitations.
func (h *InvitationHandler) Get(c *gin.Context) {
	teenID, ok := teenFromCtx(c)
	if !ok {
		return
	}

	inv, err := h.invitationSvc.Get(c.Request.Context(), teenID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if inv == nil {
		response.Error(c, apperror.ErrNotFound("invitation"))
		return
	}

	response.OK(c, dto.InvitationResponse{
		PhoneNumber: inv.PhoneNumber,
		InviteCode:  inv.InviteCode,
		Status:      string(inv.Status),
		SentAt:      inv.SentAt.UTC().Format(time.RFC3339),
	})
}

// Send handles POST /api/v1/invitations. Re-sending replaces the previous
// invitation but keeps the teen's stable invite code.
func (h *InvitationHandler) Send(c *gin.Context) {
	teenID, ok := teenFromCtx(c)
	if !ok {
		return
	}

	var req dto.InvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrInvalidPhoneNumber())
		return
	}

	inv, err := h.invitationSvc.Send(c.Request.Context(), teenID, req.PhoneNumber)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.InvitationResponse{
		PhoneNumber: inv.PhoneNumber,
		InviteCode:  inv.InviteCode,
		Status:      string(inv.Status),
		SentAt:      inv.SentAt.UTC().Format(time.RFC3339),
	})
}
