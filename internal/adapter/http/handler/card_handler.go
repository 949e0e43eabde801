package handler

import (
	"time"

	"digiteen-wallet/internal/adapter/http/dto"
	"digiteen-wallet/internal/core/domain"
	"digiteen-wallet/internal/core/ports"
	"digiteen-wallet/pkg/apperror"
	"digiteen-wallet/pkg/response"

	"github.com/gin-gonic/gin"
)

// CardHandler handles physical card lifecycle endpoints.
type CardHandler struct {
	cardSvc ports.CardService
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(cardSvc ports.CardService) *CardHandler {
	return &CardHandler{cardSvc: cardSvc}
}

// Get handles GET /api/v1/cards. A teen who never requested a card gets
// status "none" rather than a 404.
func (h *CardHandler) Get(c *gin.Context) {
	teenID, ok := teenFromCtx(c)
	if !ok {
		return
	}

	card, err := h.cardSvc.Get(c.Request.Context(), teenID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toCardResponse(card))
}

// Request handles POST /api/v1/cards/request.
func (h *CardHandler) Request(c *gin.Context) {
	teenID, ok := teenFromCtx(c)
	if !ok {
		return
	}

	var req dto.CardRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	card, err := h.cardSvc.Request(c.Request.Context(), teenID, req.DesignID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toCardResponse(card))
}

// Approve handles POST /api/v1/cards/approve.
func (h *CardHandler) Approve(c *gin.Context) {
	teenID, ok := teenFromCtx(c)
	if !ok {
		return
	}

	card, err := h.cardSvc.Approve(c.Request.Context(), teenID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toCardResponse(card))
}

// Activate handles POST /api/v1/cards/activate.
func (h *CardHandler) Activate(c *gin.Context) {
	teenID, ok := teenFromCtx(c)
	if !ok {
		return
	}

	var req dto.ActivateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	card, err := h.cardSvc.Activate(c.Request.Context(), teenID, req.CardNumber)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toCardResponse(card))
}

func toCardResponse(card *domain.CardRequest) dto.CardResponse {
	if card == nil {
		return dto.CardResponse{Status: string(domain.CardStatusNone)}
	}

	resp := dto.CardResponse{
		Status:   string(card.Status),
		DesignID: card.DesignID,
		Accent:   domain.DesignAccent(card.DesignID),
	}
	if card.CardNumber != nil {
		resp.CardNumber = domain.FormatCardNumber(*card.CardNumber)
	}
	if card.ActivatedAt != nil {
		resp.ActivatedAt = card.ActivatedAt.UTC().Format(time.RFC3339)
	}
	return resp
}
