package handler

import (
	"digiteen-wallet/internal/adapter/http/dto"
	"digiteen-wallet/internal/core/ports"
	"digiteen-wallet/pkg/response"

	"github.com/gin-gonic/gin"
)

// TeenHandler handles teen profile endpoints.
type TeenHandler struct {
	profileSvc ports.ProfileService
}

// NewTeenHandler creates a new TeenHandler.
func NewTeenHandler(profileSvc ports.ProfileService) *TeenHandler {
	return &TeenHandler{profileSvc: profileSvc}
}

// Me handles GET /api/v1/teens/me.
func (h *TeenHandler) Me(c *gin.Context) {
	teenID, ok := teenFromCtx(c)
	if !ok {
		return
	}

	profile, err := h.profileSvc.GetProfile(c.Request.Context(), teenID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ProfileResponse{
		ID:         profile.ID.String(),
		Username:   profile.Username,
		InviteCode: profile.InviteCode,
		HasCard:    profile.HasCard,
		CreatedAt:  profile.CreatedAt,
	})
}
