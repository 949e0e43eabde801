package service

import (
	"context"
	"fmt"
	"time"

	"digiteen-wallet/internal/core/ports"
	"digiteen-wallet/pkg/apperror"

	"github.com/google/uuid"
)

type profileService struct {
	teenRepo ports.TeenRepository
	cardRepo ports.CardRepository
}

// NewProfileService creates the teen profile service.
func NewProfileService(teenRepo ports.TeenRepository, cardRepo ports.CardRepository) ports.ProfileService {
	return &profileService{
		teenRepo: teenRepo,
		cardRepo: cardRepo,
	}
}

func (s *profileService) GetProfile(ctx context.Context, teenID uuid.UUID) (*ports.TeenProfile, error) {
	teen, err := s.teenRepo.GetByID(ctx, teenID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get teen: %w", err))
	}
	if teen == nil {
		return nil, apperror.ErrNotFound("teen")
	}

	card, err := s.cardRepo.GetByTeenID(ctx, teenID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get card request: %w", err))
	}

	return &ports.TeenProfile{
		ID:         teen.ID,
		Username:   teen.Username,
		InviteCode: teen.InviteCode,
		HasCard:    card.HasPhysicalCard(),
		CreatedAt:  teen.CreatedAt.Format(time.RFC3339),
	}, nil
}
