package service

import (
	"context"
	"fmt"
	"time"

	"digiteen-wallet/internal/core/domain"
	"digiteen-wallet/internal/core/ports"
	"digiteen-wallet/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// InvitationServiceImpl implements ports.InvitationService. The stored
// invitation is the gate: its mere existence is what opens the card
// flow, regardless of whether the parent ever responds.
type InvitationServiceImpl struct {
	invitationRepo ports.InvitationRepository
	teenRepo       ports.TeenRepository
	feed           ports.ChangeFeed
	log            zerolog.Logger
}

// NewInvitationService creates a new InvitationServiceImpl.
func NewInvitationService(
	invitationRepo ports.InvitationRepository,
	teenRepo ports.TeenRepository,
	feed ports.ChangeFeed,
	log zerolog.Logger,
) *InvitationServiceImpl {
	return &InvitationServiceImpl{
		invitationRepo: invitationRepo,
		teenRepo:       teenRepo,
		feed:           feed,
		log:            log,
	}
}

// IsInvited reports whether the teen has sent a parent invitation.
func (s *InvitationServiceImpl) IsInvited(ctx context.Context, teenID uuid.UUID) (bool, error) {
	inv, err := s.invitationRepo.GetByTeenID(ctx, teenID)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("get invitation: %w", err))
	}
	return inv != nil, nil
}

// Send validates the parent's mobile number and records the invitation.
// Re-sending replaces the previous invitation; the teen's invite code
// (the QR payload) is stable across re-sends.
func (s *InvitationServiceImpl) Send(ctx context.Context, teenID uuid.UUID, phoneNumber string) (*domain.ParentInvitation, error) {
	normalized := domain.NormalizePhone(phoneNumber)
	if !domain.ValidPhone(normalized) {
		return nil, apperror.ErrInvalidPhoneNumber()
	}

	teen, err := s.teenRepo.GetByID(ctx, teenID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get teen: %w", err))
	}
	if teen == nil {
		return nil, apperror.ErrNotFound("teen")
	}

	inv := &domain.ParentInvitation{
		ID:          uuid.New(),
		TeenID:      teenID,
		PhoneNumber: normalized,
		InviteCode:  teen.InviteCode,
		Status:      domain.InvitationStatusPending,
		SentAt:      time.Now().UTC(),
	}

	if err := s.invitationRepo.Upsert(ctx, inv); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("upsert invitation: %w", err))
	}

	// Best-effort broadcast so other clients unlock the card flow.
	if err := s.feed.Publish(ctx, ports.WalletEvent{
		TeenID: teenID,
		Key:    ports.FeedKeyInvitation,
		At:     inv.SentAt,
	}); err != nil {
		s.log.Warn().Err(err).Msg("failed to publish invitation event")
	}

	s.log.Info().
		Str("teen_id", teenID.String()).
		Str("phone", normalized).
		Msg("parent invitation sent")

	return inv, nil
}

// Get returns the teen's current invitation, or nil when none was sent.
func (s *InvitationServiceImpl) Get(ctx context.Context, teenID uuid.UUID) (*domain.ParentInvitation, error) {
	inv, err := s.invitationRepo.GetByTeenID(ctx, teenID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get invitation: %w", err))
	}
	return inv, nil
}
