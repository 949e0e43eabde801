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

// CardServiceImpl implements ports.CardService. Card state only ever
// moves forward along none -> pending -> approved -> activated; every
// illegal jump is rejected with the state untouched.
type CardServiceImpl struct {
	cardRepo    ports.CardRepository
	invitations ports.InvitationService
	feed        ports.ChangeFeed
	log         zerolog.Logger
}

// NewCardService creates a new CardServiceImpl.
func NewCardService(
	cardRepo ports.CardRepository,
	invitations ports.InvitationService,
	feed ports.ChangeFeed,
	log zerolog.Logger,
) *CardServiceImpl {
	return &CardServiceImpl{
		cardRepo:    cardRepo,
		invitations: invitations,
		feed:        feed,
		log:         log,
	}
}

// Get returns the teen's card request, or nil when the lifecycle is
// still at "none".
func (s *CardServiceImpl) Get(ctx context.Context, teenID uuid.UUID) (*domain.CardRequest, error) {
	card, err := s.cardRepo.GetByTeenID(ctx, teenID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get card request: %w", err))
	}
	return card, nil
}

// Request opens the card lifecycle. Gated on the parent invitation:
// without one the request fails and nothing is stored.
func (s *CardServiceImpl) Request(ctx context.Context, teenID uuid.UUID, designID string) (*domain.CardRequest, error) {
	invited, err := s.invitations.IsInvited(ctx, teenID)
	if err != nil {
		return nil, err
	}
	if !invited {
		return nil, apperror.ErrParentNotInvited()
	}

	existing, err := s.cardRepo.GetByTeenID(ctx, teenID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get card request: %w", err))
	}

	from := domain.CardStatusNone
	if existing != nil {
		from = existing.Status
	}
	if !from.CanTransitionTo(domain.CardStatusPending) {
		return nil, apperror.ErrInvalidCardTransition(string(from), string(domain.CardStatusPending))
	}

	now := time.Now().UTC()
	card := &domain.CardRequest{
		ID:        uuid.New(),
		TeenID:    teenID,
		DesignID:  designID,
		Status:    domain.CardStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.cardRepo.Create(ctx, card); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create card request: %w", err))
	}

	s.publish(ctx, teenID)
	s.log.Info().
		Str("teen_id", teenID.String()).
		Str("design_id", designID).
		Msg("card requested")

	return card, nil
}

// Approve records the (simulated) guardian decision. Legal only from
// pending.
func (s *CardServiceImpl) Approve(ctx context.Context, teenID uuid.UUID) (*domain.CardRequest, error) {
	card, err := s.cardRepo.GetByTeenID(ctx, teenID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get card request: %w", err))
	}

	from := domain.CardStatusNone
	if card != nil {
		from = card.Status
	}
	if !from.CanTransitionTo(domain.CardStatusApproved) {
		return nil, apperror.ErrInvalidCardTransition(string(from), string(domain.CardStatusApproved))
	}

	card.Status = domain.CardStatusApproved
	if err := s.cardRepo.Update(ctx, card); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update card request: %w", err))
	}

	s.publish(ctx, teenID)
	s.log.Info().Str("teen_id", teenID.String()).Msg("card approved")

	return card, nil
}

// Activate binds the physical card. The number, stripped of separators,
// must be exactly 16 digits; anything else is rejected with the state
// unchanged. Legal only from approved.
func (s *CardServiceImpl) Activate(ctx context.Context, teenID uuid.UUID, cardNumber string) (*domain.CardRequest, error) {
	card, err := s.cardRepo.GetByTeenID(ctx, teenID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get card request: %w", err))
	}

	from := domain.CardStatusNone
	if card != nil {
		from = card.Status
	}
	if !from.CanTransitionTo(domain.CardStatusActivated) {
		return nil, apperror.ErrInvalidCardTransition(string(from), string(domain.CardStatusActivated))
	}

	normalized := domain.NormalizeCardNumber(cardNumber)
	if !domain.ValidCardNumber(normalized) {
		return nil, apperror.ErrInvalidCardNumber()
	}

	now := time.Now().UTC()
	card.Status = domain.CardStatusActivated
	card.CardNumber = &normalized
	card.ActivatedAt = &now

	if err := s.cardRepo.Update(ctx, card); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update card request: %w", err))
	}

	s.publish(ctx, teenID)
	s.log.Info().Str("teen_id", teenID.String()).Msg("card activated")

	return card, nil
}

func (s *CardServiceImpl) publish(ctx context.Context, teenID uuid.UUID) {
	if err := s.feed.Publish(ctx, ports.WalletEvent{
		TeenID: teenID,
		Key:    ports.FeedKeyCard,
		At:     time.Now().UTC(),
	}); err != nil {
		s.log.Warn().Err(err).Msg("failed to publish card event")
	}
}
