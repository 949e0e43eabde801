package service

import (
	"context"
	"testing"

	"digiteen-wallet/internal/core/domain"
	"digiteen-wallet/internal/core/ports/mocks"
	"digiteen-wallet/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type invitationTestDeps struct {
	svc      *InvitationServiceImpl
	invRepo  *mocks.MockInvitationRepository
	teenRepo *mocks.MockTeenRepository
	feed     *mocks.MockChangeFeed
	ctrl     *gomock.Controller
}

func setupInvitationService(t *testing.T) *invitationTestDeps {
	ctrl := gomock.NewController(t)
	d := &invitationTestDeps{
		invRepo:  mocks.NewMockInvitationRepository(ctrl),
		teenRepo: mocks.NewMockTeenRepository(ctrl),
		feed:     mocks.NewMockChangeFeed(ctrl),
		ctrl:     ctrl,
	}
	d.svc = NewInvitationService(d.invRepo, d.teenRepo, d.feed, zerolog.Nop())
	return d
}

func TestInvitationService_IsInvited(t *testing.T) {
	d := setupInvitationService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	teenID := uuid.New()

	d.invRepo.EXPECT().GetByTeenID(ctx, teenID).Return(nil, nil)
	invited, err := d.svc.IsInvited(ctx, teenID)
	require.NoError(t, err)
	assert.False(t, invited)

	d.invRepo.EXPECT().GetByTeenID(ctx, teenID).Return(&domain.ParentInvitation{TeenID: teenID}, nil)
	invited, err = d.svc.IsInvited(ctx, teenID)
	require.NoError(t, err)
	assert.True(t, invited)
}

func TestInvitationService_Send_Success(t *testing.T) {
	d := setupInvitationService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	teenID := uuid.New()
	teen := &domain.Teen{ID: teenID, Username: "sara_81", InviteCode: "DIGI-A1B2C3"}

	d.teenRepo.EXPECT().GetByID(ctx, teenID).Return(teen, nil)
	d.invRepo.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, inv *domain.ParentInvitation) error {
			assert.Equal(t, "09123456789", inv.PhoneNumber)
			assert.Equal(t, "DIGI-A1B2C3", inv.InviteCode)
			assert.Equal(t, domain.InvitationStatusPending, inv.Status)
			return nil
		})
	d.feed.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	// Separators are stripped before validation.
	inv, err := d.svc.Send(ctx, teenID, "0912 345 6789")
	require.NoError(t, err)
	assert.Equal(t, "09123456789", inv.PhoneNumber)
}

func TestInvitationService_Send_InvalidPhone(t *testing.T) {
	d := setupInvitationService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	teenID := uuid.New()

	tests := []struct {
		name  string
		phone string
	}{
		{"10 digits", "0912345678"},
		{"wrong prefix", "9123456789"},
		{"landline", "02123456789"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := d.svc.Send(ctx, teenID, tt.phone)
			require.Error(t, err)

			var appErr *apperror.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VAL_002", appErr.Code)
		})
	}
}

func TestInvitationService_Send_StableInviteCodeAcrossResends(t *testing.T) {
	d := setupInvitationService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	teenID := uuid.New()
	teen := &domain.Teen{ID: teenID, Username: "sara_81", InviteCode: "DIGI-STABLE"}

	d.teenRepo.EXPECT().GetByID(ctx, teenID).Return(teen, nil).Times(2)
	d.invRepo.EXPECT().Upsert(ctx, gomock.Any()).Return(nil).Times(2)
	d.feed.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(2)

	first, err := d.svc.Send(ctx, teenID, "09123456789")
	require.NoError(t, err)
	second, err := d.svc.Send(ctx, teenID, "09351112233")
	require.NoError(t, err)

	assert.Equal(t, first.InviteCode, second.InviteCode, "invite code must survive re-sends")
}
