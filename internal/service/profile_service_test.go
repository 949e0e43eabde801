package service

import (
	"context"
	"testing"
	"time"

	"digiteen-wallet/internal/core/domain"
	"digiteen-wallet/internal/core/ports/mocks"
	"digiteen-wallet/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProfileService_GetProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	teenRepo := mocks.NewMockTeenRepository(ctrl)
	cardRepo := mocks.NewMockCardRepository(ctrl)
	svc := NewProfileService(teenRepo, cardRepo)

	ctx := context.Background()
	teenID := uuid.New()
	teen := &domain.Teen{
		ID:         teenID,
		Username:   "sara_81",
		InviteCode: "DIGI-A1B2C3",
		CreatedAt:  time.Now().UTC(),
	}

	teenRepo.EXPECT().GetByID(ctx, teenID).Return(teen, nil)
	cardRepo.EXPECT().GetByTeenID(ctx, teenID).Return(nil, nil)

	profile, err := svc.GetProfile(ctx, teenID)
	require.NoError(t, err)
	assert.Equal(t, "sara_81", profile.Username)
	assert.Equal(t, "DIGI-A1B2C3", profile.InviteCode)
	assert.False(t, profile.HasCard, "no card request means no physical card")
}

func TestProfileService_GetProfile_WithActivatedCard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	teenRepo := mocks.NewMockTeenRepository(ctrl)
	cardRepo := mocks.NewMockCardRepository(ctrl)
	svc := NewProfileService(teenRepo, cardRepo)

	ctx := context.Background()
	teenID := uuid.New()

	teenRepo.EXPECT().GetByID(ctx, teenID).Return(&domain.Teen{ID: teenID, Username: "sara_81"}, nil)
	cardRepo.EXPECT().GetByTeenID(ctx, teenID).Return(&domain.CardRequest{Status: domain.CardStatusActivated}, nil)

	profile, err := svc.GetProfile(ctx, teenID)
	require.NoError(t, err)
	assert.True(t, profile.HasCard)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	teenRepo := mocks.NewMockTeenRepository(ctrl)
	cardRepo := mocks.NewMockCardRepository(ctrl)
	svc := NewProfileService(teenRepo, cardRepo)

	ctx := context.Background()
	teenID := uuid.New()

	teenRepo.EXPECT().GetByID(ctx, teenID).Return(nil, nil)

	_, err := svc.GetProfile(ctx, teenID)
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "LED_002", appErr.Code)
}
