package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTTokenService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTTokenService("test-secret-key", time.Hour, "digiteen-wallet")
	teenID := uuid.New()

	token, expiry, err := svc.Generate(teenID, "sara_81")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiry, 5*time.Second)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, teenID, claims.TeenID)
	assert.Equal(t, "sara_81", claims.Username)
}

func TestJWTTokenService_Validate_WrongSecret(t *testing.T) {
	svc := NewJWTTokenService("secret-a", time.Hour, "digiteen-wallet")
	other := NewJWTTokenService("secret-b", time.Hour, "digiteen-wallet")

	token, _, err := svc.Generate(uuid.New(), "sara_81")
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.Error(t, err)
}

func TestJWTTokenService_Validate_Expired(t *testing.T) {
	svc := NewJWTTokenService("test-secret-key", -time.Minute, "digiteen-wallet")

	token, _, err := svc.Generate(uuid.New(), "sara_81")
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
}

func TestJWTTokenService_Validate_Garbage(t *testing.T) {
	svc := NewJWTTokenService("test-secret-key", time.Hour, "digiteen-wallet")

	_, err := svc.Validate("not.a.jwt")
	assert.Error(t, err)
}
