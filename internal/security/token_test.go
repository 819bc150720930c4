package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"anacarlita-backend/internal/domain"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestSessionTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)

	user := &domain.User{
		ID:    "uid-123",
		Email: "renter@example.com",
		Role:  domain.UserRoleUser,
	}

	token, err := tm.GenerateSessionToken(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := tm.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "uid-123", claims.UID)
	assert.Equal(t, "renter@example.com", claims.Email)
	assert.Equal(t, domain.UserRoleUser, claims.Role)
}

func TestValidateToken_Expired(t *testing.T) {
	tm := NewTokenManager(testSecret, -time.Minute)

	token, err := tm.GenerateSessionToken(&domain.User{ID: "uid-123"})
	assert.NoError(t, err)

	_, err = tm.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)
	other := NewTokenManager("ffffffffffffffffffffffffffffffff", time.Hour)

	token, err := tm.GenerateSessionToken(&domain.User{ID: "uid-123"})
	assert.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)
	_, err := tm.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
