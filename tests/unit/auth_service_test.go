package unit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"anacarlita-backend/internal/domain"
	"anacarlita-backend/internal/security"
	"anacarlita-backend/internal/service"
)

const testJWTSecret = "0123456789abcdef0123456789abcdef"

func TestAuthService_ExchangeIDToken(t *testing.T) {
	ctx := context.Background()
	tokenManager := security.NewTokenManager(testJWTSecret, time.Hour)

	identity := &service.Identity{
		UID:      "uid-1",
		Email:    "maria@example.com",
		Name:     "Maria",
		PhotoURL: "https://example.com/photo.jpg",
	}

	t.Run("Success issues a validatable session token", func(t *testing.T) {
		verifier := new(MockIdentityVerifier)
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(verifier, userRepo, tokenManager)

		verifier.On("VerifyIDToken", ctx, "id-token").Return(identity, nil)
		userRepo.On("Upsert", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.ID == "uid-1" && u.Email == "maria@example.com"
		})).Return(nil)

		user, token, err := svc.ExchangeIDToken(ctx, "id-token")
		assert.NoError(t, err)
		assert.Equal(t, "uid-1", user.ID)
		assert.NotEmpty(t, token)

		claims, err := svc.ValidateSession(token)
		assert.NoError(t, err)
		assert.Equal(t, "uid-1", claims.UID)
		assert.Equal(t, "maria@example.com", claims.Email)
	})

	t.Run("Provider rejection propagates", func(t *testing.T) {
		verifier := new(MockIdentityVerifier)
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(verifier, userRepo, tokenManager)

		verifier.On("VerifyIDToken", ctx, "bad-token").Return(nil, errors.New("token expired"))

		_, _, err := svc.ExchangeIDToken(ctx, "bad-token")
		assert.Error(t, err)
		userRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("Profile store failure propagates", func(t *testing.T) {
		verifier := new(MockIdentityVerifier)
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(verifier, userRepo, tokenManager)

		verifier.On("VerifyIDToken", ctx, "id-token").Return(identity, nil)
		userRepo.On("Upsert", ctx, mock.Anything).Return(errors.New("write failed"))

		_, _, err := svc.ExchangeIDToken(ctx, "id-token")
		assert.Error(t, err)
	})
}

func TestAuthService_ValidateSession(t *testing.T) {
	tokenManager := security.NewTokenManager(testJWTSecret, time.Hour)
	svc := service.NewAuthService(new(MockIdentityVerifier), new(MockUserRepo), tokenManager)

	_, err := svc.ValidateSession("not-a-token")
	assert.Error(t, err)
}
