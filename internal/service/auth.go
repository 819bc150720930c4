package service

import (
	"context"
	"fmt"

	"anacarlita-backend/internal/domain"
	"anacarlita-backend/internal/repository"
	"anacarlita-backend/internal/security"
)

type authService struct {
	verifier     IdentityVerifier
	userRepo     repository.UserRepository
	tokenManager security.TokenManager
}

func NewAuthService(verifier IdentityVerifier, userRepo repository.UserRepository, tokenManager security.TokenManager) AuthService {
	return &authService{
		verifier:     verifier,
		userRepo:     userRepo,
		tokenManager: tokenManager,
	}
}

func (s *authService) ExchangeIDToken(ctx context.Context, idToken string) (*domain.User, string, error) {
	identity, err := s.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		ID:          identity.UID,
		Email:       identity.Email,
		DisplayName: identity.Name,
		PhotoURL:    identity.PhotoURL,
	}
	if err := s.userRepo.Upsert(ctx, user); err != nil {
		return nil, "", fmt.Errorf("failed to store user profile: %w", err)
	}

	token, err := s.tokenManager.GenerateSessionToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue session token: %w", err)
	}

	return user, token, nil
}

func (s *authService) ValidateSession(token string) (*security.SessionClaims, error) {
	return s.tokenManager.ValidateToken(token)
}
