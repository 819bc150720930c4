package service

import (
	"context"
	"fmt"

	firebaseauth "firebase.google.com/go/v4/auth"

	"anacarlita-backend/internal/logger"
)

// firebaseVerifier checks ID tokens against the hosted identity provider.
type firebaseVerifier struct {
	client *firebaseauth.Client
}

func NewFirebaseVerifier(client *firebaseauth.Client) IdentityVerifier {
	return &firebaseVerifier{client: client}
}

func (v *firebaseVerifier) VerifyIDToken(ctx context.Context, idToken string) (*Identity, error) {
	logger.ExternalServiceCall("firebase-auth", "VerifyIDToken")
	token, err := v.client.VerifyIDToken(ctx, idToken)
	logger.ExternalServiceResult("firebase-auth", "VerifyIDToken", err)
	if err != nil {
		return nil, fmt.Errorf("failed to verify ID token: %w", err)
	}

	identity := &Identity{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := token.Claims["name"].(string); ok {
		identity.Name = name
	}
	if picture, ok := token.Claims["picture"].(string); ok {
		identity.PhotoURL = picture
	}
	return identity, nil
}
