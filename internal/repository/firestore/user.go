package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"anacarlita-backend/internal/domain"
	"anacarlita-backend/internal/repository"
)

type userRepository struct {
	client *firestore.Client
}

func NewUserRepository(client *firestore.Client) repository.UserRepository {
	return &userRepository{client: client}
}

// Upsert writes the profile under the identity-provider UID, preserving
// CreatedOn and Role across refreshes.
func (r *userRepository) Upsert(ctx context.Context, user *domain.User) error {
	existing, err := r.GetByID(ctx, user.ID)
	switch {
	case err == nil:
		user.CreatedOn = existing.CreatedOn
		if user.Role == "" {
			user.Role = existing.Role
		}
	case err == repository.ErrNotFound:
		user.CreatedOn = time.Now().UTC()
		if user.Role == "" {
			user.Role = domain.UserRoleUser
		}
	default:
		return err
	}
	user.UpdatedOn = time.Now().UTC()
	_, err = r.client.Collection(collUsers).Doc(user.ID).Set(ctx, user)
	return mapErr(err)
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	doc, err := r.client.Collection(collUsers).Doc(id).Get(ctx)
	if err != nil {
		return nil, mapErr(err)
	}
	user := &domain.User{}
	if err := doc.DataTo(user); err != nil {
		return nil, err
	}
	user.ID = doc.Ref.ID
	return user, nil
}
