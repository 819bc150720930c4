package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"anacarlita-backend/internal/domain"
	"anacarlita-backend/internal/repository"
)

type notificationRepository struct {
	client *firestore.Client
}

func NewNotificationRepository(client *firestore.Client) repository.NotificationRepository {
	return &notificationRepository{client: client}
}

func (r *notificationRepository) Create(ctx context.Context, note *domain.Notification) error {
	if note.ID == "" {
		note.ID = uuid.New().String()
	}
	note.CreatedOn = time.Now().UTC()
	_, err := r.client.Collection(collNotifications).Doc(note.ID).Set(ctx, note)
	return mapErr(err)
}

func (r *notificationRepository) List(ctx context.Context, userID string, page, pageSize int) ([]domain.Notification, error) {
	it := r.client.Collection(collNotifications).
		Where("userId", "==", userID).
		OrderBy("createdOn", firestore.Desc).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Documents(ctx)
	defer it.Stop()

	var notes []domain.Notification
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapErr(err)
		}
		var n domain.Notification
		if err := doc.DataTo(&n); err != nil {
			return nil, err
		}
		n.ID = doc.Ref.ID
		notes = append(notes, n)
	}
	return notes, nil
}

func (r *notificationRepository) MarkAsRead(ctx context.Context, id, userID string) error {
	doc, err := r.client.Collection(collNotifications).Doc(id).Get(ctx)
	if err != nil {
		return mapErr(err)
	}
	var note domain.Notification
	if err := doc.DataTo(&note); err != nil {
		return err
	}
	// Ownership check, a user may only mark their own notifications.
	if note.UserID != userID {
		return repository.ErrNotFound
	}
	_, err = doc.Ref.Update(ctx, []firestore.Update{
		{Path: "read", Value: true},
	})
	return mapErr(err)
}
