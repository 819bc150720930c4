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

type eventRepository struct {
	client *firestore.Client
}

func NewEventRepository(client *firestore.Client) repository.EventRepository {
	return &eventRepository{client: client}
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	event.CreatedOn = now
	event.UpdatedOn = now
	_, err := r.client.Collection(collEvents).Doc(event.ID).Set(ctx, event)
	return mapErr(err)
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	doc, err := r.client.Collection(collEvents).Doc(id).Get(ctx)
	if err != nil {
		return nil, mapErr(err)
	}
	event := &domain.Event{}
	if err := doc.DataTo(event); err != nil {
		return nil, err
	}
	event.ID = doc.Ref.ID
	return event, nil
}

func (r *eventRepository) Update(ctx context.Context, event *domain.Event) error {
	event.UpdatedOn = time.Now().UTC()
	_, err := r.client.Collection(collEvents).Doc(event.ID).Set(ctx, event)
	return mapErr(err)
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(collEvents).Doc(id).Delete(ctx)
	return mapErr(err)
}

func (r *eventRepository) List(ctx context.Context, page, pageSize int) ([]domain.Event, error) {
	q := r.client.Collection(collEvents).
		OrderBy("date", firestore.Asc).
		Offset((page - 1) * pageSize).
		Limit(pageSize)
	return r.collect(q.Documents(ctx))
}

func (r *eventRepository) ListBetween(ctx context.Context, from, to time.Time) ([]domain.Event, error) {
	q := r.client.Collection(collEvents).
		Where("date", ">=", from).
		Where("date", "<", to).
		OrderBy("date", firestore.Asc)
	return r.collect(q.Documents(ctx))
}

func (r *eventRepository) collect(it *firestore.DocumentIterator) ([]domain.Event, error) {
	defer it.Stop()

	var events []domain.Event
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapErr(err)
		}
		var e domain.Event
		if err := doc.DataTo(&e); err != nil {
			return nil, err
		}
		e.ID = doc.Ref.ID
		events = append(events, e)
	}
	return events, nil
}
