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

type bookingRepository struct {
	client *firestore.Client
}

func NewBookingRepository(client *firestore.Client) repository.BookingRepository {
	return &bookingRepository{client: client}
}

func (r *bookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	booking.CreatedOn = now
	booking.UpdatedOn = now
	_, err := r.client.Collection(collBookings).Doc(booking.ID).Set(ctx, booking)
	return mapErr(err)
}

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	doc, err := r.client.Collection(collBookings).Doc(id).Get(ctx)
	if err != nil {
		return nil, mapErr(err)
	}
	booking := &domain.Booking{}
	if err := doc.DataTo(booking); err != nil {
		return nil, err
	}
	booking.ID = doc.Ref.ID
	return booking, nil
}

func (r *bookingRepository) GetByCheckoutSessionID(ctx context.Context, sessionID string) (*domain.Booking, error) {
	it := r.client.Collection(collBookings).
		Where("checkoutSessionId", "==", sessionID).
		Limit(1).
		Documents(ctx)
	defer it.Stop()

	doc, err := it.Next()
	if err == iterator.Done {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, mapErr(err)
	}
	booking := &domain.Booking{}
	if err := doc.DataTo(booking); err != nil {
		return nil, err
	}
	booking.ID = doc.Ref.ID
	return booking, nil
}

func (r *bookingRepository) Update(ctx context.Context, booking *domain.Booking) error {
	booking.UpdatedOn = time.Now().UTC()
	_, err := r.client.Collection(collBookings).Doc(booking.ID).Set(ctx, booking)
	return mapErr(err)
}

func (r *bookingRepository) ListByUser(ctx context.Context, userID string, page, pageSize int) ([]domain.Booking, error) {
	q := r.client.Collection(collBookings).
		Where("userId", "==", userID).
		OrderBy("createdOn", firestore.Desc).
		Offset((page - 1) * pageSize).
		Limit(pageSize)
	return r.collect(q.Documents(ctx))
}

func (r *bookingRepository) ListByItem(ctx context.Context, itemID string) ([]domain.Booking, error) {
	q := r.client.Collection(collBookings).
		Where("rentalItemId", "==", itemID).
		OrderBy("startDate", firestore.Asc)
	return r.collect(q.Documents(ctx))
}

func (r *bookingRepository) ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]domain.Booking, error) {
	q := r.client.Collection(collBookings).
		Where("status", "==", string(domain.BookingStatusPending)).
		Where("createdOn", "<", cutoff)
	return r.collect(q.Documents(ctx))
}

func (r *bookingRepository) ListConfirmedEndedBefore(ctx context.Context, cutoff time.Time) ([]domain.Booking, error) {
	q := r.client.Collection(collBookings).
		Where("status", "==", string(domain.BookingStatusConfirmed)).
		Where("endDate", "<", cutoff)
	return r.collect(q.Documents(ctx))
}

func (r *bookingRepository) ListConfirmedStartingOn(ctx context.Context, day time.Time) ([]domain.Booking, error) {
	// Calendar-day match expressed as a half-open timestamp range.
	q := r.client.Collection(collBookings).
		Where("status", "==", string(domain.BookingStatusConfirmed)).
		Where("startDate", ">=", day).
		Where("startDate", "<", day.AddDate(0, 0, 1))
	return r.collect(q.Documents(ctx))
}

func (r *bookingRepository) collect(it *firestore.DocumentIterator) ([]domain.Booking, error) {
	defer it.Stop()

	var bookings []domain.Booking
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapErr(err)
		}
		var b domain.Booking
		if err := doc.DataTo(&b); err != nil {
			return nil, err
		}
		b.ID = doc.Ref.ID
		bookings = append(bookings, b)
	}
	return bookings, nil
}
