package repository

import (
	"context"
	"errors"
	"time"

	"anacarlita-backend/internal/domain"
)

// ErrNotFound is returned by every repository when the requested document
// does not exist.
var ErrNotFound = errors.New("not found")

type UserRepository interface {
	Upsert(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type RentalItemRepository interface {
	Create(ctx context.Context, item *domain.RentalItem) error
	GetByID(ctx context.Context, id string) (*domain.RentalItem, error)
	Update(ctx context.Context, item *domain.RentalItem) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, category string, page, pageSize int) ([]domain.RentalItem, error)
	ListByOwner(ctx context.Context, ownerID string, page, pageSize int) ([]domain.RentalItem, error)
	// AddExcludedDates carves booked calendar days out of the item's
	// availability. Idempotent: days already excluded stay excluded once.
	AddExcludedDates(ctx context.Context, id string, dates []time.Time) error
	SetStatus(ctx context.Context, id string, status domain.RentalItemStatus) error

	// Listing images
	CreateImage(ctx context.Context, image *domain.ListingImage) error
	GetImageByID(ctx context.Context, imageID string) (*domain.ListingImage, error)
	UpdateImage(ctx context.Context, image *domain.ListingImage) error
	GetImages(ctx context.Context, itemID string) ([]domain.ListingImage, error)
}

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByCheckoutSessionID(ctx context.Context, sessionID string) (*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
	ListByUser(ctx context.Context, userID string, page, pageSize int) ([]domain.Booking, error)
	ListByItem(ctx context.Context, itemID string) ([]domain.Booking, error)
	ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]domain.Booking, error)
	ListConfirmedEndedBefore(ctx context.Context, cutoff time.Time) ([]domain.Booking, error)
	ListConfirmedStartingOn(ctx context.Context, day time.Time) ([]domain.Booking, error)
}

type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	Update(ctx context.Context, event *domain.Event) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, page, pageSize int) ([]domain.Event, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]domain.Event, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID string, page, pageSize int) ([]domain.Notification, error)
	MarkAsRead(ctx context.Context, id, userID string) error
}
