// Package firestore implements the repository interfaces against the
// hosted document store. Collections map one-to-one to the site's data:
// rentalItems, bookings, events, notifications, users.
package firestore

import (
	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"anacarlita-backend/internal/repository"
)

const (
	collRentalItems   = "rentalItems"
	collListingImages = "listingImages"
	collBookings      = "bookings"
	collEvents        = "events"
	collNotifications = "notifications"
	collUsers         = "users"
)

// Store bundles all repositories backed by a single Firestore client.
type Store struct {
	UserRepository         repository.UserRepository
	RentalItemRepository   repository.RentalItemRepository
	BookingRepository      repository.BookingRepository
	EventRepository        repository.EventRepository
	NotificationRepository repository.NotificationRepository
}

// NewStore creates repository implementations sharing one client.
func NewStore(client *firestore.Client) *Store {
	return &Store{
		UserRepository:         NewUserRepository(client),
		RentalItemRepository:   NewRentalItemRepository(client),
		BookingRepository:      NewBookingRepository(client),
		EventRepository:        NewEventRepository(client),
		NotificationRepository: NewNotificationRepository(client),
	}
}

// mapErr translates Firestore's gRPC status errors into repository errors.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if status.Code(err) == codes.NotFound {
		return repository.ErrNotFound
	}
	return err
}
