package service

import (
	"context"
	"errors"
	"time"

	"anacarlita-backend/internal/domain"
	"anacarlita-backend/internal/security"
	"anacarlita-backend/internal/utils"
)

var (
	ErrForbidden             = errors.New("forbidden")
	ErrInvalidInput          = errors.New("invalid input")
	ErrInvalidDateRange      = errors.New("invalid date range")
	ErrDatesUnavailable      = errors.New("requested dates are not available")
	ErrItemNotBookable       = errors.New("item is not open for booking")
	ErrBookingNotCancellable = errors.New("only pending bookings can be cancelled")
)

type AuthService interface {
	// ExchangeIDToken verifies an identity-provider ID token, refreshes the
	// stored profile and issues a session token for the cookie.
	ExchangeIDToken(ctx context.Context, idToken string) (*domain.User, string, error)
	ValidateSession(token string) (*security.SessionClaims, error)
}

type RentalService interface {
	CreateListing(ctx context.Context, ownerID string, item *domain.RentalItem) error
	GetListing(ctx context.Context, id string) (*domain.RentalItem, []domain.ListingImage, error)
	UpdateListing(ctx context.Context, ownerID string, item *domain.RentalItem) error
	DeleteListing(ctx context.Context, ownerID, id string) error
	ListListings(ctx context.Context, category string, page, pageSize int) ([]domain.RentalItem, error)
	ListMyListings(ctx context.Context, ownerID string, page, pageSize int) ([]domain.RentalItem, error)
	ListCategories(ctx context.Context) []string
}

type BookingService interface {
	// QuoteBooking prices a candidate range without side effects. The same
	// pure calculation backs the calendar UI and the pre-charge re-check.
	QuoteBooking(ctx context.Context, itemID string, start, end time.Time) (*utils.Quote, bool, error)
	CheckDateAvailability(ctx context.Context, itemID string, date time.Time) (bool, error)
	CheckRangeAvailability(ctx context.Context, itemID string, start, end time.Time) (bool, error)
	CreateBooking(ctx context.Context, userID, itemID string, start, end time.Time, notes string) (*domain.Booking, string, error)
	ConfirmBookingFromCheckout(ctx context.Context, sessionID, paymentIntentID string) (*domain.Booking, error)
	ExpireBookingFromCheckout(ctx context.Context, sessionID string) error
	CancelBooking(ctx context.Context, userID, bookingID string) (*domain.Booking, error)
	GetBooking(ctx context.Context, userID, bookingID string) (*domain.Booking, error)
	ListMyBookings(ctx context.Context, userID string, page, pageSize int) ([]domain.Booking, error)
}

type EventService interface {
	CreateEvent(ctx context.Context, event *domain.Event) error
	UpdateEvent(ctx context.Context, event *domain.Event) error
	DeleteEvent(ctx context.Context, id string) error
	GetEvent(ctx context.Context, id string) (*domain.Event, error)
	ListEvents(ctx context.Context, page, pageSize int) ([]domain.Event, error)
	ListEventsForMonth(ctx context.Context, year int, month time.Month) ([]domain.Event, error)
}

type ContactService interface {
	SubmitContactForm(ctx context.Context, form *domain.ContactForm) error
	SubmitEventRequest(ctx context.Context, req *domain.EventRequest) error
}

type NotificationService interface {
	GetNotifications(ctx context.Context, userID string, page, pageSize int) ([]domain.Notification, error)
	MarkAsRead(ctx context.Context, userID, notificationID string) error
}

type ImageStorageService interface {
	GetUploadURL(ctx context.Context, userID, itemID, filename, contentType string) (*domain.ListingImage, string, error)
	ConfirmImageUpload(ctx context.Context, userID, imageID string) (*domain.ListingImage, error)
	GetDownloadURL(ctx context.Context, imageID string) (string, error)
	DeleteImage(ctx context.Context, userID, imageID string) error
}

// EmailService is the notifier collaborator: fire-and-forget from the
// caller's perspective, every message goes out through the SMTP relay.
type EmailService interface {
	SendEventNotification(ctx context.Context, event *domain.Event) error
	SendBookingConfirmation(ctx context.Context, recipient string, booking *domain.Booking, itemTitle string) error
	SendBookingReminder(ctx context.Context, recipient string, booking *domain.Booking, itemTitle string) error
	SendContactFormNotification(ctx context.Context, form *domain.ContactForm) error
	SendEventRequestNotification(ctx context.Context, req *domain.EventRequest) error
	SendEventDigest(ctx context.Context, events []domain.Event) error
}

// CheckoutEventType classifies webhook callbacks from the payment provider.
type CheckoutEventType string

const (
	CheckoutEventCompleted CheckoutEventType = "completed"
	CheckoutEventExpired   CheckoutEventType = "expired"
	CheckoutEventIgnored   CheckoutEventType = "ignored"
)

// CheckoutEvent is the provider-neutral view of a webhook callback.
type CheckoutEvent struct {
	Type            CheckoutEventType
	SessionID       string
	PaymentIntentID string
	BookingID       string
}

// CheckoutService is the payment collaborator. It only ever receives the
// server-computed total; it never prices anything itself.
type CheckoutService interface {
	CreateProduct(ctx context.Context, title, description string, pricePerDayCents int64) (productID, priceID string, err error)
	CreateSession(ctx context.Context, booking *domain.Booking, item *domain.RentalItem, customerEmail string) (sessionID, sessionURL string, err error)
	ParseWebhookEvent(payload []byte, signature string) (*CheckoutEvent, error)
}

// Identity is the verified result of an identity-provider ID token.
type Identity struct {
	UID      string
	Email    string
	Name     string
	PhotoURL string
}

// IdentityVerifier wraps the hosted identity provider's token check so
// the auth service and its tests never touch the live service.
type IdentityVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*Identity, error)
}
