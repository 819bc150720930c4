package unit

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"anacarlita-backend/internal/domain"
	"anacarlita-backend/internal/service"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Upsert(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockRentalItemRepo
type MockRentalItemRepo struct {
	mock.Mock
}

func (m *MockRentalItemRepo) Create(ctx context.Context, item *domain.RentalItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockRentalItemRepo) GetByID(ctx context.Context, id string) (*domain.RentalItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalItem), args.Error(1)
}
func (m *MockRentalItemRepo) Update(ctx context.Context, item *domain.RentalItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockRentalItemRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockRentalItemRepo) List(ctx context.Context, category string, page, pageSize int) ([]domain.RentalItem, error) {
	args := m.Called(ctx, category, page, pageSize)
	return args.Get(0).([]domain.RentalItem), args.Error(1)
}
func (m *MockRentalItemRepo) ListByOwner(ctx context.Context, ownerID string, page, pageSize int) ([]domain.RentalItem, error) {
	args := m.Called(ctx, ownerID, page, pageSize)
	return args.Get(0).([]domain.RentalItem), args.Error(1)
}
func (m *MockRentalItemRepo) AddExcludedDates(ctx context.Context, id string, dates []time.Time) error {
	args := m.Called(ctx, id, dates)
	return args.Error(0)
}
func (m *MockRentalItemRepo) SetStatus(ctx context.Context, id string, status domain.RentalItemStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockRentalItemRepo) CreateImage(ctx context.Context, image *domain.ListingImage) error {
	args := m.Called(ctx, image)
	return args.Error(0)
}
func (m *MockRentalItemRepo) GetImageByID(ctx context.Context, imageID string) (*domain.ListingImage, error) {
	args := m.Called(ctx, imageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ListingImage), args.Error(1)
}
func (m *MockRentalItemRepo) UpdateImage(ctx context.Context, image *domain.ListingImage) error {
	args := m.Called(ctx, image)
	return args.Error(0)
}
func (m *MockRentalItemRepo) GetImages(ctx context.Context, itemID string) ([]domain.ListingImage, error) {
	args := m.Called(ctx, itemID)
	return args.Get(0).([]domain.ListingImage), args.Error(1)
}

// MockBookingRepo
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}
func (m *MockBookingRepo) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) GetByCheckoutSessionID(ctx context.Context, sessionID string) (*domain.Booking, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) Update(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}
func (m *MockBookingRepo) ListByUser(ctx context.Context, userID string, page, pageSize int) ([]domain.Booking, error) {
	args := m.Called(ctx, userID, page, pageSize)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListByItem(ctx context.Context, itemID string) ([]domain.Booking, error) {
	args := m.Called(ctx, itemID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListConfirmedEndedBefore(ctx context.Context, cutoff time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListConfirmedStartingOn(ctx context.Context, day time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, day)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

// MockEventRepo
type MockEventRepo struct {
	mock.Mock
}

func (m *MockEventRepo) Create(ctx context.Context, event *domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
func (m *MockEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}
func (m *MockEventRepo) Update(ctx context.Context, event *domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
func (m *MockEventRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockEventRepo) List(ctx context.Context, page, pageSize int) ([]domain.Event, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Event), args.Error(1)
}
func (m *MockEventRepo) ListBetween(ctx context.Context, from, to time.Time) ([]domain.Event, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]domain.Event), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, userID string, page, pageSize int) ([]domain.Notification, error) {
	args := m.Called(ctx, userID, page, pageSize)
	return args.Get(0).([]domain.Notification), args.Error(1)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, userID string) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendEventNotification(ctx context.Context, event *domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
func (m *MockEmailService) SendBookingConfirmation(ctx context.Context, recipient string, booking *domain.Booking, itemTitle string) error {
	args := m.Called(ctx, recipient, booking, itemTitle)
	return args.Error(0)
}
func (m *MockEmailService) SendBookingReminder(ctx context.Context, recipient string, booking *domain.Booking, itemTitle string) error {
	args := m.Called(ctx, recipient, booking, itemTitle)
	return args.Error(0)
}
func (m *MockEmailService) SendContactFormNotification(ctx context.Context, form *domain.ContactForm) error {
	args := m.Called(ctx, form)
	return args.Error(0)
}
func (m *MockEmailService) SendEventRequestNotification(ctx context.Context, req *domain.EventRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockEmailService) SendEventDigest(ctx context.Context, events []domain.Event) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

// MockCheckoutService
type MockCheckoutService struct {
	mock.Mock
}

func (m *MockCheckoutService) CreateProduct(ctx context.Context, title, description string, pricePerDayCents int64) (string, string, error) {
	args := m.Called(ctx, title, description, pricePerDayCents)
	return args.String(0), args.String(1), args.Error(2)
}
func (m *MockCheckoutService) CreateSession(ctx context.Context, booking *domain.Booking, item *domain.RentalItem, customerEmail string) (string, string, error) {
	args := m.Called(ctx, booking, item, customerEmail)
	return args.String(0), args.String(1), args.Error(2)
}
func (m *MockCheckoutService) ParseWebhookEvent(payload []byte, signature string) (*service.CheckoutEvent, error) {
	args := m.Called(payload, signature)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CheckoutEvent), args.Error(1)
}

// MockIdentityVerifier
type MockIdentityVerifier struct {
	mock.Mock
}

func (m *MockIdentityVerifier) VerifyIDToken(ctx context.Context, idToken string) (*service.Identity, error) {
	args := m.Called(ctx, idToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Identity), args.Error(1)
}
