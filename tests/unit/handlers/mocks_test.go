package handlers

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"anacarlita-backend/internal/domain"
	"anacarlita-backend/internal/service"
	"anacarlita-backend/internal/utils"
)

// MockBookingService
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) QuoteBooking(ctx context.Context, itemID string, start, end time.Time) (*utils.Quote, bool, error) {
	args := m.Called(ctx, itemID, start, end)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*utils.Quote), args.Bool(1), args.Error(2)
}
func (m *MockBookingService) CheckDateAvailability(ctx context.Context, itemID string, date time.Time) (bool, error) {
	args := m.Called(ctx, itemID, date)
	return args.Bool(0), args.Error(1)
}
func (m *MockBookingService) CheckRangeAvailability(ctx context.Context, itemID string, start, end time.Time) (bool, error) {
	args := m.Called(ctx, itemID, start, end)
	return args.Bool(0), args.Error(1)
}
func (m *MockBookingService) CreateBooking(ctx context.Context, userID, itemID string, start, end time.Time, notes string) (*domain.Booking, string, error) {
	args := m.Called(ctx, userID, itemID, start, end, notes)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*domain.Booking), args.String(1), args.Error(2)
}
func (m *MockBookingService) ConfirmBookingFromCheckout(ctx context.Context, sessionID, paymentIntentID string) (*domain.Booking, error) {
	args := m.Called(ctx, sessionID, paymentIntentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingService) ExpireBookingFromCheckout(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}
func (m *MockBookingService) CancelBooking(ctx context.Context, userID, bookingID string) (*domain.Booking, error) {
	args := m.Called(ctx, userID, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingService) GetBooking(ctx context.Context, userID, bookingID string) (*domain.Booking, error) {
	args := m.Called(ctx, userID, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingService) ListMyBookings(ctx context.Context, userID string, page, pageSize int) ([]domain.Booking, error) {
	args := m.Called(ctx, userID, page, pageSize)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

// MockRentalService
type MockRentalService struct {
	mock.Mock
}

func (m *MockRentalService) CreateListing(ctx context.Context, ownerID string, item *domain.RentalItem) error {
	args := m.Called(ctx, ownerID, item)
	return args.Error(0)
}
func (m *MockRentalService) GetListing(ctx context.Context, id string) (*domain.RentalItem, []domain.ListingImage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.RentalItem), args.Get(1).([]domain.ListingImage), args.Error(2)
}
func (m *MockRentalService) UpdateListing(ctx context.Context, ownerID string, item *domain.RentalItem) error {
	args := m.Called(ctx, ownerID, item)
	return args.Error(0)
}
func (m *MockRentalService) DeleteListing(ctx context.Context, ownerID, id string) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}
func (m *MockRentalService) ListListings(ctx context.Context, category string, page, pageSize int) ([]domain.RentalItem, error) {
	args := m.Called(ctx, category, page, pageSize)
	return args.Get(0).([]domain.RentalItem), args.Error(1)
}
func (m *MockRentalService) ListMyListings(ctx context.Context, ownerID string, page, pageSize int) ([]domain.RentalItem, error) {
	args := m.Called(ctx, ownerID, page, pageSize)
	return args.Get(0).([]domain.RentalItem), args.Error(1)
}
func (m *MockRentalService) ListCategories(ctx context.Context) []string {
	args := m.Called(ctx)
	return args.Get(0).([]string)
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
