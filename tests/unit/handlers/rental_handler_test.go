package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpapi "anacarlita-backend/internal/api/http"
	"anacarlita-backend/internal/domain"
	"anacarlita-backend/internal/repository"
	"anacarlita-backend/internal/service"
	"anacarlita-backend/internal/utils"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestRouter(bookingSvc service.BookingService, rentalSvc service.RentalService, checkoutSvc service.CheckoutService) http.Handler {
	return httpapi.NewRouter(httpapi.RouterConfig{
		RentalService:   rentalSvc,
		BookingService:  bookingSvc,
		CheckoutService: checkoutSvc,
	})
}

func TestRentalHandler_GetQuote(t *testing.T) {
	bookingSvc := new(MockBookingService)
	router := newTestRouter(bookingSvc, new(MockRentalService), new(MockCheckoutService))

	t.Run("Success", func(t *testing.T) {
		bookingSvc.ExpectedCalls = nil
		bookingSvc.On("QuoteBooking", mock.Anything, "item-1", day(2026, time.June, 2), day(2026, time.June, 4)).
			Return(&utils.Quote{DurationDays: 2, TotalPriceCents: 5000}, true, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/rentals/item-1/quote?start=2026-06-02&end=2026-06-04", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var body struct {
			Quote struct {
				DurationDays    int   `json:"duration_days"`
				TotalPriceCents int64 `json:"total_price_cents"`
			} `json:"quote"`
			Available bool `json:"available"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.Available)
		assert.Equal(t, 2, body.Quote.DurationDays)
		assert.Equal(t, int64(5000), body.Quote.TotalPriceCents)
	})

	t.Run("Malformed date", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/rentals/item-1/quote?start=junk&end=2026-06-04", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Unknown item maps to 404", func(t *testing.T) {
		bookingSvc.ExpectedCalls = nil
		bookingSvc.On("QuoteBooking", mock.Anything, "missing", mock.Anything, mock.Anything).
			Return(nil, false, repository.ErrNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/rentals/missing/quote?start=2026-06-02&end=2026-06-04", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRentalHandler_GetAvailability(t *testing.T) {
	bookingSvc := new(MockBookingService)
	router := newTestRouter(bookingSvc, new(MockRentalService), new(MockCheckoutService))

	t.Run("Single date", func(t *testing.T) {
		bookingSvc.ExpectedCalls = nil
		bookingSvc.On("CheckDateAvailability", mock.Anything, "item-1", day(2026, time.June, 15)).
			Return(false, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/rentals/item-1/availability?date=2026-06-15", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var body map[string]bool
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.False(t, body["available"])
	})

	t.Run("Range", func(t *testing.T) {
		bookingSvc.ExpectedCalls = nil
		bookingSvc.On("CheckRangeAvailability", mock.Anything, "item-1", day(2026, time.June, 2), day(2026, time.June, 4)).
			Return(true, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/rentals/item-1/availability?start=2026-06-02&end=2026-06-04", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var body map[string]bool
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body["available"])
	})

	t.Run("Missing parameters", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/rentals/item-1/availability", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRentalHandler_GetListing(t *testing.T) {
	rentalSvc := new(MockRentalService)
	router := newTestRouter(new(MockBookingService), rentalSvc, new(MockCheckoutService))

	item := &domain.RentalItem{ID: "item-1", Title: "Round Table", PricePerDayCents: 2500}
	rentalSvc.On("GetListing", mock.Anything, "item-1").Return(item, []domain.ListingImage{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/rentals/item-1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Round Table")
}

func TestWebhookHandler_Checkout(t *testing.T) {
	t.Run("Completed session confirms booking", func(t *testing.T) {
		bookingSvc := new(MockBookingService)
		checkoutSvc := new(MockCheckoutService)
		router := newTestRouter(bookingSvc, new(MockRentalService), checkoutSvc)

		checkoutSvc.On("ParseWebhookEvent", mock.Anything, "sig").Return(&service.CheckoutEvent{
			Type:            service.CheckoutEventCompleted,
			SessionID:       "cs_123",
			PaymentIntentID: "pi_456",
		}, nil)
		bookingSvc.On("ConfirmBookingFromCheckout", mock.Anything, "cs_123", "pi_456").
			Return(&domain.Booking{ID: "booking-1", Status: domain.BookingStatusConfirmed}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/webhooks/checkout", nil)
		req.Header.Set("Stripe-Signature", "sig")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		bookingSvc.AssertCalled(t, "ConfirmBookingFromCheckout", mock.Anything, "cs_123", "pi_456")
	})

	t.Run("Bad signature rejected", func(t *testing.T) {
		bookingSvc := new(MockBookingService)
		checkoutSvc := new(MockCheckoutService)
		router := newTestRouter(bookingSvc, new(MockRentalService), checkoutSvc)

		checkoutSvc.On("ParseWebhookEvent", mock.Anything, mock.Anything).
			Return(nil, errors.New("signature mismatch"))

		req := httptest.NewRequest(http.MethodPost, "/api/webhooks/checkout", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		bookingSvc.AssertNotCalled(t, "ConfirmBookingFromCheckout", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Ignored event acknowledged", func(t *testing.T) {
		bookingSvc := new(MockBookingService)
		checkoutSvc := new(MockCheckoutService)
		router := newTestRouter(bookingSvc, new(MockRentalService), checkoutSvc)

		checkoutSvc.On("ParseWebhookEvent", mock.Anything, mock.Anything).
			Return(&service.CheckoutEvent{Type: service.CheckoutEventIgnored}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/webhooks/checkout", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
