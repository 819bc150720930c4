package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"anacarlita-backend/internal/service"
	"anacarlita-backend/internal/storage"
)

// RouterConfig carries everything the HTTP surface needs.
type RouterConfig struct {
	AuthService         service.AuthService
	RentalService       service.RentalService
	BookingService      service.BookingService
	EventService        service.EventService
	ContactService      service.ContactService
	NotificationService service.NotificationService
	ImageService        service.ImageStorageService
	CheckoutService     service.CheckoutService

	// MockStorage enables the local-development upload endpoints when the
	// hosted bucket is not configured.
	MockStorage *storage.MockStorageService
}

// NewRouter builds the full route table with middleware applied.
func NewRouter(cfg RouterConfig) *mux.Router {
	authHandler := NewAuthHandler(cfg.AuthService)
	rentalHandler := NewRentalHandler(cfg.RentalService, cfg.BookingService, cfg.ImageService)
	bookingHandler := NewBookingHandler(cfg.BookingService)
	eventHandler := NewEventHandler(cfg.EventService)
	contactHandler := NewContactHandler(cfg.ContactService)
	notificationHandler := NewNotificationHandler(cfg.NotificationService)
	webhookHandler := NewWebhookHandler(cfg.CheckoutService, cfg.BookingService)
	authMw := NewAuthMiddleware(cfg.AuthService)

	r := mux.NewRouter()
	r.Use(RecoveryMiddleware, LoggingMiddleware)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// Public routes.
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/auth/session", authHandler.CreateSession).Methods(http.MethodPost)
	api.HandleFunc("/auth/session", authHandler.DeleteSession).Methods(http.MethodDelete)

	api.HandleFunc("/rentals", rentalHandler.ListListings).Methods(http.MethodGet)
	api.HandleFunc("/rentals/categories", rentalHandler.ListCategories).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id}", rentalHandler.GetListing).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id}/quote", rentalHandler.GetQuote).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id}/availability", rentalHandler.GetAvailability).Methods(http.MethodGet)
	api.HandleFunc("/images/{imageId}/url", rentalHandler.GetImageDownloadURL).Methods(http.MethodGet)

	api.HandleFunc("/events", eventHandler.ListEvents).Methods(http.MethodGet)
	api.HandleFunc("/events/{id}", eventHandler.GetEvent).Methods(http.MethodGet)

	api.HandleFunc("/contact", contactHandler.SubmitContactForm).Methods(http.MethodPost)
	api.HandleFunc("/event-requests", contactHandler.SubmitEventRequest).Methods(http.MethodPost)

	api.HandleFunc("/webhooks/checkout", webhookHandler.HandleCheckoutWebhook).Methods(http.MethodPost)

	// Authenticated routes.
	authed := api.NewRoute().Subrouter()
	authed.Use(authMw.RequireAuth)
	authed.HandleFunc("/rentals", rentalHandler.CreateListing).Methods(http.MethodPost)
	authed.HandleFunc("/my/rentals", rentalHandler.ListMyListings).Methods(http.MethodGet)
	authed.HandleFunc("/rentals/{id}", rentalHandler.UpdateListing).Methods(http.MethodPut)
	authed.HandleFunc("/rentals/{id}", rentalHandler.DeleteListing).Methods(http.MethodDelete)
	authed.HandleFunc("/rentals/{id}/images", rentalHandler.RequestImageUpload).Methods(http.MethodPost)
	authed.HandleFunc("/images/{imageId}/confirm", rentalHandler.ConfirmImageUpload).Methods(http.MethodPost)
	authed.HandleFunc("/images/{imageId}", rentalHandler.DeleteImage).Methods(http.MethodDelete)

	authed.HandleFunc("/bookings", bookingHandler.CreateBooking).Methods(http.MethodPost)
	authed.HandleFunc("/bookings", bookingHandler.ListMyBookings).Methods(http.MethodGet)
	authed.HandleFunc("/bookings/{id}", bookingHandler.GetBooking).Methods(http.MethodGet)
	authed.HandleFunc("/bookings/{id}/cancel", bookingHandler.CancelBooking).Methods(http.MethodPost)

	authed.HandleFunc("/notifications", notificationHandler.ListNotifications).Methods(http.MethodGet)
	authed.HandleFunc("/notifications/{id}/read", notificationHandler.MarkAsRead).Methods(http.MethodPost)

	// Admin routes: event management lives behind the admin role.
	admin := api.NewRoute().Subrouter()
	admin.Use(authMw.RequireAuth, authMw.RequireAdmin)
	admin.HandleFunc("/events", eventHandler.CreateEvent).Methods(http.MethodPost)
	admin.HandleFunc("/events/{id}", eventHandler.UpdateEvent).Methods(http.MethodPut)
	admin.HandleFunc("/events/{id}", eventHandler.DeleteEvent).Methods(http.MethodDelete)

	if cfg.MockStorage != nil {
		RegisterMockStorageRoutes(r, cfg.MockStorage)
	}

	return r
}
