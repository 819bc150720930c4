package http

import (
	"io"
	"net/http"

	"anacarlita-backend/internal/logger"
	"anacarlita-backend/internal/service"
)

// checkout webhook payloads are small; cap reads defensively anyway.
const maxWebhookBody = 64 << 10

type WebhookHandler struct {
	checkoutSvc service.CheckoutService
	bookingSvc  service.BookingService
}

func NewWebhookHandler(checkoutSvc service.CheckoutService, bookingSvc service.BookingService) *WebhookHandler {
	return &WebhookHandler{checkoutSvc: checkoutSvc, bookingSvc: bookingSvc}
}

// HandleCheckoutWebhook receives payment-provider callbacks. Signature
// verification happens before anything else; an unverifiable payload is
// rejected without touching storage.
func (h *WebhookHandler) HandleCheckoutWebhook(w http.ResponseWriter, r *http.Request) {
	log := logger.Get()

	payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "could not read payload"})
		return
	}

	event, err := h.checkoutSvc.ParseWebhookEvent(payload, r.Header.Get("Stripe-Signature"))
	if err != nil {
		log.Warn("rejected checkout webhook", "error", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid webhook payload"})
		return
	}

	switch event.Type {
	case service.CheckoutEventCompleted:
		if _, err := h.bookingSvc.ConfirmBookingFromCheckout(r.Context(), event.SessionID, event.PaymentIntentID); err != nil {
			log.Error("failed to confirm booking from checkout",
				"sessionId", event.SessionID, "error", err)
			// 500 so the provider retries delivery.
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
			return
		}
	case service.CheckoutEventExpired:
		if err := h.bookingSvc.ExpireBookingFromCheckout(r.Context(), event.SessionID); err != nil {
			log.Error("failed to expire booking from checkout",
				"sessionId", event.SessionID, "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
			return
		}
	default:
		// Unhandled event types are acknowledged so the provider stops
		// retrying them.
	}

	writeJSON(w, http.StatusOK, map[string]string{"received": "true"})
}
