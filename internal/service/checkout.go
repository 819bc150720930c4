package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
	"github.com/stripe/stripe-go/v82/webhook"

	"anacarlita-backend/internal/domain"
	"anacarlita-backend/internal/logger"
)

type checkoutService struct {
	api           *client.API
	webhookSecret string
	successURL    string
	cancelURL     string
}

func NewCheckoutService(secretKey, webhookSecret, successURL, cancelURL string) CheckoutService {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &checkoutService{
		api:           api,
		webhookSecret: webhookSecret,
		successURL:    successURL,
		cancelURL:     cancelURL,
	}
}

// CreateProduct registers a listing with the checkout provider so it has a
// stable product identity across bookings.
func (s *checkoutService) CreateProduct(ctx context.Context, title, description string, pricePerDayCents int64) (string, string, error) {
	logger.ExternalServiceCall("checkout", "CreateProduct", "title", title)
	product, err := s.api.Products.New(&stripe.ProductParams{
		Params:      stripe.Params{Context: ctx},
		Name:        stripe.String(title),
		Description: stripe.String(description),
	})
	if err != nil {
		logger.ExternalServiceResult("checkout", "CreateProduct", err)
		return "", "", fmt.Errorf("failed to create checkout product: %w", err)
	}

	price, err := s.api.Prices.New(&stripe.PriceParams{
		Params:     stripe.Params{Context: ctx},
		Product:    stripe.String(product.ID),
		UnitAmount: stripe.Int64(pricePerDayCents),
		Currency:   stripe.String(string(stripe.CurrencyUSD)),
	})
	logger.ExternalServiceResult("checkout", "CreateProduct", err, "product_id", product.ID)
	if err != nil {
		return "", "", fmt.Errorf("failed to create checkout price: %w", err)
	}

	return product.ID, price.ID, nil
}

// CreateSession opens a checkout session for the booking's snapshotted
// total. The amount is the server-computed price; nothing client-supplied
// ever reaches this call.
func (s *checkoutService) CreateSession(ctx context.Context, booking *domain.Booking, item *domain.RentalItem, customerEmail string) (string, string, error) {
	params := &stripe.CheckoutSessionParams{
		Params: stripe.Params{Context: ctx},
		Mode:   stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(string(stripe.CurrencyUSD)),
					UnitAmount: stripe.Int64(booking.TotalPriceCents),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(fmt.Sprintf("%s (%d day rental)", item.Title, booking.DurationDays)),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:    stripe.String(s.successURL),
		CancelURL:     stripe.String(s.cancelURL),
		CustomerEmail: stripe.String(customerEmail),
	}
	params.AddMetadata("bookingId", booking.ID)
	params.AddMetadata("rentalItemId", item.ID)
	params.AddMetadata("startDate", booking.StartDate.Format("2006-01-02"))
	params.AddMetadata("endDate", booking.EndDate.Format("2006-01-02"))

	logger.ExternalServiceCall("checkout", "CreateSession", "booking_id", booking.ID, "amount_cents", booking.TotalPriceCents)
	session, err := s.api.CheckoutSessions.New(params)
	logger.ExternalServiceResult("checkout", "CreateSession", err, "booking_id", booking.ID)
	if err != nil {
		return "", "", fmt.Errorf("failed to create checkout session: %w", err)
	}

	return session.ID, session.URL, nil
}

// ParseWebhookEvent verifies the webhook signature and maps the provider
// event onto the neutral CheckoutEvent the booking service consumes.
func (s *checkoutService) ParseWebhookEvent(payload []byte, signature string) (*CheckoutEvent, error) {
	event, err := webhook.ConstructEvent(payload, signature, s.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("webhook signature verification failed: %w", err)
	}

	switch event.Type {
	case "checkout.session.completed", "checkout.session.expired":
	default:
		return &CheckoutEvent{Type: CheckoutEventIgnored}, nil
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return nil, fmt.Errorf("failed to parse checkout session payload: %w", err)
	}

	out := &CheckoutEvent{
		SessionID: session.ID,
		BookingID: session.Metadata["bookingId"],
	}
	if session.PaymentIntent != nil {
		out.PaymentIntentID = session.PaymentIntent.ID
	}

	if event.Type == "checkout.session.completed" {
		out.Type = CheckoutEventCompleted
	} else {
		out.Type = CheckoutEventExpired
	}
	return out, nil
}
