package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
)

type Booking struct {
	ID           string    `json:"id" firestore:"-"`
	RentalItemID string    `json:"rental_item_id" firestore:"rentalItemId"`
	UserID       string    `json:"user_id" firestore:"userId"`
	StartDate    time.Time `json:"start_date" firestore:"startDate"`
	EndDate      time.Time `json:"end_date" firestore:"endDate"`
	// Price snapshot fields, captured when the booking is created. The
	// charge sent to the checkout provider always uses these, never a
	// client-supplied amount.
	DurationDays      int           `json:"duration_days" firestore:"durationDays"`
	TotalPriceCents   int64         `json:"total_price_cents" firestore:"totalPriceCents"`
	Status            BookingStatus `json:"status" firestore:"status"`
	CheckoutSessionID string        `json:"checkout_session_id,omitempty" firestore:"checkoutSessionId"`
	PaymentIntentID   string        `json:"payment_intent_id,omitempty" firestore:"paymentIntentId"`
	Notes             string        `json:"notes,omitempty" firestore:"notes"`
	CreatedOn         time.Time     `json:"created_on" firestore:"createdOn"`
	UpdatedOn         time.Time     `json:"updated_on" firestore:"updatedOn"`
}
