package service

import (
	"context"
	"fmt"
	"time"

	"anacarlita-backend/internal/domain"
	"anacarlita-backend/internal/logger"
	"anacarlita-backend/internal/repository"
	"anacarlita-backend/internal/utils"
)

type bookingService struct {
	bookingRepo repository.BookingRepository
	itemRepo    repository.RentalItemRepository
	userRepo    repository.UserRepository
	noteRepo    repository.NotificationRepository
	emailSvc    EmailService
	checkoutSvc CheckoutService
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	itemRepo repository.RentalItemRepository,
	userRepo repository.UserRepository,
	noteRepo repository.NotificationRepository,
	emailSvc EmailService,
	checkoutSvc CheckoutService,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		noteRepo:    noteRepo,
		emailSvc:    emailSvc,
		checkoutSvc: checkoutSvc,
	}
}

func (s *bookingService) QuoteBooking(ctx context.Context, itemID string, start, end time.Time) (*utils.Quote, bool, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, false, err
	}
	quote := utils.BuildQuote(item.PricePerDayCents, start, end)
	available := item.Status == domain.RentalItemStatusAvailable &&
		utils.IsRangeAvailable(item, start, end)
	return &quote, available, nil
}

func (s *bookingService) CheckDateAvailability(ctx context.Context, itemID string, date time.Time) (bool, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return false, err
	}
	return utils.IsDateAvailable(item, date), nil
}

func (s *bookingService) CheckRangeAvailability(ctx context.Context, itemID string, start, end time.Time) (bool, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return false, err
	}
	return utils.IsRangeAvailable(item, start, end), nil
}

// CreateBooking re-validates availability server-side and prices the range
// itself before asking the checkout provider for a session. The client's
// idea of the total is never consulted.
func (s *bookingService) CreateBooking(ctx context.Context, userID, itemID string, start, end time.Time, notes string) (*domain.Booking, string, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, "", err
	}
	if item.Status != domain.RentalItemStatusAvailable {
		return nil, "", ErrItemNotBookable
	}

	startDay := utils.ToCalendarDate(start)
	endDay := utils.ToCalendarDate(end)
	if endDay.Before(startDay) {
		startDay, endDay = endDay, startDay
	}

	if !utils.IsRangeAvailable(item, startDay, endDay) {
		return nil, "", ErrDatesUnavailable
	}

	quote := utils.BuildQuote(item.PricePerDayCents, startDay, endDay)
	// The duration floor guarantees at least one billable day; a zero
	// total can still happen for a free listing and must never reach the
	// checkout provider.
	if quote.DurationDays < 1 || quote.TotalPriceCents <= 0 {
		return nil, "", fmt.Errorf("%w: nothing to charge for this range", ErrInvalidDateRange)
	}

	booking := &domain.Booking{
		RentalItemID:    itemID,
		UserID:          userID,
		StartDate:       startDay,
		EndDate:         endDay,
		DurationDays:    quote.DurationDays,
		TotalPriceCents: quote.TotalPriceCents,
		Status:          domain.BookingStatusPending,
		Notes:           notes,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, "", err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	sessionID, sessionURL, err := s.checkoutSvc.CreateSession(ctx, booking, item, user.Email)
	if err != nil {
		// No session means nothing to pay; cancel the placeholder so the
		// dates do not look contested.
		booking.Status = domain.BookingStatusCancelled
		if updateErr := s.bookingRepo.Update(ctx, booking); updateErr != nil {
			logger.Error("Failed to cancel booking after checkout failure", "booking_id", booking.ID, "error", updateErr)
		}
		return nil, "", err
	}

	booking.CheckoutSessionID = sessionID
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, "", err
	}

	return booking, sessionURL, nil
}

// ConfirmBookingFromCheckout handles the provider's completed-session
// webhook: confirm the booking, carve its days out of the item's
// availability and notify the renter. Idempotent per session.
func (s *bookingService) ConfirmBookingFromCheckout(ctx context.Context, sessionID, paymentIntentID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByCheckoutSessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if booking.Status == domain.BookingStatusConfirmed {
		return booking, nil
	}
	if booking.Status != domain.BookingStatusPending {
		return nil, fmt.Errorf("booking %s is %s, cannot confirm", booking.ID, booking.Status)
	}

	booking.Status = domain.BookingStatusConfirmed
	booking.PaymentIntentID = paymentIntentID
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}

	// Booked days become excluded dates so the calendar and every later
	// availability re-check see them immediately.
	var days []time.Time
	for d := booking.StartDate; !d.After(booking.EndDate); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	if err := s.itemRepo.AddExcludedDates(ctx, booking.RentalItemID, days); err != nil {
		logger.Error("Failed to exclude booked dates", "booking_id", booking.ID, "item_id", booking.RentalItemID, "error", err)
	}

	// Notifications are best-effort; a confirmed booking stands even if
	// the relay is down.
	item, _ := s.itemRepo.GetByID(ctx, booking.RentalItemID)
	user, _ := s.userRepo.GetByID(ctx, booking.UserID)
	if item != nil && user != nil {
		_ = s.emailSvc.SendBookingConfirmation(ctx, user.Email, booking, item.Title)

		note := &domain.Notification{
			UserID:    user.ID,
			Title:     "Booking Confirmed",
			Message:   fmt.Sprintf("Your booking for %s (%s – %s) is confirmed.", item.Title, booking.StartDate.Format("Jan 2"), booking.EndDate.Format("Jan 2, 2006")),
			Type:      domain.NotificationTypeBooking,
			RelatedID: booking.ID,
		}
		_ = s.noteRepo.Create(ctx, note)
	}

	return booking, nil
}

// ExpireBookingFromCheckout handles the provider's expired-session webhook.
func (s *bookingService) ExpireBookingFromCheckout(ctx context.Context, sessionID string) error {
	booking, err := s.bookingRepo.GetByCheckoutSessionID(ctx, sessionID)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil
		}
		return err
	}
	if booking.Status != domain.BookingStatusPending {
		return nil
	}
	booking.Status = domain.BookingStatusCancelled
	return s.bookingRepo.Update(ctx, booking)
}

func (s *bookingService) CancelBooking(ctx context.Context, userID, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, ErrForbidden
	}
	if booking.Status != domain.BookingStatusPending {
		return nil, ErrBookingNotCancellable
	}
	booking.Status = domain.BookingStatusCancelled
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) GetBooking(ctx context.Context, userID, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, ErrForbidden
	}
	return booking, nil
}

func (s *bookingService) ListMyBookings(ctx context.Context, userID string, page, pageSize int) ([]domain.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, userID, page, pageSize)
}
