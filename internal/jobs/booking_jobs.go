package jobs

import (
	"context"
	"time"

	"anacarlita-backend/internal/domain"
	"anacarlita-backend/internal/logger"
	"anacarlita-backend/internal/utils"
)

// ExpireStalePendingBookings cancels bookings that sat in PENDING past the
// configured TTL. These are abandoned checkouts the payment provider never
// reported on.
func (jr *JobRunner) ExpireStalePendingBookings() {
	jr.runWithRecovery("ExpireStalePendingBookings", func() {
		ctx := context.Background()
		cutoff := time.Now().UTC().Add(-time.Duration(jr.config.Booking.PendingTTLHours) * time.Hour)

		stale, err := jr.store.BookingRepository.ListPendingOlderThan(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to list stale pending bookings", "error", err)
			return
		}

		count := 0
		for i := range stale {
			booking := &stale[i]
			booking.Status = domain.BookingStatusCancelled
			booking.UpdatedOn = time.Now().UTC()
			if err := jr.store.BookingRepository.Update(ctx, booking); err != nil {
				logger.Error("Failed to expire pending booking",
					"booking_id", booking.ID, "error", err)
				continue
			}
			count++
			logger.Debug("Expired stale pending booking",
				"booking_id", booking.ID,
				"rental_item_id", booking.RentalItemID,
				"created_on", booking.CreatedOn)
		}

		logger.Info("Expired stale pending bookings", "count", count)
	})
}

// CompleteFinishedBookings moves confirmed bookings whose end date has
// passed into COMPLETED.
func (jr *JobRunner) CompleteFinishedBookings() {
	jr.runWithRecovery("CompleteFinishedBookings", func() {
		ctx := context.Background()
		today := utils.ToCalendarDate(time.Now())

		finished, err := jr.store.BookingRepository.ListConfirmedEndedBefore(ctx, today)
		if err != nil {
			logger.Error("Failed to list finished bookings", "error", err)
			return
		}

		count := 0
		for i := range finished {
			booking := &finished[i]
			booking.Status = domain.BookingStatusCompleted
			booking.UpdatedOn = time.Now().UTC()
			if err := jr.store.BookingRepository.Update(ctx, booking); err != nil {
				logger.Error("Failed to complete booking",
					"booking_id", booking.ID, "error", err)
				continue
			}
			count++
		}

		logger.Info("Completed finished bookings", "count", count)
	})
}

// SendBookingReminders emails every renter whose confirmed booking starts
// tomorrow.
func (jr *JobRunner) SendBookingReminders() {
	jr.runWithRecovery("SendBookingReminders", func() {
		ctx := context.Background()
		tomorrow := utils.ToCalendarDate(time.Now()).AddDate(0, 0, 1)

		upcoming, err := jr.store.BookingRepository.ListConfirmedStartingOn(ctx, tomorrow)
		if err != nil {
			logger.Error("Failed to list upcoming bookings", "error", err)
			return
		}

		sent := 0
		for i := range upcoming {
			booking := &upcoming[i]

			user, err := jr.store.UserRepository.GetByID(ctx, booking.UserID)
			if err != nil {
				logger.Error("Failed to load renter for reminder",
					"booking_id", booking.ID, "user_id", booking.UserID, "error", err)
				continue
			}

			itemTitle := "your rental"
			if item, err := jr.store.RentalItemRepository.GetByID(ctx, booking.RentalItemID); err == nil {
				itemTitle = item.Title
			}

			if err := jr.services.Email.SendBookingReminder(ctx, user.Email, booking, itemTitle); err != nil {
				logger.Error("Failed to send booking reminder",
					"booking_id", booking.ID, "error", err)
				continue
			}

			_ = jr.store.NotificationRepository.Create(ctx, &domain.Notification{
				UserID:    booking.UserID,
				Type:      domain.NotificationTypeBooking,
				Title:     "Booking starts tomorrow",
				Message:   "Your booking of " + itemTitle + " starts tomorrow.",
				RelatedID: booking.ID,
			})
			sent++
		}

		logger.Info("Sent booking reminders", "count", sent)
	})
}
