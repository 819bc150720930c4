package jobs

import (
	"context"
	"time"

	"anacarlita-backend/internal/logger"
	"anacarlita-backend/internal/utils"
)

// SendEventDigest emails the site owner a digest of events happening in the
// next seven days. Nothing is sent when the week is empty.
func (jr *JobRunner) SendEventDigest() {
	jr.runWithRecovery("SendEventDigest", func() {
		ctx := context.Background()
		from := utils.ToCalendarDate(time.Now())
		to := from.AddDate(0, 0, 7)

		events, err := jr.store.EventRepository.ListBetween(ctx, from, to)
		if err != nil {
			logger.Error("Failed to list events for digest", "error", err)
			return
		}
		if len(events) == 0 {
			logger.Info("No upcoming events, skipping digest")
			return
		}

		if err := jr.services.Email.SendEventDigest(ctx, events); err != nil {
			logger.Error("Failed to send event digest", "error", err)
			return
		}
		logger.Info("Sent event digest", "events", len(events))
	})
}
