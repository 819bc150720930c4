package utils

import "time"

// Quote is the ephemeral (duration, total) pair computed for a candidate
// booking. It is derived on demand and never persisted by this package.
type Quote struct {
	DurationDays    int   `json:"duration_days"`
	TotalPriceCents int64 `json:"total_price_cents"`
}

// CalculateDurationDays returns the billing duration in whole days between
// two instants: the absolute difference rounded up to the next full day,
// floored at 1. Any partial day counts as a full day, and a same-day
// booking charges for one day, so a zero-day zero-amount charge can never
// reach the checkout provider.
func CalculateDurationDays(start, end time.Time) int {
	diff := end.Sub(start)
	if diff < 0 {
		diff = -diff
	}

	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) > 0 {
		days++
	}
	if days < 1 {
		days = 1
	}
	return days
}

// CalculateTotalPrice returns pricePerDayCents multiplied by the billing
// duration. Integer cents arithmetic; display rounding is a presentation
// concern and never happens here.
func CalculateTotalPrice(pricePerDayCents int64, start, end time.Time) int64 {
	return pricePerDayCents * int64(CalculateDurationDays(start, end))
}

// BuildQuote computes the duration and total for a candidate range in one
// call.
func BuildQuote(pricePerDayCents int64, start, end time.Time) Quote {
	days := CalculateDurationDays(start, end)
	return Quote{
		DurationDays:    days,
		TotalPriceCents: pricePerDayCents * int64(days),
	}
}
