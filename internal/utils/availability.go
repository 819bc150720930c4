package utils

import (
	"time"

	"anacarlita-backend/internal/domain"
)

// ToCalendarDate truncates an instant to its UTC calendar day. All
// availability decisions are made on UTC calendar days so that users in
// different zones see the same calendar; time-of-day never matters.
func ToCalendarDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// SameCalendarDay reports whether two instants fall on the same UTC
// calendar day.
func SameCalendarDay(a, b time.Time) bool {
	au, bu := a.UTC(), b.UTC()
	return au.Year() == bu.Year() && au.Month() == bu.Month() && au.Day() == bu.Day()
}

// IsDateAvailable reports whether a single calendar date is bookable for
// the item: inside the availability window (inclusive on both ends) and
// not carved out by an excluded date. A window whose end precedes its
// start is an empty window and yields false for every date.
func IsDateAvailable(item *domain.RentalItem, date time.Time) bool {
	if item == nil {
		return false
	}

	day := ToCalendarDate(date)
	start := ToCalendarDate(item.Availability.Start)
	end := ToCalendarDate(item.Availability.End)

	if end.Before(start) {
		return false
	}
	if day.Before(start) || day.After(end) {
		return false
	}

	for _, excluded := range item.ExcludedDates {
		if SameCalendarDay(day, excluded) {
			return false
		}
	}

	return true
}

// IsRangeAvailable reports whether every calendar day in [start, end] is
// individually available. The endpoints may be given in either order.
// This is the server-side re-check run before any charge is authorized,
// so a range straddling an excluded date can never slip through from a
// stale calendar view.
func IsRangeAvailable(item *domain.RentalItem, start, end time.Time) bool {
	from := ToCalendarDate(start)
	to := ToCalendarDate(end)
	if to.Before(from) {
		from, to = to, from
	}

	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		if !IsDateAvailable(item, day) {
			return false
		}
	}
	return true
}
