package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculateDurationDays(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected int
	}{
		{
			name:     "Exact 48 hours",
			start:    date(2024, time.January, 1),
			end:      date(2024, time.January, 3),
			expected: 2,
		},
		{
			name:     "26 hours rounds up",
			start:    time.Date(2024, time.January, 1, 8, 0, 0, 0, time.UTC),
			end:      time.Date(2024, time.January, 2, 10, 0, 0, 0, time.UTC),
			expected: 2,
		},
		{
			name:     "Partial single day rounds up",
			start:    time.Date(2024, time.January, 1, 8, 0, 0, 0, time.UTC),
			end:      time.Date(2024, time.January, 1, 17, 0, 0, 0, time.UTC),
			expected: 1,
		},
		{
			name:     "Identical instants floor at one day",
			start:    date(2024, time.January, 1),
			end:      date(2024, time.January, 1),
			expected: 1,
		},
		{
			name:     "Exact 24 hours",
			start:    date(2024, time.January, 1),
			end:      date(2024, time.January, 2),
			expected: 1,
		},
		{
			name:     "Reversed arguments use absolute difference",
			start:    date(2024, time.January, 3),
			end:      date(2024, time.January, 1),
			expected: 2,
		},
		{
			name:     "Three full days",
			start:    date(2024, time.January, 1),
			end:      date(2024, time.January, 4),
			expected: 3,
		},
		{
			name:     "Across a month boundary",
			start:    date(2024, time.January, 30),
			end:      date(2024, time.February, 2),
			expected: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalculateDurationDays(tt.start, tt.end))
		})
	}
}

func TestCalculateTotalPrice(t *testing.T) {
	t.Run("Three days at $25", func(t *testing.T) {
		total := CalculateTotalPrice(2500, date(2024, time.January, 1), date(2024, time.January, 4))
		assert.Equal(t, int64(7500), total)
	})

	t.Run("Symmetric under swapped endpoints", func(t *testing.T) {
		forward := CalculateTotalPrice(2500, date(2024, time.January, 1), date(2024, time.January, 4))
		backward := CalculateTotalPrice(2500, date(2024, time.January, 4), date(2024, time.January, 1))
		assert.Equal(t, forward, backward)
	})

	t.Run("Zero rate", func(t *testing.T) {
		assert.Equal(t, int64(0), CalculateTotalPrice(0, date(2024, time.January, 1), date(2024, time.January, 10)))
	})

	t.Run("Monotonically non-decreasing in range length", func(t *testing.T) {
		start := date(2024, time.March, 1)
		prev := int64(-1)
		for days := 0; days <= 30; days++ {
			total := CalculateTotalPrice(1999, start, start.AddDate(0, 0, days))
			assert.GreaterOrEqual(t, total, prev)
			prev = total
		}
	})
}

func TestBuildQuote(t *testing.T) {
	q := BuildQuote(2500, date(2024, time.January, 1), date(2024, time.January, 4))
	assert.Equal(t, 3, q.DurationDays)
	assert.Equal(t, int64(7500), q.TotalPriceCents)

	// Same-day quote still bills the one-day minimum.
	q = BuildQuote(2500, date(2024, time.January, 1), date(2024, time.January, 1))
	assert.Equal(t, 1, q.DurationDays)
	assert.Equal(t, int64(2500), q.TotalPriceCents)
}
