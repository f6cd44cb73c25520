package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("start", "2026-03-05")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDate_Invalid(t *testing.T) {
	for _, bad := range []string{"", "03/05/2026", "2026-13-01", "not a date"} {
		_, err := ParseDate("start", bad)
		require.Error(t, err, "input %q", bad)

		var derr *InvalidDateError
		require.True(t, errors.As(err, &derr), "input %q", bad)
		assert.Equal(t, "start", derr.Field)
		assert.Equal(t, bad, derr.Value)
	}
}

func TestMidnight(t *testing.T) {
	late := time.Date(2026, 3, 5, 23, 45, 12, 999, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), Midnight(late))
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	b := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 5, DaysBetween(a, b))
	assert.Equal(t, -5, DaysBetween(b, a))
	assert.Equal(t, 0, DaysBetween(a, a))

	// Time-of-day never changes the answer.
	noon := a.Add(12 * time.Hour)
	assert.Equal(t, 5, DaysBetween(noon, b))
}

func TestDaysBetween_AcrossDSTWindow(t *testing.T) {
	// US DST shifts in March; UTC-midnight math must not drift by an hour.
	a := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)
	b := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 2, DaysBetween(a, b))
}
