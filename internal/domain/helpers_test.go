package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var (
	testAdminID   = uuid.MustParse("7d1f3a52-0a4b-4c53-9a6e-2f0f7c1a9b01")
	testChangerID = uuid.MustParse("0c9a4f0e-5a57-4b0b-8b55-3f5c0f6f9e02")
)

// monday 2026-10-12, дальше по порядку до воскресенья 2026-10-18
var testMonday = NewDate(2026, time.October, 12)

func hm(hours, minutes int) time.Duration {
	return time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute
}

func at(date Date, hours, minutes int) time.Time {
	return time.Date(date.Year, date.Month, date.Day, hours, minutes, 0, 0, time.UTC)
}

func mustPeriod(t *testing.T, start, end time.Duration) OpeningPeriod {
	t.Helper()

	result := NewOpeningPeriod(start, end)
	require.True(t, result.IsSuccess(), "unexpected failure: %v", result.Err())
	return result.Value()
}

func newTestRestaurant(t *testing.T) *Restaurant {
	t.Helper()

	result := NewRestaurant(uuid.New(), "Trattoria Roma", testAdminID)
	require.True(t, result.IsSuccess())
	return result.Value()
}

// freezeTime фиксирует timeNow на время теста
func freezeTime(t *testing.T, now time.Time) {
	t.Helper()

	original := timeNow
	timeNow = func() time.Time { return now }
	t.Cleanup(func() { timeNow = original })
}
