package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_RestoreRoundTrip(t *testing.T) {
	freezeTime(t, time.Date(2026, time.October, 17, 8, 0, 0, 0, time.UTC))
	restaurant := newTestRestaurant(t)
	require.True(t, restaurant.AddAdministrator(testAdminID, testAdminID).IsSuccess())
	require.True(t, restaurant.ChangeSupportedOrderMode(OrderModeAnytime, testAdminID).IsSuccess())
	require.True(t, restaurant.Activate(testChangerID).IsSuccess())
	require.True(t, restaurant.AddRegularOpeningPeriod(6, mustPeriod(t, hm(12, 0), hm(20, 0)), testAdminID).IsSuccess())
	require.True(t, restaurant.AddRegularOpeningPeriod(0, mustPeriod(t, hm(17, 0), hm(25, 0)), testAdminID).IsSuccess())
	require.True(t, restaurant.AddRegularOpeningPeriod(0, mustPeriod(t, hm(11, 0), hm(14, 0)), testAdminID).IsSuccess())
	later := testMonday.AddDays(10)
	require.True(t, restaurant.AddDeviatingOpeningDay(later, DeviatingStatusFullyBooked, testAdminID).IsSuccess())
	require.True(t, restaurant.AddDeviatingOpeningDay(testMonday, DeviatingStatusOpen, testAdminID).IsSuccess())
	require.True(t, restaurant.AddDeviatingOpeningPeriod(testMonday, mustPeriod(t, hm(16, 30), hm(22, 30)), testAdminID).IsSuccess())

	snapshot := restaurant.Snapshot()

	require.Len(t, snapshot.RegularOpeningDays, 2)
	assert.Equal(t, 0, snapshot.RegularOpeningDays[0].DayOfWeek)
	assert.Equal(t, 6, snapshot.RegularOpeningDays[1].DayOfWeek)
	assert.Equal(t, []OpeningPeriodSnapshot{{StartMinutes: 660, EndMinutes: 840}, {StartMinutes: 1020, EndMinutes: 1500}},
		snapshot.RegularOpeningDays[0].OpeningPeriods)
	require.Len(t, snapshot.DeviatingOpeningDays, 2)
	assert.Equal(t, testMonday, snapshot.DeviatingOpeningDays[0].Date)
	assert.Equal(t, later, snapshot.DeviatingOpeningDays[1].Date)
	assert.Empty(t, snapshot.DeviatingOpeningDays[1].OpeningPeriods)

	restored, err := RestoreRestaurant(snapshot)
	require.NoError(t, err)
	assert.Equal(t, snapshot, restored.Snapshot())
	assert.Equal(t, restaurant.OpeningHoursText(), restored.OpeningHoursText())
}

func TestRestoreRestaurant_Validation(t *testing.T) {
	base := RestaurantSnapshot{ID: uuid.New(), Name: "Trattoria Roma"}

	t.Run("empty mode defaults to only phone", func(t *testing.T) {
		restored, err := RestoreRestaurant(base)
		require.NoError(t, err)
		assert.Equal(t, OrderModeOnlyPhone, restored.SupportedOrderMode())
	})

	t.Run("unknown mode", func(t *testing.T) {
		snapshot := base
		snapshot.SupportedOrderMode = "fax"
		_, err := RestoreRestaurant(snapshot)
		assert.ErrorIs(t, err, ErrFieldValueInvalid)
	})

	t.Run("overlapping stored periods", func(t *testing.T) {
		snapshot := base
		snapshot.RegularOpeningDays = []RegularOpeningDaySnapshot{{
			DayOfWeek:      1,
			OpeningPeriods: []OpeningPeriodSnapshot{{StartMinutes: 660, EndMinutes: 840}, {StartMinutes: 780, EndMinutes: 900}},
		}}
		_, err := RestoreRestaurant(snapshot)
		assert.ErrorIs(t, err, ErrOpeningPeriodIntersects)
	})

	t.Run("period before earliest opening time", func(t *testing.T) {
		snapshot := base
		snapshot.DeviatingOpeningDays = []DeviatingOpeningDaySnapshot{{
			Date:           testMonday,
			Status:         DeviatingStatusOpen,
			OpeningPeriods: []OpeningPeriodSnapshot{{StartMinutes: 60, EndMinutes: 120}},
		}}
		_, err := RestoreRestaurant(snapshot)
		assert.ErrorIs(t, err, ErrOpeningPeriodBeginsTooEarly)
	})

	t.Run("closed deviating day with periods", func(t *testing.T) {
		for _, status := range []DeviatingOpeningDayStatus{DeviatingStatusClosed, DeviatingStatusFullyBooked} {
			snapshot := base
			snapshot.DeviatingOpeningDays = []DeviatingOpeningDaySnapshot{{
				Date:           NewDate(2025, time.May, 1),
				Status:         status,
				OpeningPeriods: []OpeningPeriodSnapshot{{StartMinutes: 600, EndMinutes: 700}},
			}}
			restored, err := RestoreRestaurant(snapshot)
			assert.ErrorIs(t, err, ErrDeviatingOpeningDayHasStillOpenPeriods, string(status))
			assert.Nil(t, restored)
		}
	})

	t.Run("closed deviating day without periods", func(t *testing.T) {
		snapshot := base
		snapshot.RegularOpeningDays = []RegularOpeningDaySnapshot{{
			DayOfWeek:      3,
			OpeningPeriods: []OpeningPeriodSnapshot{{StartMinutes: 600, EndMinutes: 700}},
		}}
		snapshot.DeviatingOpeningDays = []DeviatingOpeningDaySnapshot{{Date: NewDate(2025, time.May, 1), Status: DeviatingStatusClosed}}
		restored, err := RestoreRestaurant(snapshot)
		require.NoError(t, err)
		assert.False(t, restored.IsOpen(time.Date(2025, time.May, 1, 11, 0, 0, 0, time.UTC)))
	})

	t.Run("empty regular day is skipped", func(t *testing.T) {
		snapshot := base
		snapshot.RegularOpeningDays = []RegularOpeningDaySnapshot{{DayOfWeek: 3}}
		restored, err := RestoreRestaurant(snapshot)
		require.NoError(t, err)
		assert.Empty(t, restored.RegularOpeningDays())
	})
}
