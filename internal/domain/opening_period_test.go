package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpeningPeriod(t *testing.T) {
	tests := []struct {
		name         string
		start        time.Duration
		end          time.Duration
		expectedCode FailureResultCode
	}{
		{name: "regular lunch", start: hm(11, 0), end: hm(14, 0)},
		{name: "starts exactly at earliest opening time", start: hm(EarliestOpeningTime, 0), end: hm(6, 0)},
		{name: "ends after midnight", start: hm(22, 0), end: hm(26, 0)},
		{name: "starts before earliest opening time", start: hm(3, 59), end: hm(6, 0), expectedCode: RestaurantOpeningPeriodBeginsTooEarly},
		{name: "negative start", start: -time.Hour, end: hm(6, 0), expectedCode: RestaurantOpeningPeriodBeginsTooEarly},
		{name: "end equals start", start: hm(12, 0), end: hm(12, 0), expectedCode: RestaurantOpeningPeriodEndsBeforeStart},
		{name: "end before start", start: hm(12, 0), end: hm(11, 0), expectedCode: RestaurantOpeningPeriodEndsBeforeStart},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			result := NewOpeningPeriod(testCase.start, testCase.end)

			if testCase.expectedCode == "" {
				require.True(t, result.IsSuccess())
				assert.Equal(t, testCase.start, result.Value().Start())
				assert.Equal(t, testCase.end, result.Value().End())
				return
			}

			require.True(t, result.IsFailure())
			assert.Equal(t, testCase.expectedCode, result.Failure().Code)
		})
	}
}

func TestNewOpeningPeriod_TruncatesToMinutes(t *testing.T) {
	period := mustPeriod(t, hm(11, 0)+42*time.Second, hm(14, 0)+time.Second)

	assert.Equal(t, hm(11, 0), period.Start())
	assert.Equal(t, hm(14, 0), period.End())
	assert.Equal(t, 660, period.StartMinutes())
	assert.Equal(t, 840, period.EndMinutes())
}

func TestOpeningPeriod_Overlaps(t *testing.T) {
	base := mustPeriod(t, hm(12, 0), hm(14, 0))

	tests := []struct {
		name     string
		other    OpeningPeriod
		expected bool
	}{
		{name: "inside", other: mustPeriod(t, hm(12, 30), hm(13, 0)), expected: true},
		{name: "overlaps end", other: mustPeriod(t, hm(13, 0), hm(15, 0)), expected: true},
		{name: "overlaps start", other: mustPeriod(t, hm(11, 0), hm(12, 1)), expected: true},
		{name: "covers", other: mustPeriod(t, hm(10, 0), hm(16, 0)), expected: true},
		{name: "adjacent after", other: mustPeriod(t, hm(14, 0), hm(16, 0)), expected: false},
		{name: "adjacent before", other: mustPeriod(t, hm(10, 0), hm(12, 0)), expected: false},
		{name: "disjoint", other: mustPeriod(t, hm(18, 0), hm(22, 0)), expected: false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, base.Overlaps(testCase.other))
			assert.Equal(t, testCase.expected, testCase.other.Overlaps(base))
		})
	}
}

func TestOpeningPeriod_ContainsIsHalfOpen(t *testing.T) {
	period := mustPeriod(t, hm(16, 30), hm(22, 30))

	assert.True(t, period.Contains(hm(16, 30)))
	assert.True(t, period.Contains(hm(22, 29)))
	assert.False(t, period.Contains(hm(22, 30)))
	assert.False(t, period.Contains(hm(16, 29)))
}

func TestOpeningPeriod_CompareAndString(t *testing.T) {
	a := mustPeriod(t, hm(11, 0), hm(14, 0))
	b := mustPeriod(t, hm(11, 0), hm(15, 0))
	c := mustPeriod(t, hm(17, 0), hm(26, 30))

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, c.Compare(a))
	assert.Equal(t, 0, a.Compare(mustPeriod(t, hm(11, 0), hm(14, 0))))
	assert.Equal(t, "17:00-26:30", c.String())
}

func TestRegularOpeningDay_PeriodManagement(t *testing.T) {
	lunch := mustPeriod(t, hm(11, 0), hm(14, 0))
	dinner := mustPeriod(t, hm(17, 0), hm(22, 0))

	day := NewRegularOpeningDay(0, []OpeningPeriod{dinner, lunch})
	require.True(t, day.IsSuccess())
	assert.Equal(t, []OpeningPeriod{lunch, dinner}, day.Value().OpeningPeriods(), "periods are sorted by start")

	added := day.Value().AddPeriod(mustPeriod(t, hm(13, 0), hm(15, 0)))
	require.True(t, added.IsFailure())
	assert.True(t, errors.Is(added.Err(), ErrOpeningPeriodIntersects))

	added = day.Value().AddPeriod(mustPeriod(t, hm(14, 0), hm(17, 0)))
	require.True(t, added.IsSuccess())
	assert.Len(t, added.Value(), 3)
	assert.Len(t, day.Value().OpeningPeriods(), 2, "day itself is not modified")

	assert.Equal(t, []OpeningPeriod{dinner}, day.Value().RemovePeriod(hm(11, 0)))
	assert.Equal(t, []OpeningPeriod{lunch, dinner}, day.Value().RemovePeriod(hm(12, 0)), "unknown start is a no-op")

	found, ok := day.Value().FindPeriodAtTime(hm(18, 15))
	require.True(t, ok)
	assert.Equal(t, dinner, found)

	_, ok = day.Value().FindPeriodAtTime(hm(15, 0))
	assert.False(t, ok)
}

func TestNewRegularOpeningDay_Validation(t *testing.T) {
	invalidDay := NewRegularOpeningDay(7, nil)
	require.True(t, invalidDay.IsFailure())
	assert.Equal(t, FieldValueInvalid, invalidDay.Failure().Code)

	overlapping := NewRegularOpeningDay(1, []OpeningPeriod{
		mustPeriod(t, hm(11, 0), hm(14, 0)),
		mustPeriod(t, hm(13, 0), hm(15, 0)),
	})
	require.True(t, overlapping.IsFailure())
	assert.Equal(t, RestaurantOpeningPeriodIntersects, overlapping.Failure().Code)
}

func TestNewDeviatingOpeningDay_Validation(t *testing.T) {
	invalidStatus := NewDeviatingOpeningDay(testMonday, "holiday", nil)
	require.True(t, invalidStatus.IsFailure())
	assert.Equal(t, FieldValueInvalid, invalidStatus.Failure().Code)

	day := NewDeviatingOpeningDay(testMonday, DeviatingStatusOpen, []OpeningPeriod{mustPeriod(t, hm(16, 30), hm(22, 30))})
	require.True(t, day.IsSuccess())
	assert.Equal(t, testMonday, day.Value().Date())
	assert.Equal(t, DeviatingStatusOpen, day.Value().Status())

	closedWithPeriods := NewDeviatingOpeningDay(testMonday, DeviatingStatusClosed, []OpeningPeriod{mustPeriod(t, hm(16, 30), hm(22, 30))})
	require.True(t, closedWithPeriods.IsFailure())
	assert.Equal(t, RestaurantDeviatingOpeningDayHasStillOpenPeriods, closedWithPeriods.Failure().Code)

	closedEmpty := NewDeviatingOpeningDay(testMonday, DeviatingStatusClosed, nil)
	require.True(t, closedEmpty.IsSuccess())
}
