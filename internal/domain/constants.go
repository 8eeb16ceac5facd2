package domain

import "time"

// EarliestOpeningTime is the hour a business day starts.
// Opening periods may not start earlier, and moments before this hour
// belong to the previous calendar day's business day.
const EarliestOpeningTime = 4

// earliestOpeningOffset EarliestOpeningTime как смещение от начала суток
const earliestOpeningOffset = EarliestOpeningTime * time.Hour

// Business validation constants
const (
	DaysInWeek              = 7
	MaxRestaurantNameLength = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// timeNow источник времени для updatedOn, подменяется в тестах
var timeNow = func() time.Time {
	return time.Now().UTC()
}
