package domain

import "time"

// RegularOpeningDay represents the periods recurring every week on one weekday (0 = Monday)
type RegularOpeningDay struct {
	dayOfWeek      int
	openingPeriods []OpeningPeriod
}

// NewRegularOpeningDay validates the weekday and that periods do not overlap
func NewRegularOpeningDay(dayOfWeek int, periods []OpeningPeriod) Result[RegularOpeningDay] {
	if !isValidDayOfWeek(dayOfWeek) {
		return Fail[RegularOpeningDay](FieldValueInvalid, "dayOfWeek", dayOfWeek)
	}

	built := buildPeriods(periods)
	if built.IsFailure() {
		return FailWith[RegularOpeningDay](built.Failure())
	}

	return Success(RegularOpeningDay{dayOfWeek: dayOfWeek, openingPeriods: built.Value()})
}

func (d RegularOpeningDay) DayOfWeek() int {
	return d.dayOfWeek
}

// OpeningPeriods returns a copy sorted by start
func (d RegularOpeningDay) OpeningPeriods() []OpeningPeriod {
	return copyPeriods(d.openingPeriods)
}

// AddPeriod returns the new period set or RestaurantOpeningPeriodIntersects
func (d RegularOpeningDay) AddPeriod(period OpeningPeriod) Result[[]OpeningPeriod] {
	return addPeriod(d.openingPeriods, period)
}

// RemovePeriod returns the periods left after removing the one starting at start
func (d RegularOpeningDay) RemovePeriod(start time.Duration) []OpeningPeriod {
	return removePeriod(d.openingPeriods, start)
}

func (d RegularOpeningDay) FindPeriodAtTime(timeOfDay time.Duration) (OpeningPeriod, bool) {
	return findPeriodAtTime(d.openingPeriods, timeOfDay)
}

// DeviatingOpeningDayStatus is the state of a date-specific override
type DeviatingOpeningDayStatus string

const (
	DeviatingStatusOpen        DeviatingOpeningDayStatus = "open"
	DeviatingStatusClosed      DeviatingOpeningDayStatus = "closed"
	DeviatingStatusFullyBooked DeviatingOpeningDayStatus = "fully_booked"
)

func (s DeviatingOpeningDayStatus) IsValid() bool {
	switch s {
	case DeviatingStatusOpen, DeviatingStatusClosed, DeviatingStatusFullyBooked:
		return true
	default:
		return false
	}
}

// DeviatingOpeningDay overrides the regular schedule on one calendar date
type DeviatingOpeningDay struct {
	date           Date
	status         DeviatingOpeningDayStatus
	openingPeriods []OpeningPeriod
}

func NewDeviatingOpeningDay(date Date, status DeviatingOpeningDayStatus, periods []OpeningPeriod) Result[DeviatingOpeningDay] {
	if !status.IsValid() {
		return Fail[DeviatingOpeningDay](FieldValueInvalid, "status", string(status))
	}
	// Closed и FullyBooked допустимы только для дня без периодов
	if status != DeviatingStatusOpen && len(periods) > 0 {
		return Fail[DeviatingOpeningDay](RestaurantDeviatingOpeningDayHasStillOpenPeriods, date.String())
	}

	built := buildPeriods(periods)
	if built.IsFailure() {
		return FailWith[DeviatingOpeningDay](built.Failure())
	}

	return Success(DeviatingOpeningDay{date: date, status: status, openingPeriods: built.Value()})
}

func (d DeviatingOpeningDay) Date() Date {
	return d.date
}

func (d DeviatingOpeningDay) Status() DeviatingOpeningDayStatus {
	return d.status
}

func (d DeviatingOpeningDay) OpeningPeriods() []OpeningPeriod {
	return copyPeriods(d.openingPeriods)
}

func (d DeviatingOpeningDay) AddPeriod(period OpeningPeriod) Result[[]OpeningPeriod] {
	return addPeriod(d.openingPeriods, period)
}

func (d DeviatingOpeningDay) RemovePeriod(start time.Duration) []OpeningPeriod {
	return removePeriod(d.openingPeriods, start)
}

func (d DeviatingOpeningDay) FindPeriodAtTime(timeOfDay time.Duration) (OpeningPeriod, bool) {
	return findPeriodAtTime(d.openingPeriods, timeOfDay)
}
