package domain

import (
	"time"

	"github.com/google/uuid"
)

// RegularOpeningDays returns a copy of the weekday -> day map
func (r *Restaurant) RegularOpeningDays() map[int]RegularOpeningDay {
	result := make(map[int]RegularOpeningDay, len(r.regularOpeningDays))
	for dayOfWeek, day := range r.regularOpeningDays {
		result[dayOfWeek] = day
	}
	return result
}

func (r *Restaurant) RegularOpeningDay(dayOfWeek int) (RegularOpeningDay, bool) {
	day, ok := r.regularOpeningDays[dayOfWeek]
	return day, ok
}

// DeviatingOpeningDays returns a copy of the date -> day map
func (r *Restaurant) DeviatingOpeningDays() map[Date]DeviatingOpeningDay {
	result := make(map[Date]DeviatingOpeningDay, len(r.deviatingOpeningDays))
	for date, day := range r.deviatingOpeningDays {
		result[date] = day
	}
	return result
}

func (r *Restaurant) DeviatingOpeningDay(date Date) (DeviatingOpeningDay, bool) {
	day, ok := r.deviatingOpeningDays[date]
	return day, ok
}

// AddRegularOpeningPeriod creates the weekday on first use, otherwise rejects overlaps
func (r *Restaurant) AddRegularOpeningPeriod(dayOfWeek int, period OpeningPeriod, changedBy uuid.UUID) Result[bool] {
	if !isValidDayOfWeek(dayOfWeek) {
		return Fail[bool](FieldValueInvalid, "dayOfWeek", dayOfWeek)
	}

	day, ok := r.regularOpeningDays[dayOfWeek]
	if !ok {
		r.regularOpeningDays[dayOfWeek] = RegularOpeningDay{
			dayOfWeek:      dayOfWeek,
			openingPeriods: []OpeningPeriod{period},
		}
		r.touch(changedBy)
		return Success(true)
	}

	added := day.AddPeriod(period)
	if added.IsFailure() {
		return FailWith[bool](added.Failure())
	}

	r.regularOpeningDays[dayOfWeek] = RegularOpeningDay{dayOfWeek: dayOfWeek, openingPeriods: added.Value()}
	r.touch(changedBy)
	return Success(true)
}

// RemoveRegularOpeningPeriod is a no-op for unknown periods.
// The weekday entry disappears together with its last period.
func (r *Restaurant) RemoveRegularOpeningPeriod(dayOfWeek int, start time.Duration, changedBy uuid.UUID) Result[bool] {
	day, ok := r.regularOpeningDays[dayOfWeek]
	if !ok || !hasPeriodStartingAt(day.openingPeriods, start) {
		return Success(true)
	}

	r.setRegularPeriods(dayOfWeek, day.RemovePeriod(start))
	r.touch(changedBy)
	return Success(true)
}

// ChangeRegularOpeningPeriod replaces the period starting at oldStart with period
func (r *Restaurant) ChangeRegularOpeningPeriod(dayOfWeek int, oldStart time.Duration, period OpeningPeriod, changedBy uuid.UUID) Result[bool] {
	day, ok := r.regularOpeningDays[dayOfWeek]
	if !ok || !hasPeriodStartingAt(day.openingPeriods, oldStart) {
		return Fail[bool](RestaurantOpeningPeriodDoesNotExist, dayOfWeek)
	}

	added := addPeriod(day.RemovePeriod(oldStart), period)
	if added.IsFailure() {
		return FailWith[bool](added.Failure())
	}

	r.setRegularPeriods(dayOfWeek, added.Value())
	r.touch(changedBy)
	return Success(true)
}

// AddDeviatingOpeningDay creates an empty override; an existing day is left untouched
func (r *Restaurant) AddDeviatingOpeningDay(date Date, status DeviatingOpeningDayStatus, changedBy uuid.UUID) Result[bool] {
	if !status.IsValid() {
		return Fail[bool](FieldValueInvalid, "status", string(status))
	}

	if _, ok := r.deviatingOpeningDays[date]; ok {
		return Success(true)
	}

	r.deviatingOpeningDays[date] = DeviatingOpeningDay{date: date, status: status}
	r.touch(changedBy)
	return Success(true)
}

// ChangeDeviatingOpeningDayStatus is only allowed on a day without periods
func (r *Restaurant) ChangeDeviatingOpeningDayStatus(date Date, status DeviatingOpeningDayStatus, changedBy uuid.UUID) Result[bool] {
	if !status.IsValid() {
		return Fail[bool](FieldValueInvalid, "status", string(status))
	}

	day, ok := r.deviatingOpeningDays[date]
	if !ok {
		return Fail[bool](RestaurantDeviatingOpeningDayDoesNotExist, date.String())
	}
	if len(day.openingPeriods) > 0 {
		return Fail[bool](RestaurantDeviatingOpeningDayHasStillOpenPeriods, date.String())
	}

	r.deviatingOpeningDays[date] = DeviatingOpeningDay{date: date, status: status}
	r.touch(changedBy)
	return Success(true)
}

// RemoveDeviatingOpeningDay deletes the override so the regular schedule applies again
func (r *Restaurant) RemoveDeviatingOpeningDay(date Date, changedBy uuid.UUID) Result[bool] {
	if _, ok := r.deviatingOpeningDays[date]; !ok {
		return Success(true)
	}

	delete(r.deviatingOpeningDays, date)
	r.touch(changedBy)
	return Success(true)
}

// AddDeviatingOpeningPeriod adds a period to an existing override and marks it open
func (r *Restaurant) AddDeviatingOpeningPeriod(date Date, period OpeningPeriod, changedBy uuid.UUID) Result[bool] {
	day, ok := r.deviatingOpeningDays[date]
	if !ok {
		return Fail[bool](RestaurantDeviatingOpeningDayDoesNotExist, date.String())
	}

	added := day.AddPeriod(period)
	if added.IsFailure() {
		return FailWith[bool](added.Failure())
	}

	r.deviatingOpeningDays[date] = DeviatingOpeningDay{date: date, status: DeviatingStatusOpen, openingPeriods: added.Value()}
	r.touch(changedBy)
	return Success(true)
}

// ChangeDeviatingOpeningPeriod replaces the period starting at oldStart with period
func (r *Restaurant) ChangeDeviatingOpeningPeriod(date Date, oldStart time.Duration, period OpeningPeriod, changedBy uuid.UUID) Result[bool] {
	day, ok := r.deviatingOpeningDays[date]
	if !ok {
		return Fail[bool](RestaurantDeviatingOpeningDayDoesNotExist, date.String())
	}
	if !hasPeriodStartingAt(day.openingPeriods, oldStart) {
		return Fail[bool](RestaurantOpeningPeriodDoesNotExist, date.String())
	}

	added := addPeriod(day.RemovePeriod(oldStart), period)
	if added.IsFailure() {
		return FailWith[bool](added.Failure())
	}

	r.deviatingOpeningDays[date] = DeviatingOpeningDay{date: date, status: DeviatingStatusOpen, openingPeriods: added.Value()}
	r.touch(changedBy)
	return Success(true)
}

// RemoveDeviatingOpeningPeriod keeps the day: open while periods remain, closed after the last one
func (r *Restaurant) RemoveDeviatingOpeningPeriod(date Date, start time.Duration, changedBy uuid.UUID) Result[bool] {
	day, ok := r.deviatingOpeningDays[date]
	if !ok {
		return Success(true)
	}

	remaining := day.RemovePeriod(start)
	status := DeviatingStatusOpen
	if len(remaining) == 0 {
		status = DeviatingStatusClosed
	}

	r.deviatingOpeningDays[date] = DeviatingOpeningDay{date: date, status: status, openingPeriods: remaining}
	r.touch(changedBy)
	return Success(true)
}

func (r *Restaurant) RemoveAllOpeningDays(changedBy uuid.UUID) Result[bool] {
	r.regularOpeningDays = make(map[int]RegularOpeningDay)
	r.deviatingOpeningDays = make(map[Date]DeviatingOpeningDay)
	r.touch(changedBy)
	return Success(true)
}

func (r *Restaurant) setRegularPeriods(dayOfWeek int, periods []OpeningPeriod) {
	// Регулярный день без периодов не хранится: отсутствие записи означает "закрыто"
	if len(periods) == 0 {
		delete(r.regularOpeningDays, dayOfWeek)
		return
	}
	r.regularOpeningDays[dayOfWeek] = RegularOpeningDay{dayOfWeek: dayOfWeek, openingPeriods: periods}
}
