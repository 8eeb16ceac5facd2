package domain

import "time"

// DayOfWeekAndTime resolves the business weekday (0 = Monday) and time of day for t.
// Before EarliestOpeningTime the moment still belongs to the previous day's business
// day, so the weekday shifts back by one and 24h are added to the time.
func DayOfWeekAndTime(t time.Time) (int, time.Duration) {
	dayOfWeek := DayOfWeekIndex(t.Weekday())
	timeOfDay := time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute

	if t.Hour() < EarliestOpeningTime {
		dayOfWeek = (dayOfWeek - 1 + DaysInWeek) % DaysInWeek
		timeOfDay += 24 * time.Hour
	}

	return dayOfWeek, timeOfDay
}

// openingShift identifies a concrete period: two lookups hit the same shift
// only if they resolved to the same day entry and the same period.
type openingShift struct {
	deviating bool
	date      Date
	dayOfWeek int
	period    OpeningPeriod
}

func (r *Restaurant) findOpeningShift(t time.Time) (openingShift, bool) {
	dayOfWeek, timeOfDay := DayOfWeekAndTime(t)
	date := DateOf(t)

	// Отклоняющийся день ищется по календарной дате без сдвига и полностью
	// заменяет регулярный: даже без периодов откат к регулярному дню не делается
	if day, ok := r.deviatingOpeningDays[date]; ok {
		period, found := day.FindPeriodAtTime(timeOfDay)
		return openingShift{deviating: true, date: date, period: period}, found
	}

	if day, ok := r.regularOpeningDays[dayOfWeek]; ok {
		period, found := day.FindPeriodAtTime(timeOfDay)
		return openingShift{dayOfWeek: dayOfWeek, period: period}, found
	}

	return openingShift{}, false
}

// FindOpeningPeriod returns the period covering t, if any
func (r *Restaurant) FindOpeningPeriod(t time.Time) (OpeningPeriod, bool) {
	shift, ok := r.findOpeningShift(t)
	return shift.period, ok
}

func (r *Restaurant) IsOpen(t time.Time) bool {
	_, ok := r.findOpeningShift(t)
	return ok
}

// IsOrderPossibleAt applies the supported order mode to a requested order time.
// orderDateTime and now must be in the restaurant's local time zone.
func (r *Restaurant) IsOrderPossibleAt(orderDateTime time.Time, now time.Time) bool {
	if orderDateTime.Before(now) {
		orderDateTime = now
	}

	if r.supportedOrderMode == OrderModeOnlyPhone {
		return false
	}

	orderShift, ok := r.findOpeningShift(orderDateTime)
	if !ok {
		return false
	}

	if r.supportedOrderMode != OrderModeAtNextShift {
		return true
	}

	if DateOf(orderDateTime).After(DateOf(now)) {
		return true
	}

	nowShift, open := r.findOpeningShift(now)
	if !open {
		return true
	}

	// Заказ на текущую смену не считается заказом "на следующую смену"
	return nowShift != orderShift
}
