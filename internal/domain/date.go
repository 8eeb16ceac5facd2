package domain

import (
	"fmt"
	"time"
)

// Date is a calendar date without time and zone. Comparable, usable as a map key.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate нормализует значения так же, как time.Date (32 января -> 1 февраля)
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar date of t in t's own location
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}
}

// ParseDate parses YYYY-MM-DD
func ParseDate(value string) (Date, error) {
	t, err := time.Parse(DateFormat, value)
	if err != nil {
		return Date{}, fmt.Errorf("domain: invalid date %q: %w", value, err)
	}
	return DateOf(t), nil
}

// Time returns midnight of the date in loc
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) AddDays(days int) Date {
	return NewDate(d.Year, d.Month, d.Day+days)
}

func (d Date) Weekday() time.Weekday {
	return d.Time(time.UTC).Weekday()
}

// DayOfWeek returns the weekday index with Monday = 0
func (d Date) DayOfWeek() int {
	return DayOfWeekIndex(d.Weekday())
}

func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return compareInts(d.Year, other.Year)
	case d.Month != other.Month:
		return compareInts(int(d.Month), int(other.Month))
	default:
		return compareInts(d.Day, other.Day)
	}
}

func (d Date) Before(other Date) bool {
	return d.Compare(other) < 0
}

func (d Date) After(other Date) bool {
	return d.Compare(other) > 0
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DayOfWeekIndex converts time.Weekday (Sunday = 0) to the domain index (Monday = 0)
func DayOfWeekIndex(weekday time.Weekday) int {
	index := (int(weekday) - 1) % DaysInWeek
	if index < 0 {
		index += DaysInWeek
	}
	return index
}

func isValidDayOfWeek(dayOfWeek int) bool {
	return dayOfWeek >= 0 && dayOfWeek < DaysInWeek
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
