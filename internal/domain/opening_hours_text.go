package domain

import (
	"fmt"
	"strings"
	"time"
)

var dayOfWeekShortNames = [DaysInWeek]string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// OpeningHoursText summarizes the regular week, grouping consecutive weekdays
// with identical periods: "Mo-Fr 11:00-14:00 17:00-22:00; Sa 12:00-23:00"
func (r *Restaurant) OpeningHoursText() string {
	perDay := make([][]OpeningPeriod, DaysInWeek)
	for dayOfWeek := 0; dayOfWeek < DaysInWeek; dayOfWeek++ {
		if day, ok := r.regularOpeningDays[dayOfWeek]; ok {
			perDay[dayOfWeek] = day.openingPeriods
		}
	}

	var sb strings.Builder
	startDayOfWeek := 0
	current := perDay[0]

	flush := func(endDayOfWeek int) {
		if len(current) == 0 {
			return
		}
		if sb.Len() > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(dayOfWeekShortNames[startDayOfWeek])
		if endDayOfWeek > startDayOfWeek {
			sb.WriteString("-")
			sb.WriteString(dayOfWeekShortNames[endDayOfWeek])
		}
		sb.WriteString(" ")
		sb.WriteString(formatPeriods(current))
	}

	for dayOfWeek := 1; dayOfWeek < DaysInWeek; dayOfWeek++ {
		if !periodsEqual(current, perDay[dayOfWeek]) {
			flush(dayOfWeek - 1)
			startDayOfWeek = dayOfWeek
			current = perDay[dayOfWeek]
		}
	}
	flush(DaysInWeek - 1)

	return sb.String()
}

// OpeningHoursTodayText lists the periods of the business day containing now,
// or an empty string when the restaurant is closed that day
func (r *Restaurant) OpeningHoursTodayText(now time.Time) string {
	if day, ok := r.deviatingOpeningDays[DateOf(now)]; ok {
		return formatPeriods(day.openingPeriods)
	}

	dayOfWeek, _ := DayOfWeekAndTime(now)
	if day, ok := r.regularOpeningDays[dayOfWeek]; ok {
		return formatPeriods(day.openingPeriods)
	}

	return ""
}

func formatPeriods(periods []OpeningPeriod) string {
	parts := make([]string, 0, len(periods))
	for _, period := range periods {
		parts = append(parts, formatClock(period.start)+"-"+formatClock(period.end))
	}
	return strings.Join(parts, " ")
}

// formatClock печатает время по модулю суток: 26:00 -> 02:00
func formatClock(offset time.Duration) string {
	totalMinutes := int(offset / time.Minute)
	return fmt.Sprintf("%02d:%02d", (totalMinutes/60)%24, totalMinutes%60)
}

func periodsEqual(a, b []OpeningPeriod) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
