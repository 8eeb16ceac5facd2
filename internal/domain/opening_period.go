package domain

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-RestaurantService/pkg/types"
)

// OpeningPeriod represents a half-open [start, end) interval of a business day.
// Start and end are offsets from midnight with minute precision; end may pass 24:00
// (e.g. 26:00 closes at 2am the next calendar day).
type OpeningPeriod struct {
	start time.Duration
	end   time.Duration
}

// NewOpeningPeriod validates bounds: start >= EarliestOpeningTime and end > start
func NewOpeningPeriod(start, end time.Duration) Result[OpeningPeriod] {
	start = start.Truncate(time.Minute)
	end = end.Truncate(time.Minute)

	if start < earliestOpeningOffset {
		return Fail[OpeningPeriod](RestaurantOpeningPeriodBeginsTooEarly, types.NewTimeStringFromDuration(earliestOpeningOffset))
	}
	if end <= start {
		return Fail[OpeningPeriod](RestaurantOpeningPeriodEndsBeforeStart)
	}

	return Success(OpeningPeriod{start: start, end: end})
}

// NewOpeningPeriodFromMinutes удобный конструктор для хранилища и кэша
func NewOpeningPeriodFromMinutes(startMinutes, endMinutes int) Result[OpeningPeriod] {
	return NewOpeningPeriod(time.Duration(startMinutes)*time.Minute, time.Duration(endMinutes)*time.Minute)
}

func (p OpeningPeriod) Start() time.Duration {
	return p.start
}

func (p OpeningPeriod) End() time.Duration {
	return p.end
}

func (p OpeningPeriod) StartMinutes() int {
	return int(p.start / time.Minute)
}

func (p OpeningPeriod) EndMinutes() int {
	return int(p.end / time.Minute)
}

// Overlaps reports whether the two half-open intervals intersect
func (p OpeningPeriod) Overlaps(other OpeningPeriod) bool {
	return p.start < other.end && other.start < p.end
}

// Contains reports whether timeOfDay is inside [start, end)
func (p OpeningPeriod) Contains(timeOfDay time.Duration) bool {
	return p.start <= timeOfDay && timeOfDay < p.end
}

// Compare orders periods by start, then end
func (p OpeningPeriod) Compare(other OpeningPeriod) int {
	switch {
	case p.start < other.start:
		return -1
	case p.start > other.start:
		return 1
	case p.end < other.end:
		return -1
	case p.end > other.end:
		return 1
	default:
		return 0
	}
}

func (p OpeningPeriod) String() string {
	return string(types.NewTimeStringFromDuration(p.start)) + "-" + string(types.NewTimeStringFromDuration(p.end))
}

// Операции над набором периодов одного дня.
// Набор всегда отсортирован по start и не содержит пересечений;
// каждая операция возвращает новый срез, исходный не меняется.

func addPeriod(periods []OpeningPeriod, period OpeningPeriod) Result[[]OpeningPeriod] {
	for _, existing := range periods {
		if existing.Overlaps(period) {
			return Fail[[]OpeningPeriod](RestaurantOpeningPeriodIntersects, existing.String())
		}
	}

	result := make([]OpeningPeriod, 0, len(periods)+1)
	result = append(result, periods...)
	result = append(result, period)
	sortPeriods(result)

	return Success(result)
}

func removePeriod(periods []OpeningPeriod, start time.Duration) []OpeningPeriod {
	result := make([]OpeningPeriod, 0, len(periods))
	for _, period := range periods {
		if period.start != start {
			result = append(result, period)
		}
	}
	return result
}

func findPeriodAtTime(periods []OpeningPeriod, timeOfDay time.Duration) (OpeningPeriod, bool) {
	for _, period := range periods {
		if period.Contains(timeOfDay) {
			return period, true
		}
	}
	return OpeningPeriod{}, false
}

func hasPeriodStartingAt(periods []OpeningPeriod, start time.Duration) bool {
	for _, period := range periods {
		if period.start == start {
			return true
		}
	}
	return false
}

// buildPeriods собирает набор из произвольного списка с проверкой пересечений
func buildPeriods(periods []OpeningPeriod) Result[[]OpeningPeriod] {
	result := make([]OpeningPeriod, 0, len(periods))
	for _, period := range periods {
		added := addPeriod(result, period)
		if added.IsFailure() {
			return added
		}
		result = added.Value()
	}
	return Success(result)
}

func copyPeriods(periods []OpeningPeriod) []OpeningPeriod {
	result := make([]OpeningPeriod, len(periods))
	copy(result, periods)
	return result
}

func sortPeriods(periods []OpeningPeriod) {
	sort.Slice(periods, func(i, j int) bool {
		return periods[i].Compare(periods[j]) < 0
	})
}
