package restaurant

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// restaurantRow строка таблицы restaurants
type restaurantRow struct {
	ID                 uuid.UUID
	Name               string
	IsActive           bool
	SupportedOrderMode string
	CreatedOn          time.Time
	CreatedBy          uuid.UUID
	UpdatedOn          time.Time
	UpdatedBy          uuid.UUID
}

type regularPeriodRow struct {
	DayOfWeek    int
	StartMinutes int
	EndMinutes   int
}

type deviatingDayRow struct {
	Date   time.Time
	Status string
}

type deviatingPeriodRow struct {
	Date         time.Time
	StartMinutes int
	EndMinutes   int
}

// toSnapshot собирает снимок агрегата из строк дочерних таблиц
func toSnapshot(
	row restaurantRow,
	administrators []uuid.UUID,
	regularPeriods []regularPeriodRow,
	deviatingDays []deviatingDayRow,
	deviatingPeriods []deviatingPeriodRow,
) domain.RestaurantSnapshot {
	snapshot := domain.RestaurantSnapshot{
		ID:                 row.ID,
		Name:               row.Name,
		IsActive:           row.IsActive,
		SupportedOrderMode: domain.SupportedOrderMode(row.SupportedOrderMode),
		Administrators:     administrators,
		CreatedOn:          row.CreatedOn,
		CreatedBy:          row.CreatedBy,
		UpdatedOn:          row.UpdatedOn,
		UpdatedBy:          row.UpdatedBy,
	}

	regularIndex := make(map[int]int)
	for _, period := range regularPeriods {
		idx, ok := regularIndex[period.DayOfWeek]
		if !ok {
			idx = len(snapshot.RegularOpeningDays)
			regularIndex[period.DayOfWeek] = idx
			snapshot.RegularOpeningDays = append(snapshot.RegularOpeningDays, domain.RegularOpeningDaySnapshot{
				DayOfWeek: period.DayOfWeek,
			})
		}
		snapshot.RegularOpeningDays[idx].OpeningPeriods = append(snapshot.RegularOpeningDays[idx].OpeningPeriods,
			domain.OpeningPeriodSnapshot{StartMinutes: period.StartMinutes, EndMinutes: period.EndMinutes})
	}

	deviatingIndex := make(map[domain.Date]int, len(deviatingDays))
	for _, day := range deviatingDays {
		date := domain.DateOf(day.Date)
		deviatingIndex[date] = len(snapshot.DeviatingOpeningDays)
		snapshot.DeviatingOpeningDays = append(snapshot.DeviatingOpeningDays, domain.DeviatingOpeningDaySnapshot{
			Date:   date,
			Status: domain.DeviatingOpeningDayStatus(day.Status),
		})
	}
	for _, period := range deviatingPeriods {
		idx, ok := deviatingIndex[domain.DateOf(period.Date)]
		if !ok {
			continue
		}
		snapshot.DeviatingOpeningDays[idx].OpeningPeriods = append(snapshot.DeviatingOpeningDays[idx].OpeningPeriods,
			domain.OpeningPeriodSnapshot{StartMinutes: period.StartMinutes, EndMinutes: period.EndMinutes})
	}

	return snapshot
}

// dateValue дата для колонки DATE
func dateValue(date domain.Date) time.Time {
	return date.Time(time.UTC)
}
