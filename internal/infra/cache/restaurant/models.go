package restaurant

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// entry формат снимка ресторана в Redis
type entry struct {
	ID                   uuid.UUID      `json:"id"`
	Name                 string         `json:"name"`
	IsActive             bool           `json:"isActive"`
	SupportedOrderMode   string         `json:"supportedOrderMode"`
	Administrators       []uuid.UUID    `json:"administrators"`
	RegularOpeningDays   []regularDay   `json:"regularOpeningDays"`
	DeviatingOpeningDays []deviatingDay `json:"deviatingOpeningDays"`
	CreatedOn            time.Time      `json:"createdOn"`
	CreatedBy            uuid.UUID      `json:"createdBy"`
	UpdatedOn            time.Time      `json:"updatedOn"`
	UpdatedBy            uuid.UUID      `json:"updatedBy"`
}

type regularDay struct {
	DayOfWeek int      `json:"dayOfWeek"`
	Periods   []period `json:"periods"`
}

type deviatingDay struct {
	Date    domain.Date `json:"date"`
	Status  string      `json:"status"`
	Periods []period    `json:"periods"`
}

type period struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func fromSnapshot(snapshot domain.RestaurantSnapshot) entry {
	e := entry{
		ID:                   snapshot.ID,
		Name:                 snapshot.Name,
		IsActive:             snapshot.IsActive,
		SupportedOrderMode:   string(snapshot.SupportedOrderMode),
		Administrators:       snapshot.Administrators,
		RegularOpeningDays:   make([]regularDay, 0, len(snapshot.RegularOpeningDays)),
		DeviatingOpeningDays: make([]deviatingDay, 0, len(snapshot.DeviatingOpeningDays)),
		CreatedOn:            snapshot.CreatedOn,
		CreatedBy:            snapshot.CreatedBy,
		UpdatedOn:            snapshot.UpdatedOn,
		UpdatedBy:            snapshot.UpdatedBy,
	}

	for _, day := range snapshot.RegularOpeningDays {
		e.RegularOpeningDays = append(e.RegularOpeningDays, regularDay{
			DayOfWeek: day.DayOfWeek,
			Periods:   fromPeriodSnapshots(day.OpeningPeriods),
		})
	}
	for _, day := range snapshot.DeviatingOpeningDays {
		e.DeviatingOpeningDays = append(e.DeviatingOpeningDays, deviatingDay{
			Date:    day.Date,
			Status:  string(day.Status),
			Periods: fromPeriodSnapshots(day.OpeningPeriods),
		})
	}

	return e
}

func (e entry) toSnapshot() domain.RestaurantSnapshot {
	snapshot := domain.RestaurantSnapshot{
		ID:                 e.ID,
		Name:               e.Name,
		IsActive:           e.IsActive,
		SupportedOrderMode: domain.SupportedOrderMode(e.SupportedOrderMode),
		Administrators:     e.Administrators,
		CreatedOn:          e.CreatedOn,
		CreatedBy:          e.CreatedBy,
		UpdatedOn:          e.UpdatedOn,
		UpdatedBy:          e.UpdatedBy,
	}

	for _, day := range e.RegularOpeningDays {
		snapshot.RegularOpeningDays = append(snapshot.RegularOpeningDays, domain.RegularOpeningDaySnapshot{
			DayOfWeek:      day.DayOfWeek,
			OpeningPeriods: toPeriodSnapshots(day.Periods),
		})
	}
	for _, day := range e.DeviatingOpeningDays {
		snapshot.DeviatingOpeningDays = append(snapshot.DeviatingOpeningDays, domain.DeviatingOpeningDaySnapshot{
			Date:           day.Date,
			Status:         domain.DeviatingOpeningDayStatus(day.Status),
			OpeningPeriods: toPeriodSnapshots(day.Periods),
		})
	}

	return snapshot
}

func fromPeriodSnapshots(snapshots []domain.OpeningPeriodSnapshot) []period {
	result := make([]period, 0, len(snapshots))
	for _, s := range snapshots {
		result = append(result, period{Start: s.StartMinutes, End: s.EndMinutes})
	}
	return result
}

func toPeriodSnapshots(periods []period) []domain.OpeningPeriodSnapshot {
	result := make([]domain.OpeningPeriodSnapshot, 0, len(periods))
	for _, p := range periods {
		result = append(result, domain.OpeningPeriodSnapshot{StartMinutes: p.Start, EndMinutes: p.End})
	}
	return result
}
