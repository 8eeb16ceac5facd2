package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// RestaurantSnapshot is the plain-data form of a Restaurant used by storage and cache
type RestaurantSnapshot struct {
	ID                   uuid.UUID
	Name                 string
	IsActive             bool
	SupportedOrderMode   SupportedOrderMode
	Administrators       []uuid.UUID
	RegularOpeningDays   []RegularOpeningDaySnapshot
	DeviatingOpeningDays []DeviatingOpeningDaySnapshot
	CreatedOn            time.Time
	CreatedBy            uuid.UUID
	UpdatedOn            time.Time
	UpdatedBy            uuid.UUID
}

type RegularOpeningDaySnapshot struct {
	DayOfWeek      int
	OpeningPeriods []OpeningPeriodSnapshot
}

type DeviatingOpeningDaySnapshot struct {
	Date           Date
	Status         DeviatingOpeningDayStatus
	OpeningPeriods []OpeningPeriodSnapshot
}

type OpeningPeriodSnapshot struct {
	StartMinutes int
	EndMinutes   int
}

// Snapshot exports the aggregate state, weekdays and dates in ascending order
func (r *Restaurant) Snapshot() RestaurantSnapshot {
	snapshot := RestaurantSnapshot{
		ID:                   r.id,
		Name:                 r.name,
		IsActive:             r.isActive,
		SupportedOrderMode:   r.supportedOrderMode,
		Administrators:       r.Administrators(),
		RegularOpeningDays:   make([]RegularOpeningDaySnapshot, 0, len(r.regularOpeningDays)),
		DeviatingOpeningDays: make([]DeviatingOpeningDaySnapshot, 0, len(r.deviatingOpeningDays)),
		CreatedOn:            r.createdOn,
		CreatedBy:            r.createdBy,
		UpdatedOn:            r.updatedOn,
		UpdatedBy:            r.updatedBy,
	}

	for _, day := range r.regularOpeningDays {
		snapshot.RegularOpeningDays = append(snapshot.RegularOpeningDays, RegularOpeningDaySnapshot{
			DayOfWeek:      day.dayOfWeek,
			OpeningPeriods: snapshotPeriods(day.openingPeriods),
		})
	}
	sort.Slice(snapshot.RegularOpeningDays, func(i, j int) bool {
		return snapshot.RegularOpeningDays[i].DayOfWeek < snapshot.RegularOpeningDays[j].DayOfWeek
	})

	for _, day := range r.deviatingOpeningDays {
		snapshot.DeviatingOpeningDays = append(snapshot.DeviatingOpeningDays, DeviatingOpeningDaySnapshot{
			Date:           day.date,
			Status:         day.status,
			OpeningPeriods: snapshotPeriods(day.openingPeriods),
		})
	}
	sort.Slice(snapshot.DeviatingOpeningDays, func(i, j int) bool {
		return snapshot.DeviatingOpeningDays[i].Date.Before(snapshot.DeviatingOpeningDays[j].Date)
	})

	return snapshot
}

// RestoreRestaurant rebuilds the aggregate, validating every period again.
// Returns a *Failure when the stored data breaks an invariant.
func RestoreRestaurant(snapshot RestaurantSnapshot) (*Restaurant, error) {
	mode := snapshot.SupportedOrderMode
	if mode == "" {
		mode = OrderModeOnlyPhone
	}
	if !mode.IsValid() {
		return nil, NewFailure(FieldValueInvalid, "supportedOrderMode", string(mode))
	}

	r := &Restaurant{
		id:                   snapshot.ID,
		name:                 snapshot.Name,
		isActive:             snapshot.IsActive,
		supportedOrderMode:   mode,
		administrators:       make(map[uuid.UUID]struct{}, len(snapshot.Administrators)),
		regularOpeningDays:   make(map[int]RegularOpeningDay, len(snapshot.RegularOpeningDays)),
		deviatingOpeningDays: make(map[Date]DeviatingOpeningDay, len(snapshot.DeviatingOpeningDays)),
		createdOn:            snapshot.CreatedOn,
		createdBy:            snapshot.CreatedBy,
		updatedOn:            snapshot.UpdatedOn,
		updatedBy:            snapshot.UpdatedBy,
	}

	for _, userID := range snapshot.Administrators {
		r.administrators[userID] = struct{}{}
	}

	for _, daySnapshot := range snapshot.RegularOpeningDays {
		periods, err := restorePeriods(daySnapshot.OpeningPeriods)
		if err != nil {
			return nil, err
		}
		// Пустой регулярный день эквивалентен отсутствию записи
		if len(periods) == 0 {
			continue
		}
		day := NewRegularOpeningDay(daySnapshot.DayOfWeek, periods)
		if day.IsFailure() {
			return nil, day.Err()
		}
		r.regularOpeningDays[daySnapshot.DayOfWeek] = day.Value()
	}

	for _, daySnapshot := range snapshot.DeviatingOpeningDays {
		periods, err := restorePeriods(daySnapshot.OpeningPeriods)
		if err != nil {
			return nil, err
		}
		day := NewDeviatingOpeningDay(daySnapshot.Date, daySnapshot.Status, periods)
		if day.IsFailure() {
			return nil, day.Err()
		}
		r.deviatingOpeningDays[daySnapshot.Date] = day.Value()
	}

	return r, nil
}

func snapshotPeriods(periods []OpeningPeriod) []OpeningPeriodSnapshot {
	result := make([]OpeningPeriodSnapshot, 0, len(periods))
	for _, period := range periods {
		result = append(result, OpeningPeriodSnapshot{
			StartMinutes: period.StartMinutes(),
			EndMinutes:   period.EndMinutes(),
		})
	}
	return result
}

func restorePeriods(snapshots []OpeningPeriodSnapshot) ([]OpeningPeriod, error) {
	result := make([]OpeningPeriod, 0, len(snapshots))
	for _, snapshot := range snapshots {
		period := NewOpeningPeriodFromMinutes(snapshot.StartMinutes, snapshot.EndMinutes)
		if period.IsFailure() {
			return nil, period.Err()
		}
		result = append(result, period.Value())
	}
	return result, nil
}
