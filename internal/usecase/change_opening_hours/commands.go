package change_opening_hours

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// Command одно изменение часов работы ресторана
type Command interface {
	Name() string
	Apply(restaurant *domain.Restaurant, changedBy uuid.UUID) domain.Result[bool]
}

type AddRegularOpeningPeriod struct {
	DayOfWeek int
	Start     time.Duration
	End       time.Duration
}

func (c AddRegularOpeningPeriod) Name() string { return "AddRegularOpeningPeriod" }

func (c AddRegularOpeningPeriod) Apply(restaurant *domain.Restaurant, changedBy uuid.UUID) domain.Result[bool] {
	period := domain.NewOpeningPeriod(c.Start, c.End)
	if period.IsFailure() {
		return domain.FailWith[bool](period.Failure())
	}
	return restaurant.AddRegularOpeningPeriod(c.DayOfWeek, period.Value(), changedBy)
}

type RemoveRegularOpeningPeriod struct {
	DayOfWeek int
	Start     time.Duration
}

func (c RemoveRegularOpeningPeriod) Name() string { return "RemoveRegularOpeningPeriod" }

func (c RemoveRegularOpeningPeriod) Apply(restaurant *domain.Restaurant, changedBy uuid.UUID) domain.Result[bool] {
	return restaurant.RemoveRegularOpeningPeriod(c.DayOfWeek, c.Start, changedBy)
}

// ChangeRegularOpeningPeriod заменяет период, начинающийся в OldStart
type ChangeRegularOpeningPeriod struct {
	DayOfWeek int
	OldStart  time.Duration
	Start     time.Duration
	End       time.Duration
}

func (c ChangeRegularOpeningPeriod) Name() string { return "ChangeRegularOpeningPeriod" }

func (c ChangeRegularOpeningPeriod) Apply(restaurant *domain.Restaurant, changedBy uuid.UUID) domain.Result[bool] {
	period := domain.NewOpeningPeriod(c.Start, c.End)
	if period.IsFailure() {
		return domain.FailWith[bool](period.Failure())
	}
	return restaurant.ChangeRegularOpeningPeriod(c.DayOfWeek, c.OldStart, period.Value(), changedBy)
}

type AddDeviatingOpeningDay struct {
	Date   domain.Date
	Status domain.DeviatingOpeningDayStatus
}

func (c AddDeviatingOpeningDay) Name() string { return "AddDeviatingOpeningDay" }

func (c AddDeviatingOpeningDay) Apply(restaurant *domain.Restaurant, changedBy uuid.UUID) domain.Result[bool] {
	return restaurant.AddDeviatingOpeningDay(c.Date, c.Status, changedBy)
}

type ChangeDeviatingOpeningDayStatus struct {
	Date   domain.Date
	Status domain.DeviatingOpeningDayStatus
}

func (c ChangeDeviatingOpeningDayStatus) Name() string { return "ChangeDeviatingOpeningDayStatus" }

func (c ChangeDeviatingOpeningDayStatus) Apply(restaurant *domain.Restaurant, changedBy uuid.UUID) domain.Result[bool] {
	return restaurant.ChangeDeviatingOpeningDayStatus(c.Date, c.Status, changedBy)
}

type RemoveDeviatingOpeningDay struct {
	Date domain.Date
}

func (c RemoveDeviatingOpeningDay) Name() string { return "RemoveDeviatingOpeningDay" }

func (c RemoveDeviatingOpeningDay) Apply(restaurant *domain.Restaurant, changedBy uuid.UUID) domain.Result[bool] {
	return restaurant.RemoveDeviatingOpeningDay(c.Date, changedBy)
}

type AddDeviatingOpeningPeriod struct {
	Date  domain.Date
	Start time.Duration
	End   time.Duration
}

func (c AddDeviatingOpeningPeriod) Name() string { return "AddDeviatingOpeningPeriod" }

func (c AddDeviatingOpeningPeriod) Apply(restaurant *domain.Restaurant, changedBy uuid.UUID) domain.Result[bool] {
	period := domain.NewOpeningPeriod(c.Start, c.End)
	if period.IsFailure() {
		return domain.FailWith[bool](period.Failure())
	}
	return restaurant.AddDeviatingOpeningPeriod(c.Date, period.Value(), changedBy)
}

type ChangeDeviatingOpeningPeriod struct {
	Date     domain.Date
	OldStart time.Duration
	Start    time.Duration
	End      time.Duration
}

func (c ChangeDeviatingOpeningPeriod) Name() string { return "ChangeDeviatingOpeningPeriod" }

func (c ChangeDeviatingOpeningPeriod) Apply(restaurant *domain.Restaurant, changedBy uuid.UUID) domain.Result[bool] {
	period := domain.NewOpeningPeriod(c.Start, c.End)
	if period.IsFailure() {
		return domain.FailWith[bool](period.Failure())
	}
	return restaurant.ChangeDeviatingOpeningPeriod(c.Date, c.OldStart, period.Value(), changedBy)
}

type RemoveDeviatingOpeningPeriod struct {
	Date  domain.Date
	Start time.Duration
}

func (c RemoveDeviatingOpeningPeriod) Name() string { return "RemoveDeviatingOpeningPeriod" }

func (c RemoveDeviatingOpeningPeriod) Apply(restaurant *domain.Restaurant, changedBy uuid.UUID) domain.Result[bool] {
	return restaurant.RemoveDeviatingOpeningPeriod(c.Date, c.Start, changedBy)
}

type RemoveAllOpeningDays struct{}

func (c RemoveAllOpeningDays) Name() string { return "RemoveAllOpeningDays" }

func (c RemoveAllOpeningDays) Apply(restaurant *domain.Restaurant, changedBy uuid.UUID) domain.Result[bool] {
	return restaurant.RemoveAllOpeningDays(changedBy)
}
