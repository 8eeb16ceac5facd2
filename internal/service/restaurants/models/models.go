package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/pkg/types"
)

// Request модели

// CreateRestaurantRequest запрос на создание ресторана
type CreateRestaurantRequest struct {
	User           *domain.User `json:"-"`
	Name           string       `json:"name"`
	Administrators []uuid.UUID  `json:"administrators,omitempty"` // Пользователи, управляющие рестораном
}

// ChangeSupportedOrderModeRequest запрос на смену режима приема заказов
type ChangeSupportedOrderModeRequest struct {
	User               *domain.User              `json:"-"`
	RestaurantID       uuid.UUID                 `json:"-"`
	SupportedOrderMode domain.SupportedOrderMode `json:"supportedOrderMode"`
}

// SetActiveRequest запрос на активацию или деактивацию ресторана
type SetActiveRequest struct {
	User         *domain.User
	RestaurantID uuid.UUID
	Active       bool
}

// Response модели

// RestaurantResponse ресторан с часами работы
type RestaurantResponse struct {
	ID                    uuid.UUID                     `json:"id"`
	Name                  string                        `json:"name"`
	IsActive              bool                          `json:"isActive"`
	SupportedOrderMode    domain.SupportedOrderMode     `json:"supportedOrderMode"`
	Administrators        []uuid.UUID                   `json:"administrators"`
	RegularOpeningDays    []RegularOpeningDayResponse   `json:"regularOpeningDays"`
	DeviatingOpeningDays  []DeviatingOpeningDayResponse `json:"deviatingOpeningDays"`
	OpeningHoursText      string                        `json:"openingHoursText"`
	OpeningHoursTodayText string                        `json:"openingHoursTodayText"`
	CreatedOn             time.Time                     `json:"createdOn"`
	CreatedBy             uuid.UUID                     `json:"createdBy"`
	UpdatedOn             time.Time                     `json:"updatedOn"`
	UpdatedBy             uuid.UUID                     `json:"updatedBy"`
}

// RegularOpeningDayResponse dayOfWeek: 0 - понедельник, 6 - воскресенье
type RegularOpeningDayResponse struct {
	DayOfWeek      int                     `json:"dayOfWeek"`
	OpeningPeriods []OpeningPeriodResponse `json:"openingPeriods"`
}

type DeviatingOpeningDayResponse struct {
	Date           domain.Date                      `json:"date"`
	Status         domain.DeviatingOpeningDayStatus `json:"status"`
	OpeningPeriods []OpeningPeriodResponse          `json:"openingPeriods"`
}

// OpeningPeriodResponse время в формате "HH:MM", конец может быть больше 24:00
type OpeningPeriodResponse struct {
	Start types.TimeString `json:"start"`
	End   types.TimeString `json:"end"`
}

// RestaurantListResponse список ресторанов
type RestaurantListResponse struct {
	Restaurants []RestaurantResponse `json:"restaurants"`
	Total       int                  `json:"total"`
}

// FromDomainRestaurant конвертирует агрегат в ответ; now - текущее время в часовом поясе ресторанов
func FromDomainRestaurant(restaurant *domain.Restaurant, now time.Time) *RestaurantResponse {
	snapshot := restaurant.Snapshot()

	response := &RestaurantResponse{
		ID:                    snapshot.ID,
		Name:                  snapshot.Name,
		IsActive:              snapshot.IsActive,
		SupportedOrderMode:    snapshot.SupportedOrderMode,
		Administrators:        snapshot.Administrators,
		RegularOpeningDays:    make([]RegularOpeningDayResponse, 0, len(snapshot.RegularOpeningDays)),
		DeviatingOpeningDays:  make([]DeviatingOpeningDayResponse, 0, len(snapshot.DeviatingOpeningDays)),
		OpeningHoursText:      restaurant.OpeningHoursText(),
		OpeningHoursTodayText: restaurant.OpeningHoursTodayText(now),
		CreatedOn:             snapshot.CreatedOn,
		CreatedBy:             snapshot.CreatedBy,
		UpdatedOn:             snapshot.UpdatedOn,
		UpdatedBy:             snapshot.UpdatedBy,
	}
	if response.Administrators == nil {
		response.Administrators = []uuid.UUID{}
	}

	for _, day := range snapshot.RegularOpeningDays {
		response.RegularOpeningDays = append(response.RegularOpeningDays, RegularOpeningDayResponse{
			DayOfWeek:      day.DayOfWeek,
			OpeningPeriods: fromPeriodSnapshots(day.OpeningPeriods),
		})
	}
	for _, day := range snapshot.DeviatingOpeningDays {
		response.DeviatingOpeningDays = append(response.DeviatingOpeningDays, DeviatingOpeningDayResponse{
			Date:           day.Date,
			Status:         day.Status,
			OpeningPeriods: fromPeriodSnapshots(day.OpeningPeriods),
		})
	}

	return response
}

func fromPeriodSnapshots(periods []domain.OpeningPeriodSnapshot) []OpeningPeriodResponse {
	result := make([]OpeningPeriodResponse, 0, len(periods))
	for _, period := range periods {
		result = append(result, OpeningPeriodResponse{
			Start: types.NewTimeStringFromDuration(time.Duration(period.StartMinutes) * time.Minute),
			End:   types.NewTimeStringFromDuration(time.Duration(period.EndMinutes) * time.Minute),
		})
	}
	return result
}
