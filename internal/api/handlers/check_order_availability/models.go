package check_order_availability

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	checkOrderAvailability "github.com/m04kA/SMC-RestaurantService/internal/usecase/check_order_availability"
	"github.com/m04kA/SMC-RestaurantService/pkg/types"
)

// OrderAvailabilityResponse HTTP ответ на проверку возможности заказа
type OrderAvailabilityResponse struct {
	RestaurantID       uuid.UUID                 `json:"restaurantId"`
	Name               string                    `json:"name"`
	IsActive           bool                      `json:"isActive"`
	IsOpen             bool                      `json:"isOpen"`
	IsOrderPossible    bool                      `json:"isOrderPossible"`
	SupportedOrderMode domain.SupportedOrderMode `json:"supportedOrderMode"`
	OrderDateTime      time.Time                 `json:"orderDateTime"`
	OpeningHoursToday  string                    `json:"openingHoursToday"`
	CurrentPeriod      *PeriodResponse           `json:"currentPeriod,omitempty"`
}

type PeriodResponse struct {
	Start types.TimeString `json:"start"`
	End   types.TimeString `json:"end"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *checkOrderAvailability.Response) *OrderAvailabilityResponse {
	result := &OrderAvailabilityResponse{
		RestaurantID:       resp.RestaurantID,
		Name:               resp.Name,
		IsActive:           resp.IsActive,
		IsOpen:             resp.IsOpen,
		IsOrderPossible:    resp.IsOrderPossible,
		SupportedOrderMode: resp.SupportedOrderMode,
		OrderDateTime:      resp.OrderDateTime,
		OpeningHoursToday:  resp.OpeningHoursToday,
	}
	if resp.CurrentPeriod != nil {
		result.CurrentPeriod = &PeriodResponse{
			Start: types.NewTimeStringFromDuration(resp.CurrentPeriod.Start()),
			End:   types.NewTimeStringFromDuration(resp.CurrentPeriod.End()),
		}
	}
	return result
}
