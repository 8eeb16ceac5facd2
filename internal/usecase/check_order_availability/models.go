package check_order_availability

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// Request модель запроса на проверку возможности заказа
type Request struct {
	RestaurantID  uuid.UUID  // ID ресторана
	OrderDateTime *time.Time // Желаемое время заказа, nil - заказ на "сейчас"
}

// Response модель ответа
type Response struct {
	RestaurantID       uuid.UUID
	Name               string
	IsActive           bool
	IsOpen             bool                      // Открыт ли ресторан сейчас
	IsOrderPossible    bool                      // Можно ли сделать заказ на OrderDateTime
	SupportedOrderMode domain.SupportedOrderMode // Режим приема заказов
	OrderDateTime      time.Time                 // Время заказа в часовом поясе ресторанов
	OpeningHoursToday  string                    // Часы работы на текущий рабочий день, пусто если закрыт
	CurrentPeriod      *domain.OpeningPeriod     // Период, который идет сейчас
}
