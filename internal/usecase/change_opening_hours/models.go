package change_opening_hours

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// Request модель запроса на изменение часов работы
type Request struct {
	RestaurantID uuid.UUID    // ID ресторана
	User         *domain.User // Текущий пользователь, nil если сессии нет
	Command      Command      // Изменение, применяемое к ресторану
}

// Исходы для метрики изменений часов работы
const (
	outcomeSuccess   = "success"
	outcomeRejected  = "rejected"
	outcomeForbidden = "forbidden"
	outcomeError     = "error"
)
