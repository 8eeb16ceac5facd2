package events

import (
	"time"

	"github.com/google/uuid"
)

// OpeningHoursChanged публикуется после каждой успешно сохраненной команды изменения часов работы
type OpeningHoursChanged struct {
	EventID      uuid.UUID `json:"eventId"`
	RestaurantID uuid.UUID `json:"restaurantId"`
	Command      string    `json:"command"`
	ChangedBy    uuid.UUID `json:"changedBy"`
	OccurredAt   time.Time `json:"occurredAt"`
}

// NewOpeningHoursChanged создает событие с новым идентификатором
func NewOpeningHoursChanged(restaurantID uuid.UUID, command string, changedBy uuid.UUID, occurredAt time.Time) OpeningHoursChanged {
	return OpeningHoursChanged{
		EventID:      uuid.New(),
		RestaurantID: restaurantID,
		Command:      command,
		ChangedBy:    changedBy,
		OccurredAt:   occurredAt.UTC(),
	}
}
