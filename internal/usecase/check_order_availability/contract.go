package check_order_availability

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// RestaurantRepository интерфейс репозитория ресторанов
type RestaurantRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Restaurant, error)
}

// RestaurantCache интерфейс кеша ресторанов
type RestaurantCache interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Restaurant, bool, error)
	Set(ctx context.Context, restaurant *domain.Restaurant) error
}

// Metrics интерфейс для записи метрик
type Metrics interface {
	RecordOrderAvailabilityCheck(mode string, possible bool)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
