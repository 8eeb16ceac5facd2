package restaurants

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// RestaurantRepository интерфейс репозитория ресторанов
type RestaurantRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Restaurant, error)
	FindByAdministrator(ctx context.Context, userID uuid.UUID) ([]*domain.Restaurant, error)
	Store(ctx context.Context, restaurant *domain.Restaurant) error
}

// RestaurantCache интерфейс кеша ресторанов
type RestaurantCache interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Restaurant, bool, error)
	Set(ctx context.Context, restaurant *domain.Restaurant) error
	Invalidate(ctx context.Context, id uuid.UUID) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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
