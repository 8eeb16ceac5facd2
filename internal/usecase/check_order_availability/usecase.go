package check_order_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	restaurantRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/restaurant"
)

// UseCase use case для проверки, открыт ли ресторан и принимает ли он заказ
type UseCase struct {
	restaurantRepo RestaurantRepository
	cache          RestaurantCache
	metrics        Metrics
	location       *time.Location
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case.
// location - часовой пояс, в котором заданы часы работы ресторанов
func NewUseCase(
	restaurantRepo RestaurantRepository,
	cache RestaurantCache,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		restaurantRepo: restaurantRepo,
		cache:          cache,
		metrics:        metrics,
		location:       location,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет проверку возможности заказа
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckOrderAvailability: restaurant=%s", req.RestaurantID)

	// 1. Текущее время и время заказа в часовом поясе ресторанов
	now := uc.timeProvider.Now().In(uc.location)
	orderDateTime := now
	if req.OrderDateTime != nil {
		orderDateTime = req.OrderDateTime.In(uc.location)
	}

	// 2. Загружаем ресторан (сначала кеш, затем БД)
	restaurant, err := uc.loadRestaurant(ctx, req)
	if err != nil {
		return nil, err
	}

	// 3. Неактивный ресторан заказы не принимает
	isOrderPossible := restaurant.IsActive() && restaurant.IsOrderPossibleAt(orderDateTime, now)

	response := &Response{
		RestaurantID:       restaurant.ID(),
		Name:               restaurant.Name(),
		IsActive:           restaurant.IsActive(),
		IsOpen:             restaurant.IsOpen(now),
		IsOrderPossible:    isOrderPossible,
		SupportedOrderMode: restaurant.SupportedOrderMode(),
		OrderDateTime:      orderDateTime,
		OpeningHoursToday:  restaurant.OpeningHoursTodayText(now),
	}
	if period, ok := restaurant.FindOpeningPeriod(now); ok {
		response.CurrentPeriod = &period
	}

	uc.metrics.RecordOrderAvailabilityCheck(string(restaurant.SupportedOrderMode()), isOrderPossible)
	uc.logger.Info("CheckOrderAvailability: restaurant=%s, mode=%s, order_at=%s, is_open=%t, possible=%t",
		req.RestaurantID, restaurant.SupportedOrderMode(), orderDateTime.Format(time.RFC3339), response.IsOpen, isOrderPossible)

	return response, nil
}

func (uc *UseCase) loadRestaurant(ctx context.Context, req *Request) (*domain.Restaurant, error) {
	restaurant, found, err := uc.cache.Get(ctx, req.RestaurantID)
	if err != nil {
		uc.logger.Warn("CheckOrderAvailability: cache read failed for restaurant=%s: %v", req.RestaurantID, err)
	}
	if found {
		return restaurant, nil
	}

	restaurant, err = uc.restaurantRepo.FindByID(ctx, req.RestaurantID)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			uc.logger.Warn("CheckOrderAvailability: restaurant id=%s not found", req.RestaurantID)
			return nil, domain.NewFailure(domain.RestaurantDoesNotExist, req.RestaurantID.String())
		}
		uc.logger.Error("CheckOrderAvailability: failed to load restaurant id=%s: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: failed to load restaurant: %v", ErrInternal, err)
	}

	if err := uc.cache.Set(ctx, restaurant); err != nil {
		uc.logger.Warn("CheckOrderAvailability: cache write failed for restaurant=%s: %v", req.RestaurantID, err)
	}

	return restaurant, nil
}
