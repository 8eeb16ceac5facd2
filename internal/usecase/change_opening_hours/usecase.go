package change_opening_hours

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/internal/infra/events"
	restaurantRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/restaurant"
)

// UseCase use case для всех изменений регулярных и отклоняющихся часов работы
type UseCase struct {
	restaurantRepo RestaurantRepository
	cache          RestaurantCache
	publisher      EventPublisher
	txManager      TransactionManager
	metrics        Metrics
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	restaurantRepo RestaurantRepository,
	cache RestaurantCache,
	publisher EventPublisher,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		restaurantRepo: restaurantRepo,
		cache:          cache,
		publisher:      publisher,
		txManager:      txManager,
		metrics:        metrics,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute загружает ресторан, применяет команду и сохраняет результат.
// Нарушения доменных правил и проверок доступа возвращаются как *domain.Failure.
// Загрузка и сохранение не объединены в одну транзакцию: при конкурентных
// изменениях одного ресторана побеждает последняя запись.
func (uc *UseCase) Execute(ctx context.Context, req *Request) error {
	// 1. Пустая команда - ошибка вызывающего кода, а не пользователя
	if req == nil || req.Command == nil {
		uc.logger.Error("ChangeOpeningHours: nil request or command")
		return ErrNilCommand
	}

	command := req.Command.Name()
	uc.logger.Info("ChangeOpeningHours: command=%s, restaurant=%s", command, req.RestaurantID)

	// 2. Проверка сессии и роли
	if req.User == nil {
		uc.logger.Warn("ChangeOpeningHours: command=%s without session", command)
		uc.metrics.RecordOpeningHoursChange(command, outcomeForbidden)
		return domain.ErrSessionExpired
	}
	if !req.User.Role.AtLeast(domain.RoleRestaurantAdmin) {
		uc.logger.Warn("ChangeOpeningHours: user=%s with role=%s is not allowed to run %s", req.User.ID, req.User.Role, command)
		uc.metrics.RecordOpeningHoursChange(command, outcomeForbidden)
		return domain.ErrForbidden
	}

	// 3. Загружаем ресторан
	restaurant, err := uc.restaurantRepo.FindByID(ctx, req.RestaurantID)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			uc.logger.Warn("ChangeOpeningHours: restaurant id=%s not found", req.RestaurantID)
			uc.metrics.RecordOpeningHoursChange(command, outcomeRejected)
			return domain.NewFailure(domain.RestaurantDoesNotExist, req.RestaurantID.String())
		}
		uc.logger.Error("ChangeOpeningHours: failed to load restaurant id=%s: %v", req.RestaurantID, err)
		uc.metrics.RecordOpeningHoursChange(command, outcomeError)
		return fmt.Errorf("%w: failed to load restaurant: %v", ErrInternal, err)
	}

	// 4. Администратор ресторана может менять только свои рестораны
	if req.User.Role == domain.RoleRestaurantAdmin && !restaurant.HasAdministrator(req.User.ID) {
		uc.logger.Warn("ChangeOpeningHours: user=%s is not an administrator of restaurant id=%s", req.User.ID, req.RestaurantID)
		uc.metrics.RecordOpeningHoursChange(command, outcomeForbidden)
		return domain.ErrForbidden
	}

	// 5. Применяем команду к агрегату
	result := req.Command.Apply(restaurant, req.User.ID)
	if result.IsFailure() {
		uc.logger.Warn("ChangeOpeningHours: command=%s rejected for restaurant id=%s: %v", command, req.RestaurantID, result.Failure())
		uc.metrics.RecordOpeningHoursChange(command, outcomeRejected)
		return result.Failure()
	}

	// 6. Сохраняем агрегат целиком в одной транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		return uc.restaurantRepo.Store(txCtx, restaurant)
	})
	if err != nil {
		uc.logger.Error("ChangeOpeningHours: failed to store restaurant id=%s: %v", req.RestaurantID, err)
		uc.metrics.RecordOpeningHoursChange(command, outcomeError)
		return fmt.Errorf("%w: failed to store restaurant: %v", ErrInternal, err)
	}

	// 7. Сбрасываем кеш и публикуем событие; запись уже прошла, поэтому ошибки только логируем
	if err := uc.cache.Invalidate(ctx, req.RestaurantID); err != nil {
		uc.logger.Warn("ChangeOpeningHours: failed to invalidate cache for restaurant id=%s: %v", req.RestaurantID, err)
	}

	event := events.NewOpeningHoursChanged(req.RestaurantID, command, req.User.ID, uc.timeProvider.Now())
	if err := uc.publisher.PublishOpeningHoursChanged(ctx, event); err != nil {
		uc.logger.Warn("ChangeOpeningHours: failed to publish event=%s: %v", event.EventID, err)
	}

	uc.metrics.RecordOpeningHoursChange(command, outcomeSuccess)
	uc.logger.Info("ChangeOpeningHours: command=%s applied to restaurant id=%s by user=%s", command, req.RestaurantID, req.User.ID)

	return nil
}
