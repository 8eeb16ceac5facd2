package restaurants

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	restaurantRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/restaurant"
	"github.com/m04kA/SMC-RestaurantService/internal/service/restaurants/models"
)

// Service сервис для работы с ресторанами (без часов работы, см. usecase/change_opening_hours)
type Service struct {
	restaurantRepo RestaurantRepository
	cache          RestaurantCache
	txManager      TransactionManager
	location       *time.Location
	timeProvider   TimeProvider
	logger         Logger
}

// NewService создает новый экземпляр сервиса ресторанов
func NewService(
	restaurantRepo RestaurantRepository,
	cache RestaurantCache,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		restaurantRepo: restaurantRepo,
		cache:          cache,
		txManager:      txManager,
		location:       location,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Create создает новый неактивный ресторан
// Доступно только системному администратору
func (s *Service) Create(ctx context.Context, req *models.CreateRestaurantRequest) (*models.RestaurantResponse, error) {
	// 1. Проверяем права доступа
	if err := s.requireRole(req.User, domain.RoleSystemAdmin); err != nil {
		s.logger.Warn("Create: access denied: %v", err)
		return nil, err
	}

	s.logger.Info("Create: creating restaurant name=%q by user=%s", req.Name, req.User.ID)

	// 2. Создаем агрегат и назначаем администраторов
	created := domain.NewRestaurant(uuid.New(), req.Name, req.User.ID)
	if created.IsFailure() {
		s.logger.Warn("Create: validation failed: %v", created.Failure())
		return nil, created.Failure()
	}
	restaurant := created.Value()

	for _, adminID := range req.Administrators {
		if result := restaurant.AddAdministrator(adminID, req.User.ID); result.IsFailure() {
			s.logger.Warn("Create: failed to add administrator=%s: %v", adminID, result.Failure())
			return nil, result.Failure()
		}
	}

	// 3. Сохраняем
	if err := s.store(ctx, restaurant); err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created restaurant id=%s", restaurant.ID())
	return models.FromDomainRestaurant(restaurant, s.now()), nil
}

// GetByID получает ресторан с часами работы
// Публичный метод - доступен всем
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.RestaurantResponse, error) {
	s.logger.Info("GetByID: fetching restaurant id=%s", id)

	restaurant, err := s.load(ctx, id, true)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched restaurant id=%s", id)
	return models.FromDomainRestaurant(restaurant, s.now()), nil
}

// GetByAdministrator получает рестораны, которыми управляет пользователь
func (s *Service) GetByAdministrator(ctx context.Context, user *domain.User) (*models.RestaurantListResponse, error) {
	if err := s.requireRole(user, domain.RoleRestaurantAdmin); err != nil {
		s.logger.Warn("GetByAdministrator: access denied: %v", err)
		return nil, err
	}

	s.logger.Info("GetByAdministrator: fetching restaurants for user=%s", user.ID)

	restaurants, err := s.restaurantRepo.FindByAdministrator(ctx, user.ID)
	if err != nil {
		s.logger.Error("GetByAdministrator: repository error for user=%s: %v", user.ID, err)
		return nil, fmt.Errorf("%w: GetByAdministrator - repository error: %v", ErrInternal, err)
	}

	now := s.now()
	response := &models.RestaurantListResponse{
		Restaurants: make([]models.RestaurantResponse, 0, len(restaurants)),
		Total:       len(restaurants),
	}
	for _, restaurant := range restaurants {
		response.Restaurants = append(response.Restaurants, *models.FromDomainRestaurant(restaurant, now))
	}

	s.logger.Info("GetByAdministrator: found %d restaurants for user=%s", response.Total, user.ID)
	return response, nil
}

// ChangeSupportedOrderMode меняет режим приема заказов
// Доступно администратору ресторана и системному администратору
func (s *Service) ChangeSupportedOrderMode(ctx context.Context, req *models.ChangeSupportedOrderModeRequest) (*models.RestaurantResponse, error) {
	// 1. Проверяем роль
	if err := s.requireRole(req.User, domain.RoleRestaurantAdmin); err != nil {
		s.logger.Warn("ChangeSupportedOrderMode: access denied: %v", err)
		return nil, err
	}

	s.logger.Info("ChangeSupportedOrderMode: restaurant=%s, mode=%s by user=%s", req.RestaurantID, req.SupportedOrderMode, req.User.ID)

	// 2. Загружаем ресторан и проверяем, что пользователь им управляет
	restaurant, err := s.load(ctx, req.RestaurantID, false)
	if err != nil {
		return nil, err
	}
	if req.User.Role == domain.RoleRestaurantAdmin && !restaurant.HasAdministrator(req.User.ID) {
		s.logger.Warn("ChangeSupportedOrderMode: user=%s is not an administrator of restaurant id=%s", req.User.ID, req.RestaurantID)
		return nil, domain.ErrForbidden
	}

	// 3. Меняем режим
	if result := restaurant.ChangeSupportedOrderMode(req.SupportedOrderMode, req.User.ID); result.IsFailure() {
		s.logger.Warn("ChangeSupportedOrderMode: rejected: %v", result.Failure())
		return nil, result.Failure()
	}

	// 4. Сохраняем и сбрасываем кеш
	if err := s.store(ctx, restaurant); err != nil {
		s.logger.Error("ChangeSupportedOrderMode: repository error: %v", err)
		return nil, fmt.Errorf("%w: ChangeSupportedOrderMode - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ChangeSupportedOrderMode: restaurant id=%s now uses mode=%s", req.RestaurantID, req.SupportedOrderMode)
	return models.FromDomainRestaurant(restaurant, s.now()), nil
}

// SetActive активирует или деактивирует ресторан
// Доступно только системному администратору
func (s *Service) SetActive(ctx context.Context, req *models.SetActiveRequest) (*models.RestaurantResponse, error) {
	if err := s.requireRole(req.User, domain.RoleSystemAdmin); err != nil {
		s.logger.Warn("SetActive: access denied: %v", err)
		return nil, err
	}

	s.logger.Info("SetActive: restaurant=%s, active=%t by user=%s", req.RestaurantID, req.Active, req.User.ID)

	restaurant, err := s.load(ctx, req.RestaurantID, false)
	if err != nil {
		return nil, err
	}

	if req.Active {
		restaurant.Activate(req.User.ID)
	} else {
		restaurant.Deactivate(req.User.ID)
	}

	if err := s.store(ctx, restaurant); err != nil {
		s.logger.Error("SetActive: repository error: %v", err)
		return nil, fmt.Errorf("%w: SetActive - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetActive: restaurant id=%s active=%t", req.RestaurantID, req.Active)
	return models.FromDomainRestaurant(restaurant, s.now()), nil
}

// requireRole nil пользователь - истекшая сессия, недостаточная роль - запрет
func (s *Service) requireRole(user *domain.User, role domain.Role) error {
	if user == nil {
		return domain.ErrSessionExpired
	}
	if !user.Role.AtLeast(role) {
		return domain.ErrForbidden
	}
	return nil
}

// load читает ресторан; для чтения без изменений используется кеш
func (s *Service) load(ctx context.Context, id uuid.UUID, useCache bool) (*domain.Restaurant, error) {
	if useCache {
		restaurant, found, err := s.cache.Get(ctx, id)
		if err != nil {
			s.logger.Warn("load: cache read failed for restaurant=%s: %v", id, err)
		}
		if found {
			return restaurant, nil
		}
	}

	restaurant, err := s.restaurantRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			s.logger.Warn("load: restaurant id=%s not found", id)
			return nil, domain.NewFailure(domain.RestaurantDoesNotExist, id.String())
		}
		s.logger.Error("load: repository error for restaurant id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: load - repository error: %v", ErrInternal, err)
	}

	if useCache {
		if err := s.cache.Set(ctx, restaurant); err != nil {
			s.logger.Warn("load: cache write failed for restaurant=%s: %v", id, err)
		}
	}

	return restaurant, nil
}

// store сохраняет ресторан в транзакции и сбрасывает кеш
func (s *Service) store(ctx context.Context, restaurant *domain.Restaurant) error {
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.restaurantRepo.Store(txCtx, restaurant)
	})
	if err != nil {
		return err
	}

	if err := s.cache.Invalidate(ctx, restaurant.ID()); err != nil {
		s.logger.Warn("store: failed to invalidate cache for restaurant=%s: %v", restaurant.ID(), err)
	}
	return nil
}

func (s *Service) now() time.Time {
	return s.timeProvider.Now().In(s.location)
}
