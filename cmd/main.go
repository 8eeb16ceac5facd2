package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	changeOpeningHoursHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/change_opening_hours"
	changeRestaurantActivationHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/change_restaurant_activation"
	changeSupportedOrderModeHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/change_supported_order_mode"
	checkOrderAvailabilityHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/check_order_availability"
	createRestaurantHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/create_restaurant"
	getAdminRestaurantsHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/get_admin_restaurants"
	getRestaurantHandler "github.com/m04kA/SMC-RestaurantService/internal/api/handlers/get_restaurant"
	"github.com/m04kA/SMC-RestaurantService/internal/api/middleware"
	"github.com/m04kA/SMC-RestaurantService/internal/config"
	restaurantCache "github.com/m04kA/SMC-RestaurantService/internal/infra/cache/restaurant"
	"github.com/m04kA/SMC-RestaurantService/internal/infra/events"
	restaurantRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/restaurant"
	restaurantsService "github.com/m04kA/SMC-RestaurantService/internal/service/restaurants"
	changeOpeningHoursUC "github.com/m04kA/SMC-RestaurantService/internal/usecase/change_opening_hours"
	checkOrderAvailabilityUC "github.com/m04kA/SMC-RestaurantService/internal/usecase/check_order_availability"
	"github.com/m04kA/SMC-RestaurantService/migrations"
	"github.com/m04kA/SMC-RestaurantService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RestaurantService/pkg/logger"
	"github.com/m04kA/SMC-RestaurantService/pkg/metrics"
	"github.com/m04kA/SMC-RestaurantService/pkg/txmanager"
)

// eventPublisher Kafka publisher или заглушка
type eventPublisher interface {
	changeOpeningHoursUC.EventPublisher
	Close() error
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-RestaurantService...")
	log.Info("Configuration loaded from config.toml")

	location, err := cfg.Ordering.Location()
	if err != nil {
		log.Fatal("Invalid ordering timezone: %v", err)
	}
	log.Info("Restaurant time zone: %s", location)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Обёртка с метриками запросов; без метрик работает как обычный *sql.DB
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Применяем миграции
	if cfg.Database.AutoMigrate {
		if err := migrations.Up(context.Background(), wrappedDB, log); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}

	// Кеш ресторанов в Redis (если включен)
	var cache restaurantsService.RestaurantCache = restaurantCache.NopCache{}
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Warn("Redis is unavailable at %s, continuing without cache: %v", cfg.Redis.Addr, err)
		} else {
			cache = restaurantCache.NewCache(redisClient, cfg.Redis.KeyPrefix, cfg.Redis.TTLDuration())
			log.Info("Redis cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTL)
		}
	}

	// Публикация событий в Kafka (если включена)
	var publisher eventPublisher = events.NopPublisher{}
	if cfg.Kafka.Enabled {
		writer := events.NewKafkaWriter(cfg.Kafka.Brokers, cfg.Kafka.Topic, time.Duration(cfg.Kafka.WriteTimeout)*time.Second)
		publisher = events.NewPublisher(writer)
		log.Info("Kafka publisher enabled (brokers=%v, topic=%s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	}
	defer publisher.Close()

	// Инициализируем репозиторий и transaction manager
	restaurantRepository := restaurantRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем сервисы
	restaurantSvc := restaurantsService.NewService(
		restaurantRepository,
		cache,
		txMgr,
		location,
		log,
	)

	// Инициализируем use cases
	changeOpeningHoursUseCase := changeOpeningHoursUC.NewUseCase(
		restaurantRepository,
		cache,
		publisher,
		txMgr,
		metricsCollector,
		log,
	)

	checkOrderAvailabilityUseCase := checkOrderAvailabilityUC.NewUseCase(
		restaurantRepository,
		cache,
		metricsCollector,
		location,
		log,
	)

	// Инициализируем handlers
	getRestaurant := getRestaurantHandler.NewHandler(restaurantSvc, log)
	checkOrderAvailability := checkOrderAvailabilityHandler.NewHandler(checkOrderAvailabilityUseCase, log)
	getAdminRestaurants := getAdminRestaurantsHandler.NewHandler(restaurantSvc, log)
	changeOpeningHours := changeOpeningHoursHandler.NewHandler(changeOpeningHoursUseCase, log)
	changeSupportedOrderMode := changeSupportedOrderModeHandler.NewHandler(restaurantSvc, log)
	createRestaurant := createRestaurantHandler.NewHandler(restaurantSvc, log)
	changeRestaurantActivation := changeRestaurantActivationHandler.NewHandler(restaurantSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Ресторан с часами работы
	api.HandleFunc("/restaurants/{restaurantId}", getRestaurant.Handle).Methods(http.MethodGet)

	// Открыт ли ресторан и можно ли сделать заказ
	api.HandleFunc("/restaurants/{restaurantId}/order-availability",
		checkOrderAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID и X-User-Role headers)
	// ============================================================

	// --- Администратор ресторана ---
	restaurantAdmin := api.PathPrefix("/restaurantadmin").Subrouter()
	restaurantAdmin.Use(middleware.Auth)

	// Рестораны текущего администратора
	restaurantAdmin.HandleFunc("/myrestaurants", getAdminRestaurants.Handle).Methods(http.MethodGet)

	// Режим приема заказов
	restaurantAdmin.HandleFunc("/restaurants/{restaurantId}/changesupportedordermode",
		changeSupportedOrderMode.Handle).Methods(http.MethodPost)

	// Изменение часов работы (addopeningperiod, adddeviatingopeningday, ...)
	restaurantAdmin.HandleFunc("/restaurants/{restaurantId}/{action:"+changeOpeningHoursHandler.ActionsPattern()+"}",
		changeOpeningHours.Handle).Methods(http.MethodPost)

	// --- Системный администратор ---
	systemAdmin := api.PathPrefix("/systemadmin").Subrouter()
	systemAdmin.Use(middleware.Auth)

	systemAdmin.HandleFunc("/restaurants", createRestaurant.Handle).Methods(http.MethodPost)
	systemAdmin.HandleFunc("/restaurants/{restaurantId}/activate", changeRestaurantActivation.Activate).Methods(http.MethodPost)
	systemAdmin.HandleFunc("/restaurants/{restaurantId}/deactivate", changeRestaurantActivation.Deactivate).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      middleware.CORS(cfg.CORS.AllowedOrigins)(r),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
