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

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createReservationHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/create_reservation"
	decideReservationHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/decide_reservation"
	getItemScheduleHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_item_schedule"
	getReservationHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_reservation"
	listOwnerReservationsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/list_owner_reservations"
	listReservationsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/list_reservations"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/config"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	itemServiceClient "github.com/m04kA/SMC-ReservationService/internal/integrations/itemservice"
	userServiceClient "github.com/m04kA/SMC-ReservationService/internal/integrations/userservice"
	reservationsService "github.com/m04kA/SMC-ReservationService/internal/service/reservations"
	createReservationUC "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
	decideReservationUC "github.com/m04kA/SMC-ReservationService/internal/usecase/decide_reservation"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
	"github.com/m04kA/SMC-ReservationService/pkg/metrics"
	"github.com/m04kA/SMC-ReservationService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-ReservationService/pkg/txmanager"
)

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

	log.Info("Starting SMC-ReservationService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Инициализируем интеграционных клиентов
	userClient := userServiceClient.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)
	itemClient := itemServiceClient.NewClient(
		cfg.ItemService.URL,
		time.Duration(cfg.ItemService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (UserService=%s timeout=%ds, ItemService=%s timeout=%ds)",
		cfg.UserService.URL, cfg.UserService.Timeout, cfg.ItemService.URL, cfg.ItemService.Timeout)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		txMgr                 TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервис
	reservationSvc := reservationsService.NewService(
		reservationRepository,
		userClient,
		itemClient,
		log,
	)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		userClient,
		itemClient,
		txMgr,
		log,
	)
	decideReservationUseCase := decideReservationUC.NewUseCase(
		reservationRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	decideReservation := decideReservationHandler.NewHandler(decideReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, log)
	listOwnerReservations := listOwnerReservationsHandler.NewHandler(reservationSvc, log)
	getItemSchedule := getItemScheduleHandler.NewHandler(reservationSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Все маршруты требуют X-User-ID header
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Бронирования пользователя (как автора)
	protected.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)

	// Бронирования вещей пользователя (как владельца)
	protected.HandleFunc("/reservations/owner", listOwnerReservations.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// Решение по бронированию (одобрить/отклонить)
	protected.HandleFunc("/reservations/{reservationId}", decideReservation.Handle).Methods(http.MethodPatch)

	// --- Вещи ---
	// Последнее и следующее одобренные бронирования вещи (для владельца)
	protected.HandleFunc("/items/{itemId}/schedule", getItemSchedule.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
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
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
