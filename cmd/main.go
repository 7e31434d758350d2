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

	addNoteHandler "github.com/m04kA/Studio-ReservationService/internal/api/handlers/add_note"
	changeStatusHandler "github.com/m04kA/Studio-ReservationService/internal/api/handlers/change_status"
	createReservationHandler "github.com/m04kA/Studio-ReservationService/internal/api/handlers/create_reservation"
	deleteReservationHandler "github.com/m04kA/Studio-ReservationService/internal/api/handlers/delete_reservation"
	getAvailableSlotsHandler "github.com/m04kA/Studio-ReservationService/internal/api/handlers/get_available_slots"
	getConfigHandler "github.com/m04kA/Studio-ReservationService/internal/api/handlers/get_config"
	getReservationHandler "github.com/m04kA/Studio-ReservationService/internal/api/handlers/get_reservation"
	listCalendarHandler "github.com/m04kA/Studio-ReservationService/internal/api/handlers/list_calendar"
	rescheduleReservationHandler "github.com/m04kA/Studio-ReservationService/internal/api/handlers/reschedule_reservation"
	updateConfigHandler "github.com/m04kA/Studio-ReservationService/internal/api/handlers/update_config"
	"github.com/m04kA/Studio-ReservationService/internal/api/middleware"
	"github.com/m04kA/Studio-ReservationService/internal/config"
	availabilityRepo "github.com/m04kA/Studio-ReservationService/internal/infra/storage/availability"
	catalogRepo "github.com/m04kA/Studio-ReservationService/internal/infra/storage/catalog"
	reservationRepo "github.com/m04kA/Studio-ReservationService/internal/infra/storage/reservation"
	availabilityService "github.com/m04kA/Studio-ReservationService/internal/service/availability"
	calendarService "github.com/m04kA/Studio-ReservationService/internal/service/calendar"
	reservationsService "github.com/m04kA/Studio-ReservationService/internal/service/reservations"
	createReservationUC "github.com/m04kA/Studio-ReservationService/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/m04kA/Studio-ReservationService/internal/usecase/get_available_slots"
	rescheduleReservationUC "github.com/m04kA/Studio-ReservationService/internal/usecase/reschedule_reservation"
	"github.com/m04kA/Studio-ReservationService/pkg/confirmid"
	"github.com/m04kA/Studio-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/Studio-ReservationService/pkg/logger"
	"github.com/m04kA/Studio-ReservationService/pkg/metrics"
	"github.com/m04kA/Studio-ReservationService/pkg/simpletxmanager"
	"github.com/m04kA/Studio-ReservationService/pkg/txmanager"
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

	log.Info("Starting Studio-ReservationService...")
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

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository  *reservationRepo.Repository
		availabilityRepository *availabilityRepo.Repository
		catalogRepository      *catalogRepo.Repository
		txMgr                  TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		availabilityRepository = availabilityRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(availabilityRepository, log)
	if err := availabilitySvc.Load(context.Background()); err != nil {
		log.Fatal("Failed to load availability config: %v", err)
	}
	log.Info("Availability config loaded")

	reservationsSvc := reservationsService.NewService(reservationRepository, txMgr, log)
	calendarSvc := calendarService.NewService(reservationRepository, log)

	// Инициализируем use cases
	idGenerator := confirmid.New()

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUsecase(
		reservationRepository,
		catalogRepository,
		availabilitySvc,
		&getAvailableSlotsUC.RealTimeProvider{},
		log,
	)

	createReservationUseCase := createReservationUC.NewUsecase(
		reservationRepository,
		catalogRepository,
		availabilitySvc,
		txMgr,
		idGenerator,
		&createReservationUC.RealTimeProvider{},
		log,
	)

	rescheduleReservationUseCase := rescheduleReservationUC.NewUsecase(
		reservationRepository,
		availabilitySvc,
		txMgr,
		&rescheduleReservationUC.RealTimeProvider{},
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	changeStatus := changeStatusHandler.NewHandler(reservationsSvc, log)
	rescheduleReservation := rescheduleReservationHandler.NewHandler(rescheduleReservationUseCase, log)
	addNote := addNoteHandler.NewHandler(reservationsSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationsSvc, log)
	listCalendar := listCalendarHandler.NewHandler(calendarSvc, availabilitySvc, log)
	getConfig := getConfigHandler.NewHandler(availabilitySvc, log)
	updateConfig := updateConfigHandler.NewHandler(availabilitySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступные слоты на дату для выбранного пакета
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Текущая конфигурация доступности
	api.HandleFunc("/config", getConfig.Handle).Methods(http.MethodGet)

	// Создание брони (X-Admin-ID необязателен)
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Admin-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Брони ---
	// Бронь с журналом статусов и заметками
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// Переход статуса брони
	protected.HandleFunc("/reservations/{reservationId}/status", changeStatus.Handle).Methods(http.MethodPatch)

	// Перенос брони на новый интервал
	protected.HandleFunc("/reservations/{reservationId}/schedule", rescheduleReservation.Handle).Methods(http.MethodPatch)

	// Добавление внутренней заметки
	protected.HandleFunc("/reservations/{reservationId}/notes", addNote.Handle).Methods(http.MethodPost)

	// Физическое удаление брони
	protected.HandleFunc("/reservations/{reservationId}", deleteReservation.Handle).Methods(http.MethodDelete)

	// --- Календарь и конфигурация ---
	// Календарная проекция броней
	protected.HandleFunc("/calendar", listCalendar.Handle).Methods(http.MethodGet)

	// Обновление конфигурации доступности
	protected.HandleFunc("/config", updateConfig.Handle).Methods(http.MethodPut)

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
