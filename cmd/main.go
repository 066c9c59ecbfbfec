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

	bookAppointmentHandler "github.com/m04kA/Clinic-SchedulingService/internal/api/handlers/book_appointment"
	cancelAppointmentHandler "github.com/m04kA/Clinic-SchedulingService/internal/api/handlers/cancel_appointment"
	checkAvailabilityHandler "github.com/m04kA/Clinic-SchedulingService/internal/api/handlers/check_availability"
	getAppointmentHandler "github.com/m04kA/Clinic-SchedulingService/internal/api/handlers/get_appointment"
	listAppointmentTypesHandler "github.com/m04kA/Clinic-SchedulingService/internal/api/handlers/list_appointment_types"
	listAppointmentsHandler "github.com/m04kA/Clinic-SchedulingService/internal/api/handlers/list_appointments"
	"github.com/m04kA/Clinic-SchedulingService/internal/api/middleware"
	"github.com/m04kA/Clinic-SchedulingService/internal/config"
	"github.com/m04kA/Clinic-SchedulingService/internal/domain"
	appointmentRepo "github.com/m04kA/Clinic-SchedulingService/internal/infra/storage/appointment"
	appointmentFileRepo "github.com/m04kA/Clinic-SchedulingService/internal/infra/storage/appointmentfile"
	appointmentsService "github.com/m04kA/Clinic-SchedulingService/internal/service/appointments"
	bookAppointmentUC "github.com/m04kA/Clinic-SchedulingService/internal/usecase/book_appointment"
	checkAvailabilityUC "github.com/m04kA/Clinic-SchedulingService/internal/usecase/check_availability"
	"github.com/m04kA/Clinic-SchedulingService/pkg/logger"
	"github.com/m04kA/Clinic-SchedulingService/pkg/metrics"
	"github.com/m04kA/Clinic-SchedulingService/pkg/txmanager"
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

	log.Info("Starting Clinic-SchedulingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Собираем расписание клиники и справочник типов приёмов
	workingDays, err := cfg.WorkingDays()
	if err != nil {
		log.Fatal("Failed to parse working days: %v", err)
	}

	schedule, err := domain.NewClinicSchedule(
		cfg.Clinic.BusinessStart,
		cfg.Clinic.BusinessEnd,
		cfg.Clinic.SlotStride,
		workingDays,
	)
	if err != nil {
		log.Fatal("Failed to build clinic schedule: %v", err)
	}

	categoryInfos := cfg.CategoryInfos()
	if len(categoryInfos) == 0 {
		categoryInfos = domain.DefaultCategoryInfos
	}
	catalog, err := domain.NewCatalog(categoryInfos)
	if err != nil {
		log.Fatal("Failed to build appointment type catalog: %v", err)
	}

	// Интерфейсы хранилища и транзакционной границы (реализация зависит от бэкенда)
	type AppointmentStore interface {
		Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
		GetByBookingID(ctx context.Context, bookingID string) (*domain.Appointment, error)
		GetByDate(ctx context.Context, date time.Time, onlyConfirmed bool) ([]*domain.Appointment, error)
		Cancel(ctx context.Context, bookingID string) error
	}
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	var (
		store AppointmentStore
		txMgr TxManager
	)

	// Инициализируем хранилище записей
	switch cfg.Storage.Backend {
	case config.StorageBackendPostgres:
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

		store = appointmentRepo.NewRepository(db)
		txMgr = txmanager.NewTransactionManager(db)

	case config.StorageBackendFile:
		fileRepository, err := appointmentFileRepo.NewRepository(cfg.Storage.File)
		if err != nil {
			log.Fatal("Failed to initialize file storage: %v", err)
		}
		log.Info("File storage initialized at %s", cfg.Storage.File)

		store = fileRepository
		txMgr = fileRepository

	default:
		log.Fatal("Unknown storage backend: %s", cfg.Storage.Backend)
	}

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(store, log)

	// Инициализируем use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(store, catalog, schedule, log)
	bookAppointmentUseCase := bookAppointmentUC.NewUseCase(
		store,
		checkAvailabilityUseCase,
		catalog,
		schedule,
		txMgr,
		log,
	)

	// Инициализируем handlers
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	bookAppointment := bookAppointmentHandler.NewHandler(bookAppointmentUseCase, metricsCollector, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	listAppointmentTypes := listAppointmentTypesHandler.NewHandler(catalog, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Справочник типов приёмов
	api.HandleFunc("/appointment-types", listAppointmentTypes.Handle).Methods(http.MethodGet)

	// Доступные слоты на дату
	api.HandleFunc("/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// Создание записи на приём
	api.HandleFunc("/appointments", bookAppointment.Handle).Methods(http.MethodPost)

	// Список записей на дату
	api.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)

	// Получение записи по ID
	api.HandleFunc("/appointments/{bookingId}", getAppointment.Handle).Methods(http.MethodGet)

	// Отмена записи
	api.HandleFunc("/appointments/{bookingId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

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
