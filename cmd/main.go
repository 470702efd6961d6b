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

	applySessionEventHandler "github.com/m04kA/SMC-GroomingService/internal/api/handlers/apply_session_event"
	createBookingHandler "github.com/m04kA/SMC-GroomingService/internal/api/handlers/create_booking"
	createQuoteHandler "github.com/m04kA/SMC-GroomingService/internal/api/handlers/create_quote"
	createSessionHandler "github.com/m04kA/SMC-GroomingService/internal/api/handlers/create_session"
	getAppointmentHandler "github.com/m04kA/SMC-GroomingService/internal/api/handlers/get_appointment"
	getAppointmentsHandler "github.com/m04kA/SMC-GroomingService/internal/api/handlers/get_appointments"
	getAvailableSlotsHandler "github.com/m04kA/SMC-GroomingService/internal/api/handlers/get_available_slots"
	getCatalogHandler "github.com/m04kA/SMC-GroomingService/internal/api/handlers/get_catalog"
	getSessionHandler "github.com/m04kA/SMC-GroomingService/internal/api/handlers/get_session"
	submitSessionHandler "github.com/m04kA/SMC-GroomingService/internal/api/handlers/submit_session"
	"github.com/m04kA/SMC-GroomingService/internal/api/middleware"
	"github.com/m04kA/SMC-GroomingService/internal/config"
	"github.com/m04kA/SMC-GroomingService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-GroomingService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-GroomingService/internal/infra/storage/migrations"
	"github.com/m04kA/SMC-GroomingService/internal/integrations/notifier"
	appointmentsService "github.com/m04kA/SMC-GroomingService/internal/service/appointments"
	sessionsService "github.com/m04kA/SMC-GroomingService/internal/service/sessions"
	createBookingUC "github.com/m04kA/SMC-GroomingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-GroomingService/internal/usecase/get_available_slots"
	quotePriceUC "github.com/m04kA/SMC-GroomingService/internal/usecase/quote_price"
	"github.com/m04kA/SMC-GroomingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-GroomingService/pkg/logger"
	"github.com/m04kA/SMC-GroomingService/pkg/metrics"
	"github.com/m04kA/SMC-GroomingService/pkg/txmanager"
)

// sessionCleanupInterval период удаления истекших сессий выбора
const sessionCleanupInterval = time.Minute

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

	log.Info("Starting SMC-GroomingService...")

	// Инициализируем метрики (если включены). nil коллектор ничего не пишет.
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Каталог услуг и часовой пояс салона
	catalog := domain.DefaultCatalog()
	if cfg.Shop.Capacity > 0 {
		catalog = catalog.WithCapacity(cfg.Shop.Capacity)
	}
	if err := catalog.Validate(); err != nil {
		log.Fatal("Invalid catalog: %v", err)
	}
	location, err := cfg.Shop.Location()
	if err != nil {
		log.Fatal("Failed to load shop timezone: %v", err)
	}
	log.Info("Catalog loaded (services=%d, addons=%d, capacity=%d, timezone=%s)",
		len(catalog.Services), len(catalog.Addons), catalog.Schedule.MaxCapacity, location)

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

	// Применяем миграции
	applied, err := migrations.Up(db)
	if err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	log.Info("Migrations applied: %d", applied)

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)

	// Инициализируем репозиторий и transaction manager
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Каналы уведомлений о новой записи
	notifyTimeout := time.Duration(cfg.Notifications.Timeout) * time.Second
	dispatcher := notifier.NewDispatcher(
		log,
		metricsCollector,
		notifier.NewSpreadsheetClient(cfg.Notifications.SpreadsheetURL, notifyTimeout, log),
		notifier.NewWebhookClient(cfg.Notifications.WebhookURL, notifyTimeout, log),
	)
	log.Info("Notification sinks enabled: %v", dispatcher.Sinks())

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		catalog,
		location,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		appointmentRepository,
		txMgr,
		dispatcher,
		metricsCollector,
		catalog,
		location,
		log,
	)
	quotePriceUseCase := quotePriceUC.NewUseCase(catalog, log)

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(
		appointmentRepository,
		catalog,
		location,
		log,
	)
	sessionSvc := sessionsService.NewService(
		getAvailableSlotsUseCase,
		createBookingUseCase,
		metricsCollector,
		catalog,
		location,
		time.Duration(cfg.Shop.SubmittedDisplayDelay)*time.Second,
		time.Duration(cfg.Shop.SessionTTL)*time.Minute,
		log,
	)

	// Удаление истекших сессий
	bgCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()
	go sessionSvc.Run(bgCtx, sessionCleanupInterval)

	// Инициализируем handlers
	getCatalog := getCatalogHandler.NewHandler(catalog, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createQuote := createQuoteHandler.NewHandler(quotePriceUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAppointments := getAppointmentsHandler.NewHandler(appointmentSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	createSession := createSessionHandler.NewHandler(sessionSvc, log)
	getSession := getSessionHandler.NewHandler(sessionSvc, log)
	applySessionEvent := applySessionEventHandler.NewHandler(sessionSvc, log)
	submitSession := submitSessionHandler.NewHandler(sessionSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recovery(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Каталог и цены ---
	api.HandleFunc("/catalog", getCatalog.Handle).Methods(http.MethodGet)
	api.HandleFunc("/quotes", createQuote.Handle).Methods(http.MethodPost)

	// --- Слоты и записи ---
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments", getAppointments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// --- Мастер записи ---
	api.HandleFunc("/sessions", createSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}", getSession.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}/events", applySessionEvent.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/submit", submitSession.Handle).Methods(http.MethodPost)

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

	// Останавливаем фоновые задачи и сбор метрик connection pool
	stopBackground()
	close(stopMetricsCh)

	log.Info("Server stopped gracefully")
}
