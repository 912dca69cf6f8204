package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	bookingSessionHandler "github.com/m04kA/AppointEase/internal/api/handlers/booking_session"
	cancelAppointmentHandler "github.com/m04kA/AppointEase/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/m04kA/AppointEase/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/m04kA/AppointEase/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/AppointEase/internal/api/handlers/get_available_slots"
	listAppointmentsHandler "github.com/m04kA/AppointEase/internal/api/handlers/list_appointments"
	listServicesHandler "github.com/m04kA/AppointEase/internal/api/handlers/list_services"
	"github.com/m04kA/AppointEase/internal/api/middleware"
	"github.com/m04kA/AppointEase/internal/config"
	bookingsService "github.com/m04kA/AppointEase/internal/service/bookings"
	"github.com/m04kA/AppointEase/internal/service/catalog"
	sessionService "github.com/m04kA/AppointEase/internal/service/session"
	createBookingUC "github.com/m04kA/AppointEase/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/AppointEase/internal/usecase/get_available_slots"
	"github.com/m04kA/AppointEase/pkg/logger"
	"github.com/m04kA/AppointEase/pkg/metrics"
)

const (
	configPathEnv     = "APPOINTEASE_CONFIG"
	defaultConfigPath = "config.toml"
)

func main() {
	// .env опционален, переменные окружения имеют приоритет
	_ = godotenv.Load()

	configPath := os.Getenv(configPathEnv)
	if configPath == "" {
		configPath = defaultConfigPath
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting AppointEase...")
	log.Info("Configuration loaded from %s", configPath)

	// Метрики собираются всегда, endpoint публикуется только если включен
	metricsCollector := metrics.New(cfg.Metrics.ServiceName)

	// Инициализируем журнал бронирований
	store, err := newLedger(context.Background(), cfg.Storage)
	if err != nil {
		log.Fatal("Failed to initialize ledger: %v", err)
	}
	defer store.Close()
	log.Info("Appointment ledger initialized (driver=%s)", cfg.Storage.Driver)

	// Инициализируем каталог услуг
	services := cfg.DomainServices()
	if services == nil {
		services = catalog.DefaultServices()
	}
	serviceCatalog, err := catalog.New(services)
	if err != nil {
		log.Fatal("Failed to build service catalog: %v", err)
	}
	log.Info("Service catalog loaded: %d services", len(services))

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		store.repo,
		serviceCatalog,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		store.repo,
		serviceCatalog,
		store.txManager,
		metricsCollector,
		log,
	)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		store.repo,
		metricsCollector,
		log,
	)
	sessionSvc := sessionService.NewService(
		serviceCatalog,
		getAvailableSlotsUseCase,
		createBookingUseCase,
		log,
	)

	// Инициализируем handlers
	listServices := listServicesHandler.NewHandler(serviceCatalog, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createBookingUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(bookingSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(bookingSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(bookingSvc, log)
	bookingSession := bookingSessionHandler.NewHandler(sessionSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.AccessLog(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Каталог и слоты ---
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}", listServices.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	// summary регистрируется раньше /appointments/{appointmentId}
	api.HandleFunc("/appointments/summary", listAppointments.HandleSummary).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId}", cancelAppointment.Handle).Methods(http.MethodDelete)

	// --- Сессии выбора ---
	api.HandleFunc("/sessions", bookingSession.Create).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}", bookingSession.Get).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}", bookingSession.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/sessions/{sessionId}/service", bookingSession.SelectService).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{sessionId}/date", bookingSession.SelectDate).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{sessionId}/slot", bookingSession.SelectSlot).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{sessionId}/slot", bookingSession.ClearSlot).Methods(http.MethodDelete)
	api.HandleFunc("/sessions/{sessionId}/confirm", bookingSession.Confirm).Methods(http.MethodPost)

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
