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

	approveRequestHandler "github.com/m04kA/PWS-ScheduleService/internal/api/handlers/approve_request"
	authHandler "github.com/m04kA/PWS-ScheduleService/internal/api/handlers/auth"
	blockSlotHandler "github.com/m04kA/PWS-ScheduleService/internal/api/handlers/block_slot"
	cancelAppointmentHandler "github.com/m04kA/PWS-ScheduleService/internal/api/handlers/cancel_appointment"
	createRequestHandler "github.com/m04kA/PWS-ScheduleService/internal/api/handlers/create_request"
	getDaySlotsHandler "github.com/m04kA/PWS-ScheduleService/internal/api/handlers/get_day_slots"
	getSettingsHandler "github.com/m04kA/PWS-ScheduleService/internal/api/handlers/get_settings"
	listAppointmentsHandler "github.com/m04kA/PWS-ScheduleService/internal/api/handlers/list_appointments"
	listRequestsHandler "github.com/m04kA/PWS-ScheduleService/internal/api/handlers/list_requests"
	rejectRequestHandler "github.com/m04kA/PWS-ScheduleService/internal/api/handlers/reject_request"
	updateSettingsHandler "github.com/m04kA/PWS-ScheduleService/internal/api/handlers/update_settings"
	"github.com/m04kA/PWS-ScheduleService/internal/api/middleware"
	"github.com/m04kA/PWS-ScheduleService/internal/config"
	"github.com/m04kA/PWS-ScheduleService/internal/infra/docstore"
	"github.com/m04kA/PWS-ScheduleService/internal/infra/sessions"
	authService "github.com/m04kA/PWS-ScheduleService/internal/service/auth"
	scheduleService "github.com/m04kA/PWS-ScheduleService/internal/service/schedule"
	createRequestUC "github.com/m04kA/PWS-ScheduleService/internal/usecase/create_request"
	getDaySlotsUC "github.com/m04kA/PWS-ScheduleService/internal/usecase/get_day_slots"
	"github.com/m04kA/PWS-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/PWS-ScheduleService/pkg/logger"
	"github.com/m04kA/PWS-ScheduleService/pkg/metrics"
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

	log.Info("Starting PWS-ScheduleService...")
	log.Info("Configuration loaded from config.toml")

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

	// Документное хранилище (с метриками или без)
	var executor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	store := docstore.NewPostgres(executor, cfg.Database.DSN(), metricsCollector, log)

	ctx, cancelListeners := context.WithCancel(context.Background())
	defer cancelListeners()

	if err := store.Start(ctx); err != nil {
		log.Fatal("Failed to start document change listener: %v", err)
	}
	defer store.Close()

	// Подключаемся к Redis (хранилище админских сессий)
	redisClient, err := sessions.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password)
	if err != nil {
		log.Fatal("Failed to connect to redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to redis (addr=%s)", cfg.Redis.Addr)

	sessionStore := sessions.NewStore(redisClient, time.Duration(cfg.Auth.SessionTTLMinutes)*time.Minute)

	// Инициализируем сервисы
	authSvc := authService.NewService(cfg.Auth.AdminEmail, cfg.Auth.AdminPasswordHash, sessionStore, log)

	scheduleSvc := scheduleService.NewService(store, log)
	if err := scheduleSvc.Start(ctx); err != nil {
		log.Fatal("Failed to start schedule service: %v", err)
	}
	defer scheduleSvc.Close()
	log.Info("Schedule service started, mirrors populated")

	// Инициализируем use cases
	createRequestUseCase := createRequestUC.NewUseCase(scheduleSvc, store, log)
	getDaySlotsUseCase := getDaySlotsUC.NewUseCase(scheduleSvc, log)

	// Инициализируем handlers
	getDaySlots := getDaySlotsHandler.NewHandler(getDaySlotsUseCase, log)
	createRequest := createRequestHandler.NewHandler(createRequestUseCase, log)
	getSettings := getSettingsHandler.NewHandler(scheduleSvc, log)
	auth := authHandler.NewHandler(authSvc, log)
	listRequests := listRequestsHandler.NewHandler(scheduleSvc, log)
	approveRequest := approveRequestHandler.NewHandler(scheduleSvc, log)
	rejectRequest := rejectRequestHandler.NewHandler(scheduleSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(scheduleSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(scheduleSvc, log)
	blockSlot := blockSlotHandler.NewHandler(scheduleSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Сетка слотов на день
	api.HandleFunc("/days/{date}/slots", getDaySlots.Handle).Methods(http.MethodGet)

	// Создание заявки на встречу
	api.HandleFunc("/requests", createRequest.Handle).Methods(http.MethodPost)

	// Текущие настройки расписания
	api.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)

	// Вход и выход администратора. Выход сам требует Bearer-токен:
	// роут не под /admin, но без действующей сессии бесполезен
	api.HandleFunc("/auth/login", auth.HandleLogin).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", auth.HandleLogout).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют сессионный токен)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth(authSvc))

	// --- Заявки ---
	admin.HandleFunc("/requests", listRequests.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/requests/{requestId}/approve", approveRequest.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/requests/{requestId}/reject", rejectRequest.Handle).Methods(http.MethodPost)

	// --- Записи ---
	admin.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPost)

	// --- Управление слотами ---
	admin.HandleFunc("/slots/{date}/{slotCode}/block", blockSlot.HandleBlock).Methods(http.MethodPut)
	admin.HandleFunc("/slots/{date}/{slotCode}/unblock", blockSlot.HandleUnblock).Methods(http.MethodPut)

	// --- Настройки расписания ---
	admin.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)

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
