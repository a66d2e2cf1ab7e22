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
	"github.com/rs/cors"
	"github.com/shopspring/decimal"

	cancelAssignmentHandler "github.com/m04kA/SMC-BerthService/internal/api/handlers/cancel_assignment"
	createAssignmentHandler "github.com/m04kA/SMC-BerthService/internal/api/handlers/create_assignment"
	createBerthHandler "github.com/m04kA/SMC-BerthService/internal/api/handlers/create_berth"
	getAssignmentHandler "github.com/m04kA/SMC-BerthService/internal/api/handlers/get_assignment"
	getBerthHandler "github.com/m04kA/SMC-BerthService/internal/api/handlers/get_berth"
	getBerthAssignmentsHandler "github.com/m04kA/SMC-BerthService/internal/api/handlers/get_berth_assignments"
	getBerthAvailabilityHandler "github.com/m04kA/SMC-BerthService/internal/api/handlers/get_berth_availability"
	getUsageChargeHandler "github.com/m04kA/SMC-BerthService/internal/api/handlers/get_usage_charge"
	recordArrivalHandler "github.com/m04kA/SMC-BerthService/internal/api/handlers/record_arrival"
	releaseAssignmentHandler "github.com/m04kA/SMC-BerthService/internal/api/handlers/release_assignment"
	updateAssignmentHandler "github.com/m04kA/SMC-BerthService/internal/api/handlers/update_assignment"
	updateBerthHandler "github.com/m04kA/SMC-BerthService/internal/api/handlers/update_berth"
	updateChargeStatusHandler "github.com/m04kA/SMC-BerthService/internal/api/handlers/update_charge_status"
	"github.com/m04kA/SMC-BerthService/internal/api/middleware"
	"github.com/m04kA/SMC-BerthService/internal/billing"
	"github.com/m04kA/SMC-BerthService/internal/config"
	assignmentRepo "github.com/m04kA/SMC-BerthService/internal/infra/storage/assignment"
	berthRepo "github.com/m04kA/SMC-BerthService/internal/infra/storage/berth"
	chargeRepo "github.com/m04kA/SMC-BerthService/internal/infra/storage/charge"
	fleetServiceClient "github.com/m04kA/SMC-BerthService/internal/integrations/fleetservice"
	assignmentsService "github.com/m04kA/SMC-BerthService/internal/service/assignments"
	berthsService "github.com/m04kA/SMC-BerthService/internal/service/berths"
	cancelAssignmentUC "github.com/m04kA/SMC-BerthService/internal/usecase/cancel_assignment"
	createAssignmentUC "github.com/m04kA/SMC-BerthService/internal/usecase/create_assignment"
	getBerthAvailabilityUC "github.com/m04kA/SMC-BerthService/internal/usecase/get_berth_availability"
	recordArrivalUC "github.com/m04kA/SMC-BerthService/internal/usecase/record_arrival"
	releaseAssignmentUC "github.com/m04kA/SMC-BerthService/internal/usecase/release_assignment"
	updateAssignmentUC "github.com/m04kA/SMC-BerthService/internal/usecase/update_assignment"
	"github.com/m04kA/SMC-BerthService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BerthService/pkg/logger"
	"github.com/m04kA/SMC-BerthService/pkg/metrics"
	"github.com/m04kA/SMC-BerthService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-BerthService/pkg/txmanager"
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

	log.Info("Starting SMC-BerthService...")
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

	// Инициализируем интеграционного клиента
	fleetClient := fleetServiceClient.NewClient(
		cfg.FleetService.URL,
		time.Duration(cfg.FleetService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (FleetService=%s timeout=%ds)",
		cfg.FleetService.URL, cfg.FleetService.Timeout)

	// Надбавка за обслуживание по умолчанию для расчета начислений
	defaultServiceCharge, err := decimal.NewFromString(cfg.Billing.DefaultServiceCharge)
	if err != nil {
		log.Fatal("Invalid billing.default_service_charge %q: %v", cfg.Billing.DefaultServiceCharge, err)
	}
	calculator := billing.NewCalculator(defaultServiceCharge)

	// Инициализируем репозитории (с метриками или без)
	var (
		berthRepository      *berthRepo.Repository
		assignmentRepository *assignmentRepo.Repository
		chargeRepository     *chargeRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		berthRepository = berthRepo.NewRepository(wrappedDB)
		assignmentRepository = assignmentRepo.NewRepository(wrappedDB)
		chargeRepository = chargeRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		berthRepository = berthRepo.NewRepository(db)
		assignmentRepository = assignmentRepo.NewRepository(db)
		chargeRepository = chargeRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	assignmentSvc := assignmentsService.NewService(
		assignmentRepository,
		chargeRepository,
		log,
	)
	berthSvc := berthsService.NewService(
		berthRepository,
		txMgr,
		log,
	)

	// Инициализируем use cases
	createAssignmentUseCase := createAssignmentUC.NewUseCase(
		assignmentRepository,
		berthRepository,
		fleetClient,
		txMgr,
		log,
	)
	updateAssignmentUseCase := updateAssignmentUC.NewUseCase(
		assignmentRepository,
		berthRepository,
		fleetClient,
		txMgr,
		log,
	)
	recordArrivalUseCase := recordArrivalUC.NewUseCase(
		assignmentRepository,
		txMgr,
		log,
	)
	releaseAssignmentUseCase := releaseAssignmentUC.NewUseCase(
		assignmentRepository,
		berthRepository,
		chargeRepository,
		calculator,
		txMgr,
		log,
	)
	cancelAssignmentUseCase := cancelAssignmentUC.NewUseCase(
		assignmentRepository,
		berthRepository,
		txMgr,
		log,
	)
	getBerthAvailabilityUseCase := getBerthAvailabilityUC.NewUseCase(
		assignmentRepository,
		berthRepository,
		log,
	)

	// Инициализируем handlers
	createAssignment := createAssignmentHandler.NewHandler(createAssignmentUseCase, log)
	updateAssignment := updateAssignmentHandler.NewHandler(updateAssignmentUseCase, log)
	recordArrival := recordArrivalHandler.NewHandler(recordArrivalUseCase, log)
	releaseAssignment := releaseAssignmentHandler.NewHandler(releaseAssignmentUseCase, log)
	cancelAssignment := cancelAssignmentHandler.NewHandler(cancelAssignmentUseCase, log)
	getAssignment := getAssignmentHandler.NewHandler(assignmentSvc, log)
	getUsageCharge := getUsageChargeHandler.NewHandler(assignmentSvc, log)
	updateChargeStatus := updateChargeStatusHandler.NewHandler(assignmentSvc, log)
	getBerthAssignments := getBerthAssignmentsHandler.NewHandler(assignmentSvc, log)
	getBerth := getBerthHandler.NewHandler(berthSvc, log)
	createBerth := createBerthHandler.NewHandler(berthSvc, log)
	updateBerth := updateBerthHandler.NewHandler(berthSvc, log)
	getBerthAvailability := getBerthAvailabilityHandler.NewHandler(getBerthAvailabilityUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Идентификатор запроса для сквозной трассировки в логах
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Информация о причале
	api.HandleFunc("/berths/{berthId}", getBerth.Handle).Methods(http.MethodGet)

	// Занятость причала за период
	api.HandleFunc("/berths/{berthId}/availability", getBerthAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Назначения ---
	// Создание назначения судна на причал
	protected.HandleFunc("/assignments", createAssignment.Handle).Methods(http.MethodPost)

	// Получение назначения по ID
	protected.HandleFunc("/assignments/{assignmentId}", getAssignment.Handle).Methods(http.MethodGet)

	// Изменение запланированного назначения
	protected.HandleFunc("/assignments/{assignmentId}", updateAssignment.Handle).Methods(http.MethodPatch)

	// Фиксация фактического прибытия судна
	protected.HandleFunc("/assignments/{assignmentId}/arrival", recordArrival.Handle).Methods(http.MethodPost)

	// Освобождение причала и расчет начисления
	protected.HandleFunc("/assignments/{assignmentId}/release", releaseAssignment.Handle).Methods(http.MethodPost)

	// Отмена назначения
	protected.HandleFunc("/assignments/{assignmentId}/cancel", cancelAssignment.Handle).Methods(http.MethodPatch)

	// Начисление за использование причала
	protected.HandleFunc("/assignments/{assignmentId}/charge", getUsageCharge.Handle).Methods(http.MethodGet)

	// Изменение платежного статуса начисления
	protected.HandleFunc("/charges/{chargeId}/payment-status", updateChargeStatus.Handle).Methods(http.MethodPatch)

	// --- Управление причалами (для диспетчеров) ---
	// Регистрация нового причала
	protected.HandleFunc("/berths", createBerth.Handle).Methods(http.MethodPost)

	// Список назначений причала с фильтрацией
	protected.HandleFunc("/berths/{berthId}/assignments", getBerthAssignments.Handle).Methods(http.MethodGet)

	// Обновление атрибутов причала
	protected.HandleFunc("/berths/{berthId}", updateBerth.Handle).Methods(http.MethodPut)

	// CORS для веб-интерфейса диспетчерской
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type", "X-User-ID", middleware.RequestIDHeader},
	}).Handler(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
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
