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

	cancelBookingHandler "github.com/warehq/WSM-BookingService/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/warehq/WSM-BookingService/internal/api/handlers/check_availability"
	createBookingHandler "github.com/warehq/WSM-BookingService/internal/api/handlers/create_booking"
	getBookingHandler "github.com/warehq/WSM-BookingService/internal/api/handlers/get_booking"
	getCustomerBookingsHandler "github.com/warehq/WSM-BookingService/internal/api/handlers/get_customer_bookings"
	getPricingSchedulesHandler "github.com/warehq/WSM-BookingService/internal/api/handlers/get_pricing_schedules"
	getWarehouseBookingsHandler "github.com/warehq/WSM-BookingService/internal/api/handlers/get_warehouse_bookings"
	quotePriceHandler "github.com/warehq/WSM-BookingService/internal/api/handlers/quote_price"
	updatePricingScheduleHandler "github.com/warehq/WSM-BookingService/internal/api/handlers/update_pricing_schedule"
	"github.com/warehq/WSM-BookingService/internal/api/middleware"
	"github.com/warehq/WSM-BookingService/internal/config"
	bookingRepo "github.com/warehq/WSM-BookingService/internal/infra/storage/booking"
	pricingRepo "github.com/warehq/WSM-BookingService/internal/infra/storage/pricing"
	warehouseRepo "github.com/warehq/WSM-BookingService/internal/infra/storage/warehouse"
	membershipClient "github.com/warehq/WSM-BookingService/internal/integrations/membership"
	bookingsService "github.com/warehq/WSM-BookingService/internal/service/bookings"
	pricingService "github.com/warehq/WSM-BookingService/internal/service/pricing"
	checkAvailabilityUC "github.com/warehq/WSM-BookingService/internal/usecase/check_availability"
	createBookingUC "github.com/warehq/WSM-BookingService/internal/usecase/create_booking"
	quotePriceUC "github.com/warehq/WSM-BookingService/internal/usecase/quote_price"
	"github.com/warehq/WSM-BookingService/pkg/dbmetrics"
	"github.com/warehq/WSM-BookingService/pkg/logger"
	"github.com/warehq/WSM-BookingService/pkg/metrics"
	"github.com/warehq/WSM-BookingService/pkg/simpletxmanager"
	"github.com/warehq/WSM-BookingService/pkg/txmanager"
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

	log.Info("Starting WSM-BookingService...")
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

	// Инициализируем интеграционного клиента MembershipService
	membership := membershipClient.NewClient(
		cfg.MembershipService.URL,
		time.Duration(cfg.MembershipService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (MembershipService=%s timeout=%ds)",
		cfg.MembershipService.URL, cfg.MembershipService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository   *bookingRepo.Repository
		warehouseRepository *warehouseRepo.Repository
		pricingRepository   *pricingRepo.Repository
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
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		warehouseRepository = warehouseRepo.NewRepository(wrappedDB)
		pricingRepository = pricingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		bookingRepository = bookingRepo.NewRepository(db)
		warehouseRepository = warehouseRepo.NewRepository(db)
		pricingRepository = pricingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		warehouseRepository,
		log,
	)
	pricingSvc := pricingService.NewService(
		pricingRepository,
		warehouseRepository,
		txMgr,
		log,
	)

	// Инициализируем use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		bookingRepository,
		warehouseRepository,
		log,
	)

	quotePriceUseCase := quotePriceUC.NewUseCase(
		pricingRepository,
		membership,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		warehouseRepository,
		pricingRepository,
		membership,
		txMgr,
		log,
	)

	// Инициализируем handlers
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	quotePrice := quotePriceHandler.NewHandler(quotePriceUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getCustomerBookings := getCustomerBookingsHandler.NewHandler(bookingSvc, log)
	getWarehouseBookings := getWarehouseBookingsHandler.NewHandler(bookingSvc, log)
	getPricingSchedules := getPricingSchedulesHandler.NewHandler(pricingSvc, log)
	updatePricingSchedule := updatePricingScheduleHandler.NewHandler(pricingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

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

	// Проверка доступной емкости склада
	api.HandleFunc("/warehouses/{warehouseId}/availability",
		checkAvailability.Handle).Methods(http.MethodGet)

	// Расчет цены без создания бронирования
	api.HandleFunc("/quotes", quotePrice.Handle).Methods(http.MethodPost)

	// Получение прайс-листов склада
	api.HandleFunc("/warehouses/{warehouseId}/pricing",
		getPricingSchedules.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Customer-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования (admission)
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований клиента
	protected.HandleFunc("/customers/{customerId}/bookings", getCustomerBookings.Handle).Methods(http.MethodGet)

	// --- Управление складом (для владельцев) ---
	// Список бронирований склада
	protected.HandleFunc("/warehouses/{warehouseId}/bookings", getWarehouseBookings.Handle).Methods(http.MethodGet)

	// Обновление прайс-листа склада
	protected.HandleFunc("/warehouses/{warehouseId}/pricing", updatePricingSchedule.Handle).Methods(http.MethodPut)

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
