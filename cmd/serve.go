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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	cancelBookingHandler "github.com/m04kA/SMC-TourGateway/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-TourGateway/internal/api/handlers/create_booking"
	getBookingHandler "github.com/m04kA/SMC-TourGateway/internal/api/handlers/get_booking"
	getBookingsHandler "github.com/m04kA/SMC-TourGateway/internal/api/handlers/get_bookings"
	getTicketHandler "github.com/m04kA/SMC-TourGateway/internal/api/handlers/get_ticket"
	getTimeSlotsHandler "github.com/m04kA/SMC-TourGateway/internal/api/handlers/get_time_slots"
	getVoucherHandler "github.com/m04kA/SMC-TourGateway/internal/api/handlers/get_voucher"
	quoteOptionsHandler "github.com/m04kA/SMC-TourGateway/internal/api/handlers/quote_options"
	vendorProxyHandler "github.com/m04kA/SMC-TourGateway/internal/api/handlers/vendor_proxy"
	"github.com/m04kA/SMC-TourGateway/internal/api/middleware"
	"github.com/m04kA/SMC-TourGateway/internal/config"
	"github.com/m04kA/SMC-TourGateway/internal/integrations/raynaservice"
	bookingsService "github.com/m04kA/SMC-TourGateway/internal/service/bookings"
	"github.com/m04kA/SMC-TourGateway/internal/service/voucher"
	createBookingUC "github.com/m04kA/SMC-TourGateway/internal/usecase/create_booking"
	getTimeSlotsUC "github.com/m04kA/SMC-TourGateway/internal/usecase/get_time_slots"
	quoteOptionsUC "github.com/m04kA/SMC-TourGateway/internal/usecase/quote_options"
	"github.com/m04kA/SMC-TourGateway/pkg/logger"
	"github.com/m04kA/SMC-TourGateway/pkg/metrics"
)

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP gateway",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(*configPath)
		},
	}
}

func runServer(configPath string) error {
	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Close()

	log.Info("Starting SMC-TourGateway...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		registerer       prometheus.Registerer
	)
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		registerer = prometheus.DefaultRegisterer
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к хранилищу истории бронирований
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, closeStore, err := openBookingStore(ctx, cfg, log, registerer)
	cancel()
	if err != nil {
		return err
	}
	defer closeStore()
	log.Info("Booking history storage: %s", cfg.Storage.Backend)

	// Клиент поставщика
	vendorClient := raynaservice.NewClient(
		cfg.Vendor.BaseURL,
		cfg.Vendor.Token,
		time.Duration(cfg.Vendor.Timeout)*time.Second,
		log,
		metricsCollector,
	)
	log.Info("Vendor client initialized (url=%s, timeout=%ds)", cfg.Vendor.BaseURL, cfg.Vendor.Timeout)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		store,
		vendorClient,
		voucher.NewRenderer(cfg.Voucher.Issuer),
		metricsCollector,
		log,
	)

	// Инициализируем use cases
	quoteOptionsUseCase := quoteOptionsUC.NewUseCase(vendorClient, metricsCollector, log)
	getTimeSlotsUseCase := getTimeSlotsUC.NewUseCase(vendorClient, log)
	createBookingUseCase := createBookingUC.NewUseCase(store, vendorClient, metricsCollector, log)

	// Инициализируем handlers
	vendorProxy := vendorProxyHandler.NewHandler(vendorClient, log)
	quoteOptions := quoteOptionsHandler.NewHandler(quoteOptionsUseCase, log)
	getTimeSlots := getTimeSlotsHandler.NewHandler(getTimeSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getTicket := getTicketHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getVoucher := getVoucherHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// ============================================================
	// VENDOR PROXY (/api/*, токен добавляется только на сервере)
	// ============================================================
	vendorProxy.Register(r)

	// ============================================================
	// STOREFRONT API (/api/v1/*)
	// ============================================================
	api := r.PathPrefix("/api/v1").Subrouter()
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		api.Use(limiter.Limit)
		log.Info("Rate limit enabled: %.1f rps, burst %d", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	// Цены и слоты (без агента)
	api.HandleFunc("/quotes", quoteOptions.Handle).Methods(http.MethodPost)
	api.HandleFunc("/timeslots", getTimeSlots.Handle).Methods(http.MethodPost)

	// Бронирования (требуют X-Agent-ID header)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{referenceNo}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{referenceNo}/voucher", getVoucher.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{referenceNo}/lines/{bookingId}/ticket", getTicket.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{referenceNo}/lines/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", middleware.AgentIDHeader, middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
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

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed to start: %w", err)
	case <-quit:
	}

	log.Info("Shutting down server...")

	shutdownCtx, cancelShutdown := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
