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

	cancelAppointmentHandler "github.com/xsalon/scheduling-service/internal/api/handlers/cancel_appointment"
	checkInHandler "github.com/xsalon/scheduling-service/internal/api/handlers/check_in"
	createAppointmentHandler "github.com/xsalon/scheduling-service/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/xsalon/scheduling-service/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/xsalon/scheduling-service/internal/api/handlers/get_available_slots"
	getCustomerAppointmentsHandler "github.com/xsalon/scheduling-service/internal/api/handlers/get_customer_appointments"
	getQueueHandler "github.com/xsalon/scheduling-service/internal/api/handlers/get_queue"
	getQueuePositionHandler "github.com/xsalon/scheduling-service/internal/api/handlers/get_queue_position"
	getSalonInfoHandler "github.com/xsalon/scheduling-service/internal/api/handlers/get_salon_info"
	initializePaymentHandler "github.com/xsalon/scheduling-service/internal/api/handlers/initialize_payment"
	paymentWebhookHandler "github.com/xsalon/scheduling-service/internal/api/handlers/payment_webhook"
	reorderQueueHandler "github.com/xsalon/scheduling-service/internal/api/handlers/reorder_queue"
	rescheduleAppointmentHandler "github.com/xsalon/scheduling-service/internal/api/handlers/reschedule_appointment"
	updateAppointmentStatusHandler "github.com/xsalon/scheduling-service/internal/api/handlers/update_appointment_status"
	updateWorkingHoursHandler "github.com/xsalon/scheduling-service/internal/api/handlers/update_working_hours"
	verifyPaymentHandler "github.com/xsalon/scheduling-service/internal/api/handlers/verify_payment"
	"github.com/xsalon/scheduling-service/internal/api/middleware"
	"github.com/xsalon/scheduling-service/internal/config"
	appointmentRepo "github.com/xsalon/scheduling-service/internal/infra/storage/appointment"
	calendarRepo "github.com/xsalon/scheduling-service/internal/infra/storage/calendar"
	servicecatalogRepo "github.com/xsalon/scheduling-service/internal/infra/storage/servicecatalog"
	settingsRepo "github.com/xsalon/scheduling-service/internal/infra/storage/settings"
	accountsClient "github.com/xsalon/scheduling-service/internal/integrations/accounts"
	paymentClient "github.com/xsalon/scheduling-service/internal/integrations/paymentprovider"
	appointmentsService "github.com/xsalon/scheduling-service/internal/service/appointments"
	queueService "github.com/xsalon/scheduling-service/internal/service/queue"
	salonconfigService "github.com/xsalon/scheduling-service/internal/service/salonconfig"
	cancelAppointmentUC "github.com/xsalon/scheduling-service/internal/usecase/cancel_appointment"
	checkInUC "github.com/xsalon/scheduling-service/internal/usecase/check_in"
	confirmPaymentUC "github.com/xsalon/scheduling-service/internal/usecase/confirm_payment"
	createAppointmentUC "github.com/xsalon/scheduling-service/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/xsalon/scheduling-service/internal/usecase/get_available_slots"
	initializePaymentUC "github.com/xsalon/scheduling-service/internal/usecase/initialize_payment"
	rescheduleAppointmentUC "github.com/xsalon/scheduling-service/internal/usecase/reschedule_appointment"
	updateStatusUC "github.com/xsalon/scheduling-service/internal/usecase/update_status"
	"github.com/xsalon/scheduling-service/internal/worker/sweeper"
	"github.com/xsalon/scheduling-service/pkg/dbmetrics"
	"github.com/xsalon/scheduling-service/pkg/logger"
	"github.com/xsalon/scheduling-service/pkg/metrics"
	"github.com/xsalon/scheduling-service/pkg/simpletxmanager"
	"github.com/xsalon/scheduling-service/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting scheduling-service...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	policy := cfg.Scheduling.Policy()
	log.Info("Scheduling policy: granularity=%dm, hourly_capacity=%d, horizon=%dd",
		policy.SlotGranularityMinutes, policy.HourlyCapacity, policy.BookingHorizonDays)

	payments := paymentClient.NewClient(
		cfg.Payments.URL,
		cfg.Payments.SecretKey,
		cfg.Payments.WebhookSecret,
		time.Duration(cfg.Payments.Timeout)*time.Second,
		log,
	)
	accounts := accountsClient.NewClient(
		cfg.Accounts.URL,
		time.Duration(cfg.Accounts.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (Payments=%s timeout=%ds, Accounts=%s timeout=%ds)",
		cfg.Payments.URL, cfg.Payments.Timeout, cfg.Accounts.URL, cfg.Accounts.Timeout)

	var (
		appointmentRepository    *appointmentRepo.Repository
		calendarRepository       *calendarRepo.Repository
		servicecatalogRepository *servicecatalogRepo.Repository
		settingsRepository       *settingsRepo.Repository
	)

	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		calendarRepository = calendarRepo.NewRepository(wrappedDB)
		servicecatalogRepository = servicecatalogRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		calendarRepository = calendarRepo.NewRepository(db)
		servicecatalogRepository = servicecatalogRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	queueSvc := queueService.NewService(
		appointmentRepository,
		txMgr,
		policy,
		log,
	)
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		log,
	)
	salonconfigSvc := salonconfigService.NewService(
		calendarRepository,
		servicecatalogRepository,
		settingsRepository,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		calendarRepository,
		servicecatalogRepository,
		policy,
		log,
	)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		calendarRepository,
		servicecatalogRepository,
		settingsRepository,
		accounts,
		txMgr,
		policy,
		log,
	)
	initializePaymentUseCase := initializePaymentUC.NewUseCase(
		appointmentRepository,
		payments,
		accounts,
		txMgr,
		cfg.Payments.CallbackURL,
		log,
	)
	confirmPaymentUseCase := confirmPaymentUC.NewUseCase(
		appointmentRepository,
		payments,
		queueSvc,
		txMgr,
		log,
	)
	checkInUseCase := checkInUC.NewUseCase(
		appointmentRepository,
		queueSvc,
		txMgr,
		policy,
		log,
	)
	updateStatusUseCase := updateStatusUC.NewUseCase(
		appointmentRepository,
		queueSvc,
		txMgr,
		log,
	)
	cancelAppointmentUseCase := cancelAppointmentUC.NewUseCase(
		appointmentRepository,
		queueSvc,
		txMgr,
		policy,
		log,
	)
	rescheduleAppointmentUseCase := rescheduleAppointmentUC.NewUseCase(
		appointmentRepository,
		calendarRepository,
		queueSvc,
		txMgr,
		policy,
		log,
	)

	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	getCustomerAppointments := getCustomerAppointmentsHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(cancelAppointmentUseCase, log)
	rescheduleAppointment := rescheduleAppointmentHandler.NewHandler(rescheduleAppointmentUseCase, log)
	checkIn := checkInHandler.NewHandler(checkInUseCase, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(updateStatusUseCase, log)
	getQueue := getQueueHandler.NewHandler(queueSvc, log)
	getQueuePosition := getQueuePositionHandler.NewHandler(queueSvc, log)
	reorderQueue := reorderQueueHandler.NewHandler(queueSvc, log)
	initializePayment := initializePaymentHandler.NewHandler(initializePaymentUseCase, log)
	verifyPayment := verifyPaymentHandler.NewHandler(confirmPaymentUseCase, log)
	paymentWebhook := paymentWebhookHandler.NewHandler(confirmPaymentUseCase, payments, log)
	getSalonInfo := getSalonInfoHandler.NewHandler(salonconfigSvc, log)
	updateWorkingHours := updateWorkingHoursHandler.NewHandler(salonconfigSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/salon", getSalonInfo.Handle).Methods(http.MethodGet)
	api.HandleFunc("/salon/services", getSalonInfo.HandleServices).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/payments/webhook", paymentWebhook.Handle).Methods(http.MethodPost)

	// Customer routes, require X-User-ID header
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", getCustomerAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}/reschedule", rescheduleAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}/check-in", checkIn.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}/queue-position", getQueuePosition.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/payment", initializePayment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/payments/{reference}/verify", verifyPayment.Handle).Methods(http.MethodGet)

	// Staff routes
	staff := protected.PathPrefix("").Subrouter()
	staff.Use(middleware.RequireStaff)

	staff.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)
	staff.HandleFunc("/queue", getQueue.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/queue/order", reorderQueue.Handle).Methods(http.MethodPut)
	staff.HandleFunc("/salon/working-hours", updateWorkingHours.HandleGet).Methods(http.MethodGet)
	staff.HandleFunc("/salon/working-hours", updateWorkingHours.HandleUpdate).Methods(http.MethodPut)

	// Background sweeper for stale unpaid appointments
	sweeperCtx, stopSweeper := context.WithCancel(context.Background())
	stalePaymentSweeper := sweeper.New(
		appointmentRepository,
		time.Duration(cfg.Sweeper.IntervalHours)*time.Hour,
		time.Duration(cfg.Sweeper.ThresholdHours)*time.Hour,
		log,
	)
	go stalePaymentSweeper.Run(sweeperCtx)
	log.Info("Stale payment sweeper started (interval=%dh, threshold=%dh)",
		cfg.Sweeper.IntervalHours, cfg.Sweeper.ThresholdHours)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	stopSweeper()

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
