package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/rs/cors"

	httpapi "warebook-backend/internal/api/http"
	"warebook-backend/internal/config"
	"warebook-backend/internal/gateway"
	"warebook-backend/internal/jobs"
	"warebook-backend/internal/logger"
	"warebook-backend/internal/repository/postgres"
	"warebook-backend/internal/scheduler"
	"warebook-backend/internal/security"
	"warebook-backend/internal/service"
	"warebook-backend/internal/storage"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	withScheduler := flag.Bool("scheduler", true, "Run the cron scheduler inside the server process")
	flag.Parse()

	// .env is optional; real deployments use actual environment variables
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Warebook backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)
	gatewayClient := gateway.NewClient(nil, cfg.Gateway.BaseURL, cfg.Gateway.KeyID, cfg.Gateway.KeySecret, cfg.Gateway.WebhookSecret)

	imageStore, err := storage.NewLocalStorage(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
	if err != nil {
		log.Fatalf("Failed to initialize image storage: %v", err)
	}

	// Email dispatch runs on a background worker pool; sends never block
	// request handling.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sender := service.NewSendGridSender(cfg.Email.SendGridAPIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	emailQueue := service.NewEmailQueue(sender, cfg.Email.Workers, cfg.Email.QueueSize, cfg.Email.MaxRetries)
	emailQueue.Start(ctx)
	emailSvc := service.NewEmailService(emailQueue)

	authSvc := service.NewAuthService(store.UserRepository, tokenManager, emailSvc)
	warehouseSvc := service.NewWarehouseService(store.WarehouseRepository)
	inquirySvc := service.NewInquiryService(store.InquiryRepository, store.WarehouseRepository)
	contactSvc := service.NewContactService(store.ContactRepository)
	bookingSvc := service.NewBookingService(
		store.PaymentRepository,
		store.BookingRepository,
		store.WarehouseRepository,
		store.UserRepository,
		gatewayClient,
		emailSvc,
		cfg.Booking.FeeCents,
		cfg.Booking.Currency,
	)
	adminSvc := service.NewAdminService(
		store.UserRepository,
		store.WarehouseRepository,
		store.PaymentRepository,
		store.BookingRepository,
		store.InquiryRepository,
	)

	router := httpapi.NewRouter(httpapi.Handlers{
		Auth:      httpapi.NewAuthHandler(authSvc),
		Warehouse: httpapi.NewWarehouseHandler(warehouseSvc),
		Payment:   httpapi.NewPaymentHandler(bookingSvc),
		Inquiry:   httpapi.NewInquiryHandler(inquirySvc),
		Contact:   httpapi.NewContactHandler(contactSvc),
		Admin:     httpapi.NewAdminHandler(adminSvc),
		Upload:    httpapi.NewUploadHandler(imageStore, cfg.Storage.MaxFileSizeMB),
	}, tokenManager, cfg.Server.MaxBodyBytes)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	if *withScheduler {
		runner := jobs.NewJobRunner(store, emailSvc, cfg)
		sched := scheduler.NewScheduler(runner)
		sched.Start()
		defer sched.Stop()
	}

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      corsHandler.Handler(router),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}
