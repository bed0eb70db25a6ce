package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/malakyounes2004-ai/fitfix/internal/api/handlers"
	"github.com/malakyounes2004-ai/fitfix/internal/api/router"
	"github.com/malakyounes2004-ai/fitfix/internal/config"
	"github.com/malakyounes2004-ai/fitfix/internal/pkg/logger"
	"github.com/malakyounes2004-ai/fitfix/internal/pkg/validator"
	"github.com/malakyounes2004-ai/fitfix/internal/repository/sqlite"
	"github.com/malakyounes2004-ai/fitfix/internal/services"
	"github.com/malakyounes2004-ai/fitfix/internal/worker"
	"github.com/malakyounes2004-ai/fitfix/migrations"
)

// @title FitFix Admin Analytics API
// @version 1.0
// @description Admin analytics for the FitFix coaching platform: employee accounts, subscriptions, progress tracking, and account health recommendations.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.Init(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	db, err := sqlite.New(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := sqlite.RunMigrations(db, migrations.FS()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Repositories
	userRepo := sqlite.NewUserRepository(db)
	empRepo := sqlite.NewEmployeeRepository(db)
	subRepo := sqlite.NewSubscriptionRepository(db)
	payRepo := sqlite.NewPaymentRepository(db)
	progRepo := sqlite.NewProgressRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.Auth, log)
	empSvc := services.NewEmployeeService(empRepo, log)
	subSvc := services.NewSubscriptionService(subRepo, payRepo, log)
	progSvc := services.NewProgressService(progRepo, empRepo, log)
	statsSvc := services.NewStatisticsService(empRepo, subRepo, log)
	reportSvc := services.NewReportService(empRepo, subRepo, payRepo, log)
	recSvc := services.NewRecommendationService(empRepo, reportSvc, statsSvc, log)

	val := validator.New()

	h := &router.Handlers{
		Health:         handlers.NewHealthHandler(db, log),
		Auth:           handlers.NewAuthHandler(authSvc, userRepo, log, val),
		Employee:       handlers.NewEmployeeHandler(empSvc, reportSvc, log, val),
		Billing:        handlers.NewBillingHandler(subSvc, log, val),
		Progress:       handlers.NewProgressHandler(progSvc, log, val),
		Statistics:     handlers.NewStatisticsHandler(statsSvc, log),
		Recommendation: handlers.NewRecommendationHandler(recSvc, log),
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.New(cfg, log, h),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Background fleet statistics exporter
	workerCtx, cancelWorker := context.WithCancel(context.Background())
	exporter := worker.NewStatsExporter(statsSvc, cfg.Stats.RefreshSchedule, log)
	if err := exporter.Start(workerCtx); err != nil {
		log.Fatalf("Failed to start stats exporter: %v", err)
	}

	go func() {
		log.Infof("Server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	cancelWorker()
	exporter.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Info("Server stopped")
}
