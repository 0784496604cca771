package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"field-track-api/internal/client"
	"field-track-api/internal/config"
	"field-track-api/internal/database"
	"field-track-api/internal/handler"
	"field-track-api/internal/job"
	"field-track-api/internal/metrics"
	"field-track-api/internal/repository"
	"field-track-api/internal/router"
	"field-track-api/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := initLogger(cfg.Logger.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Set Gin mode
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting Field Track API",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("base_path", cfg.Server.BasePath),
	)

	// Initialize database
	db, err := database.New(database.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("Failed to run database migrations", zap.Error(err))
	}
	logger.Info("Database connected and migrated")

	// Initialize metrics and instrument the ORM
	m := metrics.New()
	database.RegisterMetricsCallbacks(db, m)
	logger.Info("Metrics initialized")

	// Initialize Redis (optional performance cache)
	redisClient, err := database.NewRedis(cfg.Redis, logger)
	if err != nil {
		logger.Warn("Redis unavailable, performance cache disabled", zap.Error(err))
		redisClient = nil
	}

	// Initialize off-site backup store (optional)
	var backupStore client.BackupStore
	if cfg.S3.Bucket != "" && cfg.S3.Region != "" {
		store, err := client.NewS3BackupStore(&cfg.S3)
		if err != nil {
			logger.Warn("Failed to initialize backup store, off-site backups disabled", zap.Error(err))
		} else {
			backupStore = store
			logger.Info("Backup store initialized",
				zap.String("bucket", cfg.S3.Bucket),
				zap.String("region", cfg.S3.Region),
			)
		}
	} else {
		logger.Warn("S3 configuration incomplete, off-site backups disabled")
	}

	// Wire repositories and services
	projectRepo := repository.NewProjectRepository(db)
	workLogRepo := repository.NewWorkLogRepository(db)
	workerRepo := repository.NewWorkerRepository(db)

	projectService := service.NewProjectService(projectRepo, m, logger)
	workLogService := service.NewWorkLogService(workLogRepo, projectRepo, workerRepo, m, logger)
	workerService := service.NewWorkerService(workerRepo, logger)
	performanceService := service.NewPerformanceService(
		projectRepo, workLogRepo, workerRepo,
		redisClient,
		time.Duration(cfg.Redis.SnapshotTTL)*time.Second,
		logger,
	)
	backupService := service.NewBackupService(
		projectRepo, workLogRepo, workerRepo,
		backupStore,
		cfg.Backup.ExportedBy,
		m, logger,
	)

	// Schedule the completed-count reconcile job
	scheduler := cron.New()
	if _, err := scheduler.AddJob(cfg.Jobs.ReconcileSchedule, job.NewReconcileJob(projectRepo, logger)); err != nil {
		logger.Warn("Failed to schedule reconcile job", zap.Error(err))
	}
	scheduler.Start()

	// Setup router with all dependencies
	r := router.Setup(router.Config{
		BasePath:           cfg.Server.BasePath,
		DB:                 db,
		Redis:              redisClient,
		Metrics:            m,
		Logger:             logger,
		ProjectHandler:     handler.NewProjectHandler(projectService, logger),
		WorkLogHandler:     handler.NewWorkLogHandler(workLogService, logger),
		WorkerHandler:      handler.NewWorkerHandler(workerService, logger),
		PerformanceHandler: handler.NewPerformanceHandler(performanceService, logger),
		BackupHandler:      handler.NewBackupHandler(backupService, logger),
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Field Track API started successfully", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	scheduler.Stop()

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	if redisClient != nil {
		redisClient.Close()
	}
	if err := database.Close(db); err != nil {
		logger.Error("Failed to close database", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}

// initLogger initializes the zap logger with the specified level
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
