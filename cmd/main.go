package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/diyapatel028/Mangrove-sentinals/internal/auth"
	"github.com/diyapatel028/Mangrove-sentinals/internal/config"
	v1 "github.com/diyapatel028/Mangrove-sentinals/internal/handler/http/v1"
	"github.com/diyapatel028/Mangrove-sentinals/internal/repository"
	"github.com/diyapatel028/Mangrove-sentinals/internal/service"
	"github.com/diyapatel028/Mangrove-sentinals/internal/webhook"
	"github.com/diyapatel028/Mangrove-sentinals/pkg/logger"
	"github.com/diyapatel028/Mangrove-sentinals/pkg/postgres"
	redisclient "github.com/diyapatel028/Mangrove-sentinals/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/diyapatel028/Mangrove-sentinals/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Mangrove Sentinels API
// @version 1.0
// @description Community conservation reporting platform API server.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log := logger.New(cfg.LogLevel)

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	alertPublisher := webhook.NewRedisAlertPublisher(redisClient)

	webhookWorker := webhook.NewWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTL)

	// Repositories
	userRepo := repository.NewUserRepository(dbpool)
	reportRepo := repository.NewReportRepository(dbpool, redisClient)
	alertRepo := repository.NewAlertRepository(dbpool, redisClient)
	zoneRepo := repository.NewZoneRepository(dbpool)
	statsRepo := repository.NewStatsRepository(dbpool, redisClient, cfg.StatsCacheTTL)

	// Services
	userService := service.NewUserService(userRepo, tokens, log)
	reportService := service.NewReportService(reportRepo, log)
	alertService := service.NewAlertService(alertRepo, log, alertPublisher)
	zoneService := service.NewZoneService(zoneRepo, log)
	statsService := service.NewStatsService(statsRepo, log)

	handler := v1.NewHandler(userService, reportService, alertService, zoneService, statsService, tokens, log, cfg)

	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
