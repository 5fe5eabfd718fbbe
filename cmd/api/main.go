package main

import (
	"log"
	"net"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/minhle/healthtrack/backend/config"
	"github.com/minhle/healthtrack/backend/internal/alerts"
	"github.com/minhle/healthtrack/backend/internal/api"
	"github.com/minhle/healthtrack/backend/internal/database"
	"github.com/minhle/healthtrack/backend/internal/middleware"
	"github.com/minhle/healthtrack/backend/internal/router"
	"github.com/minhle/healthtrack/backend/internal/server"
	"github.com/minhle/healthtrack/backend/internal/service"
)

func main() {
	logger, err := newLogger()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	db, err := database.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.RunMigrations(db); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	// Redis backs the token denylist and rate limiting; the API still
	// works without it.
	var redisClient *redis.Client
	var rateLimiter *middleware.RateLimiter
	if redisClient, err = database.NewRedisClient(cfg, logger); err != nil {
		logger.Warn("redis unavailable, logout denylist and rate limiting disabled", zap.Error(err))
		redisClient = nil
	} else {
		rateLimiter = middleware.NewRecordWriteRateLimiter(redisClient)
	}

	authService := service.NewAuthService(db, redisClient, cfg.JWTSecret, logger)
	healthService := service.NewHealthService(db, logger)
	profileService := service.NewProfileService(db)
	goalService := service.NewGoalService(db)
	alertSystem := alerts.NewSystem(healthService, logger)

	handlers := router.Handlers{
		Auth:      api.NewAuthHandler(authService),
		Records:   api.NewRecordsHandler(healthService),
		Alerts:    api.NewAlertsHandler(alertSystem, healthService),
		Dashboard: api.NewDashboardHandler(alertSystem, healthService),
		Profile:   api.NewProfileHandler(profileService),
		Goals:     api.NewGoalsHandler(goalService),
	}

	srv := server.New(handlers, authService, rateLimiter, logger)

	addr := net.JoinHostPort(cfg.ServerHost, cfg.ServerPort)
	if err := srv.Start(addr); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newLogger() (*zap.Logger, error) {
	if config.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
