package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/afero"

	portsrepo "github.com/daftari-app/daftari/internal/core/ports/repositories"
	"github.com/daftari-app/daftari/internal/core/services"
	"github.com/daftari-app/daftari/internal/handlers"
	"github.com/daftari-app/daftari/internal/middleware"
	"github.com/daftari-app/daftari/internal/platform/config"
	"github.com/daftari-app/daftari/internal/repositories/kvjson"
	"github.com/daftari-app/daftari/internal/repositories/storage/filestore"
	"github.com/daftari-app/daftari/internal/repositories/storage/sqlitestore"
)

// @title Daftari API
// @version 1.0
// @description Bookkeeping backend for a single advertising office: sales, debts, expenses, reports and backups.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	backend, err := openStorage(cfg)
	if err != nil {
		logger.Error("Failed to open storage backend", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Storage backend ready", slog.String("driver", cfg.StorageDriver))

	repos := kvjson.NewRepositoryProvider(context.Background(), backend, logger)
	serviceContainer := services.NewServiceContainer(cfg, repos)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS for the browser front end)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// openStorage picks the persistence backend from configuration.
func openStorage(cfg *config.Config) (portsrepo.StorageBackend, error) {
	switch cfg.StorageDriver {
	case config.DriverSQLite:
		return sqlitestore.Open(cfg.SQLitePath)
	default:
		return filestore.New(afero.NewOsFs(), cfg.DataDir)
	}
}
