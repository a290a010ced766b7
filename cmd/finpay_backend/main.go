package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/finpay-app/finpay_backend/internal/core/services"
	"github.com/finpay-app/finpay_backend/internal/handlers"
	"github.com/finpay-app/finpay_backend/internal/middleware"
	"github.com/finpay-app/finpay_backend/internal/platform/config"
	"github.com/finpay-app/finpay_backend/internal/repositories/memory"
	"github.com/finpay-app/finpay_backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// @title FinPay Backend API
// @version 1.0
// @description Demo payments ledger: register, login, check balance and send money.

// @host localhost:3000
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// The ledger is an explicit in-memory instance owned here and passed down;
	// no module-level singletons.
	store := memory.NewStore()
	repos := memory.NewRepositoryProvider(store)
	container := services.NewServiceContainer(cfg, repos)

	if cfg.SeedDemoData {
		seeder := services.NewDemoSeeder(repos.AccountRepo)
		if err := seeder.Seed(context.Background()); err != nil {
			logger.Error("Failed to seed demo accounts", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("Demo accounts seeded", slog.String("accounts", "alice, bob"))
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	utils.RegisterCustomValidators()

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
