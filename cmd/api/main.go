package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	historyUseCase "github.com/tipstream/tip-ledger/internal/domain/usecase/history"
	ledgerUseCase "github.com/tipstream/tip-ledger/internal/domain/usecase/ledger"
	settlementUseCase "github.com/tipstream/tip-ledger/internal/domain/usecase/settlement"
	userUseCase "github.com/tipstream/tip-ledger/internal/domain/usecase/user"

	"github.com/tipstream/tip-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/tipstream/tip-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/tipstream/tip-ledger/internal/infrastructure/adapter/database"
	"github.com/tipstream/tip-ledger/internal/infrastructure/adapter/database/migration"
	"github.com/tipstream/tip-ledger/internal/infrastructure/adapter/logger"
	"github.com/tipstream/tip-ledger/internal/infrastructure/adapter/payment"
	timeProvider "github.com/tipstream/tip-ledger/internal/infrastructure/adapter/time"
	"github.com/tipstream/tip-ledger/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	appLogger.SetLevel(logger.ParseLevel(cfg.Logger.Level))

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the ledger store
	dbConfig := database.CreateConfigFromAppConfig(cfg)
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	// Run migrations
	if err := dbManager.MigrationManager().MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Unit of work over the ledger store
	uow := dbManager.CreateUnitOfWork()

	// Initialize use cases
	userService := userUseCase.NewService(uow, tp, appLogger)
	ledgerEngine := ledgerUseCase.NewEngine(uow, tp, appLogger)
	settlementReconciler := settlementUseCase.NewReconciler(uow, tp, appLogger)
	historyService := historyUseCase.NewService(uow, tp, appLogger)

	// Seed development users
	if cfg.Ledger.SeedDefaultUsers || cfg.Environment == config.Development {
		if err := migration.SeedDefaultUsers(context.Background(), userService); err != nil {
			appLogger.Error("Failed to seed default users", map[string]any{
				"error": err.Error(),
			})
		}
	}

	// Payment gateway adapter
	paymentGateway := payment.NewSandboxGateway(appLogger)

	// Initialize API handlers
	userHandler := handler.NewUserHandler(userService, historyService, appLogger)
	tipHandler := handler.NewTipHandler(ledgerEngine, appLogger)
	externalHandler := handler.NewExternalHandler(ledgerEngine, paymentGateway, appLogger)
	webhookHandler := handler.NewWebhookHandler(settlementReconciler, appLogger)
	healthHandler := handler.NewHealthHandler(dbManager, tp)

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger)

	// Setup routes
	routes.SetupRoutes(router, userHandler, tipHandler, externalHandler, webhookHandler, healthHandler)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	if err := appLogger.Flush(); err != nil {
		log.Printf("Failed to flush logger: %v", err)
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	// Validate server configuration
	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}

	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}

	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}

	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	// Validate database configuration
	if cfg.Database.Host == "" {
		if cfg.Environment == config.Production && os.Getenv("TL_DB_HOST") == "" {
			missingConfigs = append(missingConfigs, "database.host (or TL_DB_HOST environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.host")
		}
	}

	if cfg.Database.Port == "" {
		if cfg.Environment == config.Production && os.Getenv("TL_DB_PORT") == "" {
			missingConfigs = append(missingConfigs, "database.port (or TL_DB_PORT environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.port")
		}
	}

	if cfg.Database.Username == "" {
		if cfg.Environment == config.Production && os.Getenv("TL_DB_USERNAME") == "" {
			missingConfigs = append(missingConfigs, "database.username (or TL_DB_USERNAME environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.username")
		}
	}

	if cfg.Database.Password == "" {
		if cfg.Environment == config.Production && os.Getenv("TL_DB_PASSWORD") == "" {
			missingConfigs = append(missingConfigs, "database.password (or TL_DB_PASSWORD environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.password")
		}
	}

	if cfg.Database.Database == "" {
		if cfg.Environment == config.Production && os.Getenv("TL_DB_NAME") == "" {
			missingConfigs = append(missingConfigs, "database.database (or TL_DB_NAME environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.database")
		}
	}

	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	// Logger configuration
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// If we're in production, do additional validation for sensitive settings
	if cfg.Environment == config.Production {
		var warnings []string

		if strings.ToLower(cfg.Database.SSLMode) != "require" && strings.ToLower(cfg.Database.SSLMode) != "verify-ca" && strings.ToLower(cfg.Database.SSLMode) != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}

		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}

		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
