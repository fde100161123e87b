package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"posto-ledger/internal/ledger/config"
	delivery "posto-ledger/internal/ledger/delivery/http"
	_ "posto-ledger/internal/ledger/docs"
	"posto-ledger/internal/ledger/repository"
	"posto-ledger/internal/ledger/service"
	"posto-ledger/pkg/database"
	"posto-ledger/pkg/logger"
	"posto-ledger/pkg/redis"

	"github.com/spf13/cobra"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the ledger API",
	Run:   runServe,
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Creates the default station services",
	Run:   runSeed,
}

func setup() (*config.Config, *logger.Logger, *database.DB) {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	db, err := database.NewDB(database.Config{
		Driver:          cfg.Database.Driver,
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		TimeZone:        cfg.Database.TimeZone,
		Path:            cfg.Database.Path,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		LogLevel:        cfg.Database.LogLevel,
	})
	if err != nil {
		appLogger.Fatal("Failed to initialize database", logger.ErrorField(err))
	}

	// SQLite has no migration runner; create the tables in place.
	if cfg.Database.Driver == "sqlite" {
		if err := repository.AutoMigrate(db.DB); err != nil {
			appLogger.Fatal("Failed to migrate SQLite database", logger.ErrorField(err))
		}
	}
	return cfg, appLogger, db
}

func runServe(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, appLogger, db := setup()
	defer func() { _ = appLogger.Sync() }()
	if sqlDB, err := db.DB.DB(); err == nil {
		defer sqlDB.Close()
	}

	appLogger.Info("Starting Ledger Service", logger.Field("name", cfg.App.Name))

	events := repository.NewNopEventRepository()
	if cfg.Ledger.PublishEvents {
		redisClient, err := redis.NewClient(redis.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err != nil {
			appLogger.Fatal("Failed to initialize Redis", logger.ErrorField(err))
		}
		defer redisClient.Close()
		events = repository.NewEventRepository(redisClient.Client, cfg.Redis.StreamMaxLen)
	}

	itemTTL := time.Minute
	if cfg.Ledger.ItemCacheTTL != "" {
		ttl, err := time.ParseDuration(cfg.Ledger.ItemCacheTTL)
		if err != nil {
			appLogger.Fatal("Invalid item cache TTL", logger.ErrorField(err))
		}
		itemTTL = ttl
	}

	// Initialize services
	store := repository.NewStore(db.DB)
	catalogSvc := service.NewCatalogService(store, itemTTL, appLogger.Named("catalog"))
	movementSvc := service.NewMovementService(store, events, appLogger.Named("movement"))
	transactionSvc := service.NewTransactionService(store, movementSvc, appLogger.Named("transaction"))
	financeSvc := service.NewFinanceService(store, cfg.Ledger.RecentRecordsLimit, appLogger.Named("finance"))

	if cfg.Ledger.SeedServices {
		if _, err := catalogSvc.SeedDefaultServices(ctx); err != nil {
			appLogger.Fatal("Failed to seed default services", logger.ErrorField(err))
		}
	}

	e := delivery.NewServer(delivery.Services{
		Catalog:      catalogSvc,
		Movements:    movementSvc,
		Transactions: transactionSvc,
		Finance:      financeSvc,
	}, cfg.Ledger.RateLimitPerSecond, appLogger)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop()
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

func runSeed(cmd *cobra.Command, args []string) {
	_, appLogger, db := setup()
	defer func() { _ = appLogger.Sync() }()
	if sqlDB, err := db.DB.DB(); err == nil {
		defer sqlDB.Close()
	}

	catalogSvc := service.NewCatalogService(repository.NewStore(db.DB), time.Minute, appLogger)
	created, err := catalogSvc.SeedDefaultServices(cmd.Context())
	if err != nil {
		appLogger.Fatal("Failed to seed default services", logger.ErrorField(err))
	}
	fmt.Printf("Created %d services.\n", created)
}

// @title Posto Ledger API
// @version 1.0
// @description Fuel stock and cash ledger of a gas station.
// @BasePath /api/v1
func main() {
	rootCmd := &cobra.Command{Use: "ledger-service"}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config-ledger.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd, seedCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing ledger-service CLI: %s\n", err)
		os.Exit(1)
	}
}
