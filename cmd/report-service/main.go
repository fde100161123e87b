package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"posto-ledger/internal/ledger/repository"
	ledgerservice "posto-ledger/internal/ledger/service"
	"posto-ledger/internal/report/config"
	"posto-ledger/internal/report/delivery/consumer"
	"posto-ledger/internal/report/delivery/scheduler"
	"posto-ledger/internal/report/service"
	"posto-ledger/pkg/common"
	"posto-ledger/pkg/database"
	"posto-ledger/pkg/logger"
	"posto-ledger/pkg/redis"
	"posto-ledger/pkg/telegram"
	"posto-ledger/pkg/utils"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the report service",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Report Service", logger.Field("name", cfg.App.Name))

	threshold := decimal.NewFromInt(500)
	if cfg.Report.LowStockThreshold != "" {
		threshold, err = decimal.NewFromString(cfg.Report.LowStockThreshold)
		if err != nil {
			appLogger.Fatal("Invalid low stock threshold", logger.ErrorField(err))
		}
	}
	tz := cfg.Report.TimeZone
	if tz == "" {
		tz = common.DefaultTimeZone
	}
	loc := utils.Location(tz)

	// Initialize database
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
	if sqlDB, err := db.DB.DB(); err == nil {
		defer sqlDB.Close()
	}

	// Initialize Redis
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

	if err := redisClient.EnsureGroup(ctx, common.RedisStreamLedgerMovement, common.RedisStreamGroup); err != nil {
		appLogger.Fatal("Failed to create consumer group", logger.ErrorField(err))
	}

	notifier := telegram.NewNopNotifier()
	if cfg.Telegram.BotToken != "" {
		notifier, err = telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			appLogger.Fatal("Failed to initialize Telegram notifier", logger.ErrorField(err))
		}
	} else {
		appLogger.Warn("Telegram bot token not set, notifications are disabled")
	}

	// Initialize services
	store := repository.NewStore(db.DB)
	financeSvc := ledgerservice.NewFinanceService(store, 0, appLogger.Named("finance"))
	summarySvc := service.NewSummaryService(financeSvc, store.FuelStocks, notifier, threshold, loc, appLogger.Named("summary"))
	alertSvc := service.NewAlertService(redisClient.Client, notifier, service.AlertOptions{
		Threshold: threshold,
		Window:    cfg.Report.AlertWindow,
		MaxIdle:   cfg.Report.StreamMaxIdle,
		Location:  loc,
	}, appLogger.Named("alert"))

	cronScheduler, err := scheduler.NewCronScheduler(cfg.Report.DailySummaryCron, loc, summarySvc, appLogger.Named("cron"))
	if err != nil {
		appLogger.Fatal("Failed to initialize scheduler", logger.ErrorField(err))
	}
	cronScheduler.Start()

	redisConsumer := consumer.NewRedisConsumer(cfg, alertSvc, appLogger.Named("consumer"))
	redisConsumer.Start(ctx)

	appLogger.Info("Report service started. Waiting for movements...")

	<-ctx.Done()
	appLogger.Info("Shutting down report service...")

	redisConsumer.Stop()
	cronScheduler.Stop()

	appLogger.Info("Report service exiting")
}

func main() {
	rootCmd := &cobra.Command{Use: "report-service"}
	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-report.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing report-service CLI: %s\n", err)
		os.Exit(1)
	}
}
