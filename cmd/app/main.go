package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"orders/cmd"
	_ "orders/docs"
	orderhttp "orders/internal/adapters/in/http"
	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/bootstrap"
	"orders/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// @title Order Management API
// @version 1.0
// @description REST service for managing customer orders through their lifecycle.
// @BasePath /
func main() {
	configs := getConfigs()

	logger := newLogger(configs.Env, configs.LogLevel)
	slog.SetDefault(logger)

	gormDB, err := openDatabase(configs)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := migrateDatabase(gormDB); err != nil {
		logger.Error("Failed to migrate database", "error", err)
		os.Exit(1)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)

	if configs.SeedDemoData == "true" {
		seeder := bootstrap.NewSeeder(
			app.CreateCreateOrderCommandHandler(),
			app.CreateCompleteOrderCommandHandler(),
			app.CreateCancelOrderCommandHandler(),
			app.CreateGetOrderStatsQueryHandler(),
			logger,
		)
		if err := seeder.Seed(context.Background()); err != nil {
			logger.Error("Failed to seed demo data", "error", err)
			os.Exit(1)
		}
	}

	jobManager := jobs.NewJobManager(app.CreateGetOrderStatsQueryHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		logger.Error("Failed to start jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs, logger)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:     goDotEnvVariable("HTTP_PORT"),
		DBHost:       goDotEnvVariable("DB_HOST"),
		DBPort:       goDotEnvVariable("DB_PORT"),
		DBUser:       goDotEnvVariable("DB_USER"),
		DBPassword:   goDotEnvVariable("DB_PASSWORD"),
		DBName:       goDotEnvVariable("DB_NAME"),
		DBSslMode:    goDotEnvVariable("DB_SSLMODE"),
		BaseURL:      goDotEnvVariable("BASE_URL"),
		Env:          goDotEnvVariable("ENV"),
		LogLevel:     goDotEnvVariable("LOG_LEVEL"),
		SeedDemoData: goDotEnvVariable("SEED_DEMO_DATA"),
	}
	if config.HTTPPort == "" {
		log.Fatalf("HTTP_PORT is required")
	}
	if config.BaseURL == "" {
		config.BaseURL = fmt.Sprintf("http://localhost:%s", config.HTTPPort)
	}
	return config
}

func goDotEnvVariable(key string) string {
	_ = godotenv.Load(".env")
	return os.Getenv(key)
}

func newLogger(env, level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	if env == "prod" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		configs.DBHost, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBPort, configs.DBSslMode)
	return gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
}

func migrateDatabase(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.AddressDTO{},
		&orderrepo.OrderLineDTO{},
	)
}

func startWebServer(app cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) {
	e := echo.New()
	e.HideBanner = true

	e.Use(orderhttp.RequestID())
	e.Use(orderhttp.RequestLogger(logger))

	createHandler := app.CreateCreateOrderCommandHandler()
	updateHandler := app.CreateUpdateOrderCommandHandler()
	cancelHandler := app.CreateCancelOrderCommandHandler()
	completeHandler := app.CreateCompleteOrderCommandHandler()
	deleteHandler := app.CreateDeleteOrderCommandHandler()
	getHandler := app.CreateGetOrderQueryHandler()
	getAllHandler := app.CreateGetAllOrdersQueryHandler()

	server := orderhttp.NewServer(
		configs.BaseURL,
		&createHandler,
		&updateHandler,
		&cancelHandler,
		&completeHandler,
		&deleteHandler,
		getHandler,
		getAllHandler,
	)
	server.RegisterRoutes(e)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	go func() {
		addr := fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
	logger.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Shutdown failed", "error", err)
		os.Exit(1)
	}
	logger.Info("Server stopped")
}
