package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"atelier/cmd"
	"atelier/internal/adapters/out/postgres/orderrepo"
	"atelier/internal/adapters/out/postgres/tailorrepo"
	"atelier/internal/core/domain/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// .env is optional; on servers the environment comes from the deployment.
	_ = godotenv.Load(".env")

	config := getConfig()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := openDatabase(config)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	calc, err := buildPricing(config)
	if err != nil {
		log.Fatalf("Failed to load price list: %v", err)
	}

	notifier, closeNotifier, err := cmd.NewNotifier(config, logger)
	if err != nil {
		log.Fatalf("Failed to create notifier: %v", err)
	}
	defer func() {
		_ = closeNotifier()
	}()

	root := cmd.NewCompositionRoot(config, gormDB, notifier, calc, logger)

	jobManager := root.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	e := echo.New()
	e.Use(middleware.Recover())
	root.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)))
}

func getConfig() cmd.Config {
	stalePendingAfter, err := time.ParseDuration(getEnv("STALE_PENDING_AFTER", "24h"))
	if err != nil {
		log.Fatalf("Invalid STALE_PENDING_AFTER: %v", err)
	}

	var brokers []string
	if raw := getEnv("KAFKA_BROKERS", ""); raw != "" {
		brokers = strings.Split(raw, ",")
	}

	return cmd.Config{
		HTTPPort:   getEnv("HTTP_PORT", "8080"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "atelier"),
		DBSslMode:  getEnv("DB_SSLMODE", "disable"),

		KafkaBrokers:           brokers,
		KafkaOrderChangedTopic: getEnv("KAFKA_ORDER_CHANGED_TOPIC", "order.status.changed"),

		PriceListPath:     getEnv("PRICE_LIST_PATH", ""),
		StalePendingAfter: stalePendingAfter,
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func openDatabase(config cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword,
		config.DBName, config.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err = gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &tailorrepo.TailorDTO{}); err != nil {
		return nil, err
	}

	return gormDB, nil
}

func buildPricing(config cmd.Config) (services.PricingService, error) {
	prices := services.DefaultPriceList()
	if config.PriceListPath != "" {
		loaded, err := services.LoadPriceList(config.PriceListPath)
		if err != nil {
			return services.PricingService{}, err
		}
		prices = loaded
	}

	return services.NewPricingService(prices), nil
}
