package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"freight/cmd"
	httpadapter "freight/internal/adapters/in/http"
	"freight/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := postgres.RunMigrations(migrationURL(configs)); err != nil {
		logger.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	gormDB, err := gorm.Open(postgresdriver.Open(gormDSN(configs)), &gorm.Config{})
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		logger.Error("Failed to start jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warn("No .env file found, relying on process environment")
	}

	return cmd.Config{
		HTTPPort:         envOrDefault("HTTP_PORT", "8080"),
		DBHost:           os.Getenv("DB_HOST"),
		DBPort:           envOrDefault("DB_PORT", "5432"),
		DBUser:           os.Getenv("DB_USER"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBName:           os.Getenv("DB_NAME"),
		DBSslMode:        envOrDefault("DB_SSLMODE", "disable"),
		AuthIssuer:       os.Getenv("AUTH_ISSUER"),
		AuthAudience:     os.Getenv("AUTH_AUDIENCE"),
		AuthPublicKeyPEM: os.Getenv("AUTH_PUBLIC_KEY_PEM"),
		PageSize:         envIntOrDefault("PAGE_SIZE", 5),
		AuditSchedule:    envOrDefault("AUDIT_SCHEDULE", "@every 1h"),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envIntOrDefault(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

func migrationURL(configs cmd.Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		configs.DBUser, configs.DBPassword, configs.DBHost, configs.DBPort,
		configs.DBName, configs.DBSslMode)
}

func gormDSN(configs cmd.Config) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		configs.DBHost, configs.DBUser, configs.DBPassword, configs.DBName,
		configs.DBPort, configs.DBSslMode)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.HideBanner = true

	metrics := httpadapter.NewMetrics()
	server := app.CreateServer()
	server.RegisterRoutes(e, app.CreateTokenVerifier(), metrics)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
