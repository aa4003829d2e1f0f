package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"dayflow/config"
	"dayflow/internal/database"
	"dayflow/internal/provider"
	"dayflow/pkg/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// separate script, so load .env here too
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env not found, using system environment variables")
	}

	cfg := config.Load()
	if err := logger.Init(cfg.LogLevel, cfg.LogFile); err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	settings := config.LoadProvider()
	if settings.URL == "" || !settings.HasServiceKey() {
		logger.Logger.Fatal("DAYFLOW_DB_URL and DAYFLOW_SERVICE_KEY are required for seeding")
	}

	factory := provider.NewFactory(cfg.JWTSecret, provider.WithAutoMigrate(true))
	defer factory.Close()

	client, err := factory.Client(settings.URL, settings.ServiceKey, provider.WithPersistSession(false))
	if err != nil {
		logger.Logger.Fatal("invalid service key", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := database.SeedAll(ctx, client, time.Now()); err != nil {
		logger.Logger.Fatal("seed failed", zap.Error(err))
	}

	fmt.Println("Test credentials:")
	fmt.Println("  Employee: employee@test.com / " + database.SeedPassword)
	fmt.Println("  HR:       hr@test.com / " + database.SeedPassword)
	fmt.Println("  Admin:    admin@test.com / " + database.SeedPassword)
}
