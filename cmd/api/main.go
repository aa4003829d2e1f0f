package main

import (
	"errors"
	"log"
	"time"

	"dayflow/config"
	"dayflow/internal/blacklist"
	"dayflow/internal/notify"
	"dayflow/internal/provider"
	"dayflow/internal/routes"
	"dayflow/pkg/logger"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env not found, using system environment variables")
	}

	cfg := config.Load()
	if err := logger.Init(cfg.LogLevel, cfg.LogFile); err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		logger.Logger.Fatal("invalid configuration", zap.Error(err))
	}
	if cfg.UsingDevSecret() {
		logger.Logger.Warn("DAYFLOW_JWT_SECRET is not set; signing keys with the development secret")
	}

	// Session revocation
	var revoker blacklist.Blacklist = blacklist.NewMemoryBlacklist()
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPass})
		defer rdb.Close()
		revoker = blacklist.NewRedisBlacklist(rdb, "dayflow:revoked:")
		logger.Logger.Info("using redis session blacklist", zap.String("addr", cfg.RedisAddr))
	}

	factory := provider.NewFactory(cfg.JWTSecret,
		provider.WithSessionTTL(cfg.SessionTTL),
		provider.WithAutoConfirm(cfg.AutoConfirm),
		provider.WithAutoMigrate(cfg.AutoMigrate),
		provider.WithRevoker(revoker),
	)
	defer factory.Close()

	var notifier notify.Notifier = notify.Nop{}
	if cfg.SMTP.Enabled() {
		mailer := notify.NewAsync(notify.NewMailer(cfg.SMTP), 30*time.Second)
		defer mailer.Wait()
		notifier = mailer
		logger.Logger.Info("leave notifications enabled", zap.String("smtp_host", cfg.SMTP.Host))
	}

	if config.LoadProvider().Missing() {
		logger.Logger.Warn("DAYFLOW_DB_URL or DAYFLOW_ANON_KEY is not set; data routes will answer with a configuration error")
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			if code >= fiber.StatusInternalServerError {
				logger.Logger.Error("unhandled error", zap.String("path", c.Path()), zap.Error(err))
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	// Middleware Global
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(fiberlogger.New())

	routes.Setup(app, factory, notifier)

	logger.Logger.Info("server listening", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Logger.Fatal("server stopped", zap.Error(err))
	}
}
