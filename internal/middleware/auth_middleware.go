package middleware

import (
	"errors"
	"strings"

	"dayflow/config"
	"dayflow/internal/model"
	"dayflow/internal/provider"
	"dayflow/internal/repository"
	"dayflow/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Auth resolves the bearer token through the provider and stores the session
// client, its database handle and the caller's profile in c.Locals.
func Auth(factory *provider.Factory) fiber.Handler {
	return func(c *fiber.Ctx) error {
		settings := config.LoadProvider()
		if settings.Missing() {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Missing database configuration"})
		}

		// 1. Bearer token
		authHeader := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing access token"})
		}
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing access token"})
		}

		// 2. Verify the session
		ctx := c.UserContext()
		client, err := factory.Client(settings.URL, settings.AnonKey)
		if err != nil {
			logger.Logger.Error("provider client rejected", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Invalid database configuration"})
		}
		user, err := client.SetSession(ctx, token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		// 3. Load the profile
		db, err := client.DB(ctx)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		profile, err := repository.NewUserRepository(db).FindByID(ctx, user.ID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Profile not found"})
		} else if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch user data"})
		}
		if profile.Role == "" {
			profile.Role = model.RoleEmployee
		}

		c.Locals("client", client)
		c.Locals("db", db)
		c.Locals("user", profile)
		c.Locals("user_id", profile.ID)
		c.Locals("role", profile.Role)

		return c.Next()
	}
}
