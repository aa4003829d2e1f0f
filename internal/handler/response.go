package handler

import (
	"errors"

	"dayflow/internal/model"
	"dayflow/internal/provider"
	"dayflow/internal/usecase"
	"dayflow/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// respondError maps use-case and provider errors onto HTTP responses.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, usecase.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	case errors.Is(err, usecase.ErrAlreadyCheckedIn),
		errors.Is(err, usecase.ErrNotCheckedIn),
		errors.Is(err, usecase.ErrAlreadyCheckedOut),
		errors.Is(err, usecase.ErrOnLeave),
		errors.Is(err, usecase.ErrLeaveNotPending):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, usecase.ErrMissingConfig):
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	perr, _ := provider.AsError(provider.Classify(err))
	if perr.Status >= fiber.StatusInternalServerError {
		logger.Logger.Error("request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}
	return c.Status(perr.Status).JSON(fiber.Map{"error": perr.Message, "code": perr.Code})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
}

func currentUser(c *fiber.Ctx) *model.User {
	user, _ := c.Locals("user").(*model.User)
	return user
}

func requestDB(c *fiber.Ctx) *gorm.DB {
	db, _ := c.Locals("db").(*gorm.DB)
	return db
}

func currentClient(c *fiber.Ctx) *provider.Client {
	client, _ := c.Locals("client").(*provider.Client)
	return client
}
