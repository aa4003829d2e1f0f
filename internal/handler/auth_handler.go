package handler

import (
	"errors"
	"strings"

	"dayflow/config"
	"dayflow/internal/provider"
	"dayflow/internal/usecase"
	"dayflow/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AuthHandler struct {
	auth *usecase.AuthUsecase
}

func NewAuthHandler(auth *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	result, err := h.auth.Login(c.UserContext(), config.LoadProvider(), strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingConfig):
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, usecase.ErrRoleLookup):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		if perr, ok := provider.AsError(err); ok {
			logger.Logger.Info("login rejected", zap.String("code", perr.Code))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": perr.Message})
		}
		logger.Logger.Error("login failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user":    result.User,
		"session": result.Session,
		"role":    result.Role,
	})
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req usecase.RegisterInput
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	result, err := h.auth.Register(c.UserContext(), config.LoadProvider(), req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingConfig), errors.Is(err, usecase.ErrUserMissing):
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, usecase.ErrInvalidInput), errors.Is(err, usecase.ErrProfileCreate):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		if perr, ok := provider.AsError(err); ok {
			logger.Logger.Info("registration rejected", zap.String("code", perr.Code))
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": perr.Message})
		}
		logger.Logger.Error("registration failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error: " + err.Error()})
	}

	body := fiber.Map{"success": true, "userId": result.UserID}
	if result.Warning != "" {
		body["warning"] = result.Warning
	} else {
		body["profile"] = result.Profile
	}
	return c.Status(fiber.StatusCreated).JSON(body)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.auth.Logout(c.UserContext(), currentClient(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Signed out"})
}
