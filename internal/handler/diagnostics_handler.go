package handler

import (
	"errors"

	"dayflow/config"
	"dayflow/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type DiagnosticsHandler struct {
	diagnostics *usecase.DiagnosticsUsecase
}

func NewDiagnosticsHandler(diagnostics *usecase.DiagnosticsUsecase) *DiagnosticsHandler {
	return &DiagnosticsHandler{diagnostics: diagnostics}
}

func (h *DiagnosticsHandler) Get(c *fiber.Ctx) error {
	report, err := h.diagnostics.Run(c.UserContext(), config.LoadProvider())
	if errors.Is(err, usecase.ErrMissingConfig) {
		return c.Status(fiber.StatusBadRequest).JSON(report)
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error: " + err.Error()})
	}
	return c.JSON(report)
}
