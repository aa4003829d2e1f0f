package handler

import (
	"dayflow/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type PayrollHandler struct{}

func NewPayrollHandler() *PayrollHandler {
	return &PayrollHandler{}
}

func (h *PayrollHandler) Me(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Payroll loaded",
		"data":    usecase.PayrollFor(currentUser(c)),
	})
}
