package handler

import (
	"dayflow/internal/repository"
	"dayflow/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type AttendanceHandler struct{}

func NewAttendanceHandler() *AttendanceHandler {
	return &AttendanceHandler{}
}

func (h *AttendanceHandler) usecase(c *fiber.Ctx) *usecase.AttendanceUsecase {
	return usecase.NewAttendanceUsecase(repository.NewAttendanceRepository(requestDB(c)))
}

// Today also reports the check-in/out state the dashboard buttons depend on.
func (h *AttendanceHandler) Today(c *fiber.Ctx) error {
	row, err := h.usecase(c).Today(c.UserContext(), currentUser(c).ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"data":        row,
		"checked_in":  row != nil && row.CheckIn != nil,
		"checked_out": row != nil && row.CheckOut != nil,
	})
}

func (h *AttendanceHandler) CheckIn(c *fiber.Ctx) error {
	row, err := h.usecase(c).CheckIn(c.UserContext(), currentUser(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Checked in",
		"data":    row,
	})
}

func (h *AttendanceHandler) CheckOut(c *fiber.Ctx) error {
	row, err := h.usecase(c).CheckOut(c.UserContext(), currentUser(c).ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Checked out",
		"data":    row,
	})
}

func (h *AttendanceHandler) History(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", usecase.DefaultHistoryLimit)
	rows, err := h.usecase(c).History(c.UserContext(), currentUser(c).ID, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Attendance history loaded",
		"data":    rows,
	})
}

func (h *AttendanceHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.usecase(c).Summary(c.UserContext(), currentUser(c).ID, c.QueryInt("month", 0), c.QueryInt("year", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Attendance summary loaded",
		"data":    summary,
	})
}
