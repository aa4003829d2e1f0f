package handler

import (
	"fmt"

	"dayflow/internal/repository"
	"dayflow/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type HRHandler struct{}

func NewHRHandler() *HRHandler {
	return &HRHandler{}
}

func (h *HRHandler) usecase(c *fiber.Ctx) *usecase.HRUsecase {
	db := requestDB(c)
	return usecase.NewHRUsecase(
		repository.NewUserRepository(db),
		repository.NewAttendanceRepository(db),
		repository.NewDashboardRepository(db),
	)
}

func (h *HRHandler) Employees(c *fiber.Ctx) error {
	list, err := h.usecase(c).Employees(c.UserContext(), currentUser(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Employees loaded",
		"data":    list,
	})
}

func (h *HRHandler) EmployeeAttendance(c *fiber.Ctx) error {
	rows, err := h.usecase(c).EmployeeAttendance(c.UserContext(), currentUser(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Employee attendance loaded",
		"data":    rows,
	})
}

func (h *HRHandler) EmployeePayroll(c *fiber.Ctx) error {
	p, err := h.usecase(c).EmployeePayroll(c.UserContext(), currentUser(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Payroll loaded",
		"data":    p,
	})
}

func (h *HRHandler) Dashboard(c *fiber.Ctx) error {
	stats, err := h.usecase(c).Dashboard(c.UserContext(), currentUser(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Dashboard statistics loaded",
		"data":    stats,
	})
}

func (h *HRHandler) AttendanceReport(c *fiber.Ctx) error {
	month, year := c.QueryInt("month", 0), c.QueryInt("year", 0)
	buf, err := h.usecase(c).AttendanceReport(c.UserContext(), currentUser(c), month, year)
	if err != nil {
		return respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="attendance-%04d-%02d.xlsx"`, year, month))
	return c.Send(buf.Bytes())
}
