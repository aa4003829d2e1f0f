package routes

import (
	"dayflow/internal/handler"
	"dayflow/internal/middleware"
	"dayflow/internal/model"
	"dayflow/internal/provider"

	"github.com/gofiber/fiber/v2"
)

func SetupHRRoutes(app *fiber.App, factory *provider.Factory) {
	hdl := handler.NewHRHandler()

	hr := app.Group("/api/hr", middleware.Auth(factory), middleware.Role(model.RoleHR, model.RoleAdmin))
	hr.Get("/dashboard", hdl.Dashboard)
	hr.Get("/employees", middleware.Permission(middleware.PermEmployeesRead), hdl.Employees)
	hr.Get("/employees/:id/attendance", middleware.Permission(middleware.PermAttendanceRead), hdl.EmployeeAttendance)
	hr.Get("/employees/:id/payroll", middleware.Permission(middleware.PermPayrollRead), hdl.EmployeePayroll)
	hr.Get("/reports/attendance.xlsx", middleware.Permission(middleware.PermReportsRead), hdl.AttendanceReport)
}
