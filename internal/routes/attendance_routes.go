package routes

import (
	"dayflow/internal/handler"
	"dayflow/internal/middleware"
	"dayflow/internal/provider"

	"github.com/gofiber/fiber/v2"
)

func SetupAttendanceRoutes(app *fiber.App, factory *provider.Factory) {
	hdl := handler.NewAttendanceHandler()

	api := app.Group("/api/attendance", middleware.Auth(factory), middleware.Permission(middleware.PermAttendanceSelf))
	api.Get("/today", hdl.Today)
	api.Post("/check-in", hdl.CheckIn)
	api.Post("/check-out", hdl.CheckOut)
	api.Get("/history", hdl.History)
	api.Get("/summary", hdl.Summary)

	payroll := handler.NewPayrollHandler()
	app.Get("/api/payroll/me", middleware.Auth(factory), middleware.Permission(middleware.PermPayrollSelf), payroll.Me)
}
