package routes

import (
	"dayflow/internal/handler"
	"dayflow/internal/middleware"
	"dayflow/internal/model"
	"dayflow/internal/notify"
	"dayflow/internal/provider"

	"github.com/gofiber/fiber/v2"
)

func SetupLeaveRoutes(app *fiber.App, factory *provider.Factory, notifier notify.Notifier) {
	hdl := handler.NewLeaveHandler(notifier)

	api := app.Group("/api/leaves", middleware.Auth(factory), middleware.Permission(middleware.PermLeaveWrite))
	api.Post("/", hdl.Create)
	api.Get("/", hdl.List)

	// Approval (HR)
	hr := app.Group("/api/hr/leaves", middleware.Auth(factory), middleware.Role(model.RoleHR, model.RoleAdmin), middleware.Permission(middleware.PermLeaveApprove))
	hr.Get("/pending", hdl.Pending)
	hr.Post("/:id/approve", hdl.Approve)
	hr.Post("/:id/reject", hdl.Reject)
}
