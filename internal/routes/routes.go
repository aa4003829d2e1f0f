package routes

import (
	"dayflow/internal/notify"
	"dayflow/internal/provider"

	"github.com/gofiber/fiber/v2"
)

// Setup mounts every API route.
func Setup(app *fiber.App, factory *provider.Factory, notifier notify.Notifier) {
	SetupAuthRoutes(app, factory)
	SetupAttendanceRoutes(app, factory)
	SetupLeaveRoutes(app, factory, notifier)
	SetupCompanyRoutes(app, factory)
	SetupHRRoutes(app, factory)
	SetupDiagnosticsRoutes(app, factory)
}
