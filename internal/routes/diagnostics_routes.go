package routes

import (
	"dayflow/internal/handler"
	"dayflow/internal/provider"
	"dayflow/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupDiagnosticsRoutes(app *fiber.App, factory *provider.Factory) {
	hdl := handler.NewDiagnosticsHandler(usecase.NewDiagnosticsUsecase(factory))
	app.Get("/api/diagnostics", hdl.Get)
}
