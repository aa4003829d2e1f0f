package routes

import (
	"dayflow/internal/handler"
	"dayflow/internal/middleware"
	"dayflow/internal/provider"

	"github.com/gofiber/fiber/v2"
)

func SetupCompanyRoutes(app *fiber.App, factory *provider.Factory) {
	hdl := handler.NewCompanyHandler()

	api := app.Group("/api/companies", middleware.Auth(factory), middleware.Permission(middleware.PermCompanyWrite))
	api.Get("/", hdl.List)
	api.Post("/", hdl.Create)
	api.Post("/:id/select", hdl.Select)
}
