package routes

import (
	"dayflow/internal/handler"
	"dayflow/internal/middleware"
	"dayflow/internal/provider"
	"dayflow/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, factory *provider.Factory) {
	auth := usecase.NewAuthUsecase(factory)
	hdl := handler.NewAuthHandler(auth)
	profile := handler.NewProfileHandler(auth)

	// Public
	app.Post("/api/auth/login", hdl.Login)
	app.Post("/api/auth/register", hdl.Register)

	app.Post("/api/auth/logout", middleware.Auth(factory), hdl.Logout)

	me := app.Group("/api/me", middleware.Auth(factory))
	me.Get("/", profile.Me)
	me.Put("/", profile.Update)
	me.Put("/password", profile.ChangePassword)
}
