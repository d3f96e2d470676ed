package routes

import (
	auth_handlers "undangan.link/handlers/auth"
	"undangan.link/middlewares"

	"github.com/gofiber/fiber/v2"
)

func registerAuthRoutes(app *fiber.App, deps Dependencies) {
	authHandler := auth_handlers.NewAuthHandler(deps.Auth)

	guestRoutes := app.Group("/admin/login")
	guestRoutes.Use(middlewares.GuestMiddleware(deps.Auth))
	guestRoutes.Get("", authHandler.ShowLogin)
	guestRoutes.Post("", authHandler.Login)

	app.Get("/admin/logout", authHandler.Logout)
	app.Get("/admin", middlewares.AuthMiddleware(deps.Auth), authHandler.AdminHome)
}
