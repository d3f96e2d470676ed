package routes

import (
	handlers "undangan.link/handlers/dashboard"
	"undangan.link/middlewares"

	"github.com/gofiber/fiber/v2"
)

// registerDashboardRoutes yalnızca superadmin'in erişebildiği rotalar.
func registerDashboardRoutes(app *fiber.App, deps Dependencies) {
	superadminHandler := handlers.NewSuperadminHandler(deps.Provisioning, deps.Themes, deps.Auth)
	categoryHandler := handlers.NewCategoryHandler(deps.Themes)
	themeHandler := handlers.NewThemeHandler(deps.Themes)

	guard := []fiber.Handler{
		middlewares.AuthMiddleware(deps.Auth),
		middlewares.RequireSuperadmin(),
	}

	superadmin := app.Group("/admin/superadmin", guard...)
	superadmin.Get("", superadminHandler.Home)
	superadmin.Post("/edit-superadmin", superadminHandler.UpdateAccount)
	superadmin.Get("/new", superadminHandler.ShowCreateTenantAdmin)
	superadmin.Post("/new", superadminHandler.CreateTenantAdmin)
	superadmin.Post("/edit/:id", superadminHandler.EditTenantAdmin)
	superadmin.Post("/delete/:id", superadminHandler.DeleteTenantAdmin)

	category := app.Group("/admin/category", guard...)
	category.Get("/new", categoryHandler.ShowCreate)
	category.Post("/new", categoryHandler.Create)
	category.Post("/edit/:id", categoryHandler.Update)
	category.Post("/delete/:id", categoryHandler.Delete)

	tema := app.Group("/admin/tema", guard...)
	tema.Get("/baru", themeHandler.ShowCreate)
	tema.Post("/baru", themeHandler.Create)
	tema.Get("/edit/:id", themeHandler.ShowEdit)
	tema.Post("/edit/:id", themeHandler.Update)
	tema.Post("/delete/:id", themeHandler.Delete)
}
