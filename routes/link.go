package routes

import (
	handlers "undangan.link/handlers/link"

	"github.com/gofiber/fiber/v2"
)

// registerPublicLinkRoutes açılış, katalog ve misafirin kişisel linki.
func registerPublicLinkRoutes(app *fiber.App, deps Dependencies) {
	catalogHandler := handlers.NewCatalogHandler(deps.Themes, deps.Invitations, deps.Gateway)
	linkHandler := handlers.NewLinkHandler(deps.Invitations, deps.Guests, deps.Gateway)

	app.Get("/", catalogHandler.Landing)
	app.Get("/katalog", catalogHandler.Catalog)
	app.Get("/katalog/:template", catalogHandler.Preview)

	app.Get("/:slug/:code", linkHandler.HandleLink)
	app.Post("/:slug/:code", linkHandler.SubmitRSVP)
}
