package routes

import (
	panel_handlers "undangan.link/handlers/panel"
	"undangan.link/middlewares"

	"github.com/gofiber/fiber/v2"
)

// registerPanelRoutes tenant adminin kendi undangan'ı üzerindeki rotalar.
// Grup /admin önekini superadmin rotalarıyla paylaştığı için guard her rotaya ayrı eklenir.
func registerPanelRoutes(app *fiber.App, deps Dependencies) {
	invitationHandler := panel_handlers.NewPanelInvitationHandler(deps.Invitations)
	guestHandler := panel_handlers.NewPanelGuestHandler(deps.Guests)
	contentHandler := panel_handlers.NewPanelContentHandler(deps.Content)

	authRequired := middlewares.AuthMiddleware(deps.Auth)
	tenantOnly := middlewares.RequireTenantAdmin()
	guarded := func(h fiber.Handler) []fiber.Handler {
		return []fiber.Handler{authRequired, tenantOnly, h}
	}

	panel := app.Group("/admin")

	panel.Get("/dashboard", guarded(invitationHandler.ShowDashboard)...)
	panel.Post("/dashboard", guarded(invitationHandler.UpdateInvitation)...)

	panel.Post("/tamu/new", guarded(guestHandler.CreateGuest)...)
	panel.Post("/tamu/edit/:id", guarded(guestHandler.UpdateGuest)...)
	panel.Post("/tamu/delete/:id", guarded(guestHandler.DeleteGuest)...)
	panel.Post("/tamu/import", guarded(guestHandler.ImportGuests)...)
	panel.Get("/tamu/export", guarded(guestHandler.ExportGuests)...)
	panel.Post("/ucapan/delete/:id", guarded(guestHandler.DeleteGreeting)...)

	panel.Post("/rekening/new", guarded(contentHandler.CreateGiftAccount)...)
	panel.Post("/rekening/delete/:id", guarded(contentHandler.DeleteGiftAccount)...)
	panel.Post("/galeri/new", guarded(contentHandler.CreateGalleryItem)...)
	panel.Post("/galeri/delete/:id", guarded(contentHandler.DeleteGalleryItem)...)
	panel.Post("/cerita/new", guarded(contentHandler.CreateStoryEntry)...)
	panel.Post("/cerita/delete/:id", guarded(contentHandler.DeleteStoryEntry)...)
}
