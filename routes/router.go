package routes

import (
	"undangan.link/configs"
	"undangan.link/configs/configslog"
	link_handlers "undangan.link/handlers/link"
	"undangan.link/middlewares"
	"undangan.link/pkg/themegateway"
	"undangan.link/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Dependencies rotaların kullandığı servisler ve altyapı.
type Dependencies struct {
	Config       *configs.AppConfig
	Sessions     *session.Store
	Gateway      *themegateway.Gateway
	Auth         services.IAuthService
	Provisioning services.IProvisioningService
	Themes       services.IThemeService
	Guests       services.IGuestService
	Content      services.IContentService
	Invitations  services.IInvitationService
}

// SetupRoutes tüm uygulama rotalarını ve genel middleware'leri ayarlar.
func SetupRoutes(app *fiber.App, deps Dependencies) {
	app.Use(recoverMiddleware.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/metrics"
		},
	}))
	app.Use(middlewares.SessionMiddleware(deps.Sessions))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Static("/"+deps.Config.UploadURLBase, deps.Config.UploadDir)

	// Formlar CSRF korumalı; metrics ve statik dosyalar hariç.
	app.Use(configs.SetupCSRF(deps.Config))

	registerAuthRoutes(app, deps)
	registerDashboardRoutes(app, deps)
	registerPanelRoutes(app, deps)

	// /:slug/:code diğer tüm gruplardan sonra gelmeli.
	registerPublicLinkRoutes(app, deps)

	app.Use(link_handlers.NotFound)
	configslog.Log.Debug("Rotalar kaydedildi", zap.Int("handlers", int(app.HandlersCount())))
}
