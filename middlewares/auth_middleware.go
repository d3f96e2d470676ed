package middlewares

import (
	"errors"

	"undangan.link/configs/configslog"
	"undangan.link/pkg/flashmessages"
	"undangan.link/services"
	"undangan.link/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"go.uber.org/zap"
)

// PrincipalKey oturumdaki Principal'ın Locals anahtarı.
const PrincipalKey = "principal"

// SessionMiddleware session store'u sonraki handler'lara taşır.
func SessionMiddleware(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("session_store", store)
		return c.Next()
	}
}

// AuthMiddleware oturumdaki admini yükler. Oturum yoksa veya hesap silinmişse login sayfasına yönlendirir.
func AuthMiddleware(auth services.IAuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := utils.SessionStart(c)
		if err != nil {
			configslog.Log.Error("AuthMiddleware: session açılamadı", zap.Error(err))
			return c.Redirect("/admin/login", fiber.StatusSeeOther)
		}
		adminID, err := utils.GetAdminIDFromSession(sess)
		if err != nil {
			_ = flashmessages.SetFlashMessage(c, flashmessages.FlashInfoKey, "Silakan login terlebih dahulu.")
			return c.Redirect("/admin/login", fiber.StatusSeeOther)
		}

		principal, err := auth.CurrentPrincipal(c.UserContext(), adminID)
		if err != nil {
			if !errors.Is(err, services.ErrNotFound) {
				configslog.Log.Error("AuthMiddleware: admin yüklenemedi", zap.Uint("admin_id", adminID), zap.Error(err))
			}
			_ = utils.LogoutSession(c)
			return c.Redirect("/admin/login", fiber.StatusSeeOther)
		}

		c.Locals(PrincipalKey, *principal)
		c.Locals("adminUsername", principal.Username)
		c.Locals("isSuperadmin", principal.IsSuperadmin)
		return c.Next()
	}
}

// GuestMiddleware giriş yapmış admini kendi ana sayfasına gönderir.
func GuestMiddleware(auth services.IAuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := utils.SessionStart(c)
		if err != nil {
			return c.Next()
		}
		adminID, err := utils.GetAdminIDFromSession(sess)
		if err != nil {
			return c.Next()
		}
		principal, err := auth.CurrentPrincipal(c.UserContext(), adminID)
		if err != nil {
			return c.Next()
		}
		return c.Redirect(HomePath(*principal), fiber.StatusSeeOther)
	}
}

// HomePath role göre admin ana sayfası.
func HomePath(p services.Principal) string {
	if p.IsSuperadmin {
		return "/admin/superadmin"
	}
	return "/admin/dashboard"
}

// CurrentPrincipal AuthMiddleware'in yüklediği Principal.
func CurrentPrincipal(c *fiber.Ctx) (services.Principal, bool) {
	p, ok := c.Locals(PrincipalKey).(services.Principal)
	return p, ok
}
