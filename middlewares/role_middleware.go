package middlewares

import (
	"undangan.link/pkg/flashmessages"

	"github.com/gofiber/fiber/v2"
)

// RequireSuperadmin superadmin olmayanları panel ana sayfasına gönderir.
func RequireSuperadmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, ok := CurrentPrincipal(c)
		if !ok {
			return c.Redirect("/admin/login", fiber.StatusSeeOther)
		}
		if !p.IsSuperadmin {
			_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey,
				"Akses ditolak. Hanya superadmin yang dapat mengakses halaman ini.")
			return c.Redirect("/admin/dashboard", fiber.StatusSeeOther)
		}
		return c.Next()
	}
}

// RequireTenantAdmin superadmini kendi sayfasına gönderir.
func RequireTenantAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, ok := CurrentPrincipal(c)
		if !ok {
			return c.Redirect("/admin/login", fiber.StatusSeeOther)
		}
		if p.IsSuperadmin {
			return c.Redirect("/admin/superadmin", fiber.StatusSeeOther)
		}
		return c.Next()
	}
}
