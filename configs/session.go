package configs

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/fiber/v2/utils"
)

// SetupSession admin oturumları için cookie tabanlı session store oluşturur.
func SetupSession(cfg *AppConfig) *session.Store {
	return session.New(session.Config{
		Expiration:     cfg.SessionTimeout,
		KeyLookup:      "cookie:undangan_session",
		CookieHTTPOnly: true,
		CookieSecure:   cfg.SessionSecure,
		CookieSameSite: "Lax",
		KeyGenerator:   utils.UUIDv4,
	})
}

// SetupCSRF form gönderimleri için CSRF korumasını kurar.
// Token formlarda "csrf_token" alanıyla taşınır, view'larda c.Locals("csrf") ile okunur.
func SetupCSRF(cfg *AppConfig) fiber.Handler {
	return csrf.New(csrf.Config{
		KeyLookup:      "form:csrf_token",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieHTTPOnly: true,
		CookieSecure:   cfg.SessionSecure,
		Expiration:     1 * time.Hour,
		ContextKey:     "csrf",
		Next: func(c *fiber.Ctx) bool {
			return !cfg.CSRFEnabled
		},
	})
}
