package handlers

import (
	"errors"
	"net/http"

	"undangan.link/configs/configslog"
	common "undangan.link/handlers"
	"undangan.link/middlewares"
	"undangan.link/pkg/flashmessages"
	"undangan.link/pkg/renderer"
	"undangan.link/services"
	"undangan.link/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AuthHandler struct {
	service services.IAuthService
}

func NewAuthHandler(service services.IAuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

type loginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func (h *AuthHandler) ShowLogin(c *fiber.Ctx) error {
	return renderer.Render(c, "admin/login", "layouts/auth", fiber.Map{
		"Title": "Login Admin",
	})
}

// Login limit aşıldığında 429, hatalı bilgilerde 401 ile formu yeniden gösterir.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return renderer.Render(c, "admin/login", "layouts/auth", fiber.Map{
			"Title":                    "Login Admin",
			renderer.FlashErrorKeyView: "Data form tidak valid.",
		}, http.StatusBadRequest)
	}

	principal, err := h.service.Authenticate(c.UserContext(), utils.ClientAddr(c), req.Username, req.Password)
	if err != nil {
		status := http.StatusUnauthorized
		switch {
		case errors.Is(err, services.ErrRateLimited):
			status = http.StatusTooManyRequests
		case errors.Is(err, services.ErrStorageFailure):
			status = http.StatusInternalServerError
			configslog.Log.Error("Login sırasında hata", zap.Error(err))
		}
		return renderer.Render(c, "admin/login", "layouts/auth", fiber.Map{
			"Title":                    "Login Admin",
			"Username":                 req.Username,
			renderer.FlashErrorKeyView: services.PublicMessage(err),
		}, status)
	}

	// flash, Regenerate eski session'ı silmeden önce aynı session'a yazılır
	common.FlashSuccess(c, "Login berhasil!")
	if err := utils.LoginSession(c, principal.AdminID); err != nil {
		configslog.Log.Error("Oturum başlatılamadı", zap.Uint("admin_id", principal.AdminID), zap.Error(err))
		_, _ = flashmessages.GetFlashMessages(c)
		return renderer.Render(c, "admin/login", "layouts/auth", fiber.Map{
			"Title":                    "Login Admin",
			renderer.FlashErrorKeyView: services.ErrStorageFailure.Error(),
		}, http.StatusInternalServerError)
	}
	return common.SeeOther(c, middlewares.HomePath(*principal))
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := utils.LogoutSession(c); err != nil {
		configslog.Log.Warn("Oturum kapatılamadı", zap.Error(err))
	}
	return common.SeeOther(c, "/admin/login")
}

// AdminHome /admin isteğini role göre yönlendirir.
func (h *AuthHandler) AdminHome(c *fiber.Ctx) error {
	p, ok := middlewares.CurrentPrincipal(c)
	if !ok {
		return common.SeeOther(c, "/admin/login")
	}
	return common.SeeOther(c, middlewares.HomePath(p))
}
