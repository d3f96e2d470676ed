package handlers

import (
	"errors"
	"strconv"

	"undangan.link/configs/configslog"
	"undangan.link/pkg/flashmessages"
	"undangan.link/pkg/renderer"
	"undangan.link/pkg/themegateway"
	"undangan.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CatalogHandler açılış sayfası, tema kataloğu ve tema önizlemesi.
type CatalogHandler struct {
	themes      services.IThemeService
	invitations services.IInvitationService
	gateway     *themegateway.Gateway
}

func NewCatalogHandler(themes services.IThemeService, invitations services.IInvitationService, gateway *themegateway.Gateway) *CatalogHandler {
	return &CatalogHandler{themes: themes, invitations: invitations, gateway: gateway}
}

func (h *CatalogHandler) Landing(c *fiber.Ctx) error {
	return renderer.Render(c, "public/landing", "layouts/public", fiber.Map{
		"Title": "Undangan Digital",
	})
}

// Catalog ?category=<id> ile filtrelenebilir; geçersiz değer filtresiz listeler.
func (h *CatalogHandler) Catalog(c *fiber.Ctx) error {
	var categoryID *uint
	if raw := c.Query("category"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil && id > 0 {
			v := uint(id)
			categoryID = &v
		}
	}

	data := fiber.Map{"Title": "Katalog Tema"}
	themes, err := h.themes.ListThemes(c.UserContext(), categoryID)
	if err != nil {
		configslog.Log.Error("Katalog temaları yüklenemedi", zap.Error(err))
		data[renderer.FlashErrorKeyView] = services.PublicMessage(err)
	}
	categories, err := h.themes.ListCategories(c.UserContext())
	if err != nil {
		configslog.Log.Error("Katalog kategorileri yüklenemedi", zap.Error(err))
	}
	data["Themes"] = themes
	data["Categories"] = categories
	data["SelectedCategory"] = categoryID
	return renderer.Render(c, "public/katalog", "layouts/public", data)
}

// Preview temayı örnek verilerle gösterir.
func (h *CatalogHandler) Preview(c *fiber.Ctx) error {
	inv, err := h.invitations.PreviewInvitation(c.UserContext(), c.Params("template"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Tema tidak ditemukan.")
			return c.Redirect("/katalog", fiber.StatusSeeOther)
		}
		configslog.Log.Error("Tema önizlemesi yüklenemedi", zap.Error(err))
		return renderError(c, services.PublicMessage(err))
	}
	return renderInvitation(c, h.gateway, inv, "#")
}

// NotFound eşleşmeyen rotalar.
func NotFound(c *fiber.Ctx) error {
	return renderNotFound(c, "Halaman yang Anda cari tidak ditemukan.")
}
