package handlers

import (
	"errors"
	"fmt"

	"undangan.link/configs/configslog"
	"undangan.link/models"
	"undangan.link/pkg/flashmessages"
	"undangan.link/pkg/renderer"
	"undangan.link/pkg/themegateway"
	"undangan.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// LinkHandler misafirin kişisel davetiye linki: /:slug/:code.
type LinkHandler struct {
	invitations services.IInvitationService
	guests      services.IGuestService
	gateway     *themegateway.Gateway
}

func NewLinkHandler(invitations services.IInvitationService, guests services.IGuestService, gateway *themegateway.Gateway) *LinkHandler {
	return &LinkHandler{invitations: invitations, guests: guests, gateway: gateway}
}

// invitationPath misafirin kişisel link yolu.
func invitationPath(slug, code string) string {
	return fmt.Sprintf("/%s/%s", slug, code)
}

// HandleLink davetiyeyi undangan'ın temasıyla render eder.
func (h *LinkHandler) HandleLink(c *fiber.Ctx) error {
	slug, code := c.Params("slug"), c.Params("code")
	inv, err := h.invitations.GetPublicInvitation(c.UserContext(), slug, code)
	if err != nil {
		return h.handleLookupError(c, err, slug)
	}
	return renderInvitation(c, h.gateway, inv, invitationPath(slug, code))
}

// handleLookupError bulunamayan davetiyeyi kataloğa yönlendirir.
func (h *LinkHandler) handleLookupError(c *fiber.Ctx, err error, slug string) error {
	if errors.Is(err, services.ErrNotFound) {
		configslog.SLog.Debugf("Davetiye bulunamadı: %s", slug)
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Undangan tidak ditemukan atau kode tamu tidak valid.")
		return c.Redirect("/katalog", fiber.StatusSeeOther)
	}
	configslog.Log.Error("HandleLink: davetiye yüklenemedi", zap.String("slug", slug), zap.Error(err))
	return renderError(c, services.PublicMessage(err))
}

// renderInvitation tema varyantına verilen ortak veri.
func renderInvitation(c *fiber.Ctx, gateway *themegateway.Gateway, inv *services.PublicInvitation, action string) error {
	data := fiber.Map{
		"Title":        inv.Tenant.CoupleName,
		"Undangan":     inv.Tenant,
		"Tema":         inv.Theme,
		"Tamu":         inv.Guest,
		"Rekening":     inv.Gifts,
		"Galeri":       inv.Gallery,
		"Cerita":       inv.Stories,
		"Ucapan":       inv.Greetings,
		"Preview":      inv.Preview,
		"RSVPStatuses": models.RSVPStatuses,
		"FormAction":   action,
		"CsrfToken":    c.Locals("csrf"),
	}
	if msgs, err := flashmessages.GetFlashMessages(c); err == nil {
		renderer.SetFlashMessages(data, msgs)
	}

	if err := gateway.Render(c, inv.Theme.TemplateName, data); err != nil {
		if errors.Is(err, themegateway.ErrUnknownTemplate) {
			configslog.Log.Error("Tema şablonu kayıtlı değil", zap.String("template", inv.Theme.TemplateName), zap.Uint("theme_id", inv.Theme.ID))
			return renderError(c, "Tema undangan tidak tersedia.")
		}
		return err
	}
	return nil
}

func renderNotFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{
		"Title":   "Tidak Ditemukan",
		"Message": message,
	}, "layouts/error")
}

func renderError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusInternalServerError).Render("errors/500", fiber.Map{
		"Title":   "Terjadi Kesalahan",
		"Message": message,
	}, "layouts/error")
}
