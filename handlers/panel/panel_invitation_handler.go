package handlers

import (
	"errors"

	common "undangan.link/handlers"
	"undangan.link/middlewares"
	"undangan.link/models"
	"undangan.link/pkg/flashmessages"
	"undangan.link/pkg/renderer"
	"undangan.link/services"
	"undangan.link/utils"

	"github.com/gofiber/fiber/v2"
)

const dashboardPath = "/admin/dashboard"

// PanelInvitationHandler tenant adminin davetiye paneli.
type PanelInvitationHandler struct {
	invitations services.IInvitationService
}

func NewPanelInvitationHandler(invitations services.IInvitationService) *PanelInvitationHandler {
	return &PanelInvitationHandler{invitations: invitations}
}

// ShowDashboard undangan'ın tüm içeriğini ve RSVP istatistiklerini gösterir.
// Undangan'ı olmayan hesabın oturumu kapatılır.
func (h *PanelInvitationHandler) ShowDashboard(c *fiber.Ctx) error {
	p, _ := middlewares.CurrentPrincipal(c)
	d, err := h.invitations.GetDashboard(c.UserContext(), p)
	if err != nil {
		if errors.Is(err, services.ErrForbidden) || errors.Is(err, services.ErrNotFound) {
			_ = utils.LogoutSession(c)
			return common.SeeOther(c, "/admin/login")
		}
		common.FlashServiceError(c, err, "Panel - GetDashboard")
		return renderer.Render(c, "admin/dashboard", "layouts/admin", fiber.Map{
			"Title": "Dashboard",
		}, fiber.StatusInternalServerError)
	}

	return renderer.Render(c, "admin/dashboard", "layouts/admin", fiber.Map{
		"Title":        "Dashboard",
		"Dashboard":    d,
		"Undangan":     d.Tenant,
		"RSVPStatuses": models.RSVPStatuses,
		"BaseURL":      c.BaseURL(),
	})
}

// UpdateInvitation metin alanlarını kaydeder; kaydedilemeyen dosyalar uyarı olarak gösterilir.
func (h *PanelInvitationHandler) UpdateInvitation(c *fiber.Ctx) error {
	p, _ := middlewares.CurrentPrincipal(c)
	var in services.ContentInput
	if err := c.BodyParser(&in); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Data form tidak valid.")
		return common.SeeOther(c, dashboardPath)
	}

	files := services.InvitationFiles{
		GroomPhoto:           common.FormUpload(c, "foto_pria"),
		BridePhoto:           common.FormUpload(c, "foto_wanita"),
		Audio:                common.FormUpload(c, "audio"),
		CoverBackground:      common.FormUpload(c, "bg_sampul"),
		InvitationBackground: common.FormUpload(c, "bg_undangan"),
	}
	warnings, err := h.invitations.UpdateInvitationContent(c.UserContext(), p, in, files)
	if err != nil {
		common.FlashServiceError(c, err, "Panel - UpdateInvitationContent")
		return common.SeeOther(c, dashboardPath)
	}
	common.FlashWarnings(c, warnings)
	common.FlashSuccess(c, "Data undangan berhasil diperbarui!")
	return common.SeeOther(c, dashboardPath)
}
