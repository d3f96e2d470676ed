package handlers

import (
	"errors"

	"undangan.link/configs/configslog"
	"undangan.link/models"
	"undangan.link/pkg/flashmessages"
	"undangan.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type rsvpRequest struct {
	Status  string `form:"rsvp_status"`
	Message string `form:"ucapan"`
}

// SubmitRSVP RSVP formunu işler ve sonucu flash mesajla aynı sayfaya taşır.
// Daha önce yanıt vermiş misafire hata değil bilgi mesajı gösterilir.
func (h *LinkHandler) SubmitRSVP(c *fiber.Ctx) error {
	slug, code := c.Params("slug"), c.Params("code")
	back := invitationPath(slug, code)

	inv, err := h.invitations.GetPublicInvitation(c.UserContext(), slug, code)
	if err != nil {
		return h.handleLookupError(c, err, slug)
	}

	var req rsvpRequest
	if err := c.BodyParser(&req); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Data form tidak valid.")
		return c.Redirect(back, fiber.StatusSeeOther)
	}
	status, ok := models.ParseRSVPStatus(req.Status)
	if !ok {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Silakan pilih status kehadiran.")
		return c.Redirect(back, fiber.StatusSeeOther)
	}

	_, err = h.guests.SubmitRSVP(c.UserContext(), inv.Tenant.ID, code, status, req.Message)
	switch {
	case err == nil:
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "RSVP berhasil dikirim!")
	case errors.Is(err, services.ErrAlreadyResponded):
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashInfoKey, "Anda sudah mengisi RSVP.")
	case errors.Is(err, services.ErrNotFound):
		return h.handleLookupError(c, err, slug)
	default:
		if errors.Is(err, services.ErrStorageFailure) {
			configslog.Log.Error("SubmitRSVP: kaydedilemedi", zap.Uint("tenant_id", inv.Tenant.ID), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, services.PublicMessage(err))
	}
	return c.Redirect(back, fiber.StatusSeeOther)
}
