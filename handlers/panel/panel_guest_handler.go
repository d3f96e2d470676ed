package handlers

import (
	"bytes"
	"fmt"
	"time"

	"undangan.link/configs/configslog"
	common "undangan.link/handlers"
	"undangan.link/middlewares"
	"undangan.link/pkg/flashmessages"
	"undangan.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type PanelGuestHandler struct {
	guests services.IGuestService
}

func NewPanelGuestHandler(guests services.IGuestService) *PanelGuestHandler {
	return &PanelGuestHandler{guests: guests}
}

func (h *PanelGuestHandler) CreateGuest(c *fiber.Ctx) error {
	p, _ := middlewares.CurrentPrincipal(c)
	guest, err := h.guests.AddGuest(c.UserContext(), p, c.FormValue("nama"))
	if err != nil {
		common.FlashServiceError(c, err, "Panel - AddGuest")
		return common.SeeOther(c, dashboardPath)
	}
	common.FlashSuccess(c, fmt.Sprintf("Tamu %s berhasil ditambahkan!", guest.Name))
	return common.SeeOther(c, dashboardPath)
}

func (h *PanelGuestHandler) UpdateGuest(c *fiber.Ctx) error {
	p, _ := middlewares.CurrentPrincipal(c)
	id, err := common.ParamID(c)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Tamu tidak ditemukan.")
		return common.SeeOther(c, dashboardPath)
	}
	if err := h.guests.RenameGuest(c.UserContext(), p, id, c.FormValue("nama")); err != nil {
		common.FlashServiceError(c, err, "Panel - RenameGuest")
		return common.SeeOther(c, dashboardPath)
	}
	common.FlashSuccess(c, "Tamu berhasil diperbarui.")
	return common.SeeOther(c, dashboardPath)
}

func (h *PanelGuestHandler) DeleteGuest(c *fiber.Ctx) error {
	p, _ := middlewares.CurrentPrincipal(c)
	id, err := common.ParamID(c)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Tamu tidak ditemukan.")
		return common.SeeOther(c, dashboardPath)
	}
	if err := h.guests.DeleteGuest(c.UserContext(), p, id); err != nil {
		common.FlashServiceError(c, err, "Panel - DeleteGuest")
		return common.SeeOther(c, dashboardPath)
	}
	common.FlashSuccess(c, "Tamu berhasil dihapus.")
	return common.SeeOther(c, dashboardPath)
}

// DeleteGreeting ucapan'ı ve RSVP yanıtını siler.
func (h *PanelGuestHandler) DeleteGreeting(c *fiber.Ctx) error {
	p, _ := middlewares.CurrentPrincipal(c)
	id, err := common.ParamID(c)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Ucapan tidak ditemukan.")
		return common.SeeOther(c, dashboardPath)
	}
	if err := h.guests.ResetGreeting(c.UserContext(), p, id); err != nil {
		common.FlashServiceError(c, err, "Panel - ResetGreeting")
		return common.SeeOther(c, dashboardPath)
	}
	common.FlashSuccess(c, "Ucapan berhasil dihapus.")
	return common.SeeOther(c, dashboardPath)
}

func (h *PanelGuestHandler) ImportGuests(c *fiber.Ctx) error {
	p, _ := middlewares.CurrentPrincipal(c)
	upload := common.FormUpload(c, "file")
	if upload == nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Tidak ada file yang diunggah.")
		return common.SeeOther(c, dashboardPath)
	}
	n, err := h.guests.ImportGuests(c.UserContext(), p, upload)
	if err != nil {
		common.FlashServiceError(c, err, "Panel - ImportGuests")
		return common.SeeOther(c, dashboardPath)
	}
	common.FlashSuccess(c, fmt.Sprintf("%d tamu berhasil diimpor!", n))
	return common.SeeOther(c, dashboardPath)
}

func (h *PanelGuestHandler) ExportGuests(c *fiber.Ctx) error {
	p, _ := middlewares.CurrentPrincipal(c)
	var buf bytes.Buffer
	if err := h.guests.ExportGuests(c.UserContext(), p, &buf); err != nil {
		configslog.Log.Error("Misafir listesi dışa aktarılamadı", zap.Uint("admin_id", p.AdminID), zap.Error(err))
		common.FlashServiceError(c, err, "Panel - ExportGuests")
		return common.SeeOther(c, dashboardPath)
	}

	filename := fmt.Sprintf("daftar_tamu_%s.xlsx", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Attachment(filename)
	return c.Send(buf.Bytes())
}
