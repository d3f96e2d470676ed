package handlers

import (
	common "undangan.link/handlers"
	"undangan.link/middlewares"
	"undangan.link/pkg/flashmessages"
	"undangan.link/services"

	"github.com/gofiber/fiber/v2"
)

// PanelContentHandler rekening, galeri ve cerita kayıtları.
type PanelContentHandler struct {
	content services.IContentService
}

func NewPanelContentHandler(content services.IContentService) *PanelContentHandler {
	return &PanelContentHandler{content: content}
}

// deleteByID ortak silme akışı.
func (h *PanelContentHandler) deleteByID(c *fiber.Ctx, notFound, success, op string, del func(p services.Principal, id uint) error) error {
	p, _ := middlewares.CurrentPrincipal(c)
	id, err := common.ParamID(c)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, notFound)
		return common.SeeOther(c, dashboardPath)
	}
	if err := del(p, id); err != nil {
		common.FlashServiceError(c, err, op)
		return common.SeeOther(c, dashboardPath)
	}
	common.FlashSuccess(c, success)
	return common.SeeOther(c, dashboardPath)
}

func (h *PanelContentHandler) CreateGiftAccount(c *fiber.Ctx) error {
	p, _ := middlewares.CurrentPrincipal(c)
	var in services.GiftAccountInput
	if err := c.BodyParser(&in); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Data form tidak valid.")
		return common.SeeOther(c, dashboardPath)
	}
	if _, err := h.content.AddGiftAccount(c.UserContext(), p, in); err != nil {
		common.FlashServiceError(c, err, "Panel - AddGiftAccount")
		return common.SeeOther(c, dashboardPath)
	}
	common.FlashSuccess(c, "Rekening berhasil ditambahkan!")
	return common.SeeOther(c, dashboardPath)
}

func (h *PanelContentHandler) DeleteGiftAccount(c *fiber.Ctx) error {
	return h.deleteByID(c, "Rekening tidak ditemukan.", "Rekening berhasil dihapus.", "Panel - DeleteGiftAccount",
		func(p services.Principal, id uint) error { return h.content.DeleteGiftAccount(c.UserContext(), p, id) })
}

func (h *PanelContentHandler) CreateGalleryItem(c *fiber.Ctx) error {
	p, _ := middlewares.CurrentPrincipal(c)
	image := common.FormUpload(c, "gambar")
	if _, err := h.content.AddGalleryItem(c.UserContext(), p, image, c.FormValue("keterangan")); err != nil {
		common.FlashServiceError(c, err, "Panel - AddGalleryItem")
		return common.SeeOther(c, dashboardPath)
	}
	common.FlashSuccess(c, "Foto berhasil ditambahkan!")
	return common.SeeOther(c, dashboardPath)
}

func (h *PanelContentHandler) DeleteGalleryItem(c *fiber.Ctx) error {
	return h.deleteByID(c, "Foto tidak ditemukan.", "Foto berhasil dihapus.", "Panel - DeleteGalleryItem",
		func(p services.Principal, id uint) error { return h.content.DeleteGalleryItem(c.UserContext(), p, id) })
}

func (h *PanelContentHandler) CreateStoryEntry(c *fiber.Ctx) error {
	p, _ := middlewares.CurrentPrincipal(c)
	var in services.StoryInput
	if err := c.BodyParser(&in); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Data form tidak valid.")
		return common.SeeOther(c, dashboardPath)
	}
	if _, err := h.content.AddStoryEntry(c.UserContext(), p, in); err != nil {
		common.FlashServiceError(c, err, "Panel - AddStoryEntry")
		return common.SeeOther(c, dashboardPath)
	}
	common.FlashSuccess(c, "Cerita berhasil ditambahkan!")
	return common.SeeOther(c, dashboardPath)
}

func (h *PanelContentHandler) DeleteStoryEntry(c *fiber.Ctx) error {
	return h.deleteByID(c, "Cerita tidak ditemukan.", "Cerita berhasil dihapus.", "Panel - DeleteStoryEntry",
		func(p services.Principal, id uint) error { return h.content.DeleteStoryEntry(c.UserContext(), p, id) })
}
