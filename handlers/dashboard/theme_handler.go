package handlers

import (
	"fmt"

	common "undangan.link/handlers"
	"undangan.link/middlewares"
	"undangan.link/pkg/flashmessages"
	"undangan.link/pkg/renderer"
	"undangan.link/services"

	"github.com/gofiber/fiber/v2"
)

type ThemeHandler struct {
	themes services.IThemeService
}

func NewThemeHandler(themes services.IThemeService) *ThemeHandler {
	return &ThemeHandler{themes: themes}
}

func (h *ThemeHandler) renderForm(c *fiber.Ctx, title string, data fiber.Map) error {
	categories, err := h.themes.ListCategories(c.UserContext())
	if err != nil {
		common.FlashServiceError(c, err, "Theme - ListCategories")
	}
	data["Title"] = title
	data["Categories"] = categories
	data["Templates"] = h.themes.TemplateVariants()
	data["FormData"] = flashmessages.GetFlashFormData(c)
	return renderer.Render(c, "admin/theme_form", "layouts/admin", data)
}

func themeFormData(in services.ThemeInput) fiber.Map {
	data := fiber.Map{"nama": in.Name, "template": in.TemplateName, "deskripsi": in.Description}
	if in.CategoryID != nil {
		data["category_id"] = *in.CategoryID
	}
	return data
}

func (h *ThemeHandler) ShowCreate(c *fiber.Ctx) error {
	return h.renderForm(c, "Tema Baru", fiber.Map{"Action": "/admin/tema/baru"})
}

func (h *ThemeHandler) Create(c *fiber.Ctx) error {
	p, _ := middlewares.CurrentPrincipal(c)
	var in services.ThemeInput
	if err := c.BodyParser(&in); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Data form tidak valid.")
		return common.SeeOther(c, "/admin/tema/baru")
	}

	_, warnings, err := h.themes.CreateTheme(c.UserContext(), p, in, common.FormUpload(c, "gambar"))
	if err != nil {
		common.FlashServiceError(c, err, "Theme - Create")
		_ = flashmessages.SetFlashFormData(c, themeFormData(in))
		return common.SeeOther(c, "/admin/tema/baru")
	}
	common.FlashWarnings(c, warnings)
	common.FlashSuccess(c, "Tema berhasil ditambahkan!")
	return common.SeeOther(c, superadminHome)
}

func (h *ThemeHandler) ShowEdit(c *fiber.Ctx) error {
	id, err := common.ParamID(c)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Tema tidak ditemukan.")
		return common.SeeOther(c, superadminHome)
	}
	theme, err := h.themes.GetTheme(c.UserContext(), id)
	if err != nil {
		common.FlashServiceError(c, err, "Theme - ShowEdit")
		return common.SeeOther(c, superadminHome)
	}
	return h.renderForm(c, "Edit Tema", fiber.Map{
		"Action": fmt.Sprintf("/admin/tema/edit/%d", theme.ID),
		"Theme":  theme,
	})
}

func (h *ThemeHandler) Update(c *fiber.Ctx) error {
	p, _ := middlewares.CurrentPrincipal(c)
	id, err := common.ParamID(c)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Tema tidak ditemukan.")
		return common.SeeOther(c, superadminHome)
	}
	editPath := fmt.Sprintf("/admin/tema/edit/%d", id)
	var in services.ThemeInput
	if err := c.BodyParser(&in); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Data form tidak valid.")
		return common.SeeOther(c, editPath)
	}

	warnings, err := h.themes.UpdateTheme(c.UserContext(), p, id, in, common.FormUpload(c, "gambar"))
	if err != nil {
		common.FlashServiceError(c, err, "Theme - Update")
		_ = flashmessages.SetFlashFormData(c, themeFormData(in))
		return common.SeeOther(c, editPath)
	}
	common.FlashWarnings(c, warnings)
	common.FlashSuccess(c, "Tema berhasil diperbarui!")
	return common.SeeOther(c, superadminHome)
}

func (h *ThemeHandler) Delete(c *fiber.Ctx) error {
	p, _ := middlewares.CurrentPrincipal(c)
	id, err := common.ParamID(c)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Tema tidak ditemukan.")
		return common.SeeOther(c, superadminHome)
	}
	if err := h.themes.DeleteTheme(c.UserContext(), p, id); err != nil {
		common.FlashServiceError(c, err, "Theme - Delete")
		return common.SeeOther(c, superadminHome)
	}
	common.FlashSuccess(c, "Tema berhasil dihapus.")
	return common.SeeOther(c, superadminHome)
}
