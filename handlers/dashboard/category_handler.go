package handlers

import (
	common "undangan.link/handlers"
	"undangan.link/middlewares"
	"undangan.link/pkg/flashmessages"
	"undangan.link/pkg/renderer"
	"undangan.link/services"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	themes services.IThemeService
}

func NewCategoryHandler(themes services.IThemeService) *CategoryHandler {
	return &CategoryHandler{themes: themes}
}

func (h *CategoryHandler) ShowCreate(c *fiber.Ctx) error {
	return renderer.Render(c, "admin/category_form", "layouts/admin", fiber.Map{
		"Title":    "Kategori Baru",
		"FormData": flashmessages.GetFlashFormData(c),
	})
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	p, _ := middlewares.CurrentPrincipal(c)
	name := c.FormValue("nama")
	category, err := h.themes.CreateCategory(c.UserContext(), p, name)
	if err != nil {
		common.FlashServiceError(c, err, "Category - Create")
		_ = flashmessages.SetFlashFormData(c, fiber.Map{"nama": name})
		return common.SeeOther(c, "/admin/category/new")
	}
	common.FlashSuccess(c, "Kategori "+category.Name+" berhasil dibuat!")
	return common.SeeOther(c, superadminHome)
}

func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	p, _ := middlewares.CurrentPrincipal(c)
	id, err := common.ParamID(c)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Kategori tidak ditemukan.")
		return common.SeeOther(c, superadminHome)
	}
	if err := h.themes.UpdateCategory(c.UserContext(), p, id, c.FormValue("nama")); err != nil {
		common.FlashServiceError(c, err, "Category - Update")
		return common.SeeOther(c, superadminHome)
	}
	common.FlashSuccess(c, "Kategori berhasil diperbarui!")
	return common.SeeOther(c, superadminHome)
}

func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	p, _ := middlewares.CurrentPrincipal(c)
	id, err := common.ParamID(c)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Kategori tidak ditemukan.")
		return common.SeeOther(c, superadminHome)
	}
	if err := h.themes.DeleteCategory(c.UserContext(), p, id); err != nil {
		common.FlashServiceError(c, err, "Category - Delete")
		return common.SeeOther(c, superadminHome)
	}
	common.FlashSuccess(c, "Kategori berhasil dihapus.")
	return common.SeeOther(c, superadminHome)
}
