package handlers

import (
	common "undangan.link/handlers"
	"undangan.link/middlewares"
	"undangan.link/pkg/flashmessages"
	"undangan.link/pkg/renderer"
	"undangan.link/services"

	"github.com/gofiber/fiber/v2"
)

const superadminHome = "/admin/superadmin"

// SuperadminHandler tenant admin hesapları ve superadmin'in kendi hesabı.
type SuperadminHandler struct {
	provisioning services.IProvisioningService
	themes       services.IThemeService
	auth         services.IAuthService
}

func NewSuperadminHandler(provisioning services.IProvisioningService, themes services.IThemeService, auth services.IAuthService) *SuperadminHandler {
	return &SuperadminHandler{provisioning: provisioning, themes: themes, auth: auth}
}

// Home admin, tema ve kategori listelerini tek sayfada gösterir.
func (h *SuperadminHandler) Home(c *fiber.Ctx) error {
	p, _ := middlewares.CurrentPrincipal(c)
	ctx := c.UserContext()

	data := fiber.Map{"Title": "Superadmin"}
	admins, err := h.provisioning.ListTenantAdmins(ctx, p)
	if err != nil {
		common.FlashServiceError(c, err, "Superadmin - ListTenantAdmins")
	}
	themes, err := h.themes.ListThemes(ctx, nil)
	if err != nil {
		common.FlashServiceError(c, err, "Superadmin - ListThemes")
	}
	categories, err := h.themes.ListCategories(ctx)
	if err != nil {
		common.FlashServiceError(c, err, "Superadmin - ListCategories")
	}
	data["Admins"] = admins
	data["Themes"] = themes
	data["Categories"] = categories
	data["Templates"] = h.themes.TemplateVariants()
	return renderer.Render(c, "admin/superadmin", "layouts/admin", data)
}

type accountRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func (h *SuperadminHandler) UpdateAccount(c *fiber.Ctx) error {
	p, _ := middlewares.CurrentPrincipal(c)
	var req accountRequest
	if err := c.BodyParser(&req); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Data form tidak valid.")
		return common.SeeOther(c, superadminHome)
	}
	if err := h.auth.UpdateSuperadminAccount(c.UserContext(), p, req.Username, req.Password); err != nil {
		common.FlashServiceError(c, err, "Superadmin - UpdateAccount")
		return common.SeeOther(c, superadminHome)
	}
	common.FlashSuccess(c, "Akun superadmin berhasil diperbarui!")
	return common.SeeOther(c, superadminHome)
}

func (h *SuperadminHandler) ShowCreateTenantAdmin(c *fiber.Ctx) error {
	themes, err := h.themes.ListThemes(c.UserContext(), nil)
	if err != nil {
		common.FlashServiceError(c, err, "Superadmin - ShowCreateTenantAdmin")
	}
	return renderer.Render(c, "admin/tenant_admin_form", "layouts/admin", fiber.Map{
		"Title":    "Admin & Undangan Baru",
		"Themes":   themes,
		"FormData": flashmessages.GetFlashFormData(c),
	})
}

func (h *SuperadminHandler) CreateTenantAdmin(c *fiber.Ctx) error {
	p, _ := middlewares.CurrentPrincipal(c)
	var in services.TenantAdminInput
	if err := c.BodyParser(&in); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Data form tidak valid.")
		return common.SeeOther(c, "/admin/superadmin/new")
	}

	tenant, err := h.provisioning.CreateTenantWithAdmin(c.UserContext(), p, in)
	if err != nil {
		common.FlashServiceError(c, err, "Superadmin - CreateTenantAdmin")
		_ = flashmessages.SetFlashFormData(c, fiber.Map{"username": in.Username, "slug": in.Slug, "tema_id": in.ThemeID})
		return common.SeeOther(c, "/admin/superadmin/new")
	}
	common.FlashSuccess(c, "Admin dan undangan "+tenant.Slug+" berhasil dibuat!")
	return common.SeeOther(c, superadminHome)
}

func (h *SuperadminHandler) EditTenantAdmin(c *fiber.Ctx) error {
	p, _ := middlewares.CurrentPrincipal(c)
	id, err := common.ParamID(c)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Admin tidak ditemukan.")
		return common.SeeOther(c, superadminHome)
	}
	var in services.TenantAdminInput
	if err := c.BodyParser(&in); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Data form tidak valid.")
		return common.SeeOther(c, superadminHome)
	}

	if err := h.provisioning.EditTenantAdmin(c.UserContext(), p, id, in); err != nil {
		common.FlashServiceError(c, err, "Superadmin - EditTenantAdmin")
		return common.SeeOther(c, superadminHome)
	}
	common.FlashSuccess(c, "Admin berhasil diperbarui!")
	return common.SeeOther(c, superadminHome)
}

func (h *SuperadminHandler) DeleteTenantAdmin(c *fiber.Ctx) error {
	p, _ := middlewares.CurrentPrincipal(c)
	id, err := common.ParamID(c)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Admin tidak ditemukan.")
		return common.SeeOther(c, superadminHome)
	}
	if err := h.provisioning.DeleteTenantAdmin(c.UserContext(), p, id); err != nil {
		common.FlashServiceError(c, err, "Superadmin - DeleteTenantAdmin")
		return common.SeeOther(c, superadminHome)
	}
	common.FlashSuccess(c, "Admin dan undangan terkait berhasil dihapus.")
	return common.SeeOther(c, superadminHome)
}
