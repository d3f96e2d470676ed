package services

import (
	"context"
	"errors"
	"strings"

	"undangan.link/configs/configslog"
	"undangan.link/models"
	"undangan.link/pkg/passwordhash"
	"undangan.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TenantAdminInput superadmin formundan gelen hesap + undangan bilgisi.
type TenantAdminInput struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"-"`
	Slug     string `form:"slug" json:"slug"`
	ThemeID  uint   `form:"tema_id" json:"tema_id"`
}

func (in *TenantAdminInput) normalize() {
	in.Username = strings.TrimSpace(in.Username)
	in.Slug = strings.TrimSpace(in.Slug)
}

// TenantAdminView superadmin listesindeki bir satır.
type TenantAdminView struct {
	Admin     models.Admin
	Tenant    *models.Tenant
	ThemeName string
}

// IProvisioningService tenant admin ve undangan yaşam döngüsü.
type IProvisioningService interface {
	ListTenantAdmins(ctx context.Context, p Principal) ([]TenantAdminView, error)
	CreateTenantWithAdmin(ctx context.Context, p Principal, in TenantAdminInput) (*models.Tenant, error)
	EditTenantAdmin(ctx context.Context, p Principal, adminID uint, in TenantAdminInput) error
	DeleteTenantAdmin(ctx context.Context, p Principal, adminID uint) error
}

type ProvisioningService struct {
	db      *gorm.DB
	admins  repositories.IAdminRepository
	tenants repositories.ITenantRepository
	themes  repositories.IThemeRepository
	guests  repositories.IGuestRepository
	gifts   repositories.IGiftAccountRepository
	gallery repositories.IGalleryRepository
	stories repositories.IStoryRepository
	assets  *AssetStore
}

func NewProvisioningService(db *gorm.DB, assets *AssetStore) IProvisioningService {
	return &ProvisioningService{
		db:      db,
		assets:  assets,
		admins:  repositories.NewAdminRepository(db),
		tenants: repositories.NewTenantRepository(db),
		themes:  repositories.NewThemeRepository(db),
		guests:  repositories.NewGuestRepository(db),
		gifts:   repositories.NewGiftAccountRepository(db),
		gallery: repositories.NewGalleryRepository(db),
		stories: repositories.NewStoryRepository(db),
	}
}

func (s *ProvisioningService) ListTenantAdmins(ctx context.Context, p Principal) ([]TenantAdminView, error) {
	if err := p.RequireSuperadmin(); err != nil {
		return nil, err
	}
	admins, err := s.admins.ListTenantAdmins(ctx)
	if err != nil {
		return nil, storageError(err)
	}

	ids := make([]uint, 0, len(admins))
	for _, a := range admins {
		if a.TenantID != nil {
			ids = append(ids, *a.TenantID)
		}
	}
	tenants, err := s.tenants.FindByIDs(ctx, ids)
	if err != nil {
		return nil, storageError(err)
	}
	byID := make(map[uint]*models.Tenant, len(tenants))
	for i := range tenants {
		byID[tenants[i].ID] = &tenants[i]
	}

	themes, err := s.themes.List(ctx, nil)
	if err != nil {
		return nil, storageError(err)
	}
	themeNames := make(map[uint]string, len(themes))
	for _, t := range themes {
		themeNames[t.ID] = t.Name
	}

	views := make([]TenantAdminView, 0, len(admins))
	for _, a := range admins {
		view := TenantAdminView{Admin: a}
		if a.TenantID != nil {
			if tenant, ok := byID[*a.TenantID]; ok {
				view.Tenant = tenant
				view.ThemeName = themeNames[tenant.ThemeID]
			}
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *ProvisioningService) validateInput(in TenantAdminInput, requirePassword bool) error {
	if err := validateUsername(in.Username); err != nil {
		return err
	}
	if requirePassword || in.Password != "" {
		if err := validatePassword(in.Password); err != nil {
			return err
		}
	}
	if err := validateSlug(in.Slug); err != nil {
		return err
	}
	if in.ThemeID == 0 {
		return validationError("tema wajib dipilih")
	}
	return nil
}

func (s *ProvisioningService) ensureTheme(ctx context.Context, themeID uint) error {
	if _, err := s.themes.FindByID(ctx, themeID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return validationError("tema tidak ditemukan")
		}
		return storageError(err)
	}
	return nil
}

func (s *ProvisioningService) ensureAvailable(ctx context.Context, username string, adminID uint, slug string, tenantID uint) error {
	taken, err := s.admins.UsernameTaken(ctx, username, adminID)
	if err != nil {
		return storageError(err)
	}
	if taken {
		return conflictError("username %s sudah digunakan", username)
	}
	taken, err = s.tenants.SlugTaken(ctx, slug, tenantID)
	if err != nil {
		return storageError(err)
	}
	if taken {
		return conflictError("slug %s sudah digunakan", slug)
	}
	return nil
}

// mapWriteError unique index ihlallerini ErrConflict'e çevirir.
func mapWriteError(err error) error {
	if err == nil {
		return nil
	}
	var se ServiceError
	var de *detailError
	if errors.As(err, &de) || errors.As(err, &se) {
		return err
	}
	if repositories.IsDuplicateKeyError(err) {
		return conflictError("username atau slug sudah digunakan")
	}
	return storageError(err)
}

// CreateTenantWithAdmin undangan ve adminini tek transaction içinde oluşturur.
func (s *ProvisioningService) CreateTenantWithAdmin(ctx context.Context, p Principal, in TenantAdminInput) (*models.Tenant, error) {
	if err := p.RequireSuperadmin(); err != nil {
		return nil, err
	}
	in.normalize()
	if err := s.validateInput(in, true); err != nil {
		return nil, err
	}
	hash, err := passwordhash.Hash(in.Password)
	if err != nil {
		return nil, storageError(err)
	}

	ctx = p.auditContext(ctx)
	var tenant *models.Tenant
	err = repositories.Transaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.ensureTheme(txCtx, in.ThemeID); err != nil {
			return err
		}
		if err := s.ensureAvailable(txCtx, in.Username, 0, in.Slug, 0); err != nil {
			return err
		}

		t := &models.Tenant{Slug: in.Slug, ThemeID: in.ThemeID, CoupleName: models.DefaultCoupleName}
		if err := s.tenants.Create(txCtx, t); err != nil {
			return err
		}
		admin := &models.Admin{Username: in.Username, PasswordHash: hash, TenantID: &t.ID}
		if err := s.admins.Create(txCtx, admin); err != nil {
			return err
		}
		tenant = t
		return nil
	})
	if err != nil {
		return nil, mapWriteError(err)
	}

	configslog.Log.Info("Undangan oluşturuldu",
		zap.Uint("tenant_id", tenant.ID), zap.String("slug", tenant.Slug), zap.Uint("by", p.AdminID))
	return tenant, nil
}

// EditTenantAdmin boş şifre mevcut şifreyi korur. Undangan'ı olmayan admin için yeni undangan açılır.
func (s *ProvisioningService) EditTenantAdmin(ctx context.Context, p Principal, adminID uint, in TenantAdminInput) error {
	if err := p.RequireSuperadmin(); err != nil {
		return err
	}
	in.normalize()
	if err := s.validateInput(in, false); err != nil {
		return err
	}

	var hash string
	if in.Password != "" {
		h, err := passwordhash.Hash(in.Password)
		if err != nil {
			return storageError(err)
		}
		hash = h
	}

	ctx = p.auditContext(ctx)
	err := repositories.Transaction(ctx, s.db, func(txCtx context.Context) error {
		admin, err := s.admins.FindByID(txCtx, adminID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrNotFound
			}
			return err
		}
		if admin.IsSuperadmin {
			return ErrForbidden
		}
		if err := s.ensureTheme(txCtx, in.ThemeID); err != nil {
			return err
		}

		var tenant *models.Tenant
		if admin.TenantID != nil {
			tenant, err = s.tenants.FindByID(txCtx, *admin.TenantID)
			if err != nil && !errors.Is(err, repositories.ErrNotFound) {
				return err
			}
		}
		var tenantID uint
		if tenant != nil {
			tenantID = tenant.ID
		}
		if err := s.ensureAvailable(txCtx, in.Username, admin.ID, in.Slug, tenantID); err != nil {
			return err
		}

		if tenant == nil {
			tenant = &models.Tenant{Slug: in.Slug, ThemeID: in.ThemeID, CoupleName: models.DefaultCoupleName}
			if err := s.tenants.Create(txCtx, tenant); err != nil {
				return err
			}
			admin.TenantID = &tenant.ID
		} else {
			tenant.Slug = in.Slug
			tenant.ThemeID = in.ThemeID
			if err := s.tenants.Update(txCtx, tenant); err != nil {
				return err
			}
		}

		admin.Username = in.Username
		if hash != "" {
			admin.PasswordHash = hash
		}
		return s.admins.Update(txCtx, admin)
	})
	if err != nil {
		return mapWriteError(err)
	}
	configslog.Log.Info("Tenant admin güncellendi", zap.Uint("admin_id", adminID), zap.Uint("by", p.AdminID))
	return nil
}

// tenantAssets undangan'a ait saklanan dosya yolları; boş alanlar atlanır.
func tenantAssets(tenant *models.Tenant, gallery []models.GalleryItem) []string {
	paths := make([]string, 0, 5+len(gallery))
	for _, p := range []string{
		tenant.GroomPhoto,
		tenant.BridePhoto,
		tenant.Audio,
		tenant.CoverBackground,
		tenant.InvitationBackground,
	} {
		if p != "" {
			paths = append(paths, p)
		}
	}
	for _, item := range gallery {
		if item.ImagePath != "" {
			paths = append(paths, item.ImagePath)
		}
	}
	return paths
}

// DeleteTenantAdmin admini, undangan'ını ve tüm alt kayıtlarını tek transaction içinde siler.
// Dosyalar commit sonrası depodan kaldırılır.
func (s *ProvisioningService) DeleteTenantAdmin(ctx context.Context, p Principal, adminID uint) error {
	if err := p.RequireSuperadmin(); err != nil {
		return err
	}
	if adminID == p.AdminID {
		return ErrForbidden
	}

	ctx = p.auditContext(ctx)
	var removed struct{ guests, gifts, gallery, stories int64 }
	var files []string
	err := repositories.Transaction(ctx, s.db, func(txCtx context.Context) error {
		admin, err := s.admins.FindByID(txCtx, adminID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrNotFound
			}
			return err
		}
		if admin.IsSuperadmin {
			return ErrForbidden
		}

		if admin.TenantID != nil {
			tenantID := *admin.TenantID
			tenant, err := s.tenants.FindByID(txCtx, tenantID)
			if err != nil && !errors.Is(err, repositories.ErrNotFound) {
				return err
			}
			if tenant != nil {
				items, err := s.gallery.ListByTenant(txCtx, tenantID)
				if err != nil {
					return err
				}
				files = tenantAssets(tenant, items)
			}
			if removed.guests, err = s.guests.DeleteAllByTenant(txCtx, tenantID); err != nil {
				return err
			}
			if removed.gifts, err = s.gifts.DeleteAllByTenant(txCtx, tenantID); err != nil {
				return err
			}
			if removed.gallery, err = s.gallery.DeleteAllByTenant(txCtx, tenantID); err != nil {
				return err
			}
			if removed.stories, err = s.stories.DeleteAllByTenant(txCtx, tenantID); err != nil {
				return err
			}
		}
		if err := s.admins.Delete(txCtx, admin.ID); err != nil {
			return err
		}
		if admin.TenantID != nil {
			if err := s.tenants.Delete(txCtx, *admin.TenantID); err != nil && !errors.Is(err, repositories.ErrNotFound) {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrForbidden) {
			return err
		}
		configslog.Log.Error("Tenant admin silinemedi", zap.Uint("admin_id", adminID), zap.Error(err))
		return storageError(err)
	}

	for _, stored := range files {
		s.assets.Remove(ctx, stored)
	}
	configslog.Log.Info("Tenant admin ve undangan silindi",
		zap.Uint("admin_id", adminID),
		zap.Int64("guests", removed.guests),
		zap.Int64("gift_accounts", removed.gifts),
		zap.Int64("gallery_items", removed.gallery),
		zap.Int64("story_entries", removed.stories),
		zap.Int("files", len(files)),
		zap.Uint("by", p.AdminID))
	return nil
}

var _ IProvisioningService = (*ProvisioningService)(nil)
