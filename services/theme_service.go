package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"undangan.link/configs/configslog"
	"undangan.link/models"
	"undangan.link/pkg/filestorage"
	"undangan.link/pkg/themegateway"
	"undangan.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ThemeInput tema formu.
type ThemeInput struct {
	Name         string `form:"nama"`
	TemplateName string `form:"template"`
	Description  string `form:"deskripsi"`
	CategoryID   *uint  `form:"category_id"`
}

// ThemeView katalogda gösterilen tema.
type ThemeView struct {
	models.Theme
	CategoryName string
}

// IThemeService tema kataloğu ve kategoriler.
type IThemeService interface {
	ListThemes(ctx context.Context, categoryID *uint) ([]ThemeView, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetTheme(ctx context.Context, id uint) (*models.Theme, error)
	GetThemeByTemplate(ctx context.Context, templateName string) (*models.Theme, error)
	TemplateVariants() []themegateway.Variant
	CreateTheme(ctx context.Context, p Principal, in ThemeInput, cover *filestorage.Upload) (*models.Theme, []string, error)
	UpdateTheme(ctx context.Context, p Principal, id uint, in ThemeInput, cover *filestorage.Upload) ([]string, error)
	DeleteTheme(ctx context.Context, p Principal, id uint) error
	CreateCategory(ctx context.Context, p Principal, name string) (*models.Category, error)
	UpdateCategory(ctx context.Context, p Principal, id uint, name string) error
	DeleteCategory(ctx context.Context, p Principal, id uint) error
}

type ThemeService struct {
	db         *gorm.DB
	themes     repositories.IThemeRepository
	categories repositories.ICategoryRepository
	tenants    repositories.ITenantRepository
	gateway    *themegateway.Gateway
	assets     *AssetStore
}

func NewThemeService(db *gorm.DB, gateway *themegateway.Gateway, assets *AssetStore) IThemeService {
	return &ThemeService{
		db:         db,
		themes:     repositories.NewThemeRepository(db),
		categories: repositories.NewCategoryRepository(db),
		tenants:    repositories.NewTenantRepository(db),
		gateway:    gateway,
		assets:     assets,
	}
}

func (s *ThemeService) ListThemes(ctx context.Context, categoryID *uint) ([]ThemeView, error) {
	themes, err := s.themes.List(ctx, categoryID)
	if err != nil {
		return nil, storageError(err)
	}
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, storageError(err)
	}
	names := make(map[uint]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	views := make([]ThemeView, 0, len(themes))
	for _, t := range themes {
		view := ThemeView{Theme: t}
		if t.CategoryID != nil {
			view.CategoryName = names[*t.CategoryID]
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *ThemeService) ListCategories(ctx context.Context) ([]models.Category, error) {
	list, err := s.categories.List(ctx)
	if err != nil {
		return nil, storageError(err)
	}
	return list, nil
}

func (s *ThemeService) GetTheme(ctx context.Context, id uint) (*models.Theme, error) {
	theme, err := s.themes.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOrStorage(err)
	}
	return theme, nil
}

// GetThemeByTemplate bilinmeyen şablon kimliği için ErrNotFound.
func (s *ThemeService) GetThemeByTemplate(ctx context.Context, templateName string) (*models.Theme, error) {
	if !s.gateway.Has(templateName) {
		return nil, ErrNotFound
	}
	theme, err := s.themes.FindByTemplateName(ctx, templateName)
	if err != nil {
		return nil, notFoundOrStorage(err)
	}
	return theme, nil
}

func (s *ThemeService) TemplateVariants() []themegateway.Variant {
	return s.gateway.Variants()
}

func (s *ThemeService) validateTheme(ctx context.Context, in *ThemeInput, excludeID uint) error {
	in.Name = strings.TrimSpace(in.Name)
	in.TemplateName = strings.TrimSpace(in.TemplateName)
	in.Description = strings.TrimSpace(in.Description)
	if in.Name == "" {
		return validationError("nama tema wajib diisi")
	}
	if !s.gateway.Has(in.TemplateName) {
		return validationError("template %s tidak tersedia", in.TemplateName)
	}
	if in.CategoryID != nil && *in.CategoryID == 0 {
		in.CategoryID = nil
	}
	if in.CategoryID != nil {
		if _, err := s.categories.FindByID(ctx, *in.CategoryID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return validationError("kategori tidak ditemukan")
			}
			return storageError(err)
		}
	}
	taken, err := s.themes.NameTaken(ctx, in.Name, excludeID)
	if err != nil {
		return storageError(err)
	}
	if taken {
		return conflictError("tema %s sudah ada", in.Name)
	}
	return nil
}

// saveCover kapak görselini tema/tema_<id>.<ext> olarak kaydeder. Hata uyarıya dönüşür.
func (s *ThemeService) saveCover(ctx context.Context, theme *models.Theme, cover *filestorage.Upload) []string {
	if cover == nil {
		return nil
	}
	stored, err := s.assets.Save(ctx, cover, AssetImage, "tema", fmt.Sprintf("tema_%d", theme.ID))
	if err != nil {
		return []string{"gambar sampul tidak tersimpan: " + PublicMessage(err)}
	}
	theme.CoverImage = stored
	if err := s.themes.Update(ctx, theme); err != nil {
		configslog.Log.Error("Tema kapak yolu kaydedilemedi", zap.Uint("theme_id", theme.ID), zap.Error(err))
		return []string{"gambar sampul tidak tersimpan"}
	}
	return nil
}

func (s *ThemeService) CreateTheme(ctx context.Context, p Principal, in ThemeInput, cover *filestorage.Upload) (*models.Theme, []string, error) {
	if err := p.RequireSuperadmin(); err != nil {
		return nil, nil, err
	}
	ctx = p.auditContext(ctx)
	if err := s.validateTheme(ctx, &in, 0); err != nil {
		return nil, nil, err
	}

	theme := &models.Theme{
		Name:         in.Name,
		TemplateName: in.TemplateName,
		Description:  in.Description,
		CategoryID:   in.CategoryID,
	}
	if err := s.themes.Create(ctx, theme); err != nil {
		if repositories.IsDuplicateKeyError(err) {
			return nil, nil, conflictError("tema %s sudah ada", in.Name)
		}
		return nil, nil, storageError(err)
	}
	return theme, s.saveCover(ctx, theme, cover), nil
}

func (s *ThemeService) UpdateTheme(ctx context.Context, p Principal, id uint, in ThemeInput, cover *filestorage.Upload) ([]string, error) {
	if err := p.RequireSuperadmin(); err != nil {
		return nil, err
	}
	ctx = p.auditContext(ctx)
	theme, err := s.themes.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOrStorage(err)
	}
	if err := s.validateTheme(ctx, &in, theme.ID); err != nil {
		return nil, err
	}

	theme.Name = in.Name
	theme.TemplateName = in.TemplateName
	theme.Description = in.Description
	theme.CategoryID = in.CategoryID
	if err := s.themes.Update(ctx, theme); err != nil {
		if repositories.IsDuplicateKeyError(err) {
			return nil, conflictError("tema %s sudah ada", in.Name)
		}
		return nil, storageError(err)
	}
	return s.saveCover(ctx, theme, cover), nil
}

// DeleteTheme bir undangan tarafından kullanılan tema silinemez.
func (s *ThemeService) DeleteTheme(ctx context.Context, p Principal, id uint) error {
	if err := p.RequireSuperadmin(); err != nil {
		return err
	}
	var theme *models.Theme
	err := repositories.Transaction(ctx, s.db, func(txCtx context.Context) error {
		t, err := s.themes.FindByID(txCtx, id)
		if err != nil {
			return notFoundOrStorage(err)
		}
		inUse, err := s.tenants.CountByTheme(txCtx, t.ID)
		if err != nil {
			return storageError(err)
		}
		if inUse > 0 {
			return conflictError("tema %s masih digunakan oleh %d undangan", t.Name, inUse)
		}
		if err := s.themes.Delete(txCtx, t.ID); err != nil {
			if repositories.IsForeignKeyError(err) {
				return conflictError("tema %s masih digunakan", t.Name)
			}
			return notFoundOrStorage(err)
		}
		theme = t
		return nil
	})
	if err != nil {
		return err
	}
	s.assets.Remove(ctx, theme.CoverImage)
	return nil
}

func normalizeCategoryName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", validationError("nama kategori wajib diisi")
	}
	return name, nil
}

func (s *ThemeService) CreateCategory(ctx context.Context, p Principal, name string) (*models.Category, error) {
	if err := p.RequireSuperadmin(); err != nil {
		return nil, err
	}
	name, err := normalizeCategoryName(name)
	if err != nil {
		return nil, err
	}
	ctx = p.auditContext(ctx)
	taken, err := s.categories.NameTaken(ctx, name, 0)
	if err != nil {
		return nil, storageError(err)
	}
	if taken {
		return nil, conflictError("kategori %s sudah ada", name)
	}
	category := &models.Category{Name: name}
	if err := s.categories.Create(ctx, category); err != nil {
		if repositories.IsDuplicateKeyError(err) {
			return nil, conflictError("kategori %s sudah ada", name)
		}
		return nil, storageError(err)
	}
	return category, nil
}

func (s *ThemeService) UpdateCategory(ctx context.Context, p Principal, id uint, name string) error {
	if err := p.RequireSuperadmin(); err != nil {
		return err
	}
	name, err := normalizeCategoryName(name)
	if err != nil {
		return err
	}
	ctx = p.auditContext(ctx)
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return notFoundOrStorage(err)
	}
	taken, err := s.categories.NameTaken(ctx, name, category.ID)
	if err != nil {
		return storageError(err)
	}
	if taken {
		return conflictError("kategori %s sudah ada", name)
	}
	category.Name = name
	if err := s.categories.Update(ctx, category); err != nil {
		if repositories.IsDuplicateKeyError(err) {
			return conflictError("kategori %s sudah ada", name)
		}
		return storageError(err)
	}
	return nil
}

// DeleteCategory bir temaya atanmış kategori silinemez.
func (s *ThemeService) DeleteCategory(ctx context.Context, p Principal, id uint) error {
	if err := p.RequireSuperadmin(); err != nil {
		return err
	}
	return repositories.Transaction(ctx, s.db, func(txCtx context.Context) error {
		category, err := s.categories.FindByID(txCtx, id)
		if err != nil {
			return notFoundOrStorage(err)
		}
		inUse, err := s.themes.CountByCategory(txCtx, category.ID)
		if err != nil {
			return storageError(err)
		}
		if inUse > 0 {
			return conflictError("kategori %s masih digunakan oleh %d tema", category.Name, inUse)
		}
		if err := s.categories.Delete(txCtx, category.ID); err != nil {
			if repositories.IsForeignKeyError(err) {
				return conflictError("kategori %s masih digunakan", category.Name)
			}
			return notFoundOrStorage(err)
		}
		return nil
	})
}

var _ IThemeService = (*ThemeService)(nil)
