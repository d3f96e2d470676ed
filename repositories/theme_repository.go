package repositories

import (
	"context"

	"undangan.link/models"

	"gorm.io/gorm"
)

// IThemeRepository tema kataloğu için arayüz.
type IThemeRepository interface {
	Create(ctx context.Context, theme *models.Theme) error
	FindByID(ctx context.Context, id uint) (*models.Theme, error)
	FindByTemplateName(ctx context.Context, templateName string) (*models.Theme, error)
	List(ctx context.Context, categoryID *uint) ([]models.Theme, error)
	NameTaken(ctx context.Context, name string, excludeID uint) (bool, error)
	CountByCategory(ctx context.Context, categoryID uint) (int64, error)
	Update(ctx context.Context, theme *models.Theme) error
	Delete(ctx context.Context, id uint) error
}

type ThemeRepository struct {
	db *gorm.DB
}

func NewThemeRepository(db *gorm.DB) IThemeRepository {
	return &ThemeRepository{db: db}
}

func (r *ThemeRepository) Create(ctx context.Context, theme *models.Theme) error {
	return getDB(ctx, r.db).Create(theme).Error
}

func (r *ThemeRepository) FindByID(ctx context.Context, id uint) (*models.Theme, error) {
	var theme models.Theme
	if err := getDB(ctx, r.db).First(&theme, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &theme, nil
}

func (r *ThemeRepository) FindByTemplateName(ctx context.Context, templateName string) (*models.Theme, error) {
	var theme models.Theme
	err := getDB(ctx, r.db).Where("template_name = ?", templateName).Order("id ASC").First(&theme).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &theme, nil
}

// List categoryID nil ise tüm temaları döndürür.
func (r *ThemeRepository) List(ctx context.Context, categoryID *uint) ([]models.Theme, error) {
	var themes []models.Theme
	q := getDB(ctx, r.db).Order("id ASC")
	if categoryID != nil {
		q = q.Where("category_id = ?", *categoryID)
	}
	err := q.Find(&themes).Error
	return themes, err
}

func (r *ThemeRepository) NameTaken(ctx context.Context, name string, excludeID uint) (bool, error) {
	var count int64
	q := getDB(ctx, r.db).Model(&models.Theme{}).Where("name = ?", name)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *ThemeRepository) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&models.Theme{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}

func (r *ThemeRepository) Update(ctx context.Context, theme *models.Theme) error {
	return getDB(ctx, r.db).Save(theme).Error
}

func (r *ThemeRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&models.Theme{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
