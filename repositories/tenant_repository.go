package repositories

import (
	"context"

	"undangan.link/models"

	"gorm.io/gorm"
)

// ITenantRepository undangan kayıtları için arayüz.
type ITenantRepository interface {
	Create(ctx context.Context, tenant *models.Tenant) error
	FindByID(ctx context.Context, id uint) (*models.Tenant, error)
	FindBySlug(ctx context.Context, slug string) (*models.Tenant, error)
	FindByIDs(ctx context.Context, ids []uint) ([]models.Tenant, error)
	SlugTaken(ctx context.Context, slug string, excludeID uint) (bool, error)
	CountByTheme(ctx context.Context, themeID uint) (int64, error)
	Update(ctx context.Context, tenant *models.Tenant) error
	Delete(ctx context.Context, id uint) error
}

type TenantRepository struct {
	db *gorm.DB
}

func NewTenantRepository(db *gorm.DB) ITenantRepository {
	return &TenantRepository{db: db}
}

func (r *TenantRepository) Create(ctx context.Context, tenant *models.Tenant) error {
	return getDB(ctx, r.db).Create(tenant).Error
}

func (r *TenantRepository) FindByID(ctx context.Context, id uint) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := getDB(ctx, r.db).First(&tenant, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &tenant, nil
}

func (r *TenantRepository) FindBySlug(ctx context.Context, slug string) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := getDB(ctx, r.db).Where("slug = ?", slug).First(&tenant).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &tenant, nil
}

func (r *TenantRepository) FindByIDs(ctx context.Context, ids []uint) ([]models.Tenant, error) {
	var tenants []models.Tenant
	if len(ids) == 0 {
		return tenants, nil
	}
	err := getDB(ctx, r.db).Where("id IN ?", ids).Find(&tenants).Error
	return tenants, err
}

func (r *TenantRepository) SlugTaken(ctx context.Context, slug string, excludeID uint) (bool, error) {
	var count int64
	q := getDB(ctx, r.db).Model(&models.Tenant{}).Where("slug = ?", slug)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *TenantRepository) CountByTheme(ctx context.Context, themeID uint) (int64, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&models.Tenant{}).Where("theme_id = ?", themeID).Count(&count).Error
	return count, err
}

func (r *TenantRepository) Update(ctx context.Context, tenant *models.Tenant) error {
	return getDB(ctx, r.db).Save(tenant).Error
}

func (r *TenantRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&models.Tenant{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
