package repositories

import (
	"context"

	"undangan.link/models"

	"gorm.io/gorm"
)

// IAdminRepository admin hesapları için arayüz.
type IAdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	FindByID(ctx context.Context, id uint) (*models.Admin, error)
	FindByUsername(ctx context.Context, username string) (*models.Admin, error)
	FindSuperadmin(ctx context.Context) (*models.Admin, error)
	ListTenantAdmins(ctx context.Context) ([]models.Admin, error)
	UsernameTaken(ctx context.Context, username string, excludeID uint) (bool, error)
	Update(ctx context.Context, admin *models.Admin) error
	Delete(ctx context.Context, id uint) error
}

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) IAdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	return getDB(ctx, r.db).Create(admin).Error
}

func (r *AdminRepository) FindByID(ctx context.Context, id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := getDB(ctx, r.db).First(&admin, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &admin, nil
}

func (r *AdminRepository) FindByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var admin models.Admin
	if err := getDB(ctx, r.db).Where("username = ?", username).First(&admin).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &admin, nil
}

func (r *AdminRepository) FindSuperadmin(ctx context.Context) (*models.Admin, error) {
	var admin models.Admin
	if err := getDB(ctx, r.db).Where("is_superadmin = ?", true).Order("id ASC").First(&admin).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &admin, nil
}

func (r *AdminRepository) ListTenantAdmins(ctx context.Context) ([]models.Admin, error) {
	var admins []models.Admin
	err := getDB(ctx, r.db).Where("is_superadmin = ?", false).Order("id ASC").Find(&admins).Error
	return admins, err
}

// UsernameTaken excludeID sıfırdan farklıysa o kaydın kendi adı sayılmaz.
func (r *AdminRepository) UsernameTaken(ctx context.Context, username string, excludeID uint) (bool, error) {
	var count int64
	q := getDB(ctx, r.db).Model(&models.Admin{}).Where("username = ?", username)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *AdminRepository) Update(ctx context.Context, admin *models.Admin) error {
	return getDB(ctx, r.db).Save(admin).Error
}

func (r *AdminRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&models.Admin{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
