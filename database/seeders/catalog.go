package seeders

import (
	"errors"

	"undangan.link/configs/configslog"
	"undangan.link/models"
	"undangan.link/pkg/themegateway"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var defaultCategories = []string{"Elegan", "Modern", "Floral"}

// themeCategory varyant -> kategori adı
var themeCategory = map[string]string{
	"classic":   "Elegan",
	"minimalis": "Modern",
	"floral":    "Floral",
}

// SeedCatalog varsayılan kategorileri ve gateway'deki her varyant için bir tema oluşturur.
func SeedCatalog(db *gorm.DB, gateway *themegateway.Gateway) error {
	categoryIDs := map[string]uint{}
	errorOccurred := false

	for _, name := range defaultCategories {
		category := models.Category{Name: name}
		if err := db.Where(models.Category{Name: name}).FirstOrCreate(&category).Error; err != nil {
			configslog.Log.Error("Kategori oluşturulamadı", zap.String("name", name), zap.Error(err))
			errorOccurred = true
			continue
		}
		categoryIDs[name] = category.ID
	}

	for _, variant := range gateway.Variants() {
		var existing models.Theme
		err := db.Where("template_name = ?", variant.ID).First(&existing).Error
		if err == nil {
			configslog.SLog.Debugf("Tema '%s' zaten mevcut, atlanıyor.", variant.ID)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Tema kontrol edilemedi", zap.String("template", variant.ID), zap.Error(err))
			errorOccurred = true
			continue
		}

		theme := models.Theme{
			Name:         variant.Name,
			TemplateName: variant.ID,
			Description:  variant.Description,
		}
		if id, ok := categoryIDs[themeCategory[variant.ID]]; ok {
			theme.CategoryID = &id
		}
		if err := db.Create(&theme).Error; err != nil {
			configslog.Log.Error("Tema oluşturulamadı", zap.String("template", variant.ID), zap.Error(err))
			errorOccurred = true
			continue
		}
		configslog.SLog.Infof("Tema '%s' oluşturuldu (ID: %d).", theme.Name, theme.ID)
	}

	if errorOccurred {
		return errors.New("katalog seed edilirken en az bir hata oluştu")
	}
	return nil
}
