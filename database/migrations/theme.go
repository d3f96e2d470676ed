package migrations

import (
	"undangan.link/configs/configslog"
	"undangan.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateThemesTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating categories & themes tables...")
	if err := db.AutoMigrate(&models.Category{}, &models.Theme{}); err != nil {
		configslog.Log.Error("Failed to migrate categories & themes tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Categories & themes tables migrated successfully")
	return nil
}
