package migrations

import (
	"undangan.link/configs/configslog"
	"undangan.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateContentTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating gift_accounts, gallery_items & story_entries tables...")
	if err := db.AutoMigrate(&models.GiftAccount{}, &models.GalleryItem{}, &models.StoryEntry{}); err != nil {
		configslog.Log.Error("Failed to migrate content tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Content tables migrated successfully")
	return nil
}
