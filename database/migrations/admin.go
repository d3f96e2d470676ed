package migrations

import (
	"undangan.link/configs/configslog"
	"undangan.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateAdminsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating admins table...")
	if err := db.AutoMigrate(&models.Admin{}); err != nil {
		configslog.Log.Error("Failed to migrate admins table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Admins table migrated successfully")
	return nil
}
