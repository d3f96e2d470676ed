package migrations

import (
	"undangan.link/configs/configslog"
	"undangan.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateTenantsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating tenants table...")
	if err := db.AutoMigrate(&models.Tenant{}); err != nil {
		configslog.Log.Error("Failed to migrate tenants table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Tenants table migrated successfully")
	return nil
}
