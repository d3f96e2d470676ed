package database

import (
	"undangan.link/configs/configslog"
	"undangan.link/database/migrations"
	"undangan.link/database/seeders"
	"undangan.link/pkg/themegateway"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedOptions seed adımının girdileri.
type SeedOptions struct {
	SuperadminUsername string
	SuperadminPassword string
	Gateway            *themegateway.Gateway
}

// Initialize migrasyon ve seed adımlarını tek transaction içinde çalıştırır.
func Initialize(db *gorm.DB, migrate bool, seed bool, opts SeedOptions) error {
	if !migrate && !seed {
		configslog.SLog.Info("Migrate veya seed bayrağı belirtilmedi, işlem yapılmayacak.")
		return nil
	}

	configslog.SLog.Info("Veritabanı başlatma işlemi başlıyor...")
	err := db.Transaction(func(tx *gorm.DB) error {
		if migrate {
			configslog.SLog.Info("Migrasyonlar çalıştırılıyor...")
			if err := RunMigrationsInOrder(tx); err != nil {
				configslog.Log.Error("Migrasyon başarısız oldu", zap.Error(err))
				return err
			}
			configslog.SLog.Info("Migrasyonlar tamamlandı.")
		} else {
			configslog.SLog.Info("Migrate bayrağı belirtilmedi, migrasyon adımı atlanıyor.")
		}

		if seed {
			configslog.SLog.Info("Seeder'lar çalıştırılıyor...")
			if err := CheckAndRunSeeders(tx, opts); err != nil {
				configslog.Log.Error("Seeding başarısız oldu", zap.Error(err))
				return err
			}
			configslog.SLog.Info("Seeder'lar tamamlandı.")
		} else {
			configslog.SLog.Info("Seed bayrağı belirtilmedi, seeder adımı atlanıyor.")
		}
		return nil
	})
	if err != nil {
		configslog.Log.Error("Veritabanı başlatma işlemi geri alındı", zap.Error(err))
		return err
	}

	configslog.SLog.Info("Veritabanı başlatma işlemi başarıyla tamamlandı")
	return nil
}

// RunMigrationsInOrder tabloları bağımlılık sırasıyla oluşturur.
func RunMigrationsInOrder(db *gorm.DB) error {
	steps := []struct {
		name string
		run  func(*gorm.DB) error
	}{
		{"Theme", migrations.MigrateThemesTables},
		{"Tenant", migrations.MigrateTenantsTable},
		{"Admin", migrations.MigrateAdminsTable},
		{"Guest", migrations.MigrateGuestsTable},
		{"Content", migrations.MigrateContentTables},
	}
	for _, step := range steps {
		configslog.SLog.Infof(" -> %s migrasyonları çalıştırılıyor...", step.name)
		if err := step.run(db); err != nil {
			return err
		}
		configslog.SLog.Infof(" -> %s migrasyonları tamamlandı.", step.name)
	}
	configslog.SLog.Info("Tüm migrasyonlar başarıyla çalıştırıldı.")
	return nil
}

// CheckAndRunSeeders superadmin ve varsayılan tema kataloğunu hazırlar.
func CheckAndRunSeeders(db *gorm.DB, opts SeedOptions) error {
	configslog.SLog.Info(" -> Superadmin kontrol ediliyor/oluşturuluyor...")
	if err := seeders.SeedSuperadmin(db, opts.SuperadminUsername, opts.SuperadminPassword); err != nil {
		configslog.Log.Error("Superadmin seed işlemi başarısız", zap.Error(err))
		return err
	}

	if opts.Gateway != nil {
		configslog.SLog.Info(" -> Tema kataloğu seeder çalıştırılıyor...")
		if err := seeders.SeedCatalog(db, opts.Gateway); err != nil {
			configslog.Log.Error("Tema kataloğu seed edilemedi", zap.Error(err))
			return err
		}
		configslog.SLog.Info(" -> Tema kataloğu seeder tamamlandı.")
	}

	configslog.SLog.Info("Tüm seeder'lar başarıyla kontrol edildi/çalıştırıldı.")
	return nil
}
