package main

import (
	"flag"
	"os"

	"undangan.link/configs"
	"undangan.link/configs/configsdatabase"
	"undangan.link/configs/configslog"
	"undangan.link/database"
	"undangan.link/pkg/themegateway"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()
	migrateFlag := flag.Bool("migrate", false, "Veritabanı migrasyonlarını çalıştır")
	seedFlag := flag.Bool("seed", false, "Superadmin ve varsayılan tema kataloğunu oluştur")
	flag.Parse()

	cfg := configs.GetConfig()
	configsdatabase.InitDB(cfg)
	defer configsdatabase.CloseDB()

	configslog.SLog.Info("Veritabanı başlatma işlemi çalıştırılıyor...")
	err := database.Initialize(configsdatabase.GetDB(), *migrateFlag, *seedFlag, database.SeedOptions{
		SuperadminUsername: cfg.SuperadminUsername,
		SuperadminPassword: cfg.SuperadminPassword,
		Gateway:            themegateway.Default(),
	})
	if err != nil {
		configsdatabase.CloseDB()
		configslog.SyncLogger()
		os.Exit(1)
	}
	configslog.SLog.Info("Veritabanı başlatma işlemi tamamlandı.")
}
