package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"undangan.link/configs"
	"undangan.link/configs/configsdatabase"
	"undangan.link/configs/configslog"
	"undangan.link/database"
	"undangan.link/pkg/filestorage"
	"undangan.link/pkg/loginlimiter"
	"undangan.link/pkg/themegateway"
	"undangan.link/routes"
	"undangan.link/services"
	"undangan.link/views"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	cfg := configs.GetConfig()
	configsdatabase.InitDB(cfg)
	defer configsdatabase.CloseDB()
	db := configsdatabase.GetDB()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gateway := themegateway.Default()
	if cfg.AutoMigrate {
		err := database.Initialize(db, true, true, database.SeedOptions{
			SuperadminUsername: cfg.SuperadminUsername,
			SuperadminPassword: cfg.SuperadminPassword,
			Gateway:            gateway,
		})
		if err != nil {
			configslog.Log.Fatal("Veritabanı hazırlanamadı", zap.Error(err))
		}
	}

	storage, err := newStorage(ctx, cfg)
	if err != nil {
		configslog.Log.Fatal("Dosya deposu başlatılamadı", zap.String("driver", cfg.StorageDriver), zap.Error(err))
	}
	limiter, closeLimiter := newLimiter(ctx, cfg)
	defer closeLimiter()

	assets := services.NewAssetStore(storage, cfg.MaxUploadBytes)
	themeService := services.NewThemeService(db, gateway, assets)
	deps := routes.Dependencies{
		Config:       cfg,
		Sessions:     configs.SetupSession(cfg),
		Gateway:      gateway,
		Auth:         services.NewAuthService(db, limiter),
		Provisioning: services.NewProvisioningService(db, assets),
		Themes:       themeService,
		Guests:       services.NewGuestService(db, services.WithMaxImportBytes(cfg.MaxUploadBytes)),
		Content:      services.NewContentService(db, assets),
		Invitations:  services.NewInvitationService(db, themeService, assets),
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		Views:        views.NewEngine(!cfg.IsProduction()),
		BodyLimit:    int(5*cfg.MaxUploadBytes + 1<<20),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorHandler: errorHandler,
	})
	routes.SetupRoutes(app, deps)

	go func() {
		<-ctx.Done()
		configslog.SLog.Info("Kapatma sinyali alındı, sunucu durduruluyor...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			configslog.Log.Error("Sunucu düzgün kapatılamadı", zap.Error(err))
		}
	}()

	configslog.SLog.Infof("Sunucu :%s adresinde dinleniyor", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		configslog.Log.Error("Sunucu hatası", zap.Error(err))
	}
	configslog.SLog.Info("Sunucu durduruldu")
}

func newStorage(ctx context.Context, cfg *configs.AppConfig) (filestorage.Storage, error) {
	switch cfg.StorageDriver {
	case "minio":
		return filestorage.NewMinioStorage(ctx, cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL)
	case "local", "":
		return filestorage.NewLocalStorage(cfg.UploadDir, cfg.UploadURLBase), nil
	default:
		return nil, errors.New("desteklenmeyen STORAGE_DRIVER: " + cfg.StorageDriver)
	}
}

// newLimiter REDIS_ADDR varsa sayaçları Redis'te, yoksa bellekte tutar.
func newLimiter(ctx context.Context, cfg *configs.AppConfig) (loginlimiter.Limiter, func()) {
	if cfg.RedisAddr == "" {
		return loginlimiter.NewMemoryLimiter(cfg.LoginMaxAttempts, cfg.LoginWindow), func() {}
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		configslog.Log.Fatal("Redis'e bağlanılamadı", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	}
	configslog.SLog.Infof("Giriş limiti Redis üzerinde tutulacak (%s)", cfg.RedisAddr)
	return loginlimiter.NewRedisLimiter(client, cfg.LoginMaxAttempts, cfg.LoginWindow), func() {
		if err := client.Close(); err != nil {
			configslog.Log.Warn("Redis bağlantısı kapatılamadı", zap.Error(err))
		}
	}
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	if code >= fiber.StatusInternalServerError {
		configslog.Log.Error("İstek işlenemedi",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err))
	}

	view, message := "errors/500", "Terjadi kesalahan pada server."
	if code == fiber.StatusNotFound {
		view, message = "errors/404", "Halaman yang Anda cari tidak ditemukan."
	}
	if renderErr := c.Status(code).Render(view, fiber.Map{
		"Title":   "Terjadi Kesalahan",
		"Message": message,
	}, "layouts/error"); renderErr != nil {
		return c.Status(code).SendString(message)
	}
	return nil
}
