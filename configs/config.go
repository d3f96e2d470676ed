package configs

import (
	"fmt"
	"sync"
	"time"

	"undangan.link/configs/configslog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// AppConfig uygulamanın ortam değişkenlerinden okunan ayarları.
type AppConfig struct {
	Env  string `env:"APP_ENV" envDefault:"development"`
	Port string `env:"APP_PORT" envDefault:"3000"`
	Name string `env:"APP_NAME" envDefault:"Undangan Digital"`

	DBDriver   string `env:"DB_DRIVER" envDefault:"sqlite"`
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"undangan"`
	DBSSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"undangan.db"`
	// AutoMigrate sunucu açılışında migrasyon ve seed adımlarını çalıştırır.
	AutoMigrate bool `env:"AUTO_MIGRATE" envDefault:"true"`

	UploadDir      string `env:"UPLOAD_DIR" envDefault:"static/uploads"`
	UploadURLBase  string `env:"UPLOAD_URL_BASE" envDefault:"uploads"`
	StorageDriver  string `env:"STORAGE_DRIVER" envDefault:"local"`
	MaxUploadBytes int64  `env:"MAX_UPLOAD_BYTES" envDefault:"16777216"`

	MinioEndpoint  string `env:"MINIO_ENDPOINT"`
	MinioAccessKey string `env:"MINIO_ACCESS_KEY"`
	MinioSecretKey string `env:"MINIO_SECRET_KEY"`
	MinioBucket    string `env:"MINIO_BUCKET" envDefault:"undangan"`
	MinioUseSSL    bool   `env:"MINIO_USE_SSL" envDefault:"false"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	LoginMaxAttempts int           `env:"LOGIN_MAX_ATTEMPTS" envDefault:"3"`
	LoginWindow      time.Duration `env:"LOGIN_WINDOW" envDefault:"1h"`

	CSRFEnabled    bool          `env:"CSRF_ENABLED" envDefault:"true"`
	SessionSecure  bool          `env:"SESSION_SECURE" envDefault:"false"`
	SessionTimeout time.Duration `env:"SESSION_TIMEOUT" envDefault:"24h"`

	SuperadminUsername string `env:"SUPERADMIN_USERNAME" envDefault:"superadmin"`
	SuperadminPassword string `env:"SUPERADMIN_PASSWORD" envDefault:"superadmin123"`
}

// IsProduction production ortamında mıyız?
func (c *AppConfig) IsProduction() bool { return c.Env == "production" }

// PostgresDSN postgres bağlantı cümlesini üretir.
func (c *AppConfig) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

var (
	appConfig  *AppConfig
	configOnce sync.Once
)

// LoadConfig .env dosyasını (varsa) yükler ve ortam değişkenlerini ayrıştırır.
func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		configslog.SLog.Debug(".env dosyası bulunamadı, yalnızca ortam değişkenleri kullanılacak")
	}

	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("konfigürasyon okunamadı: %w", err)
	}
	if cfg.LoginMaxAttempts <= 0 {
		cfg.LoginMaxAttempts = 3
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 16 << 20
	}
	return cfg, nil
}

// GetConfig konfigürasyonu bir kez yükleyip paylaşır.
func GetConfig() *AppConfig {
	configOnce.Do(func() {
		cfg, err := LoadConfig()
		if err != nil {
			configslog.Log.Fatal("Konfigürasyon yüklenemedi", zap.Error(err))
		}
		appConfig = cfg
	})
	return appConfig
}
