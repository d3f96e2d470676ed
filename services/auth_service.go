package services

import (
	"context"
	"errors"
	"strings"

	"undangan.link/configs/configslog"
	"undangan.link/pkg/loginlimiter"
	"undangan.link/pkg/metrics"
	"undangan.link/pkg/passwordhash"
	"undangan.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IAuthService admin girişi ve oturum kimliği işlemleri.
type IAuthService interface {
	Authenticate(ctx context.Context, clientAddr, username, password string) (*Principal, error)
	CurrentPrincipal(ctx context.Context, adminID uint) (*Principal, error)
	UpdateSuperadminAccount(ctx context.Context, p Principal, username, password string) error
}

type AuthService struct {
	admins  repositories.IAdminRepository
	limiter loginlimiter.Limiter
}

func NewAuthService(db *gorm.DB, limiter loginlimiter.Limiter) IAuthService {
	return &AuthService{
		admins:  repositories.NewAdminRepository(db),
		limiter: limiter,
	}
}

// Authenticate limit kimlik bilgilerinden önce kontrol edilir; başarılı girişte adresin sayacı sıfırlanır.
func (s *AuthService) Authenticate(ctx context.Context, clientAddr, username, password string) (*Principal, error) {
	allowed, err := s.limiter.Allow(ctx, clientAddr)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues("error").Inc()
		configslog.Log.Error("AuthService.Authenticate: limiter hatası", zap.String("addr", clientAddr), zap.Error(err))
		return nil, storageError(err)
	}
	if !allowed {
		metrics.LoginAttempts.WithLabelValues("rate_limited").Inc()
		configslog.Log.Warn("Giriş denemesi limiti aşıldı", zap.String("addr", clientAddr))
		return nil, ErrRateLimited
	}

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		metrics.LoginAttempts.WithLabelValues("invalid").Inc()
		return nil, ErrInvalidCredentials
	}

	admin, err := s.admins.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			metrics.LoginAttempts.WithLabelValues("invalid").Inc()
			return nil, ErrInvalidCredentials
		}
		metrics.LoginAttempts.WithLabelValues("error").Inc()
		return nil, storageError(err)
	}

	ok, err := passwordhash.Verify(password, admin.PasswordHash)
	if err != nil {
		configslog.Log.Error("Kayıtlı parola özeti çözümlenemedi", zap.Uint("admin_id", admin.ID), zap.Error(err))
	}
	if !ok {
		metrics.LoginAttempts.WithLabelValues("invalid").Inc()
		return nil, ErrInvalidCredentials
	}

	if err := s.limiter.Reset(ctx, clientAddr); err != nil {
		configslog.Log.Warn("Giriş sayacı sıfırlanamadı", zap.String("addr", clientAddr), zap.Error(err))
	}
	metrics.LoginAttempts.WithLabelValues("success").Inc()
	configslog.SLog.Infof("Admin giriş yaptı: %s (ID: %d)", admin.Username, admin.ID)
	return principalFromAdmin(admin), nil
}

// CurrentPrincipal oturumdaki admin ID'sinden güncel yetkileri yükler.
func (s *AuthService) CurrentPrincipal(ctx context.Context, adminID uint) (*Principal, error) {
	admin, err := s.admins.FindByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, storageError(err)
	}
	return principalFromAdmin(admin), nil
}

// UpdateSuperadminAccount superadmin kendi kullanıcı adını ve (boş değilse) şifresini değiştirir.
func (s *AuthService) UpdateSuperadminAccount(ctx context.Context, p Principal, username, password string) error {
	if err := p.RequireSuperadmin(); err != nil {
		return err
	}
	username = strings.TrimSpace(username)
	if err := validateUsername(username); err != nil {
		return err
	}
	if password != "" {
		if err := validatePassword(password); err != nil {
			return err
		}
	}

	ctx = p.auditContext(ctx)
	admin, err := s.admins.FindByID(ctx, p.AdminID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotFound
		}
		return storageError(err)
	}

	taken, err := s.admins.UsernameTaken(ctx, username, admin.ID)
	if err != nil {
		return storageError(err)
	}
	if taken {
		return conflictError("username %s sudah digunakan", username)
	}

	admin.Username = username
	if password != "" {
		hash, err := passwordhash.Hash(password)
		if err != nil {
			return storageError(err)
		}
		admin.PasswordHash = hash
	}
	if err := s.admins.Update(ctx, admin); err != nil {
		if repositories.IsDuplicateKeyError(err) {
			return conflictError("username %s sudah digunakan", username)
		}
		return storageError(err)
	}
	return nil
}

var _ IAuthService = (*AuthService)(nil)
