package seeders

import (
	"errors"
	"fmt"

	"undangan.link/configs/configslog"
	"undangan.link/models"
	"undangan.link/pkg/passwordhash"

	"gorm.io/gorm"
)

// SeedSuperadmin hiç superadmin yoksa verilen bilgilerle oluşturur. Var olan hesaba dokunmaz.
func SeedSuperadmin(db *gorm.DB, username, password string) error {
	var existing models.Admin
	err := db.Where("is_superadmin = ?", true).First(&existing).Error
	if err == nil {
		configslog.SLog.Infof("Superadmin '%s' zaten mevcut, oluşturma atlanıyor.", existing.Username)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("superadmin kontrol edilemedi: %w", err)
	}
	if username == "" || len(password) < 6 {
		return errors.New("superadmin kullanıcı adı veya şifresi geçersiz")
	}

	hash, err := passwordhash.Hash(password)
	if err != nil {
		return err
	}
	admin := models.Admin{Username: username, PasswordHash: hash, IsSuperadmin: true}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("superadmin oluşturulamadı: %w", err)
	}
	configslog.SLog.Infof("Superadmin '%s' oluşturuldu (ID: %d).", admin.Username, admin.ID)
	return nil
}
