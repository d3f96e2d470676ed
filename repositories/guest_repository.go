package repositories

import (
	"context"
	"errors"
	"time"

	"undangan.link/configs/configslog"
	"undangan.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RSVPCounts dashboard istatistikleri.
type RSVPCounts struct {
	Total        int64
	Attending    int64
	NotAttending int64
	Undecided    int64
	Pending      int64
}

// IGuestRepository misafir veritabanı işlemleri için arayüz.
type IGuestRepository interface {
	IBaseRepository[models.Guest]
	FindByTenantAndCode(ctx context.Context, tenantID uint, code string) (*models.Guest, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	MarkResponded(ctx context.Context, tenantID, guestID uint, status models.RSVPStatus, message *string, at time.Time) (bool, error)
	ClearResponse(ctx context.Context, tenantID, guestID uint) error
	Rename(ctx context.Context, tenantID, guestID uint, name string) error
	CountByStatus(ctx context.Context, tenantID uint) (RSVPCounts, error)
}

// GuestRepository IGuestRepository arayüzünü uygular.
type GuestRepository struct {
	*BaseRepository[models.Guest]
	db *gorm.DB
}

// NewGuestRepository misafirler ekleme sırasıyla (id) listelenir.
func NewGuestRepository(db *gorm.DB) IGuestRepository {
	return &GuestRepository{BaseRepository: NewBaseRepository[models.Guest](db, "id ASC"), db: db}
}

func (r *GuestRepository) FindByTenantAndCode(ctx context.Context, tenantID uint, code string) (*models.Guest, error) {
	if code == "" {
		return nil, ErrNotFound
	}
	var guest models.Guest
	err := getDB(ctx, r.db).Where("tenant_id = ? AND code = ?", tenantID, code).First(&guest).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			configslog.Log.Error("GuestRepository.FindByTenantAndCode: DB hatası", zap.Uint("tenant_id", tenantID), zap.Error(err))
		}
		return nil, translateNotFound(err)
	}
	return &guest, nil
}

func (r *GuestRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&models.Guest{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}

// MarkResponded yanıtı yalnızca rsvp_status hâlâ boşsa yazar.
// Koşullu tek UPDATE olduğu için eşzamanlı iki gönderimden yalnızca biri kazanır.
// false dönüşü misafirin zaten yanıt verdiği anlamına gelir.
func (r *GuestRepository) MarkResponded(ctx context.Context, tenantID, guestID uint, status models.RSVPStatus, message *string, at time.Time) (bool, error) {
	result := getDB(ctx, r.db).Model(&models.Guest{}).
		Where("id = ? AND tenant_id = ? AND rsvp_status IS NULL", guestID, tenantID).
		Updates(map[string]interface{}{
			"rsvp_status":  status,
			"message":      message,
			"responded_at": at,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// ClearResponse ucapan silme: yanıt alanlarını sıfırlar ve misafiri tekrar yanıt verebilir yapar.
func (r *GuestRepository) ClearResponse(ctx context.Context, tenantID, guestID uint) error {
	result := getDB(ctx, r.db).Model(&models.Guest{}).
		Where("id = ? AND tenant_id = ?", guestID, tenantID).
		Updates(map[string]interface{}{
			"rsvp_status":  nil,
			"message":      nil,
			"responded_at": nil,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GuestRepository) Rename(ctx context.Context, tenantID, guestID uint, name string) error {
	result := getDB(ctx, r.db).Model(&models.Guest{}).
		Where("id = ? AND tenant_id = ?", guestID, tenantID).
		Update("name", name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GuestRepository) CountByStatus(ctx context.Context, tenantID uint) (RSVPCounts, error) {
	var rows []struct {
		RSVPStatus *string `gorm:"column:rsvp_status"`
		Count      int64
	}
	err := getDB(ctx, r.db).Model(&models.Guest{}).
		Select("rsvp_status, COUNT(*) AS count").
		Where("tenant_id = ?", tenantID).
		Group("rsvp_status").
		Scan(&rows).Error
	if err != nil {
		return RSVPCounts{}, err
	}

	var counts RSVPCounts
	for _, row := range rows {
		counts.Total += row.Count
		if row.RSVPStatus == nil {
			counts.Pending += row.Count
			continue
		}
		switch models.RSVPStatus(*row.RSVPStatus) {
		case models.RSVPStatusAttending:
			counts.Attending += row.Count
		case models.RSVPStatusNotAttending:
			counts.NotAttending += row.Count
		case models.RSVPStatusUndecided:
			counts.Undecided += row.Count
		}
	}
	return counts, nil
}
