package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"undangan.link/configs/configslog"
	"undangan.link/models"
	"undangan.link/pkg/filestorage"
	"undangan.link/pkg/metrics"
	"undangan.link/repositories"
	"undangan.link/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	maxCodeAttempts    = 10
	maxGuestNameLen    = 100
	maxRSVPMessageLen  = 1000
	defaultImportBytes = 16 << 20
)

// IGuestService misafir listesi ve tek seferlik RSVP durum makinesi.
type IGuestService interface {
	ListGuests(ctx context.Context, p Principal) ([]models.Guest, error)
	AddGuest(ctx context.Context, p Principal, name string) (*models.Guest, error)
	RenameGuest(ctx context.Context, p Principal, guestID uint, name string) error
	DeleteGuest(ctx context.Context, p Principal, guestID uint) error
	ResetGreeting(ctx context.Context, p Principal, guestID uint) error
	SubmitRSVP(ctx context.Context, tenantID uint, code string, status models.RSVPStatus, message string) (*models.Guest, error)
	ImportGuests(ctx context.Context, p Principal, upload *filestorage.Upload) (int, error)
	ExportGuests(ctx context.Context, p Principal, w io.Writer) error
}

// GuestOption GuestService ayarları.
type GuestOption func(*GuestService)

// WithCodeGenerator misafir kodu üretecini değiştirir.
func WithCodeGenerator(fn func() string) GuestOption {
	return func(s *GuestService) { s.newCode = fn }
}

// WithMaxImportBytes içe aktarılan xlsx dosyası için boyut sınırı.
func WithMaxImportBytes(n int64) GuestOption {
	return func(s *GuestService) {
		if n > 0 {
			s.maxImportBytes = n
		}
	}
}

// WithClock RespondedAt için saat kaynağını değiştirir.
func WithClock(fn func() time.Time) GuestOption {
	return func(s *GuestService) { s.now = fn }
}

type GuestService struct {
	db      *gorm.DB
	guests  repositories.IGuestRepository
	newCode func() string
	now     func() time.Time

	maxImportBytes int64
}

func NewGuestService(db *gorm.DB, opts ...GuestOption) IGuestService {
	s := &GuestService{
		db:      db,
		guests:  repositories.NewGuestRepository(db),
		newCode: utils.NewGuestCode,
		now:     time.Now,

		maxImportBytes: defaultImportBytes,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func normalizeGuestName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", validationError("nama tamu wajib diisi")
	}
	if utf8.RuneCountInString(name) > maxGuestNameLen {
		return "", validationError("nama tamu maksimal %d karakter", maxGuestNameLen)
	}
	return name, nil
}

func (s *GuestService) ListGuests(ctx context.Context, p Principal) ([]models.Guest, error) {
	tenantID, err := p.TenantScope()
	if err != nil {
		return nil, err
	}
	guests, err := s.guests.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, storageError(err)
	}
	return guests, nil
}

func (s *GuestService) AddGuest(ctx context.Context, p Principal, name string) (*models.Guest, error) {
	tenantID, err := p.TenantScope()
	if err != nil {
		return nil, err
	}
	name, err = normalizeGuestName(name)
	if err != nil {
		return nil, err
	}
	guest, err := s.addGuest(p.auditContext(ctx), tenantID, name)
	if err != nil {
		return nil, storageError(err)
	}
	return guest, nil
}

// addGuest tekil bir kod bulana kadar yeniden dener. Depodaki kontrolü geçen bir kod
// eşzamanlı bir ekleme yüzünden unique index'e takılırsa o da yeniden denenir.
func (s *GuestService) addGuest(ctx context.Context, tenantID uint, name string) (*models.Guest, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code := s.newCode()
		exists, err := s.guests.CodeExists(ctx, code)
		if err != nil {
			return nil, err
		}
		if exists {
			configslog.SLog.Debugf("Misafir kodu çakıştı, yeniden deneniyor (deneme %d)", attempt+1)
			continue
		}

		guest := &models.Guest{TenantID: tenantID, Name: name, Code: code}
		err = repositories.Transaction(ctx, s.db, func(txCtx context.Context) error {
			return s.guests.Create(txCtx, guest)
		})
		if err == nil {
			return guest, nil
		}
		if !repositories.IsDuplicateKeyError(err) {
			return nil, err
		}
	}
	return nil, errors.New("benzersiz misafir kodu üretilemedi")
}

func (s *GuestService) RenameGuest(ctx context.Context, p Principal, guestID uint, name string) error {
	tenantID, err := p.TenantScope()
	if err != nil {
		return err
	}
	name, err = normalizeGuestName(name)
	if err != nil {
		return err
	}
	if err := s.guests.Rename(p.auditContext(ctx), tenantID, guestID, name); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotFound
		}
		return storageError(err)
	}
	return nil
}

// DeleteGuest başka undangan'ın misafiri ErrNotFound döner.
func (s *GuestService) DeleteGuest(ctx context.Context, p Principal, guestID uint) error {
	tenantID, err := p.TenantScope()
	if err != nil {
		return err
	}
	if err := s.guests.DeleteByTenantAndID(ctx, tenantID, guestID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotFound
		}
		return storageError(err)
	}
	configslog.Log.Info("Misafir silindi", zap.Uint("tenant_id", tenantID), zap.Uint("guest_id", guestID))
	return nil
}

// ResetGreeting ucapan'ı ve RSVP yanıtını temizler; misafir tekrar yanıt verebilir.
func (s *GuestService) ResetGreeting(ctx context.Context, p Principal, guestID uint) error {
	tenantID, err := p.TenantScope()
	if err != nil {
		return err
	}
	if err := s.guests.ClearResponse(p.auditContext(ctx), tenantID, guestID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotFound
		}
		return storageError(err)
	}
	return nil
}

// SubmitRSVP yanıtı yalnızca bir kez kabul eder. İkinci gönderim ErrAlreadyResponded döner
// ve kayıtlı yanıtı değiştirmez.
func (s *GuestService) SubmitRSVP(ctx context.Context, tenantID uint, code string, status models.RSVPStatus, message string) (*models.Guest, error) {
	if !status.Valid() {
		metrics.RSVPSubmissions.WithLabelValues("invalid").Inc()
		return nil, validationError("status kehadiran tidak valid")
	}
	message = strings.TrimSpace(message)
	if utf8.RuneCountInString(message) > maxRSVPMessageLen {
		metrics.RSVPSubmissions.WithLabelValues("invalid").Inc()
		return nil, validationError("ucapan maksimal %d karakter", maxRSVPMessageLen)
	}

	guest, err := s.guests.FindByTenantAndCode(ctx, tenantID, code)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			metrics.RSVPSubmissions.WithLabelValues("not_found").Inc()
			return nil, ErrNotFound
		}
		metrics.RSVPSubmissions.WithLabelValues("error").Inc()
		return nil, storageError(err)
	}

	var msg *string
	if message != "" {
		msg = &message
	}
	at := s.now()
	accepted, err := s.guests.MarkResponded(ctx, tenantID, guest.ID, status, msg, at)
	if err != nil {
		metrics.RSVPSubmissions.WithLabelValues("error").Inc()
		return nil, storageError(err)
	}
	if !accepted {
		metrics.RSVPSubmissions.WithLabelValues("already_responded").Inc()
		return nil, ErrAlreadyResponded
	}

	metrics.RSVPSubmissions.WithLabelValues("accepted").Inc()
	guest.RSVPStatus = &status
	guest.Message = msg
	guest.RespondedAt = &at
	return guest, nil
}

var _ IGuestService = (*GuestService)(nil)
