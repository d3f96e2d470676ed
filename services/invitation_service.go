package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"undangan.link/configs/configslog"
	"undangan.link/models"
	"undangan.link/pkg/filestorage"
	"undangan.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ContentInput tenant admininin düzenlediği davetiye içeriği. Tarihler form metni olarak gelir.
type ContentInput struct {
	CoupleName string `form:"nama_mempelai"`
	ThemeID    uint   `form:"tema_id"`

	GroomName      string `form:"mempelai_pria"`
	GroomBio       string `form:"bio_pria"`
	GroomParents   string `form:"ortu_pria"`
	GroomInstagram string `form:"instagram_pria"`
	BrideName      string `form:"mempelai_wanita"`
	BrideBio       string `form:"bio_wanita"`
	BrideParents   string `form:"ortu_wanita"`
	BrideInstagram string `form:"instagram_wanita"`

	AkadDate         string `form:"tanggal_akad"`
	AkadPlace        string `form:"tempat_akad"`
	AkadAddress      string `form:"lokasi_akad"`
	AkadMapsURL      string `form:"maps_akad"`
	ReceptionDate    string `form:"tanggal_resepsi"`
	ReceptionPlace   string `form:"tempat_resepsi"`
	ReceptionAddress string `form:"lokasi_resepsi"`
	ReceptionMapsURL string `form:"maps_resepsi"`

	GiftRecipient string `form:"penerima_kado"`
	GiftAddress   string `form:"alamat_kado"`
	WhatsApp      string `form:"wa"`
}

// InvitationFiles isteğe bağlı medya dosyaları. nil alan değişmez.
type InvitationFiles struct {
	GroomPhoto           *filestorage.Upload
	BridePhoto           *filestorage.Upload
	Audio                *filestorage.Upload
	CoverBackground      *filestorage.Upload
	InvitationBackground *filestorage.Upload
}

// Dashboard tenant admin panelinin tüm verisi.
type Dashboard struct {
	Tenant  *models.Tenant
	Theme   *models.Theme
	Themes  []models.Theme
	Guests  []models.Guest
	Gifts   []models.GiftAccount
	Gallery []models.GalleryItem
	Stories []models.StoryEntry
	Stats   repositories.RSVPCounts
}

// PublicInvitation misafirin gördüğü davetiye sayfası.
type PublicInvitation struct {
	Tenant    models.Tenant
	Theme     models.Theme
	Guest     models.Guest
	Gifts     []models.GiftAccount
	Gallery   []models.GalleryItem
	Stories   []models.StoryEntry
	Greetings []models.Guest
	Preview   bool
}

// IInvitationService davetiye içeriği, panel ve genel görünüm.
type IInvitationService interface {
	GetDashboard(ctx context.Context, p Principal) (*Dashboard, error)
	UpdateInvitationContent(ctx context.Context, p Principal, in ContentInput, files InvitationFiles) ([]string, error)
	GetPublicInvitation(ctx context.Context, slug, code string) (*PublicInvitation, error)
	PreviewInvitation(ctx context.Context, templateName string) (*PublicInvitation, error)
}

type InvitationService struct {
	tenants repositories.ITenantRepository
	themes  repositories.IThemeRepository
	guests  repositories.IGuestRepository
	gifts   repositories.IGiftAccountRepository
	gallery repositories.IGalleryRepository
	stories repositories.IStoryRepository
	themeSv IThemeService
	assets  *AssetStore
}

func NewInvitationService(db *gorm.DB, themeService IThemeService, assets *AssetStore) IInvitationService {
	return &InvitationService{
		tenants: repositories.NewTenantRepository(db),
		themes:  repositories.NewThemeRepository(db),
		guests:  repositories.NewGuestRepository(db),
		gifts:   repositories.NewGiftAccountRepository(db),
		gallery: repositories.NewGalleryRepository(db),
		stories: repositories.NewStoryRepository(db),
		themeSv: themeService,
		assets:  assets,
	}
}

func (s *InvitationService) loadContent(ctx context.Context, tenantID uint) ([]models.GiftAccount, []models.GalleryItem, []models.StoryEntry, error) {
	gifts, err := s.gifts.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, nil, nil, err
	}
	gallery, err := s.gallery.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, nil, nil, err
	}
	stories, err := s.stories.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, nil, nil, err
	}
	return gifts, gallery, stories, nil
}

func (s *InvitationService) GetDashboard(ctx context.Context, p Principal) (*Dashboard, error) {
	tenantID, err := p.TenantScope()
	if err != nil {
		return nil, err
	}
	tenant, err := s.tenants.FindByID(ctx, tenantID)
	if err != nil {
		return nil, notFoundOrStorage(err)
	}

	d := &Dashboard{Tenant: tenant}
	if d.Theme, err = s.themes.FindByID(ctx, tenant.ThemeID); err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, storageError(err)
	}
	if d.Themes, err = s.themes.List(ctx, nil); err != nil {
		return nil, storageError(err)
	}
	if d.Guests, err = s.guests.ListByTenant(ctx, tenantID); err != nil {
		return nil, storageError(err)
	}
	if d.Gifts, d.Gallery, d.Stories, err = s.loadContent(ctx, tenantID); err != nil {
		return nil, storageError(err)
	}
	if d.Stats, err = s.guests.CountByStatus(ctx, tenantID); err != nil {
		return nil, storageError(err)
	}
	return d, nil
}

func trimAll(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}

// UpdateInvitationContent metin alanlarını kaydeder. Kaydedilemeyen dosyalar eski değerini korur
// ve uyarı olarak döner; metin güncellemesi yine de yapılır.
func (s *InvitationService) UpdateInvitationContent(ctx context.Context, p Principal, in ContentInput, files InvitationFiles) ([]string, error) {
	tenantID, err := p.TenantScope()
	if err != nil {
		return nil, err
	}
	trimAll(&in.CoupleName, &in.GroomName, &in.GroomBio, &in.GroomParents, &in.GroomInstagram,
		&in.BrideName, &in.BrideBio, &in.BrideParents, &in.BrideInstagram,
		&in.AkadPlace, &in.AkadAddress, &in.AkadMapsURL,
		&in.ReceptionPlace, &in.ReceptionAddress, &in.ReceptionMapsURL,
		&in.GiftRecipient, &in.GiftAddress, &in.WhatsApp)
	if in.CoupleName == "" {
		return nil, validationError("nama mempelai wajib diisi")
	}
	if utf8.RuneCountInString(in.CoupleName) > 100 {
		return nil, validationError("nama mempelai maksimal 100 karakter")
	}
	akad, err := parseOptionalDate("akad", in.AkadDate)
	if err != nil {
		return nil, err
	}
	reception, err := parseOptionalDate("resepsi", in.ReceptionDate)
	if err != nil {
		return nil, err
	}

	ctx = p.auditContext(ctx)
	tenant, err := s.tenants.FindByID(ctx, tenantID)
	if err != nil {
		return nil, notFoundOrStorage(err)
	}
	if in.ThemeID != 0 && in.ThemeID != tenant.ThemeID {
		if _, err := s.themes.FindByID(ctx, in.ThemeID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, validationError("tema tidak ditemukan")
			}
			return nil, storageError(err)
		}
		tenant.ThemeID = in.ThemeID
	}

	tenant.CoupleName = in.CoupleName
	tenant.GroomName, tenant.GroomBio, tenant.GroomParents, tenant.GroomInstagram = in.GroomName, in.GroomBio, in.GroomParents, in.GroomInstagram
	tenant.BrideName, tenant.BrideBio, tenant.BrideParents, tenant.BrideInstagram = in.BrideName, in.BrideBio, in.BrideParents, in.BrideInstagram
	tenant.AkadDate, tenant.AkadPlace, tenant.AkadAddress, tenant.AkadMapsURL = akad, in.AkadPlace, in.AkadAddress, in.AkadMapsURL
	tenant.ReceptionDate, tenant.ReceptionPlace, tenant.ReceptionAddress, tenant.ReceptionMapsURL = reception, in.ReceptionPlace, in.ReceptionAddress, in.ReceptionMapsURL
	tenant.GiftRecipient, tenant.GiftAddress, tenant.WhatsApp = in.GiftRecipient, in.GiftAddress, in.WhatsApp

	var warnings []string
	assets := []struct {
		field  string
		label  string
		kind   AssetKind
		upload *filestorage.Upload
		target *string
	}{
		{"foto_pria", "foto mempelai pria", AssetImage, files.GroomPhoto, &tenant.GroomPhoto},
		{"foto_wanita", "foto mempelai wanita", AssetImage, files.BridePhoto, &tenant.BridePhoto},
		{"audio", "audio", AssetAudio, files.Audio, &tenant.Audio},
		{"bg_sampul", "latar sampul", AssetImage, files.CoverBackground, &tenant.CoverBackground},
		{"bg_undangan", "latar undangan", AssetImage, files.InvitationBackground, &tenant.InvitationBackground},
	}
	for _, a := range assets {
		if a.upload == nil {
			continue
		}
		stored, err := s.assets.Save(ctx, a.upload, a.kind, tenant.Slug, fmt.Sprintf("%s_%s", tenant.Slug, a.field))
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s tidak tersimpan: %s", a.label, PublicMessage(err)))
			continue
		}
		*a.target = stored
	}

	if err := s.tenants.Update(ctx, tenant); err != nil {
		configslog.Log.Error("Undangan içeriği güncellenemedi", zap.Uint("tenant_id", tenantID), zap.Error(err))
		return nil, storageError(err)
	}
	return warnings, nil
}

// GetPublicInvitation slug veya kod eşleşmezse ErrNotFound.
func (s *InvitationService) GetPublicInvitation(ctx context.Context, slug, code string) (*PublicInvitation, error) {
	tenant, err := s.tenants.FindBySlug(ctx, slug)
	if err != nil {
		return nil, notFoundOrStorage(err)
	}
	guest, err := s.guests.FindByTenantAndCode(ctx, tenant.ID, code)
	if err != nil {
		return nil, notFoundOrStorage(err)
	}
	theme, err := s.themes.FindByID(ctx, tenant.ThemeID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			configslog.Log.Error("Undangan'ın teması bulunamadı", zap.Uint("tenant_id", tenant.ID), zap.Uint("theme_id", tenant.ThemeID))
		}
		return nil, notFoundOrStorage(err)
	}

	inv := &PublicInvitation{Tenant: *tenant, Theme: *theme, Guest: *guest}
	if inv.Gifts, inv.Gallery, inv.Stories, err = s.loadContent(ctx, tenant.ID); err != nil {
		return nil, storageError(err)
	}
	all, err := s.guests.ListByTenant(ctx, tenant.ID)
	if err != nil {
		return nil, storageError(err)
	}
	for _, g := range all {
		if g.Message != nil && *g.Message != "" {
			inv.Greetings = append(inv.Greetings, g)
		}
	}
	return inv, nil
}

// PreviewInvitation katalog önizlemesi için örnek verilerle davetiye döndürür.
func (s *InvitationService) PreviewInvitation(ctx context.Context, templateName string) (*PublicInvitation, error) {
	theme, err := s.themeSv.GetThemeByTemplate(ctx, templateName)
	if err != nil {
		return nil, err
	}
	inv := samplePreview()
	inv.Theme = *theme
	return inv, nil
}

var _ IInvitationService = (*InvitationService)(nil)
