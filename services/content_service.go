package services

import (
	"context"
	"errors"
	"strings"

	"undangan.link/configs/configslog"
	"undangan.link/models"
	"undangan.link/pkg/filestorage"
	"undangan.link/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GiftAccountInput rekening formu.
type GiftAccountInput struct {
	BankName      string `form:"bank"`
	AccountNumber string `form:"nomor"`
	AccountHolder string `form:"atas_nama"`
}

// StoryInput cerita formu. EventDate boş olabilir.
type StoryInput struct {
	Title     string `form:"judul"`
	EventDate string `form:"tanggal"`
	Body      string `form:"isi"`
}

// IContentService rekening, galeri ve cerita kayıtları. Yalnızca ekleme ve silme.
type IContentService interface {
	ListGiftAccounts(ctx context.Context, p Principal) ([]models.GiftAccount, error)
	AddGiftAccount(ctx context.Context, p Principal, in GiftAccountInput) (*models.GiftAccount, error)
	DeleteGiftAccount(ctx context.Context, p Principal, id uint) error
	ListGalleryItems(ctx context.Context, p Principal) ([]models.GalleryItem, error)
	AddGalleryItem(ctx context.Context, p Principal, image *filestorage.Upload, alt string) (*models.GalleryItem, error)
	DeleteGalleryItem(ctx context.Context, p Principal, id uint) error
	ListStoryEntries(ctx context.Context, p Principal) ([]models.StoryEntry, error)
	AddStoryEntry(ctx context.Context, p Principal, in StoryInput) (*models.StoryEntry, error)
	DeleteStoryEntry(ctx context.Context, p Principal, id uint) error
}

type ContentService struct {
	tenants repositories.ITenantRepository
	gifts   repositories.IGiftAccountRepository
	gallery repositories.IGalleryRepository
	stories repositories.IStoryRepository
	assets  *AssetStore
}

func NewContentService(db *gorm.DB, assets *AssetStore) IContentService {
	return &ContentService{
		tenants: repositories.NewTenantRepository(db),
		gifts:   repositories.NewGiftAccountRepository(db),
		gallery: repositories.NewGalleryRepository(db),
		stories: repositories.NewStoryRepository(db),
		assets:  assets,
	}
}

func notFoundOrStorage(err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrNotFound
	}
	return storageError(err)
}

func (s *ContentService) ListGiftAccounts(ctx context.Context, p Principal) ([]models.GiftAccount, error) {
	tenantID, err := p.TenantScope()
	if err != nil {
		return nil, err
	}
	list, err := s.gifts.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, storageError(err)
	}
	return list, nil
}

func (s *ContentService) AddGiftAccount(ctx context.Context, p Principal, in GiftAccountInput) (*models.GiftAccount, error) {
	tenantID, err := p.TenantScope()
	if err != nil {
		return nil, err
	}
	in.BankName = strings.TrimSpace(in.BankName)
	in.AccountNumber = strings.TrimSpace(in.AccountNumber)
	in.AccountHolder = strings.TrimSpace(in.AccountHolder)
	if in.BankName == "" || in.AccountNumber == "" || in.AccountHolder == "" {
		return nil, validationError("nama bank, nomor rekening, dan atas nama wajib diisi")
	}

	account := &models.GiftAccount{
		TenantID:      tenantID,
		BankName:      in.BankName,
		AccountNumber: in.AccountNumber,
		AccountHolder: in.AccountHolder,
	}
	if err := s.gifts.Create(p.auditContext(ctx), account); err != nil {
		return nil, storageError(err)
	}
	return account, nil
}

func (s *ContentService) DeleteGiftAccount(ctx context.Context, p Principal, id uint) error {
	tenantID, err := p.TenantScope()
	if err != nil {
		return err
	}
	if err := s.gifts.DeleteByTenantAndID(ctx, tenantID, id); err != nil {
		return notFoundOrStorage(err)
	}
	return nil
}

func (s *ContentService) ListGalleryItems(ctx context.Context, p Principal) ([]models.GalleryItem, error) {
	tenantID, err := p.TenantScope()
	if err != nil {
		return nil, err
	}
	list, err := s.gallery.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, storageError(err)
	}
	return list, nil
}

// AddGalleryItem görsel kaydedilemezse hiçbir kayıt oluşturulmaz ve ErrValidation döner.
func (s *ContentService) AddGalleryItem(ctx context.Context, p Principal, image *filestorage.Upload, alt string) (*models.GalleryItem, error) {
	tenantID, err := p.TenantScope()
	if err != nil {
		return nil, err
	}
	if image == nil {
		return nil, validationError("gambar wajib diunggah")
	}
	tenant, err := s.tenants.FindByID(ctx, tenantID)
	if err != nil {
		return nil, notFoundOrStorage(err)
	}

	baseName := tenant.Slug + "_galeri_" + uuid.NewString()[:8]
	stored, err := s.assets.Save(ctx, image, AssetImage, tenant.Slug, baseName)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			return nil, err
		}
		return nil, validationError("gambar gagal disimpan")
	}

	item := &models.GalleryItem{TenantID: tenantID, ImagePath: stored, Alt: strings.TrimSpace(alt)}
	if err := s.gallery.Create(p.auditContext(ctx), item); err != nil {
		s.assets.Remove(ctx, stored)
		return nil, storageError(err)
	}
	return item, nil
}

func (s *ContentService) DeleteGalleryItem(ctx context.Context, p Principal, id uint) error {
	tenantID, err := p.TenantScope()
	if err != nil {
		return err
	}
	item, err := s.gallery.FindByTenantAndID(ctx, tenantID, id)
	if err != nil {
		return notFoundOrStorage(err)
	}
	if err := s.gallery.DeleteByTenantAndID(ctx, tenantID, id); err != nil {
		return notFoundOrStorage(err)
	}
	s.assets.Remove(ctx, item.ImagePath)
	return nil
}

func (s *ContentService) ListStoryEntries(ctx context.Context, p Principal) ([]models.StoryEntry, error) {
	tenantID, err := p.TenantScope()
	if err != nil {
		return nil, err
	}
	list, err := s.stories.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, storageError(err)
	}
	return list, nil
}

func (s *ContentService) AddStoryEntry(ctx context.Context, p Principal, in StoryInput) (*models.StoryEntry, error) {
	tenantID, err := p.TenantScope()
	if err != nil {
		return nil, err
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, validationError("judul cerita wajib diisi")
	}
	eventDate, err := parseOptionalDate("cerita", in.EventDate)
	if err != nil {
		return nil, err
	}

	entry := &models.StoryEntry{
		TenantID:  tenantID,
		Title:     title,
		EventDate: eventDate,
		Body:      strings.TrimSpace(in.Body),
	}
	if err := s.stories.Create(p.auditContext(ctx), entry); err != nil {
		configslog.Log.Error("Cerita eklenemedi", zap.Uint("tenant_id", tenantID), zap.Error(err))
		return nil, storageError(err)
	}
	return entry, nil
}

func (s *ContentService) DeleteStoryEntry(ctx context.Context, p Principal, id uint) error {
	tenantID, err := p.TenantScope()
	if err != nil {
		return err
	}
	if err := s.stories.DeleteByTenantAndID(ctx, tenantID, id); err != nil {
		return notFoundOrStorage(err)
	}
	return nil
}

var _ IContentService = (*ContentService)(nil)
