package services

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"undangan.link/models"
	"undangan.link/pkg/filestorage"
	"undangan.link/pkg/loginlimiter"
	"undangan.link/pkg/passwordhash"
	"undangan.link/pkg/themegateway"
	"undangan.link/testhelpers"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// memoryStorage kaydedilen dosyaları bellekte tutar; fail true ise her kayıt başarısız olur.
type memoryStorage struct {
	mu    sync.Mutex
	fail  bool
	files map[string][]byte
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{files: map[string][]byte{}}
}

func (m *memoryStorage) Save(_ context.Context, dir, name string, r io.Reader, _ int64) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return "", errors.New("disk penuh")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	p := "uploads/" + dir + "/" + name
	m.files[p] = data
	return p, nil
}

func (m *memoryStorage) Delete(_ context.Context, p string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.files, p)
	return nil
}

func (m *memoryStorage) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.files)
}

type fixture struct {
	db           *gorm.DB
	storage      *memoryStorage
	assets       *AssetStore
	gateway      *themegateway.Gateway
	super        Principal
	theme        models.Theme
	provisioning IProvisioningService
	themes       IThemeService
	guests       IGuestService
	content      IContentService
	invitations  IInvitationService
}

func newFixture(t *testing.T, guestOpts ...GuestOption) *fixture {
	t.Helper()
	return newFixtureOn(t, testhelpers.NewTestDB(t), guestOpts...)
}

func newFixtureOn(t *testing.T, db *gorm.DB, guestOpts ...GuestOption) *fixture {
	t.Helper()

	hash, err := passwordhash.HashWithRounds("superadmin123", 1000)
	require.NoError(t, err)
	super := models.Admin{Username: "superadmin", PasswordHash: hash, IsSuperadmin: true}
	require.NoError(t, db.Create(&super).Error)

	theme := models.Theme{Name: "Klasik", TemplateName: "classic"}
	require.NoError(t, db.Create(&theme).Error)

	storage := newMemoryStorage()
	assets := NewAssetStore(storage, 1<<20)
	gateway := themegateway.Default()
	themeSvc := NewThemeService(db, gateway, assets)

	return &fixture{
		db:           db,
		storage:      storage,
		assets:       assets,
		gateway:      gateway,
		super:        Principal{AdminID: super.ID, Username: super.Username, IsSuperadmin: true},
		theme:        theme,
		provisioning: NewProvisioningService(db, assets),
		themes:       themeSvc,
		guests:       NewGuestService(db, guestOpts...),
		content:      NewContentService(db, assets),
		invitations:  NewInvitationService(db, themeSvc, assets),
	}
}

// newTenant yeni bir undangan ve admini oluşturur, adminin Principal'ını döndürür.
func (f *fixture) newTenant(t *testing.T, username, slug string) (Principal, *models.Tenant) {
	t.Helper()
	tenant, err := f.provisioning.CreateTenantWithAdmin(context.Background(), f.super, TenantAdminInput{
		Username: username,
		Password: "rahasia123",
		Slug:     slug,
		ThemeID:  f.theme.ID,
	})
	require.NoError(t, err)

	var admin models.Admin
	require.NoError(t, f.db.Where("username = ?", username).First(&admin).Error)
	return Principal{AdminID: admin.ID, Username: admin.Username, TenantID: admin.TenantID}, tenant
}

func (f *fixture) authService(limiter loginlimiter.Limiter) IAuthService {
	return NewAuthService(f.db, limiter)
}

func count(t *testing.T, db *gorm.DB, model interface{}, where string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	q := db.Model(model)
	if where != "" {
		q = q.Where(where, args...)
	}
	require.NoError(t, q.Count(&n).Error)
	return n
}

func pngUpload(name string) *filestorage.Upload {
	return filestorage.NewUpload(name, []byte("\x89PNG\r\n\x1a\n"))
}
