// Package testhelpers servis ve handler testleri için bellek içi veritabanı.
package testhelpers

import (
	"path/filepath"
	"testing"

	"undangan.link/database"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB migrasyonları uygulanmış, teste özel bellek içi SQLite döndürür.
// Tek bağlantı kullanılır; transaction içinde tx dışı sorgu yapılmamalıdır.
// Eşzamanlı istekler bu bağlantıda sıraya girer, yarış testleri için NewConcurrentTestDB kullanılmalı.
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()
	return open(t, "file::memory:?_pragma=foreign_keys(1)", 1)
}

// NewConcurrentTestDB geçici dizinde WAL modunda dosya tabanlı SQLite açar.
// Birden fazla bağlantı gerçekten paralel çalışır; yazarlar busy_timeout ile kilit bekler.
func NewConcurrentTestDB(t testing.TB, conns int) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	dsn := "file:" + path +
		"?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	return open(t, dsn, conns)
}

func open(t testing.TB, dsn string, conns int) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(conns)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.RunMigrationsInOrder(db))
	return db
}
