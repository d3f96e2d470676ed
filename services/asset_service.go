package services

import (
	"context"
	"fmt"

	"undangan.link/configs/configslog"
	"undangan.link/pkg/filestorage"
	"undangan.link/pkg/metrics"

	"go.uber.org/zap"
)

// AssetKind izin verilen dosya türü grubu.
type AssetKind int

const (
	AssetImage AssetKind = iota
	AssetAudio
)

var allowedExtensions = map[AssetKind]map[string]bool{
	AssetImage: {"jpg": true, "jpeg": true, "png": true},
	AssetAudio: {"mp3": true},
}

func (k AssetKind) label() string {
	if k == AssetAudio {
		return "mp3"
	}
	return "jpg, jpeg, png"
}

// AssetStore yüklenen dosyaları doğrulayıp depolamaya yazar.
type AssetStore struct {
	storage  filestorage.Storage
	maxBytes int64
}

func NewAssetStore(storage filestorage.Storage, maxBytes int64) *AssetStore {
	if maxBytes <= 0 {
		maxBytes = 16 << 20
	}
	return &AssetStore{storage: storage, maxBytes: maxBytes}
}

// Validate uzantı ve boyut kontrolü. Hata ErrValidation türündedir.
func (a *AssetStore) Validate(upload *filestorage.Upload, kind AssetKind) error {
	if upload == nil {
		return validationError("file tidak ditemukan")
	}
	ext := upload.Ext()
	if !allowedExtensions[kind][ext] {
		return validationError("format file %s tidak didukung (hanya %s)", upload.Filename, kind.label())
	}
	if upload.Size > a.maxBytes {
		return validationError("ukuran file %s melebihi %d MB", upload.Filename, a.maxBytes>>20)
	}
	return nil
}

// Save dosyayı dir/<baseName>.<ext> olarak kaydeder ve saklanan yolu döndürür.
func (a *AssetStore) Save(ctx context.Context, upload *filestorage.Upload, kind AssetKind, dir, baseName string) (string, error) {
	if err := a.Validate(upload, kind); err != nil {
		metrics.Uploads.WithLabelValues("rejected").Inc()
		return "", err
	}

	rc, err := upload.Open()
	if err != nil {
		metrics.Uploads.WithLabelValues("failed").Inc()
		return "", storageError(err)
	}
	defer rc.Close()

	name := fmt.Sprintf("%s.%s", baseName, upload.Ext())
	stored, err := a.storage.Save(ctx, dir, name, rc, upload.Size)
	if err != nil {
		metrics.Uploads.WithLabelValues("failed").Inc()
		configslog.Log.Error("Dosya kaydedilemedi", zap.String("dir", dir), zap.String("name", name), zap.Error(err))
		return "", storageError(err)
	}
	metrics.Uploads.WithLabelValues("stored").Inc()
	return stored, nil
}

// Remove dosyayı siler; hata yalnızca loglanır.
func (a *AssetStore) Remove(ctx context.Context, stored string) {
	if stored == "" {
		return
	}
	if err := a.storage.Delete(ctx, stored); err != nil {
		configslog.Log.Warn("Dosya silinemedi", zap.String("path", stored), zap.Error(err))
	}
}
