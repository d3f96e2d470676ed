package filestorage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// LocalStorage dosyaları baseDir altında saklar, yolları urlBase ile döndürür.
type LocalStorage struct {
	baseDir string
	urlBase string
}

func NewLocalStorage(baseDir, urlBase string) *LocalStorage {
	return &LocalStorage{baseDir: baseDir, urlBase: strings.Trim(urlBase, "/")}
}

func (s *LocalStorage) Save(_ context.Context, dir, name string, r io.Reader, _ int64) (string, error) {
	dir, name = cleanName(dir), cleanName(name)
	if dir == "" || name == "" {
		return "", errors.New("geçersiz dosya yolu")
	}
	target := filepath.Join(s.baseDir, dir)
	if err := os.MkdirAll(target, 0o755); err != nil {
		return "", fmt.Errorf("dizin oluşturulamadı: %w", err)
	}

	tmp, err := os.CreateTemp(target, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("geçici dosya oluşturulamadı: %w", err)
	}
	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("dosya yazılamadı: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("dosya kapatılamadı: %w", err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(target, name)); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("dosya taşınamadı: %w", err)
	}
	return path.Join(s.urlBase, dir, name), nil
}

func (s *LocalStorage) Delete(_ context.Context, storedPath string) error {
	rel := strings.TrimPrefix(strings.TrimPrefix(storedPath, "/"), s.urlBase+"/")
	if rel == "" || strings.Contains(rel, "..") {
		return errors.New("geçersiz dosya yolu")
	}
	err := os.Remove(filepath.Join(s.baseDir, filepath.FromSlash(rel)))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
