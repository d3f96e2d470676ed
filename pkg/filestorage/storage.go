// Package filestorage yüklenen dosyaları yerel diske veya MinIO'ya kaydeder.
package filestorage

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"path"
	"strings"
)

// Storage kaydedilen dosyanın şablonlarda kullanılacak göreli yolunu döndürür.
type Storage interface {
	Save(ctx context.Context, dir, name string, r io.Reader, size int64) (string, error)
	Delete(ctx context.Context, storedPath string) error
}

// Upload HTTP katmanından bağımsız yüklenen dosya.
type Upload struct {
	Filename string
	Size     int64
	open     func() (io.ReadCloser, error)
}

// Open dosya içeriğini açar.
func (u *Upload) Open() (io.ReadCloser, error) { return u.open() }

// Ext küçük harf uzantı, noktasız.
func (u *Upload) Ext() string {
	return strings.TrimPrefix(strings.ToLower(path.Ext(u.Filename)), ".")
}

// FromFileHeader multipart formdan gelen dosyayı sarar. fh nil veya boşsa nil döner.
func FromFileHeader(fh *multipart.FileHeader) *Upload {
	if fh == nil || fh.Filename == "" {
		return nil
	}
	return &Upload{
		Filename: fh.Filename,
		Size:     fh.Size,
		open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}

// NewUpload bellekteki veriden Upload oluşturur.
func NewUpload(filename string, data []byte) *Upload {
	return &Upload{
		Filename: filename,
		Size:     int64(len(data)),
		open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}

// cleanName dizin ayırıcılarını ve üst dizin referanslarını ayıklar.
func cleanName(s string) string {
	s = path.Base(path.Clean("/" + strings.ReplaceAll(s, "\\", "/")))
	if s == "/" || s == "." || s == ".." {
		return ""
	}
	return s
}
