package filestorage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioStorage dosyaları bir MinIO/S3 bucket'ına yükler.
type MinioStorage struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// NewMinioStorage bucket yoksa oluşturur.
func NewMinioStorage(ctx context.Context, endpoint, accessKey, secretKey, bucket string, useSSL bool) (*MinioStorage, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, err
	}
	found, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("bucket kontrol edilemedi: %w", err)
	}
	if !found {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("bucket oluşturulamadı: %w", err)
		}
	}
	scheme := "http"
	if useSSL {
		scheme = "https"
	}
	return &MinioStorage{
		client:    client,
		bucket:    bucket,
		publicURL: fmt.Sprintf("%s://%s/%s", scheme, endpoint, bucket),
	}, nil
}

func (s *MinioStorage) Save(ctx context.Context, dir, name string, r io.Reader, size int64) (string, error) {
	dir, name = cleanName(dir), cleanName(name)
	if dir == "" || name == "" {
		return "", errors.New("geçersiz dosya yolu")
	}
	object := path.Join(dir, name)
	contentType := mime.TypeByExtension(path.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := s.client.PutObject(ctx, s.bucket, object, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("nesne yüklenemedi: %w", err)
	}
	return s.publicURL + "/" + object, nil
}

func (s *MinioStorage) Delete(ctx context.Context, storedPath string) error {
	object := strings.TrimPrefix(storedPath, s.publicURL+"/")
	if object == storedPath || object == "" {
		return errors.New("geçersiz nesne yolu")
	}
	return s.client.RemoveObject(ctx, s.bucket, object, minio.RemoveObjectOptions{})
}
