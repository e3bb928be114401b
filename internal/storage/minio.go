package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/yourusername/question-bank-api/internal/config"
	apperrors "github.com/yourusername/question-bank-api/internal/pkg/errors"
)

// SignedURLTTL - время жизни подписанной ссылки на изображение
const SignedURLTTL = 15 * time.Minute

// MinioStorage реализует ObjectStorage поверх S3-совместимого хранилища
type MinioStorage struct {
	client *minio.Client
	bucket string
}

// NewMinioStorage создает клиент объектного хранилища
func NewMinioStorage(cfg *config.StorageConfig) (*MinioStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	return &MinioStorage{client: client, bucket: cfg.Bucket}, nil
}

// Upload сохраняет объект в бакет и возвращает его ключ
func (s *MinioStorage) Upload(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, objectKey, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", translateMinioError(err)
	}
	return objectKey, nil
}

// SignURL возвращает подписанную ссылку на объект.
// Ссылка действительна SignedURLTTL и генерируется заново при каждом
// чтении, ключ объекта в базе при этом не меняется.
func (s *MinioStorage) SignURL(ctx context.Context, objectKey string) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, s.bucket, objectKey, SignedURLTTL, nil)
	if err != nil {
		return "", translateMinioError(err)
	}
	return u.String(), nil
}

// translateMinioError переводит ошибки хранилища в доменные sentinel-ошибки
func translateMinioError(err error) error {
	var resp minio.ErrorResponse
	if errors.As(err, &resp) {
		switch resp.Code {
		case "NoSuchBucket":
			return fmt.Errorf("%w: %s", apperrors.ErrStorageBucketNotFound, resp.BucketName)
		case "AccessDenied":
			return fmt.Errorf("%w: %v", apperrors.ErrStoragePermissionDenied, err)
		}
	}
	return fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
}
