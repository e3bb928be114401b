package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"path"

	"github.com/google/uuid"

	apperrors "github.com/yourusername/question-bank-api/internal/pkg/errors"
	"github.com/yourusername/question-bank-api/internal/storage"
)

// Допустимые MIME-типы загружаемых изображений
var allowedImageTypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
}

// ImageService загружает изображения в объектное хранилище
type ImageService struct {
	storage storage.ObjectStorage
}

// NewImageService создает новый сервис изображений
func NewImageService(objectStorage storage.ObjectStorage) *ImageService {
	return &ImageService{storage: objectStorage}
}

// UploadImage сохраняет изображение и возвращает ключ объекта.
// Именно ключ, а не ссылку, кладут в блоки контента типа image.
// Имя объекта генерируется случайным, исходное имя файла не участвует.
func (s *ImageService) UploadImage(ctx context.Context, reader io.Reader, size int64, contentType string) (string, error) {
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return "", fmt.Errorf("%w: unsupported image type %q", apperrors.ErrContentType, contentType)
	}

	objectKey := path.Join("questions", uuid.New().String()+ext)
	key, err := s.storage.Upload(ctx, objectKey, reader, size, contentType)
	if err != nil {
		return "", err
	}
	log.Printf("[ImageService] Загружено изображение %s (%d байт)", key, size)
	return key, nil
}

// SignImageURL возвращает временную ссылку на уже загруженный объект
func (s *ImageService) SignImageURL(ctx context.Context, objectKey string) (string, error) {
	return s.storage.SignURL(ctx, objectKey)
}
