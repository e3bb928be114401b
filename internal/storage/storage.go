package storage

import (
	"context"
	"io"
)

// ObjectStorage - порт к объектному хранилищу изображений.
// В базе хранятся только ключи объектов, публичные ссылки выдаются
// подписанными и живут ограниченное время.
type ObjectStorage interface {
	// Upload сохраняет объект и возвращает его ключ
	Upload(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) (string, error)
	// SignURL возвращает временную подписанную ссылку на объект
	SignURL(ctx context.Context, objectKey string) (string, error)
}
