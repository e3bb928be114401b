package storage

import (
	"errors"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/yourusername/question-bank-api/internal/pkg/errors"
)

func TestTranslateMinioError_BucketNotFound(t *testing.T) {
	// Arrange
	err := minio.ErrorResponse{Code: "NoSuchBucket", BucketName: "question-images"}

	// Act
	translated := translateMinioError(err)

	// Assert
	assert.ErrorIs(t, translated, apperrors.ErrStorageBucketNotFound)
	assert.Contains(t, translated.Error(), "question-images")
}

func TestTranslateMinioError_AccessDenied(t *testing.T) {
	// Arrange
	err := minio.ErrorResponse{Code: "AccessDenied"}

	// Act
	translated := translateMinioError(err)

	// Assert
	assert.ErrorIs(t, translated, apperrors.ErrStoragePermissionDenied)
}

func TestTranslateMinioError_Generic(t *testing.T) {
	// Arrange
	err := errors.New("connection refused")

	// Act
	translated := translateMinioError(err)

	// Assert: прочие сбои остаются техническими ошибками хранилища
	assert.ErrorIs(t, translated, apperrors.ErrStorage)
	assert.Equal(t, "storage_error", apperrors.Code(translated))
}
