package postgres

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/yourusername/question-bank-api/internal/domain/entity"
	apperrors "github.com/yourusername/question-bank-api/internal/pkg/errors"
)

// SourceRepo реализует repository.SourceRepository
type SourceRepo struct {
	db *gorm.DB
}

// NewSourceRepo создает новый репозиторий источников
func NewSourceRepo(db *gorm.DB) *SourceRepo {
	return &SourceRepo{db: db}
}

// GetByIDs возвращает источники по списку идентификаторов
func (r *SourceRepo) GetByIDs(ids []uint) ([]entity.Source, error) {
	if len(ids) == 0 {
		return []entity.Source{}, nil
	}
	var sources []entity.Source
	if err := r.db.Where("id IN ?", ids).Find(&sources).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrRetrieval, err)
	}
	return sources, nil
}

// GetByID возвращает источник по ID вместе с учреждением
func (r *SourceRepo) GetByID(id uint) (*entity.Source, error) {
	var source entity.Source
	err := r.db.Preload("Institution").First(&source, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrRetrieval, err)
	}
	return &source, nil
}

// List возвращает страницу источников
func (r *SourceRepo) List(offset, limit int) ([]entity.Source, error) {
	var sources []entity.Source
	err := r.db.Preload("Institution").
		Order("id").Offset(offset).Limit(limit).Find(&sources).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrRetrieval, err)
	}
	return sources, nil
}

// Create создает новый источник
func (r *SourceRepo) Create(source *entity.Source) error {
	if err := r.db.Create(source).Error; err != nil {
		return translatePgError(err, apperrors.ErrPersistence)
	}
	return nil
}

// Update обновляет поля источника и возвращает свежую запись
func (r *SourceRepo) Update(id uint, fields map[string]interface{}) (*entity.Source, error) {
	result := r.db.Model(&entity.Source{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, translatePgError(result.Error, apperrors.ErrPersistence)
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.ErrNotFound
	}
	return r.GetByID(id)
}

// Delete удаляет источник. Возвращает false, если источника не было.
func (r *SourceRepo) Delete(id uint) (bool, error) {
	result := r.db.Delete(&entity.Source{}, id)
	if result.Error != nil {
		return false, translatePgError(result.Error, apperrors.ErrDelete)
	}
	return result.RowsAffected > 0, nil
}
