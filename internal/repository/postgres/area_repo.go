package postgres

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yourusername/question-bank-api/internal/domain/entity"
	apperrors "github.com/yourusername/question-bank-api/internal/pkg/errors"
)

// AreaRepo реализует repository.AreaRepository
type AreaRepo struct {
	db *gorm.DB
}

// NewAreaRepo создает новый репозиторий областей знаний
func NewAreaRepo(db *gorm.DB) *AreaRepo {
	return &AreaRepo{db: db}
}

// GetByIDs возвращает области по списку идентификаторов.
// Отсутствующие идентификаторы не являются ошибкой на этом уровне:
// сверку полноты делает сервис.
func (r *AreaRepo) GetByIDs(ids []uint) ([]entity.Area, error) {
	if len(ids) == 0 {
		return []entity.Area{}, nil
	}
	var areas []entity.Area
	if err := r.db.Where("id IN ?", ids).Find(&areas).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrRetrieval, err)
	}
	return areas, nil
}

// List возвращает все области
func (r *AreaRepo) List() ([]entity.Area, error) {
	var areas []entity.Area
	if err := r.db.Order("id").Find(&areas).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrRetrieval, err)
	}
	return areas, nil
}

// Create создает новую область
func (r *AreaRepo) Create(area *entity.Area) error {
	if err := r.db.Create(area).Error; err != nil {
		return translatePgError(err, apperrors.ErrPersistence)
	}
	return nil
}
