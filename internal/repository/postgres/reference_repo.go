package postgres

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yourusername/question-bank-api/internal/domain/entity"
	apperrors "github.com/yourusername/question-bank-api/internal/pkg/errors"
)

// ReferenceRepo реализует repository.ReferenceRepository.
// Проверки существования справочных записей перед созданием вопроса.
type ReferenceRepo struct {
	db *gorm.DB
}

// NewReferenceRepo создает новый репозиторий справочников
func NewReferenceRepo(db *gorm.DB) *ReferenceRepo {
	return &ReferenceRepo{db: db}
}

// QuestionTypeExists проверяет существование типа вопроса
func (r *ReferenceRepo) QuestionTypeExists(id uint) (bool, error) {
	return r.exists(&entity.QuestionType{}, id)
}

// SubtopicExists проверяет существование подтемы
func (r *ReferenceRepo) SubtopicExists(id uint) (bool, error) {
	return r.exists(&entity.Subtopic{}, id)
}

// DifficultyExists проверяет существование уровня сложности
func (r *ReferenceRepo) DifficultyExists(id uint) (bool, error) {
	return r.exists(&entity.Difficulty{}, id)
}

// SourceExists проверяет существование источника
func (r *ReferenceRepo) SourceExists(id uint) (bool, error) {
	return r.exists(&entity.Source{}, id)
}

func (r *ReferenceRepo) exists(model interface{}, id uint) (bool, error) {
	var count int64
	err := r.db.Model(model).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("%w: %v", apperrors.ErrRetrieval, err)
	}
	return count > 0, nil
}
