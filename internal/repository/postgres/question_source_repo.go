package postgres

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/yourusername/question-bank-api/internal/domain/entity"
	apperrors "github.com/yourusername/question-bank-api/internal/pkg/errors"
)

// QuestionSourceRepo реализует repository.QuestionSourceRepository
type QuestionSourceRepo struct {
	db *gorm.DB
}

// NewQuestionSourceRepo создает новый репозиторий привязок к источникам
func NewQuestionSourceRepo(db *gorm.DB) *QuestionSourceRepo {
	return &QuestionSourceRepo{db: db}
}

// GetQuestionSource возвращает привязку к источнику, принадлежащую вопросу
func (r *QuestionSourceRepo) GetQuestionSource(questionID, questionSourceID uint) (*entity.QuestionSource, error) {
	var qs entity.QuestionSource
	err := r.db.Preload("Source.Institution").
		Where("id = ? AND question_id = ?", questionSourceID, questionID).
		First(&qs).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrRetrieval, err)
	}
	return &qs, nil
}

// UpdateQuestionSource обновляет поля привязки к источнику
func (r *QuestionSourceRepo) UpdateQuestionSource(qs *entity.QuestionSource, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	err := r.db.Model(qs).Updates(fields).Error
	if err != nil {
		return translatePgError(err, apperrors.ErrPersistence)
	}
	return nil
}
