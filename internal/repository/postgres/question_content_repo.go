package postgres

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/yourusername/question-bank-api/internal/domain/entity"
	apperrors "github.com/yourusername/question-bank-api/internal/pkg/errors"
)

// QuestionContentRepo реализует repository.QuestionContentRepository
type QuestionContentRepo struct {
	db *gorm.DB
}

// NewQuestionContentRepo создает новый репозиторий контента вопросов
func NewQuestionContentRepo(db *gorm.DB) *QuestionContentRepo {
	return &QuestionContentRepo{db: db}
}

// GetQuestionContent возвращает блок контента, принадлежащий вопросу
func (r *QuestionContentRepo) GetQuestionContent(questionID, contentID uint) (*entity.QuestionContent, error) {
	var content entity.QuestionContent
	err := r.db.
		Where("id = ? AND question_id = ?", contentID, questionID).
		First(&content).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrRetrieval, err)
	}
	return &content, nil
}

// GetQuestionContents возвращает все блоки контента вопроса
func (r *QuestionContentRepo) GetQuestionContents(questionID uint) ([]entity.QuestionContent, error) {
	var contents []entity.QuestionContent
	err := r.db.Where("question_id = ?", questionID).
		Order("display_order").Find(&contents).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrRetrieval, err)
	}
	return contents, nil
}

// UpdateQuestionContent сохраняет измененный блок контента и новый хеш
// вопроса в одной транзакции. Хеш зависит от текста, поэтому меняется
// вместе с ним.
func (r *QuestionContentRepo) UpdateQuestionContent(content *entity.QuestionContent, questionHash string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(content).Error; err != nil {
			return err
		}
		return tx.Model(&entity.Question{}).
			Where("id = ?", content.QuestionID).
			Update("question_hash", questionHash).Error
	})
	if err != nil {
		return translatePgError(err, apperrors.ErrPersistence)
	}
	return nil
}
