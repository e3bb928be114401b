package postgres

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/yourusername/question-bank-api/internal/domain/entity"
	"github.com/yourusername/question-bank-api/internal/domain/repository"
	apperrors "github.com/yourusername/question-bank-api/internal/pkg/errors"
)

// ChoiceRepo реализует repository.ChoiceRepository
type ChoiceRepo struct {
	db *gorm.DB
}

// NewChoiceRepo создает новый репозиторий вариантов ответа
func NewChoiceRepo(db *gorm.DB) *ChoiceRepo {
	return &ChoiceRepo{db: db}
}

// GetChoice возвращает вариант ответа, принадлежащий вопросу
func (r *ChoiceRepo) GetChoice(questionID, choiceID uint) (*entity.Choice, error) {
	var choice entity.Choice
	err := r.db.Preload("Contents").
		Where("id = ? AND question_id = ?", choiceID, questionID).
		First(&choice).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrRetrieval, err)
	}
	return &choice, nil
}

// CountCorrectChoices считает правильные варианты вопроса,
// опционально исключая один вариант из подсчета
func (r *ChoiceRepo) CountCorrectChoices(questionID uint, excludeChoiceID *uint) (int64, error) {
	query := r.db.Model(&entity.Choice{}).
		Where("question_id = ? AND is_correct = ?", questionID, true)
	if excludeChoiceID != nil {
		query = query.Where("id <> ?", *excludeChoiceID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("%w: %v", apperrors.ErrRetrieval, err)
	}
	return count, nil
}

// GetOtherChoiceContentValues возвращает текстовые значения содержимого
// остальных вариантов вопроса. Нужен для проверки уникальности текста.
func (r *ChoiceRepo) GetOtherChoiceContentValues(questionID, choiceID uint) ([]string, error) {
	var values []string
	err := r.db.Model(&entity.ChoiceContent{}).
		Joins("JOIN choices ON choices.id = choice_content.choice_id").
		Where("choices.question_id = ? AND choices.id <> ? AND choice_content.type = ?",
			questionID, choiceID, entity.ContentTypeText).
		Pluck("choice_content.value", &values).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrRetrieval, err)
	}
	return values, nil
}

// UpdateChoice применяет частичное обновление варианта в транзакции.
// При замене содержимого старые записи удаляются целиком.
// DemoteOthers снимает флаг правильности с остальных вариантов вопроса.
func (r *ChoiceRepo) UpdateChoice(choice *entity.Choice, update repository.ChoiceUpdate) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if update.DemoteOthers {
			err := tx.Model(&entity.Choice{}).
				Where("question_id = ? AND id <> ?", choice.QuestionID, choice.ID).
				Update("is_correct", false).Error
			if err != nil {
				return err
			}
		}

		fields := map[string]interface{}{}
		if update.Label != nil {
			fields["label"] = *update.Label
		}
		if update.IsCorrect != nil {
			fields["is_correct"] = *update.IsCorrect
		}
		if len(fields) > 0 {
			if err := tx.Model(choice).Updates(fields).Error; err != nil {
				return err
			}
		}

		if update.Contents != nil {
			err := tx.Where("choice_id = ?", choice.ID).
				Delete(&entity.ChoiceContent{}).Error
			if err != nil {
				return err
			}
			for i := range update.Contents {
				update.Contents[i].ChoiceID = choice.ID
			}
			if len(update.Contents) > 0 {
				if err := tx.Create(&update.Contents).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return translatePgError(err, apperrors.ErrPersistence)
	}
	return nil
}
