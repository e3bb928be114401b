package service

import (
	"fmt"
	"strings"

	"github.com/yourusername/question-bank-api/internal/domain/entity"
	"github.com/yourusername/question-bank-api/internal/domain/repository"
	apperrors "github.com/yourusername/question-bank-api/internal/pkg/errors"
)

// QuestionValidator проверяет межсущностные инварианты вопроса
// до обращения к базе на запись
type QuestionValidator struct {
	referenceRepo repository.ReferenceRepository
}

// NewQuestionValidator создает новый валидатор вопросов
func NewQuestionValidator(referenceRepo repository.ReferenceRepository) *QuestionValidator {
	return &QuestionValidator{referenceRepo: referenceRepo}
}

// ValidateReferences проверяет, что все справочные идентификаторы
// вопроса указывают на существующие записи
func (v *QuestionValidator) ValidateReferences(question *entity.Question) error {
	exists, err := v.referenceRepo.QuestionTypeExists(question.QuestionTypeID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: question type %d", apperrors.ErrForeignKeyViolation, question.QuestionTypeID)
	}

	exists, err = v.referenceRepo.SubtopicExists(question.SubtopicID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: subtopic %d", apperrors.ErrForeignKeyViolation, question.SubtopicID)
	}

	exists, err = v.referenceRepo.DifficultyExists(question.DifficultyID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: difficulty %d", apperrors.ErrForeignKeyViolation, question.DifficultyID)
	}

	for _, src := range question.Sources {
		exists, err = v.referenceRepo.SourceExists(src.SourceID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: source %d", apperrors.ErrNotFound, src.SourceID)
		}
	}
	return nil
}

// ValidateChoices проверяет инварианты набора вариантов ответа:
// ровно один правильный и отсутствие дубликатов текста
func (v *QuestionValidator) ValidateChoices(choices []entity.Choice) error {
	correct := 0
	for _, choice := range choices {
		if choice.IsCorrect {
			correct++
		}
	}
	if correct == 0 {
		return apperrors.ErrNoCorrectChoice
	}
	if correct > 1 {
		return apperrors.ErrMultipleCorrectChoices
	}

	seen := make(map[string]bool)
	for _, choice := range choices {
		for _, content := range choice.Contents {
			if content.Type != entity.ContentTypeText {
				continue
			}
			normalized := NormalizeContentValue(content.Value)
			if normalized == "" {
				continue
			}
			if seen[normalized] {
				return fmt.Errorf("%w: %q", apperrors.ErrDuplicateChoiceContent, content.Value)
			}
			seen[normalized] = true
		}
	}
	return nil
}

// ValidateContents проверяет типы блоков контента
func (v *QuestionValidator) ValidateContents(contents []entity.QuestionContent) error {
	for _, content := range contents {
		if !content.Type.IsValid() {
			return fmt.Errorf("%w: %q", apperrors.ErrContentType, content.Type)
		}
	}
	return nil
}

// NormalizeContentValue приводит текст к форме для сравнения:
// без крайних пробелов и без учета регистра
func NormalizeContentValue(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
