package service

import (
	"context"
	"fmt"

	"github.com/yourusername/question-bank-api/internal/domain/entity"
	"github.com/yourusername/question-bank-api/internal/domain/repository"
	apperrors "github.com/yourusername/question-bank-api/internal/pkg/errors"
)

// ChoiceService предоставляет методы для работы с вариантами ответа
type ChoiceService struct {
	choiceRepo repository.ChoiceRepository
	guard      *QuestionGuard
	resolver   *ImageResolver
}

// NewChoiceService создает новый сервис вариантов ответа
func NewChoiceService(choiceRepo repository.ChoiceRepository, guard *QuestionGuard, resolver *ImageResolver) *ChoiceService {
	return &ChoiceService{choiceRepo: choiceRepo, guard: guard, resolver: resolver}
}

// UpdateChoice применяет частичное обновление варианта ответа,
// сохраняя инвариант "ровно один правильный вариант на вопрос".
// Назначение правильного варианта автоматически разжалует остальные
// в той же транзакции; снять флаг с последнего правильного нельзя.
func (s *ChoiceService) UpdateChoice(ctx context.Context, questionID, choiceID uint, update repository.ChoiceUpdate) (*entity.Choice, error) {
	if err := s.guard.EnsureExists(questionID); err != nil {
		return nil, err
	}

	choice, err := s.choiceRepo.GetChoice(questionID, choiceID)
	if err != nil {
		return nil, err
	}

	if update.IsCorrect != nil {
		if *update.IsCorrect {
			update.DemoteOthers = true
		} else if err := s.checkLastCorrect(choice); err != nil {
			return nil, err
		}
	}

	if update.Contents != nil {
		if err := s.checkContents(questionID, choiceID, update.Contents); err != nil {
			return nil, err
		}
	}

	if err := s.choiceRepo.UpdateChoice(choice, update); err != nil {
		return nil, err
	}

	updated, err := s.choiceRepo.GetChoice(questionID, choiceID)
	if err != nil {
		return nil, err
	}
	if err := s.resolver.ResolveChoice(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// checkLastCorrect не дает снять флаг правильности, если других
// правильных вариантов у вопроса не останется
func (s *ChoiceService) checkLastCorrect(choice *entity.Choice) error {
	othersCorrect, err := s.choiceRepo.CountCorrectChoices(choice.QuestionID, &choice.ID)
	if err != nil {
		return err
	}
	if othersCorrect == 0 {
		return apperrors.ErrNoCorrectChoice
	}
	return nil
}

// checkContents проверяет типы блоков и уникальность текста
// относительно остальных вариантов вопроса
func (s *ChoiceService) checkContents(questionID, choiceID uint, contents []entity.ChoiceContent) error {
	seen := make(map[string]bool)
	for _, content := range contents {
		if !content.Type.IsValid() {
			return fmt.Errorf("%w: %q", apperrors.ErrContentType, content.Type)
		}
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

	otherValues, err := s.choiceRepo.GetOtherChoiceContentValues(questionID, choiceID)
	if err != nil {
		return err
	}
	for _, value := range otherValues {
		if seen[NormalizeContentValue(value)] {
			return fmt.Errorf("%w: %q", apperrors.ErrDuplicateChoiceContent, value)
		}
	}
	return nil
}
