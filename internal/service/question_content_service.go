package service

import (
	"context"
	"fmt"
	"log"

	"github.com/yourusername/question-bank-api/internal/domain/entity"
	"github.com/yourusername/question-bank-api/internal/domain/repository"
	apperrors "github.com/yourusername/question-bank-api/internal/pkg/errors"
)

// QuestionContentUpdate описывает частичное обновление блока контента
type QuestionContentUpdate struct {
	Type  *entity.ContentType
	Value *string
	Order *int
	Label *string
}

// QuestionContentService предоставляет методы для работы
// с контентом формулировки вопроса
type QuestionContentService struct {
	contentRepo repository.QuestionContentRepository
	guard       *QuestionGuard
	resolver    *ImageResolver
}

// NewQuestionContentService создает новый сервис контента вопросов
func NewQuestionContentService(contentRepo repository.QuestionContentRepository, guard *QuestionGuard, resolver *ImageResolver) *QuestionContentService {
	return &QuestionContentService{contentRepo: contentRepo, guard: guard, resolver: resolver}
}

// UpdateContent применяет частичное обновление блока контента.
// Хеш вопроса зависит от текста формулировки, поэтому пересчитывается
// по всем блокам и пишется в той же транзакции, что и сам блок.
func (s *QuestionContentService) UpdateContent(ctx context.Context, questionID, contentID uint, update QuestionContentUpdate) (*entity.QuestionContent, error) {
	if err := s.guard.EnsureExists(questionID); err != nil {
		return nil, err
	}

	content, err := s.contentRepo.GetQuestionContent(questionID, contentID)
	if err != nil {
		return nil, err
	}

	if update.Type != nil {
		if !update.Type.IsValid() {
			return nil, fmt.Errorf("%w: %q", apperrors.ErrContentType, *update.Type)
		}
		content.Type = *update.Type
	}
	if update.Value != nil {
		content.Value = *update.Value
	}
	if update.Order != nil {
		content.Order = *update.Order
	}
	if update.Label != nil {
		content.Label = *update.Label
	}

	siblings, err := s.contentRepo.GetQuestionContents(questionID)
	if err != nil {
		return nil, err
	}
	for i := range siblings {
		if siblings[i].ID == content.ID {
			siblings[i] = *content
		}
	}
	newHash := entity.GenerateQuestionHash(siblings)

	if err := s.contentRepo.UpdateQuestionContent(content, newHash); err != nil {
		return nil, err
	}
	log.Printf("[QuestionContentService] Обновлен блок %d вопроса %d, новый хеш %s", contentID, questionID, newHash)

	if err := s.resolver.ResolveContent(ctx, content); err != nil {
		return nil, err
	}
	return content, nil
}
