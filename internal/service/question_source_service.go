package service

import (
	"fmt"

	"github.com/yourusername/question-bank-api/internal/domain/entity"
	"github.com/yourusername/question-bank-api/internal/domain/repository"
	apperrors "github.com/yourusername/question-bank-api/internal/pkg/errors"
)

// QuestionSourceUpdate описывает частичное обновление привязки к источнику
type QuestionSourceUpdate struct {
	SourceID *uint
	Page     *int
}

// QuestionSourceService предоставляет методы для работы
// с привязками вопросов к источникам
type QuestionSourceService struct {
	questionSourceRepo repository.QuestionSourceRepository
	referenceRepo      repository.ReferenceRepository
	guard              *QuestionGuard
}

// NewQuestionSourceService создает новый сервис привязок к источникам
func NewQuestionSourceService(
	questionSourceRepo repository.QuestionSourceRepository,
	referenceRepo repository.ReferenceRepository,
	guard *QuestionGuard,
) *QuestionSourceService {
	return &QuestionSourceService{
		questionSourceRepo: questionSourceRepo,
		referenceRepo:      referenceRepo,
		guard:              guard,
	}
}

// UpdateQuestionSource применяет частичное обновление привязки.
// Новый источник проверяется на существование до записи.
func (s *QuestionSourceService) UpdateQuestionSource(questionID, questionSourceID uint, update QuestionSourceUpdate) (*entity.QuestionSource, error) {
	if err := s.guard.EnsureExists(questionID); err != nil {
		return nil, err
	}

	qs, err := s.questionSourceRepo.GetQuestionSource(questionID, questionSourceID)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if update.SourceID != nil {
		exists, err := s.referenceRepo.SourceExists(*update.SourceID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, fmt.Errorf("%w: source %d", apperrors.ErrNotFound, *update.SourceID)
		}
		fields["source_id"] = *update.SourceID
	}
	if update.Page != nil {
		fields["page"] = *update.Page
	}

	if err := s.questionSourceRepo.UpdateQuestionSource(qs, fields); err != nil {
		return nil, err
	}
	return s.questionSourceRepo.GetQuestionSource(questionID, questionSourceID)
}
