package service

import (
	"fmt"

	"github.com/yourusername/question-bank-api/internal/domain/repository"
	apperrors "github.com/yourusername/question-bank-api/internal/pkg/errors"
)

// QuestionGuard проверяет существование вопроса-владельца перед
// операциями над его дочерними сущностями
type QuestionGuard struct {
	questionRepo repository.QuestionRepository
}

// NewQuestionGuard создает новую проверку владельца
func NewQuestionGuard(questionRepo repository.QuestionRepository) *QuestionGuard {
	return &QuestionGuard{questionRepo: questionRepo}
}

// EnsureExists возвращает apperrors.ErrNotFound, если вопроса нет.
// Дочерняя сущность при этом даже не запрашивается.
func (g *QuestionGuard) EnsureExists(questionID uint) error {
	exists, err := g.questionRepo.Exists(questionID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: question %d", apperrors.ErrNotFound, questionID)
	}
	return nil
}
