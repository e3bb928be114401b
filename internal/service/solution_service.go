package service

import (
	"context"
	"fmt"

	"github.com/yourusername/question-bank-api/internal/domain/entity"
	"github.com/yourusername/question-bank-api/internal/domain/repository"
	apperrors "github.com/yourusername/question-bank-api/internal/pkg/errors"
)

// SolutionService предоставляет методы для работы с решениями
type SolutionService struct {
	solutionRepo repository.SolutionRepository
	guard        *QuestionGuard
	resolver     *ImageResolver
}

// NewSolutionService создает новый сервис решений
func NewSolutionService(solutionRepo repository.SolutionRepository, guard *QuestionGuard, resolver *ImageResolver) *SolutionService {
	return &SolutionService{solutionRepo: solutionRepo, guard: guard, resolver: resolver}
}

// ReplaceContents полностью заменяет содержимое решения.
// Частичное редактирование блоков не поддерживается, набор приходит
// целиком и записывается атомарно.
func (s *SolutionService) ReplaceContents(ctx context.Context, questionID, solutionID uint, contents []entity.SolutionContent) (*entity.Solution, error) {
	if err := s.guard.EnsureExists(questionID); err != nil {
		return nil, err
	}

	if _, err := s.solutionRepo.GetSolution(questionID, solutionID); err != nil {
		return nil, err
	}

	for _, content := range contents {
		if !content.Type.IsValid() {
			return nil, fmt.Errorf("%w: %q", apperrors.ErrContentType, content.Type)
		}
	}

	if err := s.solutionRepo.ReplaceSolutionContents(solutionID, contents); err != nil {
		return nil, err
	}

	solution, err := s.solutionRepo.GetSolution(questionID, solutionID)
	if err != nil {
		return nil, err
	}
	if err := s.resolver.ResolveSolution(ctx, solution); err != nil {
		return nil, err
	}
	return solution, nil
}
