package postgres

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/yourusername/question-bank-api/internal/domain/entity"
	apperrors "github.com/yourusername/question-bank-api/internal/pkg/errors"
)

// SolutionRepo реализует repository.SolutionRepository
type SolutionRepo struct {
	db *gorm.DB
}

// NewSolutionRepo создает новый репозиторий решений
func NewSolutionRepo(db *gorm.DB) *SolutionRepo {
	return &SolutionRepo{db: db}
}

// GetSolution возвращает решение, принадлежащее вопросу
func (r *SolutionRepo) GetSolution(questionID, solutionID uint) (*entity.Solution, error) {
	var solution entity.Solution
	err := r.db.Preload("Contents").
		Where("id = ? AND question_id = ?", solutionID, questionID).
		First(&solution).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrRetrieval, err)
	}
	return &solution, nil
}

// ReplaceSolutionContents полностью заменяет содержимое решения
func (r *SolutionRepo) ReplaceSolutionContents(solutionID uint, contents []entity.SolutionContent) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("solution_id = ?", solutionID).
			Delete(&entity.SolutionContent{}).Error
		if err != nil {
			return err
		}
		for i := range contents {
			contents[i].SolutionID = solutionID
		}
		if len(contents) > 0 {
			return tx.Create(&contents).Error
		}
		return nil
	})
	if err != nil {
		return translatePgError(err, apperrors.ErrPersistence)
	}
	return nil
}
