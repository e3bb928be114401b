package service

import (
	"context"
	"fmt"
	"log"

	"github.com/yourusername/question-bank-api/internal/domain/entity"
	"github.com/yourusername/question-bank-api/internal/domain/repository"
	apperrors "github.com/yourusername/question-bank-api/internal/pkg/errors"
)

// QuestionService предоставляет методы для работы с вопросами
type QuestionService struct {
	questionRepo  repository.QuestionRepository
	areaRepo      repository.AreaRepository
	referenceRepo repository.ReferenceRepository
	validator     *QuestionValidator
	resolver      *ImageResolver
}

// NewQuestionService создает новый сервис вопросов
func NewQuestionService(
	questionRepo repository.QuestionRepository,
	areaRepo repository.AreaRepository,
	referenceRepo repository.ReferenceRepository,
	validator *QuestionValidator,
	resolver *ImageResolver,
) *QuestionService {
	return &QuestionService{
		questionRepo:  questionRepo,
		areaRepo:      areaRepo,
		referenceRepo: referenceRepo,
		validator:     validator,
		resolver:      resolver,
	}
}

// CreateQuestion проверяет и сохраняет агрегат вопроса целиком.
// Порядок жесткий: сначала все проверки, потом одна транзакция записи.
// Любая ошибка валидации означает, что база не менялась.
func (s *QuestionService) CreateQuestion(ctx context.Context, question *entity.Question, areaIDs []uint) (*entity.Question, error) {
	if err := s.validator.ValidateContents(question.Contents); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateChoices(question.Choices); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateReferences(question); err != nil {
		return nil, err
	}

	areas, err := s.resolveAreas(areaIDs)
	if err != nil {
		return nil, err
	}
	question.Areas = areas

	AssembleQuestion(question)

	if err := s.questionRepo.CreateAggregate(question); err != nil {
		return nil, err
	}
	log.Printf("[QuestionService] Создан вопрос %d (хеш %s)", question.ID, question.QuestionHash)

	created, err := s.questionRepo.GetByID(question.ID, repository.QuestionViewFull)
	if err != nil {
		return nil, err
	}
	if err := s.resolver.ResolveQuestion(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}

// GetQuestions возвращает страницу вопросов с метаданными пагинации
func (s *QuestionService) GetQuestions(ctx context.Context, page, limit int, view repository.QuestionView) ([]entity.Question, repository.Pagination, error) {
	questions, total, err := s.questionRepo.GetPage(page, limit, view)
	if err != nil {
		return nil, repository.Pagination{}, err
	}
	if err := s.resolver.ResolveQuestions(ctx, questions); err != nil {
		return nil, repository.Pagination{}, err
	}
	return questions, repository.NewPagination(total, page, limit), nil
}

// GetQuestion возвращает вопрос по ID в заданном представлении
func (s *QuestionService) GetQuestion(ctx context.Context, id uint, view repository.QuestionView) (*entity.Question, error) {
	question, err := s.questionRepo.GetByID(id, view)
	if err != nil {
		return nil, err
	}
	if err := s.resolver.ResolveQuestion(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}

// GetAllQuestionsFull возвращает все вопросы с полным набором связей.
// Используется выгрузкой в файл: подписанные ссылки там не нужны,
// в выгрузку попадают ключи объектов как есть.
func (s *QuestionService) GetAllQuestionsFull() ([]entity.Question, error) {
	return s.questionRepo.GetAllFull()
}

// DeleteQuestion удаляет вопрос вместе с дочерними записями
func (s *QuestionService) DeleteQuestion(id uint) error {
	deleted, err := s.questionRepo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: question %d", apperrors.ErrNotFound, id)
	}
	log.Printf("[QuestionService] Удален вопрос %d", id)
	return nil
}

// UpdateQuestionType меняет тип вопроса
func (s *QuestionService) UpdateQuestionType(id, questionTypeID uint) (*entity.Question, error) {
	exists, err := s.referenceRepo.QuestionTypeExists(questionTypeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: question type %d", apperrors.ErrForeignKeyViolation, questionTypeID)
	}
	return s.updateField(id, "question_type_id", questionTypeID)
}

// UpdateSubtopic меняет подтему вопроса
func (s *QuestionService) UpdateSubtopic(id, subtopicID uint) (*entity.Question, error) {
	exists, err := s.referenceRepo.SubtopicExists(subtopicID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: subtopic %d", apperrors.ErrForeignKeyViolation, subtopicID)
	}
	return s.updateField(id, "subtopic_id", subtopicID)
}

// UpdateDifficulty меняет сложность вопроса
func (s *QuestionService) UpdateDifficulty(id, difficultyID uint) (*entity.Question, error) {
	exists, err := s.referenceRepo.DifficultyExists(difficultyID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: difficulty %d", apperrors.ErrForeignKeyViolation, difficultyID)
	}
	return s.updateField(id, "difficulty_id", difficultyID)
}

// ReplaceAreas полностью заменяет набор областей вопроса.
// Набор применяется только если найдены все указанные области.
func (s *QuestionService) ReplaceAreas(id uint, areaIDs []uint) (*entity.Question, error) {
	exists, err := s.questionRepo.Exists(id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: question %d", apperrors.ErrNotFound, id)
	}

	areas, err := s.resolveAreas(areaIDs)
	if err != nil {
		return nil, err
	}
	if err := s.questionRepo.ReplaceAreas(id, areas); err != nil {
		return nil, err
	}
	return s.questionRepo.GetByID(id, repository.QuestionViewSummary)
}

func (s *QuestionService) updateField(id uint, field string, value uint) (*entity.Question, error) {
	question, err := s.questionRepo.UpdateFields(id, map[string]interface{}{field: value})
	if err != nil {
		return nil, err
	}
	return question, nil
}

// resolveAreas загружает области по идентификаторам и требует
// полного совпадения: один отсутствующий ID отклоняет весь набор
func (s *QuestionService) resolveAreas(areaIDs []uint) ([]entity.Area, error) {
	if len(areaIDs) == 0 {
		return []entity.Area{}, nil
	}
	areas, err := s.areaRepo.GetByIDs(areaIDs)
	if err != nil {
		return nil, err
	}
	if len(areas) != len(uniqueIDs(areaIDs)) {
		missing := missingAreaIDs(areaIDs, areas)
		return nil, fmt.Errorf("%w: areas %v", apperrors.ErrNotFound, missing)
	}
	return areas, nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	result := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			result = append(result, id)
		}
	}
	return result
}

func missingAreaIDs(requested []uint, found []entity.Area) []uint {
	present := make(map[uint]bool, len(found))
	for _, area := range found {
		present[area.ID] = true
	}
	var missing []uint
	for _, id := range uniqueIDs(requested) {
		if !present[id] {
			missing = append(missing, id)
		}
	}
	return missing
}
