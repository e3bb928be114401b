package service

import (
	"context"
	"fmt"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/yourusername/question-bank-api/internal/domain/entity"
	"github.com/yourusername/question-bank-api/internal/domain/repository"
)

// ============================================================================
// Моки репозиториев для тестов сервисного слоя
// ============================================================================

// MockQuestionRepository реализует repository.QuestionRepository
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) CreateAggregate(question *entity.Question) error {
	args := m.Called(question)
	return args.Error(0)
}

func (m *MockQuestionRepository) GetPage(page, limit int, view repository.QuestionView) ([]entity.Question, int64, error) {
	args := m.Called(page, limit, view)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]entity.Question), args.Get(1).(int64), args.Error(2)
}

func (m *MockQuestionRepository) GetByID(id uint, view repository.QuestionView) (*entity.Question, error) {
	args := m.Called(id, view)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Question), args.Error(1)
}

func (m *MockQuestionRepository) GetAllFull() ([]entity.Question, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

func (m *MockQuestionRepository) UpdateFields(id uint, fields map[string]interface{}) (*entity.Question, error) {
	args := m.Called(id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Question), args.Error(1)
}

func (m *MockQuestionRepository) ReplaceAreas(id uint, areas []entity.Area) error {
	args := m.Called(id, areas)
	return args.Error(0)
}

func (m *MockQuestionRepository) Delete(id uint) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockQuestionRepository) Exists(id uint) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

// MockAreaRepository реализует repository.AreaRepository
type MockAreaRepository struct {
	mock.Mock
}

func (m *MockAreaRepository) GetByIDs(ids []uint) ([]entity.Area, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Area), args.Error(1)
}

func (m *MockAreaRepository) List() ([]entity.Area, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Area), args.Error(1)
}

func (m *MockAreaRepository) Create(area *entity.Area) error {
	args := m.Called(area)
	return args.Error(0)
}

// MockReferenceRepository реализует repository.ReferenceRepository
type MockReferenceRepository struct {
	mock.Mock
}

func (m *MockReferenceRepository) QuestionTypeExists(id uint) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockReferenceRepository) SubtopicExists(id uint) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockReferenceRepository) DifficultyExists(id uint) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockReferenceRepository) SourceExists(id uint) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

// MockChoiceRepository реализует repository.ChoiceRepository
type MockChoiceRepository struct {
	mock.Mock
}

func (m *MockChoiceRepository) GetChoice(questionID, choiceID uint) (*entity.Choice, error) {
	args := m.Called(questionID, choiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Choice), args.Error(1)
}

func (m *MockChoiceRepository) CountCorrectChoices(questionID uint, excludeChoiceID *uint) (int64, error) {
	args := m.Called(questionID, excludeChoiceID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockChoiceRepository) GetOtherChoiceContentValues(questionID, choiceID uint) ([]string, error) {
	args := m.Called(questionID, choiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockChoiceRepository) UpdateChoice(choice *entity.Choice, update repository.ChoiceUpdate) error {
	args := m.Called(choice, update)
	return args.Error(0)
}

// MockSolutionRepository реализует repository.SolutionRepository
type MockSolutionRepository struct {
	mock.Mock
}

func (m *MockSolutionRepository) GetSolution(questionID, solutionID uint) (*entity.Solution, error) {
	args := m.Called(questionID, solutionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Solution), args.Error(1)
}

func (m *MockSolutionRepository) ReplaceSolutionContents(solutionID uint, contents []entity.SolutionContent) error {
	args := m.Called(solutionID, contents)
	return args.Error(0)
}

// MockQuestionContentRepository реализует repository.QuestionContentRepository
type MockQuestionContentRepository struct {
	mock.Mock
}

func (m *MockQuestionContentRepository) GetQuestionContent(questionID, contentID uint) (*entity.QuestionContent, error) {
	args := m.Called(questionID, contentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.QuestionContent), args.Error(1)
}

func (m *MockQuestionContentRepository) GetQuestionContents(questionID uint) ([]entity.QuestionContent, error) {
	args := m.Called(questionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.QuestionContent), args.Error(1)
}

func (m *MockQuestionContentRepository) UpdateQuestionContent(content *entity.QuestionContent, questionHash string) error {
	args := m.Called(content, questionHash)
	return args.Error(0)
}

// MockQuestionSourceRepository реализует repository.QuestionSourceRepository
type MockQuestionSourceRepository struct {
	mock.Mock
}

func (m *MockQuestionSourceRepository) GetQuestionSource(questionID, questionSourceID uint) (*entity.QuestionSource, error) {
	args := m.Called(questionID, questionSourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.QuestionSource), args.Error(1)
}

func (m *MockQuestionSourceRepository) UpdateQuestionSource(qs *entity.QuestionSource, fields map[string]interface{}) error {
	args := m.Called(qs, fields)
	return args.Error(0)
}

// Моки обязаны совпадать с интерфейсами по сигнатурам
var (
	_ repository.QuestionRepository        = (*MockQuestionRepository)(nil)
	_ repository.AreaRepository            = (*MockAreaRepository)(nil)
	_ repository.ReferenceRepository       = (*MockReferenceRepository)(nil)
	_ repository.ChoiceRepository          = (*MockChoiceRepository)(nil)
	_ repository.SolutionRepository        = (*MockSolutionRepository)(nil)
	_ repository.QuestionContentRepository = (*MockQuestionContentRepository)(nil)
	_ repository.QuestionSourceRepository  = (*MockQuestionSourceRepository)(nil)
)

// fakeObjectStorage - простая заглушка хранилища, считающая вызовы SignURL
type fakeObjectStorage struct {
	signCalls int
	uploads   []string
	signErr   error
}

func (f *fakeObjectStorage) Upload(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) (string, error) {
	f.uploads = append(f.uploads, objectKey)
	return objectKey, nil
}

func (f *fakeObjectStorage) SignURL(ctx context.Context, objectKey string) (string, error) {
	f.signCalls++
	if f.signErr != nil {
		return "", f.signErr
	}
	return fmt.Sprintf("https://storage.local/%s?sig=%d", objectKey, f.signCalls), nil
}

// Хелперы для указателей в тестах
func boolPtr(v bool) *bool { return &v }
func uintPtr(v uint) *uint { return &v }
func intPtr(v int) *int    { return &v }
