package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/question-bank-api/internal/domain/entity"
	"github.com/yourusername/question-bank-api/internal/domain/repository"
	apperrors "github.com/yourusername/question-bank-api/internal/pkg/errors"
)

func validAggregate() *entity.Question {
	return &entity.Question{
		QuestionTypeID: 1,
		SubtopicID:     2,
		DifficultyID:   3,
		Contents: []entity.QuestionContent{
			{ContentData: entity.ContentData{Type: entity.ContentTypeText, Value: "Столица Перу?", Order: 1}},
		},
		Choices: []entity.Choice{
			{Label: "A", IsCorrect: true, Contents: []entity.ChoiceContent{
				{ContentData: entity.ContentData{Type: entity.ContentTypeText, Value: "Лима", Order: 1}},
			}},
			{Label: "B", IsCorrect: false, Contents: []entity.ChoiceContent{
				{ContentData: entity.ContentData{Type: entity.ContentTypeText, Value: "Богота", Order: 1}},
			}},
		},
	}
}

func newTestQuestionService(questionRepo *MockQuestionRepository, areaRepo *MockAreaRepository, refRepo *MockReferenceRepository) *QuestionService {
	validator := NewQuestionValidator(refRepo)
	resolver := NewImageResolver(&fakeObjectStorage{})
	return NewQuestionService(questionRepo, areaRepo, refRepo, validator, resolver)
}

func TestQuestionService_CreateQuestion_Success(t *testing.T) {
	// Arrange
	questionRepo := new(MockQuestionRepository)
	areaRepo := new(MockAreaRepository)
	refRepo := new(MockReferenceRepository)

	refRepo.On("QuestionTypeExists", uint(1)).Return(true, nil)
	refRepo.On("SubtopicExists", uint(2)).Return(true, nil)
	refRepo.On("DifficultyExists", uint(3)).Return(true, nil)
	areaRepo.On("GetByIDs", []uint{7}).Return([]entity.Area{{ID: 7, Name: "Здоровье", Code: "H"}}, nil)

	questionRepo.On("CreateAggregate", mock.AnythingOfType("*entity.Question")).Run(func(args mock.Arguments) {
		args.Get(0).(*entity.Question).ID = 42
	}).Return(nil)
	questionRepo.On("GetByID", uint(42), repository.QuestionViewFull).Return(validAggregate(), nil)

	svc := newTestQuestionService(questionRepo, areaRepo, refRepo)

	// Act
	question := validAggregate()
	created, err := svc.CreateQuestion(context.Background(), question, []uint{7})

	// Assert
	require.NoError(t, err, "Создание корректного вопроса должно быть успешным")
	assert.NotNil(t, created)
	assert.NotEmpty(t, question.QuestionHash, "Хеш должен быть зафиксирован до записи")
	questionRepo.AssertExpectations(t)
}

func TestQuestionService_CreateQuestion_NoCorrectChoice(t *testing.T) {
	// Arrange
	questionRepo := new(MockQuestionRepository)
	areaRepo := new(MockAreaRepository)
	refRepo := new(MockReferenceRepository)

	question := validAggregate()
	question.Choices[0].IsCorrect = false

	svc := newTestQuestionService(questionRepo, areaRepo, refRepo)

	// Act
	created, err := svc.CreateQuestion(context.Background(), question, nil)

	// Assert: валидация падает до любого обращения к базе на запись
	assert.ErrorIs(t, err, apperrors.ErrNoCorrectChoice)
	assert.Nil(t, created)
	questionRepo.AssertNotCalled(t, "CreateAggregate")
}

func TestQuestionService_CreateQuestion_MultipleCorrectChoices(t *testing.T) {
	// Arrange
	questionRepo := new(MockQuestionRepository)
	areaRepo := new(MockAreaRepository)
	refRepo := new(MockReferenceRepository)

	question := validAggregate()
	question.Choices[1].IsCorrect = true

	svc := newTestQuestionService(questionRepo, areaRepo, refRepo)

	// Act
	created, err := svc.CreateQuestion(context.Background(), question, nil)

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrMultipleCorrectChoices)
	assert.Nil(t, created)
	questionRepo.AssertNotCalled(t, "CreateAggregate")
}

func TestQuestionService_CreateQuestion_DuplicateChoiceTextNormalized(t *testing.T) {
	// Arrange: "Лима " и "лима" совпадают после нормализации
	questionRepo := new(MockQuestionRepository)
	areaRepo := new(MockAreaRepository)
	refRepo := new(MockReferenceRepository)

	question := validAggregate()
	question.Choices[1].Contents[0].Value = "  лима "

	svc := newTestQuestionService(questionRepo, areaRepo, refRepo)

	// Act
	created, err := svc.CreateQuestion(context.Background(), question, nil)

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrDuplicateChoiceContent)
	assert.Nil(t, created)
	questionRepo.AssertNotCalled(t, "CreateAggregate")
}

func TestQuestionService_CreateQuestion_MissingReference(t *testing.T) {
	// Arrange
	questionRepo := new(MockQuestionRepository)
	areaRepo := new(MockAreaRepository)
	refRepo := new(MockReferenceRepository)

	refRepo.On("QuestionTypeExists", uint(1)).Return(true, nil)
	refRepo.On("SubtopicExists", uint(2)).Return(false, nil)

	svc := newTestQuestionService(questionRepo, areaRepo, refRepo)

	// Act
	created, err := svc.CreateQuestion(context.Background(), validAggregate(), nil)

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrForeignKeyViolation)
	assert.Nil(t, created)
	questionRepo.AssertNotCalled(t, "CreateAggregate")
}

func TestQuestionService_CreateQuestion_MissingAreaRejectsWholeSet(t *testing.T) {
	// Arrange: область 999 не существует, набор отклоняется целиком
	questionRepo := new(MockQuestionRepository)
	areaRepo := new(MockAreaRepository)
	refRepo := new(MockReferenceRepository)

	refRepo.On("QuestionTypeExists", uint(1)).Return(true, nil)
	refRepo.On("SubtopicExists", uint(2)).Return(true, nil)
	refRepo.On("DifficultyExists", uint(3)).Return(true, nil)
	areaRepo.On("GetByIDs", []uint{7, 999}).Return([]entity.Area{{ID: 7}}, nil)

	svc := newTestQuestionService(questionRepo, areaRepo, refRepo)

	// Act
	created, err := svc.CreateQuestion(context.Background(), validAggregate(), []uint{7, 999})

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Contains(t, err.Error(), "999", "Ошибка должна называть отсутствующий идентификатор")
	assert.Nil(t, created)
	questionRepo.AssertNotCalled(t, "CreateAggregate")
}

func TestQuestionService_CreateQuestion_DuplicateHash(t *testing.T) {
	// Arrange
	questionRepo := new(MockQuestionRepository)
	areaRepo := new(MockAreaRepository)
	refRepo := new(MockReferenceRepository)

	refRepo.On("QuestionTypeExists", uint(1)).Return(true, nil)
	refRepo.On("SubtopicExists", uint(2)).Return(true, nil)
	refRepo.On("DifficultyExists", uint(3)).Return(true, nil)
	questionRepo.On("CreateAggregate", mock.AnythingOfType("*entity.Question")).Return(apperrors.ErrDuplicateValue)

	svc := newTestQuestionService(questionRepo, areaRepo, refRepo)

	// Act
	created, err := svc.CreateQuestion(context.Background(), validAggregate(), nil)

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrDuplicateValue)
	assert.Nil(t, created)
}

func TestQuestionService_GetQuestions_PaginationMeta(t *testing.T) {
	// Arrange
	questionRepo := new(MockQuestionRepository)
	areaRepo := new(MockAreaRepository)
	refRepo := new(MockReferenceRepository)

	questionRepo.On("GetPage", 2, 20, repository.QuestionViewSummary).
		Return([]entity.Question{{ID: 21}, {ID: 22}}, int64(45), nil)

	svc := newTestQuestionService(questionRepo, areaRepo, refRepo)

	// Act
	questions, pagination, err := svc.GetQuestions(context.Background(), 2, 20, repository.QuestionViewSummary)

	// Assert
	require.NoError(t, err)
	assert.Len(t, questions, 2)
	assert.Equal(t, 3, pagination.TotalPages, "45 записей по 20 - это 3 страницы")
	assert.True(t, pagination.HasPrev)
	assert.True(t, pagination.HasNext)
}

func TestQuestionService_DeleteQuestion_NotFound(t *testing.T) {
	// Arrange
	questionRepo := new(MockQuestionRepository)
	areaRepo := new(MockAreaRepository)
	refRepo := new(MockReferenceRepository)

	questionRepo.On("Delete", uint(5)).Return(false, nil)

	svc := newTestQuestionService(questionRepo, areaRepo, refRepo)

	// Act
	err := svc.DeleteQuestion(5)

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestQuestionService_UpdateSubtopic_ChecksReferenceFirst(t *testing.T) {
	// Arrange
	questionRepo := new(MockQuestionRepository)
	areaRepo := new(MockAreaRepository)
	refRepo := new(MockReferenceRepository)

	refRepo.On("SubtopicExists", uint(9)).Return(false, nil)

	svc := newTestQuestionService(questionRepo, areaRepo, refRepo)

	// Act
	updated, err := svc.UpdateSubtopic(1, 9)

	// Assert: при отсутствующем справочнике запись даже не трогается
	assert.ErrorIs(t, err, apperrors.ErrForeignKeyViolation)
	assert.Nil(t, updated)
	questionRepo.AssertNotCalled(t, "UpdateFields")
}
