package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/question-bank-api/internal/domain/entity"
	apperrors "github.com/yourusername/question-bank-api/internal/pkg/errors"
)

func newTestQuestionSourceService(qsRepo *MockQuestionSourceRepository, questionRepo *MockQuestionRepository, refRepo *MockReferenceRepository) *QuestionSourceService {
	return NewQuestionSourceService(qsRepo, refRepo, NewQuestionGuard(questionRepo))
}

func TestQuestionSourceService_Update_PageOnly(t *testing.T) {
	// Arrange
	qsRepo := new(MockQuestionSourceRepository)
	questionRepo := new(MockQuestionRepository)
	refRepo := new(MockReferenceRepository)
	questionRepo.On("Exists", uint(1)).Return(true, nil)
	qsRepo.On("GetQuestionSource", uint(1), uint(7)).Return(&entity.QuestionSource{ID: 7, QuestionID: 1, SourceID: 3, Page: 12}, nil)
	qsRepo.On("UpdateQuestionSource", mock.AnythingOfType("*entity.QuestionSource"), mock.MatchedBy(func(fields map[string]interface{}) bool {
		page, ok := fields["page"]
		return ok && page == 25 && len(fields) == 1
	})).Return(nil)

	svc := newTestQuestionSourceService(qsRepo, questionRepo, refRepo)

	// Act
	updated, err := svc.UpdateQuestionSource(1, 7, QuestionSourceUpdate{Page: intPtr(25)})

	// Assert: источник не проверяется, он не менялся
	require.NoError(t, err)
	assert.NotNil(t, updated)
	refRepo.AssertNotCalled(t, "SourceExists")
	qsRepo.AssertExpectations(t)
}

func TestQuestionSourceService_Update_MissingSource(t *testing.T) {
	// Arrange
	qsRepo := new(MockQuestionSourceRepository)
	questionRepo := new(MockQuestionRepository)
	refRepo := new(MockReferenceRepository)
	questionRepo.On("Exists", uint(1)).Return(true, nil)
	qsRepo.On("GetQuestionSource", uint(1), uint(7)).Return(&entity.QuestionSource{ID: 7, QuestionID: 1, SourceID: 3}, nil)
	refRepo.On("SourceExists", uint(999)).Return(false, nil)

	svc := newTestQuestionSourceService(qsRepo, questionRepo, refRepo)

	// Act
	updated, err := svc.UpdateQuestionSource(1, 7, QuestionSourceUpdate{SourceID: uintPtr(999)})

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Nil(t, updated)
	qsRepo.AssertNotCalled(t, "UpdateQuestionSource")
}
