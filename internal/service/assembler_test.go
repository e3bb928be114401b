package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/question-bank-api/internal/domain/entity"
)

func TestAssembleQuestion_SortsAllCollections(t *testing.T) {
	// Arrange: блоки лежат не по порядку во всех коллекциях
	question := &entity.Question{
		Contents: []entity.QuestionContent{
			{ContentData: entity.ContentData{Type: entity.ContentTypeText, Value: "вторая", Order: 2}},
			{ContentData: entity.ContentData{Type: entity.ContentTypeText, Value: "первая", Order: 1}},
		},
		Choices: []entity.Choice{
			{Contents: []entity.ChoiceContent{
				{ContentData: entity.ContentData{Type: entity.ContentTypeText, Value: "б", Order: 2}},
				{ContentData: entity.ContentData{Type: entity.ContentTypeText, Value: "а", Order: 1}},
			}},
		},
		Solutions: []entity.Solution{
			{Contents: []entity.SolutionContent{
				{ContentData: entity.ContentData{Type: entity.ContentTypeText, Value: "шаг 2", Order: 2}},
				{ContentData: entity.ContentData{Type: entity.ContentTypeText, Value: "шаг 1", Order: 1}},
			}},
		},
	}

	// Act
	AssembleQuestion(question)

	// Assert
	assert.Equal(t, "первая", question.Contents[0].Value)
	assert.Equal(t, "а", question.Choices[0].Contents[0].Value)
	assert.Equal(t, "шаг 1", question.Solutions[0].Contents[0].Value)
	assert.NotEmpty(t, question.QuestionHash)
}

func TestAssembleQuestion_HashMatchesSortedContents(t *testing.T) {
	// Arrange
	shuffled := &entity.Question{
		Contents: []entity.QuestionContent{
			{ContentData: entity.ContentData{Type: entity.ContentTypeText, Value: "хвост", Order: 2}},
			{ContentData: entity.ContentData{Type: entity.ContentTypeText, Value: "голова", Order: 1}},
		},
	}
	sorted := &entity.Question{
		Contents: []entity.QuestionContent{
			{ContentData: entity.ContentData{Type: entity.ContentTypeText, Value: "голова", Order: 1}},
			{ContentData: entity.ContentData{Type: entity.ContentTypeText, Value: "хвост", Order: 2}},
		},
	}

	// Act
	AssembleQuestion(shuffled)
	AssembleQuestion(sorted)

	// Assert
	assert.Equal(t, sorted.QuestionHash, shuffled.QuestionHash,
		"Хеш не должен зависеть от исходного порядка блоков в слайсе")
}
