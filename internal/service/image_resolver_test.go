package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/question-bank-api/internal/domain/entity"
	apperrors "github.com/yourusername/question-bank-api/internal/pkg/errors"
)

func TestImageResolver_TextContentUntouched(t *testing.T) {
	// Arrange
	fake := &fakeObjectStorage{}
	resolver := NewImageResolver(fake)

	question := &entity.Question{
		Contents: []entity.QuestionContent{
			{ContentData: entity.ContentData{Type: entity.ContentTypeText, Value: "просто текст", Order: 1}},
		},
	}

	// Act: два чтения подряд
	assert.NoError(t, resolver.ResolveQuestion(context.Background(), question))
	assert.NoError(t, resolver.ResolveQuestion(context.Background(), question))

	// Assert
	assert.Equal(t, "просто текст", question.Contents[0].Value, "Текстовый блок не должен меняться")
	assert.Zero(t, fake.signCalls, "Для текста хранилище не вызывается")
}

func TestImageResolver_ImageGetsFreshURLEachRead(t *testing.T) {
	// Arrange
	fake := &fakeObjectStorage{}
	resolver := NewImageResolver(fake)

	load := func() *entity.Question {
		return &entity.Question{
			Contents: []entity.QuestionContent{
				{ContentData: entity.ContentData{Type: entity.ContentTypeImage, Value: "questions/pic.png", Order: 1}},
			},
		}
	}

	// Act: каждое чтение загружает агрегат заново, как из базы
	first := load()
	assert.NoError(t, resolver.ResolveQuestion(context.Background(), first))
	second := load()
	assert.NoError(t, resolver.ResolveQuestion(context.Background(), second))

	// Assert: обе ссылки подписаны и отличаются, ключ в "базе" не менялся
	assert.Contains(t, first.Contents[0].Value, "questions/pic.png")
	assert.Contains(t, second.Contents[0].Value, "questions/pic.png")
	assert.NotEqual(t, first.Contents[0].Value, second.Contents[0].Value,
		"Каждое чтение должно получать свежую подписанную ссылку")
	assert.Equal(t, 2, fake.signCalls)
}

func TestImageResolver_NestedCollections(t *testing.T) {
	// Arrange
	fake := &fakeObjectStorage{}
	resolver := NewImageResolver(fake)

	question := &entity.Question{
		Choices: []entity.Choice{
			{Contents: []entity.ChoiceContent{
				{ContentData: entity.ContentData{Type: entity.ContentTypeImage, Value: "questions/choice.png", Order: 1}},
			}},
		},
		Solutions: []entity.Solution{
			{Contents: []entity.SolutionContent{
				{ContentData: entity.ContentData{Type: entity.ContentTypeImage, Value: "questions/solution.png", Order: 1}},
			}},
		},
	}

	// Act
	err := resolver.ResolveQuestion(context.Background(), question)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, 2, fake.signCalls, "Изображения вложенных коллекций тоже подписываются")
	assert.Contains(t, question.Choices[0].Contents[0].Value, "https://storage.local/")
	assert.Contains(t, question.Solutions[0].Contents[0].Value, "https://storage.local/")
}

func TestImageResolver_SummaryViewNoNestedCalls(t *testing.T) {
	// Arrange: краткое представление - вложенные коллекции пусты
	fake := &fakeObjectStorage{}
	resolver := NewImageResolver(fake)

	question := &entity.Question{
		Contents: []entity.QuestionContent{
			{ContentData: entity.ContentData{Type: entity.ContentTypeText, Value: "текст", Order: 1}},
		},
	}

	// Act
	err := resolver.ResolveQuestion(context.Background(), question)

	// Assert
	assert.NoError(t, err)
	assert.Zero(t, fake.signCalls, "Краткое представление не порождает обращений к хранилищу")
}

func TestImageResolver_SignFailureFailsRead(t *testing.T) {
	// Arrange
	fake := &fakeObjectStorage{signErr: apperrors.ErrStorage}
	resolver := NewImageResolver(fake)

	question := &entity.Question{
		Contents: []entity.QuestionContent{
			{ContentData: entity.ContentData{Type: entity.ContentTypeImage, Value: "questions/pic.png", Order: 1}},
		},
	}

	// Act
	err := resolver.ResolveQuestion(context.Background(), question)

	// Assert: ошибка подписи прерывает чтение целиком
	assert.ErrorIs(t, err, apperrors.ErrStorage)
	assert.Contains(t, err.Error(), "questions/pic.png")
}
