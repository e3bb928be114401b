package entity

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func textContent(value string, order int) QuestionContent {
	return QuestionContent{ContentData: ContentData{Type: ContentTypeText, Value: value, Order: order}}
}

func imageContent(key string, order int) QuestionContent {
	return QuestionContent{ContentData: ContentData{Type: ContentTypeImage, Value: key, Order: order}}
}

func TestGenerateQuestionHash_Deterministic(t *testing.T) {
	// Arrange
	contents := []QuestionContent{
		textContent("Сколько будет 2+2?", 1),
		textContent("Выберите один вариант.", 2),
	}

	// Act
	first := GenerateQuestionHash(contents)
	second := GenerateQuestionHash(contents)

	// Assert
	assert.Equal(t, first, second, "Хеш должен быть детерминированным")
	assert.Len(t, first, 64, "Хеш должен быть hex-строкой SHA-256")
}

func TestGenerateQuestionHash_OrderFieldDecides(t *testing.T) {
	// Arrange: одинаковые блоки, но в слайсах они лежат в разном порядке
	ordered := []QuestionContent{
		textContent("первая часть", 1),
		textContent("вторая часть", 2),
	}
	shuffled := []QuestionContent{
		textContent("вторая часть", 2),
		textContent("первая часть", 1),
	}

	// Act & Assert: порядок в слайсе не влияет, решает поле Order
	assert.Equal(t, GenerateQuestionHash(ordered), GenerateQuestionHash(shuffled),
		"Хеш должен зависеть от поля Order, а не от порядка в слайсе")
}

func TestGenerateQuestionHash_StopsAtFirstImage(t *testing.T) {
	// Arrange
	withImage := []QuestionContent{
		textContent("до изображения", 1),
		imageContent("questions/abc.png", 2),
		textContent("после изображения", 3),
	}
	truncated := []QuestionContent{
		textContent("до изображения", 1),
	}

	// Act & Assert: всё после первого изображения не участвует в хеше
	assert.Equal(t, GenerateQuestionHash(truncated), GenerateQuestionHash(withImage),
		"Хеш должен обрываться на первом изображении")
}

func TestGenerateQuestionHash_AllImages(t *testing.T) {
	// Arrange
	contents := []QuestionContent{
		imageContent("questions/a.png", 1),
		imageContent("questions/b.png", 2),
	}
	emptySum := sha256.Sum256([]byte(""))

	// Act & Assert: вопрос из одних изображений хешируется как пустая строка
	assert.Equal(t, hex.EncodeToString(emptySum[:]), GenerateQuestionHash(contents),
		"Вопрос без текста должен давать хеш пустой строки")
}

func TestGenerateQuestionHash_NormalizesWhitespaceAndCase(t *testing.T) {
	// Arrange
	raw := []QuestionContent{
		textContent("  Сколько Будет 2+2?  ", 1),
	}
	normalized := []QuestionContent{
		textContent("сколько будет 2+2?", 1),
	}

	// Act & Assert
	assert.Equal(t, GenerateQuestionHash(normalized), GenerateQuestionHash(raw),
		"Крайние пробелы и регистр не должны влиять на хеш")
}
