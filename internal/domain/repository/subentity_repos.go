package repository

import (
	"github.com/yourusername/question-bank-api/internal/domain/entity"
)

// SolutionRepository определяет интерфейс для точечной работы с решениями
type SolutionRepository interface {
	// GetSolution возвращает решение вопроса с контентом
	// или ErrNotFound, если его нет
	GetSolution(questionID, solutionID uint) (*entity.Solution, error)

	// ReplaceSolutionContents атомарно заменяет контент решения целиком
	ReplaceSolutionContents(solutionID uint, contents []entity.SolutionContent) error
}

// QuestionContentRepository определяет интерфейс для контента формулировки вопроса
type QuestionContentRepository interface {
	// GetQuestionContent возвращает блок контента вопроса
	// или ErrNotFound, если его нет
	GetQuestionContent(questionID, contentID uint) (*entity.QuestionContent, error)

	// GetQuestionContents возвращает все блоки контента вопроса
	// (нужны для пересчёта question_hash)
	GetQuestionContents(questionID uint) ([]entity.QuestionContent, error)

	// UpdateQuestionContent сохраняет блок и новый хеш вопроса в одной транзакции.
	// Коллизия хеша транслируется в ErrDuplicateValue.
	UpdateQuestionContent(content *entity.QuestionContent, questionHash string) error
}

// QuestionSourceRepository определяет интерфейс для ссылок вопроса на источники
type QuestionSourceRepository interface {
	// GetQuestionSource возвращает ссылку на источник
	// или ErrNotFound, если её нет
	GetQuestionSource(questionID, questionSourceID uint) (*entity.QuestionSource, error)

	// UpdateQuestionSource применяет частичное обновление полей ссылки
	UpdateQuestionSource(questionSource *entity.QuestionSource, fields map[string]interface{}) error
}
