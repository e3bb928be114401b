package repository

import (
	"github.com/yourusername/question-bank-api/internal/domain/entity"
)

// ChoiceUpdate описывает точечное обновление одной альтернативы.
// nil-поля не изменяются; Contents заменяет коллекцию целиком.
type ChoiceUpdate struct {
	Label     *string
	IsCorrect *bool
	Contents  []entity.ChoiceContent

	// DemoteOthers снимает флаг is_correct с остальных альтернатив вопроса
	// перед применением изменений. Сервис выставляет его при каждом
	// назначении правильного варианта, чтобы инвариант держался атомарно.
	DemoteOthers bool
}

// ChoiceRepository определяет интерфейс для точечной работы с альтернативами
type ChoiceRepository interface {
	// GetChoice возвращает альтернативу вопроса с контентом
	// или ErrNotFound, если её нет
	GetChoice(questionID, choiceID uint) (*entity.Choice, error)

	// CountCorrectChoices считает правильные альтернативы вопроса,
	// опционально исключая одну из подсчёта
	CountCorrectChoices(questionID uint, excludeChoiceID *uint) (int64, error)

	// GetOtherChoiceContentValues возвращает значения контента остальных
	// альтернатив вопроса (для проверки уникальности)
	GetOtherChoiceContentValues(questionID, choiceID uint) ([]string, error)

	// UpdateChoice применяет обновление в одной транзакции
	UpdateChoice(choice *entity.Choice, update ChoiceUpdate) error
}
