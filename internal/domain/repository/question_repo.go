package repository

import (
	"github.com/yourusername/question-bank-api/internal/domain/entity"
)

// QuestionView управляет глубиной жадной загрузки коллекций вопроса
type QuestionView string

const (
	// QuestionViewSummary - без альтернатив и решений (для списков)
	QuestionViewSummary QuestionView = "summary"
	// QuestionViewFull - полный агрегат
	QuestionViewFull QuestionView = "full"
)

// QuestionRepository определяет интерфейс для работы с агрегатом вопроса.
// Все мутирующие операции выполняются в одной транзакции; частично
// применённый агрегат никогда не виден вызывающему.
type QuestionRepository interface {
	// CreateAggregate сохраняет вопрос вместе со всеми дочерними сущностями.
	// Нарушение уникальности question_hash транслируется в ErrDuplicateValue.
	CreateAggregate(question *entity.Question) error

	// GetPage возвращает страницу вопросов и общее количество.
	// Общее количество может быть взято из кеша (TTL ~5 минут).
	GetPage(page, limit int, view QuestionView) ([]entity.Question, int64, error)

	// GetByID возвращает вопрос или ErrNotFound, если его нет
	GetByID(id uint, view QuestionView) (*entity.Question, error)

	// GetAllFull возвращает все вопросы с полными коллекциями (для экспорта)
	GetAllFull() ([]entity.Question, error)

	// UpdateFields выполняет частичное обновление скалярных полей.
	// Возвращает ErrNotFound, если вопрос не найден (в т.ч. удалён конкурентно).
	UpdateFields(id uint, fields map[string]interface{}) (*entity.Question, error)

	// ReplaceAreas атомарно заменяет набор областей вопроса
	ReplaceAreas(id uint, areas []entity.Area) error

	// Delete удаляет вопрос; каскад удаляет всех владеемых детей.
	// Возвращает false, если вопрос не найден.
	Delete(id uint) (bool, error)

	// Exists проверяет существование вопроса
	Exists(id uint) (bool, error)
}
