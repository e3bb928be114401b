package repository

import (
	"github.com/yourusername/question-bank-api/internal/domain/entity"
)

// AreaRepository определяет интерфейс для областей знаний
type AreaRepository interface {
	// GetByIDs возвращает области по набору идентификаторов.
	// Отсутствующие идентификаторы просто не входят в результат -
	// проверку полноты делает сервис.
	GetByIDs(ids []uint) ([]entity.Area, error)
	List() ([]entity.Area, error)
	Create(area *entity.Area) error
}

// SourceRepository определяет интерфейс для источников
type SourceRepository interface {
	GetByIDs(ids []uint) ([]entity.Source, error)
	GetByID(id uint) (*entity.Source, error)
	List(offset, limit int) ([]entity.Source, error)
	Create(source *entity.Source) error
	Update(id uint, fields map[string]interface{}) (*entity.Source, error)
	Delete(id uint) (bool, error)
}

// ReferenceRepository проверяет существование записей справочников,
// на которые ссылается вопрос (тип, подтема, сложность)
type ReferenceRepository interface {
	QuestionTypeExists(id uint) (bool, error)
	SubtopicExists(id uint) (bool, error)
	DifficultyExists(id uint) (bool, error)
	SourceExists(id uint) (bool, error)
}
