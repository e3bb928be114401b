package repository

import (
	"github.com/yourusername/question-bank-api/internal/domain/entity"
)

// Единообразные CRUD-интерфейсы для таксономии.
// Логики в них намеренно нет - простые одно-сущностные операции.

// CourseRepository - CRUD для курсов
type CourseRepository interface {
	Create(course *entity.Course) error
	GetByID(id uint) (*entity.Course, error)
	List(offset, limit int) ([]entity.Course, error)
	Update(id uint, fields map[string]interface{}) (*entity.Course, error)
	Delete(id uint) (bool, error)
}

// TopicRepository - CRUD для тем
type TopicRepository interface {
	Create(topic *entity.Topic) error
	GetByID(id uint) (*entity.Topic, error)
	List(offset, limit int) ([]entity.Topic, error)
	Update(id uint, fields map[string]interface{}) (*entity.Topic, error)
	Delete(id uint) (bool, error)
}

// SubtopicRepository - CRUD для подтем
type SubtopicRepository interface {
	Create(subtopic *entity.Subtopic) error
	GetByID(id uint) (*entity.Subtopic, error)
	List(offset, limit int) ([]entity.Subtopic, error)
	Update(id uint, fields map[string]interface{}) (*entity.Subtopic, error)
	Delete(id uint) (bool, error)
}

// InstitutionRepository - CRUD для учреждений
type InstitutionRepository interface {
	Create(institution *entity.Institution) error
	GetByID(id uint) (*entity.Institution, error)
	List(offset, limit int) ([]entity.Institution, error)
	Update(id uint, fields map[string]interface{}) (*entity.Institution, error)
	Delete(id uint) (bool, error)
}
