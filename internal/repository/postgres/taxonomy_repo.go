package postgres

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/yourusername/question-bank-api/internal/domain/entity"
	apperrors "github.com/yourusername/question-bank-api/internal/pkg/errors"
)

// Репозитории таксономии собраны в одном файле: операции у них
// одинаковые и сводятся к простому CRUD.

// CourseRepo реализует repository.CourseRepository
type CourseRepo struct {
	db *gorm.DB
}

// NewCourseRepo создает новый репозиторий курсов
func NewCourseRepo(db *gorm.DB) *CourseRepo {
	return &CourseRepo{db: db}
}

// Create создает новый курс
func (r *CourseRepo) Create(course *entity.Course) error {
	if err := r.db.Create(course).Error; err != nil {
		return translatePgError(err, apperrors.ErrPersistence)
	}
	return nil
}

// GetByID возвращает курс по ID
func (r *CourseRepo) GetByID(id uint) (*entity.Course, error) {
	var course entity.Course
	if err := r.db.First(&course, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &course, nil
}

// List возвращает страницу курсов
func (r *CourseRepo) List(offset, limit int) ([]entity.Course, error) {
	var courses []entity.Course
	err := r.db.Order("id").Offset(offset).Limit(limit).Find(&courses).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrRetrieval, err)
	}
	return courses, nil
}

// Update обновляет поля курса и возвращает свежую запись
func (r *CourseRepo) Update(id uint, fields map[string]interface{}) (*entity.Course, error) {
	result := r.db.Model(&entity.Course{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, translatePgError(result.Error, apperrors.ErrPersistence)
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.ErrNotFound
	}
	return r.GetByID(id)
}

// Delete удаляет курс. Возвращает false, если курса не было.
func (r *CourseRepo) Delete(id uint) (bool, error) {
	result := r.db.Delete(&entity.Course{}, id)
	if result.Error != nil {
		return false, translatePgError(result.Error, apperrors.ErrDelete)
	}
	return result.RowsAffected > 0, nil
}

// TopicRepo реализует repository.TopicRepository
type TopicRepo struct {
	db *gorm.DB
}

// NewTopicRepo создает новый репозиторий тем
func NewTopicRepo(db *gorm.DB) *TopicRepo {
	return &TopicRepo{db: db}
}

// Create создает новую тему
func (r *TopicRepo) Create(topic *entity.Topic) error {
	if err := r.db.Create(topic).Error; err != nil {
		return translatePgError(err, apperrors.ErrPersistence)
	}
	return nil
}

// GetByID возвращает тему по ID
func (r *TopicRepo) GetByID(id uint) (*entity.Topic, error) {
	var topic entity.Topic
	if err := r.db.First(&topic, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &topic, nil
}

// List возвращает страницу тем
func (r *TopicRepo) List(offset, limit int) ([]entity.Topic, error) {
	var topics []entity.Topic
	err := r.db.Order("id").Offset(offset).Limit(limit).Find(&topics).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrRetrieval, err)
	}
	return topics, nil
}

// Update обновляет поля темы и возвращает свежую запись
func (r *TopicRepo) Update(id uint, fields map[string]interface{}) (*entity.Topic, error) {
	result := r.db.Model(&entity.Topic{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, translatePgError(result.Error, apperrors.ErrPersistence)
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.ErrNotFound
	}
	return r.GetByID(id)
}

// Delete удаляет тему. Возвращает false, если темы не было.
func (r *TopicRepo) Delete(id uint) (bool, error) {
	result := r.db.Delete(&entity.Topic{}, id)
	if result.Error != nil {
		return false, translatePgError(result.Error, apperrors.ErrDelete)
	}
	return result.RowsAffected > 0, nil
}

// SubtopicRepo реализует repository.SubtopicRepository
type SubtopicRepo struct {
	db *gorm.DB
}

// NewSubtopicRepo создает новый репозиторий подтем
func NewSubtopicRepo(db *gorm.DB) *SubtopicRepo {
	return &SubtopicRepo{db: db}
}

// Create создает новую подтему
func (r *SubtopicRepo) Create(subtopic *entity.Subtopic) error {
	if err := r.db.Create(subtopic).Error; err != nil {
		return translatePgError(err, apperrors.ErrPersistence)
	}
	return nil
}

// GetByID возвращает подтему по ID
func (r *SubtopicRepo) GetByID(id uint) (*entity.Subtopic, error) {
	var subtopic entity.Subtopic
	if err := r.db.First(&subtopic, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &subtopic, nil
}

// List возвращает страницу подтем
func (r *SubtopicRepo) List(offset, limit int) ([]entity.Subtopic, error) {
	var subtopics []entity.Subtopic
	err := r.db.Order("id").Offset(offset).Limit(limit).Find(&subtopics).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrRetrieval, err)
	}
	return subtopics, nil
}

// Update обновляет поля подтемы и возвращает свежую запись
func (r *SubtopicRepo) Update(id uint, fields map[string]interface{}) (*entity.Subtopic, error) {
	result := r.db.Model(&entity.Subtopic{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, translatePgError(result.Error, apperrors.ErrPersistence)
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.ErrNotFound
	}
	return r.GetByID(id)
}

// Delete удаляет подтему. Возвращает false, если подтемы не было.
func (r *SubtopicRepo) Delete(id uint) (bool, error) {
	result := r.db.Delete(&entity.Subtopic{}, id)
	if result.Error != nil {
		return false, translatePgError(result.Error, apperrors.ErrDelete)
	}
	return result.RowsAffected > 0, nil
}

// InstitutionRepo реализует repository.InstitutionRepository
type InstitutionRepo struct {
	db *gorm.DB
}

// NewInstitutionRepo создает новый репозиторий учреждений
func NewInstitutionRepo(db *gorm.DB) *InstitutionRepo {
	return &InstitutionRepo{db: db}
}

// Create создает новое учреждение
func (r *InstitutionRepo) Create(institution *entity.Institution) error {
	if err := r.db.Create(institution).Error; err != nil {
		return translatePgError(err, apperrors.ErrPersistence)
	}
	return nil
}

// GetByID возвращает учреждение по ID
func (r *InstitutionRepo) GetByID(id uint) (*entity.Institution, error) {
	var institution entity.Institution
	if err := r.db.First(&institution, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &institution, nil
}

// List возвращает страницу учреждений
func (r *InstitutionRepo) List(offset, limit int) ([]entity.Institution, error) {
	var institutions []entity.Institution
	err := r.db.Order("id").Offset(offset).Limit(limit).Find(&institutions).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrRetrieval, err)
	}
	return institutions, nil
}

// Update обновляет поля учреждения и возвращает свежую запись
func (r *InstitutionRepo) Update(id uint, fields map[string]interface{}) (*entity.Institution, error) {
	result := r.db.Model(&entity.Institution{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, translatePgError(result.Error, apperrors.ErrPersistence)
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.ErrNotFound
	}
	return r.GetByID(id)
}

// Delete удаляет учреждение. Возвращает false, если учреждения не было.
func (r *InstitutionRepo) Delete(id uint) (bool, error) {
	result := r.db.Delete(&entity.Institution{}, id)
	if result.Error != nil {
		return false, translatePgError(result.Error, apperrors.ErrDelete)
	}
	return result.RowsAffected > 0, nil
}

// translateNotFound переводит gorm.ErrRecordNotFound в доменную ошибку
func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrNotFound
	}
	return fmt.Errorf("%w: %v", apperrors.ErrRetrieval, err)
}
