package service

import (
	"github.com/yourusername/question-bank-api/internal/domain/entity"
	"github.com/yourusername/question-bank-api/internal/domain/repository"
)

// TaxonomyService объединяет простые CRUD-операции над таксономией:
// курсы, темы, подтемы, учреждения. Логики здесь намеренно нет.
type TaxonomyService struct {
	courseRepo      repository.CourseRepository
	topicRepo       repository.TopicRepository
	subtopicRepo    repository.SubtopicRepository
	institutionRepo repository.InstitutionRepository
}

// NewTaxonomyService создает новый сервис таксономии
func NewTaxonomyService(
	courseRepo repository.CourseRepository,
	topicRepo repository.TopicRepository,
	subtopicRepo repository.SubtopicRepository,
	institutionRepo repository.InstitutionRepository,
) *TaxonomyService {
	return &TaxonomyService{
		courseRepo:      courseRepo,
		topicRepo:       topicRepo,
		subtopicRepo:    subtopicRepo,
		institutionRepo: institutionRepo,
	}
}

// CreateCourse создает новый курс
func (s *TaxonomyService) CreateCourse(course *entity.Course) error {
	return s.courseRepo.Create(course)
}

// GetCourse возвращает курс по ID
func (s *TaxonomyService) GetCourse(id uint) (*entity.Course, error) {
	return s.courseRepo.GetByID(id)
}

// GetCourses возвращает страницу курсов
func (s *TaxonomyService) GetCourses(page, limit int) ([]entity.Course, error) {
	return s.courseRepo.List((page-1)*limit, limit)
}

// UpdateCourse обновляет поля курса
func (s *TaxonomyService) UpdateCourse(id uint, fields map[string]interface{}) (*entity.Course, error) {
	return s.courseRepo.Update(id, fields)
}

// DeleteCourse удаляет курс
func (s *TaxonomyService) DeleteCourse(id uint) (bool, error) {
	return s.courseRepo.Delete(id)
}

// CreateTopic создает новую тему
func (s *TaxonomyService) CreateTopic(topic *entity.Topic) error {
	return s.topicRepo.Create(topic)
}

// GetTopic возвращает тему по ID
func (s *TaxonomyService) GetTopic(id uint) (*entity.Topic, error) {
	return s.topicRepo.GetByID(id)
}

// GetTopics возвращает страницу тем
func (s *TaxonomyService) GetTopics(page, limit int) ([]entity.Topic, error) {
	return s.topicRepo.List((page-1)*limit, limit)
}

// UpdateTopic обновляет поля темы
func (s *TaxonomyService) UpdateTopic(id uint, fields map[string]interface{}) (*entity.Topic, error) {
	return s.topicRepo.Update(id, fields)
}

// DeleteTopic удаляет тему
func (s *TaxonomyService) DeleteTopic(id uint) (bool, error) {
	return s.topicRepo.Delete(id)
}

// CreateSubtopic создает новую подтему
func (s *TaxonomyService) CreateSubtopic(subtopic *entity.Subtopic) error {
	return s.subtopicRepo.Create(subtopic)
}

// GetSubtopic возвращает подтему по ID
func (s *TaxonomyService) GetSubtopic(id uint) (*entity.Subtopic, error) {
	return s.subtopicRepo.GetByID(id)
}

// GetSubtopics возвращает страницу подтем
func (s *TaxonomyService) GetSubtopics(page, limit int) ([]entity.Subtopic, error) {
	return s.subtopicRepo.List((page-1)*limit, limit)
}

// UpdateSubtopic обновляет поля подтемы
func (s *TaxonomyService) UpdateSubtopic(id uint, fields map[string]interface{}) (*entity.Subtopic, error) {
	return s.subtopicRepo.Update(id, fields)
}

// DeleteSubtopic удаляет подтему
func (s *TaxonomyService) DeleteSubtopic(id uint) (bool, error) {
	return s.subtopicRepo.Delete(id)
}

// CreateInstitution создает новое учреждение
func (s *TaxonomyService) CreateInstitution(institution *entity.Institution) error {
	return s.institutionRepo.Create(institution)
}

// GetInstitution возвращает учреждение по ID
func (s *TaxonomyService) GetInstitution(id uint) (*entity.Institution, error) {
	return s.institutionRepo.GetByID(id)
}

// GetInstitutions возвращает страницу учреждений
func (s *TaxonomyService) GetInstitutions(page, limit int) ([]entity.Institution, error) {
	return s.institutionRepo.List((page-1)*limit, limit)
}

// UpdateInstitution обновляет поля учреждения
func (s *TaxonomyService) UpdateInstitution(id uint, fields map[string]interface{}) (*entity.Institution, error) {
	return s.institutionRepo.Update(id, fields)
}

// DeleteInstitution удаляет учреждение
func (s *TaxonomyService) DeleteInstitution(id uint) (bool, error) {
	return s.institutionRepo.Delete(id)
}
