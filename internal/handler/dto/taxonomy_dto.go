package dto

import (
	"github.com/yourusername/question-bank-api/internal/domain/entity"
)

// AreaResponse представляет область знаний в ответе клиенту
type AreaResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// NewAreaResponse создает DTO для области
func NewAreaResponse(area *entity.Area) AreaResponse {
	return AreaResponse{ID: area.ID, Name: area.Name, Code: area.Code}
}

// CreateAreaRequest - запрос на создание области
type CreateAreaRequest struct {
	Name string `json:"name" binding:"required,max=50"`
	Code string `json:"code" binding:"required,len=1"`
}

// InstitutionResponse представляет учреждение в ответе клиенту
type InstitutionResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
	Type string `json:"type"`
}

// NewInstitutionResponse создает DTO для учреждения
func NewInstitutionResponse(inst *entity.Institution) InstitutionResponse {
	return InstitutionResponse{
		ID:   inst.ID,
		Name: inst.Name,
		Code: inst.Code,
		Type: string(inst.Type),
	}
}

// CreateInstitutionRequest - запрос на создание учреждения
type CreateInstitutionRequest struct {
	Name string `json:"name" binding:"required,max=100"`
	Code string `json:"code" binding:"required,max=10"`
	Type string `json:"type" binding:"required,oneof=university editorial academy other"`
}

// UpdateInstitutionRequest - частичное обновление учреждения
type UpdateInstitutionRequest struct {
	Name *string `json:"name" binding:"omitempty,max=100"`
	Code *string `json:"code" binding:"omitempty,max=10"`
	Type *string `json:"type" binding:"omitempty,oneof=university editorial academy other"`
}

// SourceResponse представляет источник в ответе клиенту
type SourceResponse struct {
	ID          uint                 `json:"id"`
	Name        string               `json:"name"`
	Year        int                  `json:"year,omitempty"`
	Institution *InstitutionResponse `json:"institution,omitempty"`
}

// NewSourceResponse создает DTO для источника
func NewSourceResponse(source *entity.Source) *SourceResponse {
	resp := &SourceResponse{
		ID:   source.ID,
		Name: source.Name,
		Year: source.Year,
	}
	if source.Institution != nil {
		inst := NewInstitutionResponse(source.Institution)
		resp.Institution = &inst
	}
	return resp
}

// CreateSourceRequest - запрос на создание источника
type CreateSourceRequest struct {
	Name          string `json:"name" binding:"required,max=150"`
	Year          int    `json:"year"`
	InstitutionID uint   `json:"institution_id" binding:"required"`
}

// UpdateSourceRequest - частичное обновление источника
type UpdateSourceRequest struct {
	Name          *string `json:"name" binding:"omitempty,max=150"`
	Year          *int    `json:"year"`
	InstitutionID *uint   `json:"institution_id"`
}

// CourseResponse представляет курс в ответе клиенту
type CourseResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// NewCourseResponse создает DTO для курса
func NewCourseResponse(course *entity.Course) CourseResponse {
	return CourseResponse{ID: course.ID, Name: course.Name, Code: course.Code}
}

// CreateCourseRequest - запрос на создание курса
type CreateCourseRequest struct {
	Name string `json:"name" binding:"required,max=50"`
	Code string `json:"code" binding:"required,len=2"`
}

// UpdateCourseRequest - частичное обновление курса
type UpdateCourseRequest struct {
	Name *string `json:"name" binding:"omitempty,max=50"`
	Code *string `json:"code" binding:"omitempty,len=2"`
}

// TopicResponse представляет тему в ответе клиенту
type TopicResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CourseID    uint   `json:"course_id"`
}

// NewTopicResponse создает DTO для темы
func NewTopicResponse(topic *entity.Topic) TopicResponse {
	return TopicResponse{
		ID:          topic.ID,
		Name:        topic.Name,
		Description: topic.Description,
		CourseID:    topic.CourseID,
	}
}

// CreateTopicRequest - запрос на создание темы
type CreateTopicRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
	CourseID    uint   `json:"course_id" binding:"required"`
}

// UpdateTopicRequest - частичное обновление темы
type UpdateTopicRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Description *string `json:"description"`
	CourseID    *uint   `json:"course_id"`
}

// SubtopicResponse представляет подтему в ответе клиенту
type SubtopicResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	TopicID uint   `json:"topic_id"`
}

// NewSubtopicResponse создает DTO для подтемы
func NewSubtopicResponse(subtopic *entity.Subtopic) SubtopicResponse {
	return SubtopicResponse{ID: subtopic.ID, Name: subtopic.Name, TopicID: subtopic.TopicID}
}

// CreateSubtopicRequest - запрос на создание подтемы
type CreateSubtopicRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	TopicID uint   `json:"topic_id" binding:"required"`
}

// UpdateSubtopicRequest - частичное обновление подтемы
type UpdateSubtopicRequest struct {
	Name    *string `json:"name" binding:"omitempty,max=100"`
	TopicID *uint   `json:"topic_id"`
}
