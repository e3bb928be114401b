package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/question-bank-api/internal/domain/entity"
	"github.com/yourusername/question-bank-api/internal/handler/dto"
	apperrors "github.com/yourusername/question-bank-api/internal/pkg/errors"
	"github.com/yourusername/question-bank-api/internal/service"
)

// TaxonomyHandler обрабатывает CRUD-запросы к таксономии:
// курсы, темы, подтемы, учреждения
type TaxonomyHandler struct {
	taxonomyService *service.TaxonomyService
}

// NewTaxonomyHandler создает новый обработчик таксономии
func NewTaxonomyHandler(taxonomyService *service.TaxonomyService) *TaxonomyHandler {
	return &TaxonomyHandler{taxonomyService: taxonomyService}
}

// CreateCourse создает новый курс
// POST /api/v1/courses
func (h *TaxonomyHandler) CreateCourse(c *gin.Context) {
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	course := &entity.Course{Name: req.Name, Code: req.Code}
	if err := h.taxonomyService.CreateCourse(course); err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, dto.NewCourseResponse(course))
}

// GetCourse возвращает курс по ID
// GET /api/v1/courses/:id
func (h *TaxonomyHandler) GetCourse(c *gin.Context) {
	courseID := c.MustGet("courseID").(uint)
	course, err := h.taxonomyService.GetCourse(courseID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, dto.NewCourseResponse(course))
}

// GetCourses возвращает страницу курсов
// GET /api/v1/courses
func (h *TaxonomyHandler) GetCourses(c *gin.Context) {
	page, limit := parsePageParams(c)
	courses, err := h.taxonomyService.GetCourses(page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	result := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		result = append(result, dto.NewCourseResponse(&courses[i]))
	}
	respondData(c, http.StatusOK, result)
}

// UpdateCourse применяет частичное обновление курса
// PATCH /api/v1/courses/:id
func (h *TaxonomyHandler) UpdateCourse(c *gin.Context) {
	courseID := c.MustGet("courseID").(uint)

	var req dto.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Code != nil {
		fields["code"] = *req.Code
	}

	course, err := h.taxonomyService.UpdateCourse(courseID, fields)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, dto.NewCourseResponse(course))
}

// DeleteCourse удаляет курс
// DELETE /api/v1/courses/:id
func (h *TaxonomyHandler) DeleteCourse(c *gin.Context) {
	courseID := c.MustGet("courseID").(uint)
	h.respondDelete(c, courseID, "course", h.taxonomyService.DeleteCourse)
}

// CreateTopic создает новую тему
// POST /api/v1/topics
func (h *TaxonomyHandler) CreateTopic(c *gin.Context) {
	var req dto.CreateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	topic := &entity.Topic{
		Name:        req.Name,
		Description: req.Description,
		CourseID:    req.CourseID,
	}
	if err := h.taxonomyService.CreateTopic(topic); err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, dto.NewTopicResponse(topic))
}

// GetTopic возвращает тему по ID
// GET /api/v1/topics/:id
func (h *TaxonomyHandler) GetTopic(c *gin.Context) {
	topicID := c.MustGet("topicID").(uint)
	topic, err := h.taxonomyService.GetTopic(topicID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, dto.NewTopicResponse(topic))
}

// GetTopics возвращает страницу тем
// GET /api/v1/topics
func (h *TaxonomyHandler) GetTopics(c *gin.Context) {
	page, limit := parsePageParams(c)
	topics, err := h.taxonomyService.GetTopics(page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	result := make([]dto.TopicResponse, 0, len(topics))
	for i := range topics {
		result = append(result, dto.NewTopicResponse(&topics[i]))
	}
	respondData(c, http.StatusOK, result)
}

// UpdateTopic применяет частичное обновление темы
// PATCH /api/v1/topics/:id
func (h *TaxonomyHandler) UpdateTopic(c *gin.Context) {
	topicID := c.MustGet("topicID").(uint)

	var req dto.UpdateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.CourseID != nil {
		fields["course_id"] = *req.CourseID
	}

	topic, err := h.taxonomyService.UpdateTopic(topicID, fields)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, dto.NewTopicResponse(topic))
}

// DeleteTopic удаляет тему
// DELETE /api/v1/topics/:id
func (h *TaxonomyHandler) DeleteTopic(c *gin.Context) {
	topicID := c.MustGet("topicID").(uint)
	h.respondDelete(c, topicID, "topic", h.taxonomyService.DeleteTopic)
}

// CreateSubtopic создает новую подтему
// POST /api/v1/subtopics
func (h *TaxonomyHandler) CreateSubtopic(c *gin.Context) {
	var req dto.CreateSubtopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	subtopic := &entity.Subtopic{Name: req.Name, TopicID: req.TopicID}
	if err := h.taxonomyService.CreateSubtopic(subtopic); err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, dto.NewSubtopicResponse(subtopic))
}

// GetSubtopic возвращает подтему по ID
// GET /api/v1/subtopics/:id
func (h *TaxonomyHandler) GetSubtopic(c *gin.Context) {
	subtopicID := c.MustGet("subtopicID").(uint)
	subtopic, err := h.taxonomyService.GetSubtopic(subtopicID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, dto.NewSubtopicResponse(subtopic))
}

// GetSubtopics возвращает страницу подтем
// GET /api/v1/subtopics
func (h *TaxonomyHandler) GetSubtopics(c *gin.Context) {
	page, limit := parsePageParams(c)
	subtopics, err := h.taxonomyService.GetSubtopics(page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	result := make([]dto.SubtopicResponse, 0, len(subtopics))
	for i := range subtopics {
		result = append(result, dto.NewSubtopicResponse(&subtopics[i]))
	}
	respondData(c, http.StatusOK, result)
}

// UpdateSubtopic применяет частичное обновление подтемы
// PATCH /api/v1/subtopics/:id
func (h *TaxonomyHandler) UpdateSubtopic(c *gin.Context) {
	subtopicID := c.MustGet("subtopicID").(uint)

	var req dto.UpdateSubtopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.TopicID != nil {
		fields["topic_id"] = *req.TopicID
	}

	subtopic, err := h.taxonomyService.UpdateSubtopic(subtopicID, fields)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, dto.NewSubtopicResponse(subtopic))
}

// DeleteSubtopic удаляет подтему
// DELETE /api/v1/subtopics/:id
func (h *TaxonomyHandler) DeleteSubtopic(c *gin.Context) {
	subtopicID := c.MustGet("subtopicID").(uint)
	h.respondDelete(c, subtopicID, "subtopic", h.taxonomyService.DeleteSubtopic)
}

// CreateInstitution создает новое учреждение
// POST /api/v1/institutions
func (h *TaxonomyHandler) CreateInstitution(c *gin.Context) {
	var req dto.CreateInstitutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	institution := &entity.Institution{
		Name: req.Name,
		Code: req.Code,
		Type: entity.InstitutionType(req.Type),
	}
	if err := h.taxonomyService.CreateInstitution(institution); err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, dto.NewInstitutionResponse(institution))
}

// GetInstitution возвращает учреждение по ID
// GET /api/v1/institutions/:id
func (h *TaxonomyHandler) GetInstitution(c *gin.Context) {
	institutionID := c.MustGet("institutionID").(uint)
	institution, err := h.taxonomyService.GetInstitution(institutionID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, dto.NewInstitutionResponse(institution))
}

// GetInstitutions возвращает страницу учреждений
// GET /api/v1/institutions
func (h *TaxonomyHandler) GetInstitutions(c *gin.Context) {
	page, limit := parsePageParams(c)
	institutions, err := h.taxonomyService.GetInstitutions(page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	result := make([]dto.InstitutionResponse, 0, len(institutions))
	for i := range institutions {
		result = append(result, dto.NewInstitutionResponse(&institutions[i]))
	}
	respondData(c, http.StatusOK, result)
}

// UpdateInstitution применяет частичное обновление учреждения
// PATCH /api/v1/institutions/:id
func (h *TaxonomyHandler) UpdateInstitution(c *gin.Context) {
	institutionID := c.MustGet("institutionID").(uint)

	var req dto.UpdateInstitutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Code != nil {
		fields["code"] = *req.Code
	}
	if req.Type != nil {
		fields["type"] = *req.Type
	}

	institution, err := h.taxonomyService.UpdateInstitution(institutionID, fields)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, dto.NewInstitutionResponse(institution))
}

// DeleteInstitution удаляет учреждение
// DELETE /api/v1/institutions/:id
func (h *TaxonomyHandler) DeleteInstitution(c *gin.Context) {
	institutionID := c.MustGet("institutionID").(uint)
	h.respondDelete(c, institutionID, "institution", h.taxonomyService.DeleteInstitution)
}

func (h *TaxonomyHandler) respondDelete(c *gin.Context, id uint, name string, del func(uint) (bool, error)) {
	deleted, err := del(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !deleted {
		respondError(c, fmt.Errorf("%w: %s %d", apperrors.ErrNotFound, name, id))
		return
	}
	c.Status(http.StatusNoContent)
}
