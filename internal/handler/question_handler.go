package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/question-bank-api/internal/domain/entity"
	"github.com/yourusername/question-bank-api/internal/domain/repository"
	"github.com/yourusername/question-bank-api/internal/handler/dto"
	"github.com/yourusername/question-bank-api/internal/service"
)

// Ограничения страничной выборки
const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// QuestionHandler обрабатывает запросы, связанные с вопросами
type QuestionHandler struct {
	questionService       *service.QuestionService
	choiceService         *service.ChoiceService
	solutionService       *service.SolutionService
	contentService        *service.QuestionContentService
	questionSourceService *service.QuestionSourceService
}

// NewQuestionHandler создает новый обработчик вопросов
func NewQuestionHandler(
	questionService *service.QuestionService,
	choiceService *service.ChoiceService,
	solutionService *service.SolutionService,
	contentService *service.QuestionContentService,
	questionSourceService *service.QuestionSourceService,
) *QuestionHandler {
	return &QuestionHandler{
		questionService:       questionService,
		choiceService:         choiceService,
		solutionService:       solutionService,
		contentService:        contentService,
		questionSourceService: questionSourceService,
	}
}

// CreateQuestion создает вопрос вместе со всеми дочерними коллекциями
// POST /api/v1/questions
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	question, err := h.questionService.CreateQuestion(c.Request.Context(), req.ToEntity(), req.AreaIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, dto.NewQuestionResponse(question))
}

// GetQuestions возвращает страницу вопросов
// GET /api/v1/questions?page=1&size=20&view=summary|full
func (h *QuestionHandler) GetQuestions(c *gin.Context) {
	page, limit := parsePageParams(c)
	view := parseView(c)

	questions, pagination, err := h.questionService.GetQuestions(c.Request.Context(), page, limit, view)
	if err != nil {
		respondError(c, err)
		return
	}
	respondPage(c, dto.NewListQuestionResponse(questions), dto.NewPageMeta(pagination))
}

// GetQuestion возвращает вопрос по ID
// GET /api/v1/questions/:id?view=summary|full
func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	questionID := c.MustGet("questionID").(uint)
	view := parseView(c)

	question, err := h.questionService.GetQuestion(c.Request.Context(), questionID, view)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, dto.NewQuestionResponse(question))
}

// DeleteQuestion удаляет вопрос вместе с дочерними записями
// DELETE /api/v1/questions/:id
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID := c.MustGet("questionID").(uint)

	if err := h.questionService.DeleteQuestion(questionID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateQuestionType меняет тип вопроса
// PATCH /api/v1/questions/:id/question-type
func (h *QuestionHandler) UpdateQuestionType(c *gin.Context) {
	h.updateReference(c, h.questionService.UpdateQuestionType)
}

// UpdateSubtopic меняет подтему вопроса
// PATCH /api/v1/questions/:id/subtopic
func (h *QuestionHandler) UpdateSubtopic(c *gin.Context) {
	h.updateReference(c, h.questionService.UpdateSubtopic)
}

// UpdateDifficulty меняет сложность вопроса
// PATCH /api/v1/questions/:id/difficulty
func (h *QuestionHandler) UpdateDifficulty(c *gin.Context) {
	h.updateReference(c, h.questionService.UpdateDifficulty)
}

// ReplaceAreas полностью заменяет набор областей вопроса
// PATCH /api/v1/questions/:id/areas
func (h *QuestionHandler) ReplaceAreas(c *gin.Context) {
	questionID := c.MustGet("questionID").(uint)

	var req dto.ReplaceAreasRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	question, err := h.questionService.ReplaceAreas(questionID, req.AreaIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, dto.NewQuestionResponse(question))
}

// UpdateContent применяет частичное обновление блока контента вопроса
// PATCH /api/v1/questions/:id/contents/:contentID
func (h *QuestionHandler) UpdateContent(c *gin.Context) {
	questionID := c.MustGet("questionID").(uint)
	contentID := c.MustGet("contentID").(uint)

	var req dto.UpdateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	update := service.QuestionContentUpdate{
		Value: req.Value,
		Order: req.Order,
		Label: req.Label,
	}
	if req.Type != nil {
		contentType := toContentType(*req.Type)
		update.Type = &contentType
	}

	content, err := h.contentService.UpdateContent(c.Request.Context(), questionID, contentID, update)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, dto.ContentResponse{
		ID:    content.ID,
		Type:  string(content.Type),
		Value: content.Value,
		Order: content.Order,
		Label: content.Label,
	})
}

// UpdateChoice применяет частичное обновление варианта ответа
// PATCH /api/v1/questions/:id/choices/:choiceID
func (h *QuestionHandler) UpdateChoice(c *gin.Context) {
	questionID := c.MustGet("questionID").(uint)
	choiceID := c.MustGet("choiceID").(uint)

	var req dto.UpdateChoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	update := repository.ChoiceUpdate{
		Label:     req.Label,
		IsCorrect: req.IsCorrect,
	}
	if req.Contents != nil {
		update.Contents = toChoiceContents(req.Contents)
	}

	choice, err := h.choiceService.UpdateChoice(c.Request.Context(), questionID, choiceID, update)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, dto.NewChoiceResponse(choice))
}

// ReplaceSolutionContents полностью заменяет содержимое решения
// PATCH /api/v1/questions/:id/solutions/:solutionID
func (h *QuestionHandler) ReplaceSolutionContents(c *gin.Context) {
	questionID := c.MustGet("questionID").(uint)
	solutionID := c.MustGet("solutionID").(uint)

	var req dto.ReplaceSolutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	solution, err := h.solutionService.ReplaceContents(c.Request.Context(), questionID, solutionID, toSolutionContents(req.Contents))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, dto.NewSolutionResponse(solution))
}

// UpdateQuestionSource применяет частичное обновление привязки к источнику
// PATCH /api/v1/questions/:id/sources/:questionSourceID
func (h *QuestionHandler) UpdateQuestionSource(c *gin.Context) {
	questionID := c.MustGet("questionID").(uint)
	questionSourceID := c.MustGet("questionSourceID").(uint)

	var req dto.UpdateQuestionSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	qs, err := h.questionSourceService.UpdateQuestionSource(questionID, questionSourceID, service.QuestionSourceUpdate{
		SourceID: req.SourceID,
		Page:     req.Page,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, dto.NewQuestionSourceResponse(qs))
}

func (h *QuestionHandler) updateReference(c *gin.Context, update func(id, refID uint) (*entity.Question, error)) {
	questionID := c.MustGet("questionID").(uint)

	var req dto.UpdateReferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	question, err := update(questionID, req.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, dto.NewQuestionResponse(question))
}

func toContentType(s string) entity.ContentType {
	return entity.ContentType(s)
}

func toChoiceContents(contents []dto.ContentRequest) []entity.ChoiceContent {
	result := make([]entity.ChoiceContent, 0, len(contents))
	for _, c := range contents {
		result = append(result, entity.ChoiceContent{ContentData: toContentData(c)})
	}
	return result
}

func toSolutionContents(contents []dto.ContentRequest) []entity.SolutionContent {
	result := make([]entity.SolutionContent, 0, len(contents))
	for _, c := range contents {
		result = append(result, entity.SolutionContent{ContentData: toContentData(c)})
	}
	return result
}

func toContentData(c dto.ContentRequest) entity.ContentData {
	return entity.ContentData{
		Type:  entity.ContentType(c.Type),
		Value: c.Value,
		Order: c.Order,
		Label: c.Label,
	}
}

func parsePageParams(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(defaultPageSize)))
	if err != nil || limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}

func parseView(c *gin.Context) repository.QuestionView {
	if c.DefaultQuery("view", string(repository.QuestionViewSummary)) == string(repository.QuestionViewFull) {
		return repository.QuestionViewFull
	}
	return repository.QuestionViewSummary
}
