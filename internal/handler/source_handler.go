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

// SourceHandler обрабатывает запросы, связанные с источниками
type SourceHandler struct {
	sourceService *service.SourceService
}

// NewSourceHandler создает новый обработчик источников
func NewSourceHandler(sourceService *service.SourceService) *SourceHandler {
	return &SourceHandler{sourceService: sourceService}
}

// GetSources возвращает страницу источников
// GET /api/v1/sources
func (h *SourceHandler) GetSources(c *gin.Context) {
	page, limit := parsePageParams(c)
	sources, err := h.sourceService.GetSources(page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	result := make([]*dto.SourceResponse, 0, len(sources))
	for i := range sources {
		result = append(result, dto.NewSourceResponse(&sources[i]))
	}
	respondData(c, http.StatusOK, result)
}

// GetSource возвращает источник по ID
// GET /api/v1/sources/:id
func (h *SourceHandler) GetSource(c *gin.Context) {
	sourceID := c.MustGet("sourceID").(uint)

	source, err := h.sourceService.GetSource(sourceID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, dto.NewSourceResponse(source))
}

// CreateSource создает новый источник
// POST /api/v1/sources
func (h *SourceHandler) CreateSource(c *gin.Context) {
	var req dto.CreateSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	source := &entity.Source{
		Name:          req.Name,
		Year:          req.Year,
		InstitutionID: req.InstitutionID,
	}
	if err := h.sourceService.CreateSource(source); err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, dto.NewSourceResponse(source))
}

// UpdateSource применяет частичное обновление источника
// PATCH /api/v1/sources/:id
func (h *SourceHandler) UpdateSource(c *gin.Context) {
	sourceID := c.MustGet("sourceID").(uint)

	var req dto.UpdateSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Year != nil {
		fields["year"] = *req.Year
	}
	if req.InstitutionID != nil {
		fields["institution_id"] = *req.InstitutionID
	}

	source, err := h.sourceService.UpdateSource(sourceID, fields)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, dto.NewSourceResponse(source))
}

// DeleteSource удаляет источник
// DELETE /api/v1/sources/:id
func (h *SourceHandler) DeleteSource(c *gin.Context) {
	sourceID := c.MustGet("sourceID").(uint)

	deleted, err := h.sourceService.DeleteSource(sourceID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !deleted {
		respondError(c, fmt.Errorf("%w: source %d", apperrors.ErrNotFound, sourceID))
		return
	}
	c.Status(http.StatusNoContent)
}
