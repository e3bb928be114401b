package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/question-bank-api/internal/domain/entity"
	"github.com/yourusername/question-bank-api/internal/handler/dto"
	"github.com/yourusername/question-bank-api/internal/service"
)

// AreaHandler обрабатывает запросы, связанные с областями знаний
type AreaHandler struct {
	areaService *service.AreaService
}

// NewAreaHandler создает новый обработчик областей
func NewAreaHandler(areaService *service.AreaService) *AreaHandler {
	return &AreaHandler{areaService: areaService}
}

// GetAreas возвращает все области
// GET /api/v1/areas
func (h *AreaHandler) GetAreas(c *gin.Context) {
	areas, err := h.areaService.GetAreas()
	if err != nil {
		respondError(c, err)
		return
	}
	result := make([]dto.AreaResponse, 0, len(areas))
	for i := range areas {
		result = append(result, dto.NewAreaResponse(&areas[i]))
	}
	respondData(c, http.StatusOK, result)
}

// CreateArea создает новую область
// POST /api/v1/areas
func (h *AreaHandler) CreateArea(c *gin.Context) {
	var req dto.CreateAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	area := &entity.Area{Name: req.Name, Code: req.Code}
	if err := h.areaService.CreateArea(area); err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, dto.NewAreaResponse(area))
}
