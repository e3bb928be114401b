package service

import (
	"github.com/yourusername/question-bank-api/internal/domain/entity"
	"github.com/yourusername/question-bank-api/internal/domain/repository"
)

// AreaService предоставляет методы для работы с областями знаний
type AreaService struct {
	areaRepo repository.AreaRepository
}

// NewAreaService создает новый сервис областей
func NewAreaService(areaRepo repository.AreaRepository) *AreaService {
	return &AreaService{areaRepo: areaRepo}
}

// GetAreas возвращает все области
func (s *AreaService) GetAreas() ([]entity.Area, error) {
	return s.areaRepo.List()
}

// CreateArea создает новую область
func (s *AreaService) CreateArea(area *entity.Area) error {
	return s.areaRepo.Create(area)
}
