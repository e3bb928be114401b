package service

import (
	"github.com/yourusername/question-bank-api/internal/domain/entity"
	"github.com/yourusername/question-bank-api/internal/domain/repository"
)

// SourceService предоставляет методы для работы с источниками
type SourceService struct {
	sourceRepo repository.SourceRepository
}

// NewSourceService создает новый сервис источников
func NewSourceService(sourceRepo repository.SourceRepository) *SourceService {
	return &SourceService{sourceRepo: sourceRepo}
}

// GetSource возвращает источник по ID
func (s *SourceService) GetSource(id uint) (*entity.Source, error) {
	return s.sourceRepo.GetByID(id)
}

// GetSources возвращает страницу источников
func (s *SourceService) GetSources(page, limit int) ([]entity.Source, error) {
	return s.sourceRepo.List((page-1)*limit, limit)
}

// CreateSource создает новый источник
func (s *SourceService) CreateSource(source *entity.Source) error {
	return s.sourceRepo.Create(source)
}

// UpdateSource обновляет поля источника
func (s *SourceService) UpdateSource(id uint, fields map[string]interface{}) (*entity.Source, error) {
	return s.sourceRepo.Update(id, fields)
}

// DeleteSource удаляет источник
func (s *SourceService) DeleteSource(id uint) (bool, error) {
	return s.sourceRepo.Delete(id)
}
