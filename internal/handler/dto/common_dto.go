package dto

import (
	"github.com/yourusername/question-bank-api/internal/domain/repository"
)

// DataResponse - единый конверт успешного ответа
type DataResponse struct {
	Data interface{} `json:"data"`
	Meta *PageMeta   `json:"meta,omitempty"`
}

// PageMeta - метаданные пагинации в конверте ответа
type PageMeta struct {
	Page  int   `json:"page"`
	Size  int   `json:"size"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// ErrorBody - тело ошибки со стабильным машинным кодом
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse - единый конверт ошибки
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// NewPageMeta создает метаданные пагинации из доменной структуры
func NewPageMeta(p repository.Pagination) *PageMeta {
	return &PageMeta{
		Page:  p.Page,
		Size:  p.Limit,
		Total: p.Total,
		Pages: p.TotalPages,
	}
}
