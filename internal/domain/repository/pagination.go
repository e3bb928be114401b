package repository

// Pagination описывает метаданные страничной выборки.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"pages"`
	HasNext    bool  `json:"-"`
	HasPrev    bool  `json:"-"`
}

// NewPagination строит метаданные по общему числу записей.
// Количество страниц никогда не бывает меньше единицы,
// даже для пустой коллекции.
func NewPagination(total int64, page, limit int) Pagination {
	if limit < 1 {
		limit = 1
	}
	pages := int((total + int64(limit) - 1) / int64(limit))
	if pages < 1 {
		pages = 1
	}
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: pages,
		HasNext:    page < pages,
		HasPrev:    page > 1,
	}
}
