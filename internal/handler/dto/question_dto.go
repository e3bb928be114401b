package dto

import (
	"time"

	"github.com/yourusername/question-bank-api/internal/domain/entity"
)

// ContentRequest - блок контента в запросе на создание
type ContentRequest struct {
	Type  string `json:"type" binding:"required,oneof=text image"`
	Value string `json:"value" binding:"required"`
	Order int    `json:"order" binding:"required,gte=1"`
	Label string `json:"label"`
}

// ChoiceRequest - вариант ответа в запросе на создание
type ChoiceRequest struct {
	Label     string           `json:"label" binding:"required,len=1"`
	IsCorrect bool             `json:"is_correct"`
	Contents  []ContentRequest `json:"contents" binding:"required,min=1,dive"`
}

// SolutionRequest - решение в запросе на создание
type SolutionRequest struct {
	Contents []ContentRequest `json:"contents" binding:"required,min=1,dive"`
}

// SourceRefRequest - привязка к источнику в запросе на создание
type SourceRefRequest struct {
	SourceID uint `json:"source_id" binding:"required"`
	Page     int  `json:"page" binding:"required,gt=0"`
}

// CreateQuestionRequest - запрос на создание вопроса целиком
type CreateQuestionRequest struct {
	QuestionTypeID uint               `json:"question_type_id" binding:"required"`
	SubtopicID     uint               `json:"subtopic_id" binding:"required"`
	DifficultyID   uint               `json:"difficulty_id" binding:"required"`
	Contents       []ContentRequest   `json:"contents" binding:"required,min=1,dive"`
	Choices        []ChoiceRequest    `json:"choices" binding:"required,min=2,dive"`
	Solutions      []SolutionRequest  `json:"solutions" binding:"dive"`
	Sources        []SourceRefRequest `json:"sources" binding:"dive"`
	AreaIDs        []uint             `json:"area_ids"`
}

// ToEntity собирает агрегат вопроса из запроса.
// Хеш здесь не считается, это забота сервиса.
func (r *CreateQuestionRequest) ToEntity() *entity.Question {
	question := &entity.Question{
		QuestionTypeID: r.QuestionTypeID,
		SubtopicID:     r.SubtopicID,
		DifficultyID:   r.DifficultyID,
	}
	for _, c := range r.Contents {
		question.Contents = append(question.Contents, entity.QuestionContent{
			ContentData: toContentData(c),
		})
	}
	for _, ch := range r.Choices {
		choice := entity.Choice{
			Label:     ch.Label,
			IsCorrect: ch.IsCorrect,
		}
		for _, c := range ch.Contents {
			choice.Contents = append(choice.Contents, entity.ChoiceContent{
				ContentData: toContentData(c),
			})
		}
		question.Choices = append(question.Choices, choice)
	}
	for _, sol := range r.Solutions {
		solution := entity.Solution{}
		for _, c := range sol.Contents {
			solution.Contents = append(solution.Contents, entity.SolutionContent{
				ContentData: toContentData(c),
			})
		}
		question.Solutions = append(question.Solutions, solution)
	}
	for _, src := range r.Sources {
		question.Sources = append(question.Sources, entity.QuestionSource{
			SourceID: src.SourceID,
			Page:     src.Page,
		})
	}
	return question
}

func toContentData(c ContentRequest) entity.ContentData {
	return entity.ContentData{
		Type:  entity.ContentType(c.Type),
		Value: c.Value,
		Order: c.Order,
		Label: c.Label,
	}
}

// UpdateReferenceRequest - запрос на смену одной справочной ссылки
type UpdateReferenceRequest struct {
	ID uint `json:"id" binding:"required"`
}

// ReplaceAreasRequest - запрос на полную замену набора областей
type ReplaceAreasRequest struct {
	AreaIDs []uint `json:"area_ids" binding:"required"`
}

// UpdateContentRequest - частичное обновление блока контента
type UpdateContentRequest struct {
	Type  *string `json:"type" binding:"omitempty,oneof=text image"`
	Value *string `json:"value"`
	Order *int    `json:"order" binding:"omitempty,gte=1"`
	Label *string `json:"label"`
}

// UpdateChoiceRequest - частичное обновление варианта ответа
type UpdateChoiceRequest struct {
	Label     *string          `json:"label" binding:"omitempty,len=1"`
	IsCorrect *bool            `json:"is_correct"`
	Contents  []ContentRequest `json:"contents" binding:"omitempty,min=1,dive"`
}

// ReplaceSolutionRequest - полная замена содержимого решения
type ReplaceSolutionRequest struct {
	Contents []ContentRequest `json:"contents" binding:"required,min=1,dive"`
}

// UpdateQuestionSourceRequest - частичное обновление привязки к источнику
type UpdateQuestionSourceRequest struct {
	SourceID *uint `json:"source_id"`
	Page     *int  `json:"page" binding:"omitempty,gt=0"`
}

// ContentResponse представляет блок контента в ответе клиенту
type ContentResponse struct {
	ID    uint   `json:"id"`
	Type  string `json:"type"`
	Value string `json:"value"`
	Order int    `json:"order"`
	Label string `json:"label,omitempty"`
}

// ChoiceResponse представляет вариант ответа в ответе клиенту
type ChoiceResponse struct {
	ID        uint              `json:"id"`
	Label     string            `json:"label"`
	IsCorrect bool              `json:"is_correct"`
	Contents  []ContentResponse `json:"contents,omitempty"`
}

// SolutionResponse представляет решение в ответе клиенту
type SolutionResponse struct {
	ID       uint              `json:"id"`
	Contents []ContentResponse `json:"contents,omitempty"`
}

// QuestionSourceResponse представляет привязку к источнику
type QuestionSourceResponse struct {
	ID       uint            `json:"id"`
	SourceID uint            `json:"source_id"`
	Page     int             `json:"page,omitempty"`
	Source   *SourceResponse `json:"source,omitempty"`
}

// QuestionResponse представляет вопрос в формате для ответа клиенту
type QuestionResponse struct {
	ID           uint                     `json:"id"`
	QuestionHash string                   `json:"question_hash"`
	Type         uint                     `json:"question_type_id"`
	SubtopicID   uint                     `json:"subtopic_id"`
	DifficultyID uint                     `json:"difficulty_id"`
	Contents     []ContentResponse        `json:"contents"`
	Choices      []ChoiceResponse         `json:"choices,omitempty"`
	Solutions    []SolutionResponse       `json:"solutions,omitempty"`
	Sources      []QuestionSourceResponse `json:"sources,omitempty"`
	Areas        []AreaResponse           `json:"areas,omitempty"`
	CreatedAt    time.Time                `json:"created_at"`
	UpdatedAt    time.Time                `json:"updated_at"`
}

// NewQuestionResponse создает DTO для вопроса
func NewQuestionResponse(q *entity.Question) *QuestionResponse {
	resp := &QuestionResponse{
		ID:           q.ID,
		QuestionHash: q.QuestionHash,
		Type:         q.QuestionTypeID,
		SubtopicID:   q.SubtopicID,
		DifficultyID: q.DifficultyID,
		CreatedAt:    q.CreatedAt,
		UpdatedAt:    q.UpdatedAt,
	}
	for _, c := range q.Contents {
		resp.Contents = append(resp.Contents, newContentResponse(c.ID, c.ContentData))
	}
	for _, ch := range q.Choices {
		choice := ChoiceResponse{
			ID:        ch.ID,
			Label:     ch.Label,
			IsCorrect: ch.IsCorrect,
		}
		for _, c := range ch.Contents {
			choice.Contents = append(choice.Contents, newContentResponse(c.ID, c.ContentData))
		}
		resp.Choices = append(resp.Choices, choice)
	}
	for _, sol := range q.Solutions {
		solution := SolutionResponse{ID: sol.ID}
		for _, c := range sol.Contents {
			solution.Contents = append(solution.Contents, newContentResponse(c.ID, c.ContentData))
		}
		resp.Solutions = append(resp.Solutions, solution)
	}
	for _, src := range q.Sources {
		qs := QuestionSourceResponse{
			ID:       src.ID,
			SourceID: src.SourceID,
			Page:     src.Page,
		}
		if src.Source != nil {
			qs.Source = NewSourceResponse(src.Source)
		}
		resp.Sources = append(resp.Sources, qs)
	}
	for _, area := range q.Areas {
		resp.Areas = append(resp.Areas, NewAreaResponse(&area))
	}
	return resp
}

// NewListQuestionResponse создает список DTO вопросов
func NewListQuestionResponse(questions []entity.Question) []*QuestionResponse {
	result := make([]*QuestionResponse, 0, len(questions))
	for i := range questions {
		result = append(result, NewQuestionResponse(&questions[i]))
	}
	return result
}

func newContentResponse(id uint, data entity.ContentData) ContentResponse {
	return ContentResponse{
		ID:    id,
		Type:  string(data.Type),
		Value: data.Value,
		Order: data.Order,
		Label: data.Label,
	}
}

// NewChoiceResponse создает DTO для варианта ответа
func NewChoiceResponse(ch *entity.Choice) *ChoiceResponse {
	choice := &ChoiceResponse{
		ID:        ch.ID,
		Label:     ch.Label,
		IsCorrect: ch.IsCorrect,
	}
	for _, c := range ch.Contents {
		choice.Contents = append(choice.Contents, newContentResponse(c.ID, c.ContentData))
	}
	return choice
}

// NewSolutionResponse создает DTO для решения
func NewSolutionResponse(sol *entity.Solution) *SolutionResponse {
	solution := &SolutionResponse{ID: sol.ID}
	for _, c := range sol.Contents {
		solution.Contents = append(solution.Contents, newContentResponse(c.ID, c.ContentData))
	}
	return solution
}

// NewQuestionSourceResponse создает DTO для привязки к источнику
func NewQuestionSourceResponse(qs *entity.QuestionSource) *QuestionSourceResponse {
	resp := &QuestionSourceResponse{
		ID:       qs.ID,
		SourceID: qs.SourceID,
		Page:     qs.Page,
	}
	if qs.Source != nil {
		resp.Source = NewSourceResponse(qs.Source)
	}
	return resp
}

// UploadImageResponse - ответ на загрузку изображения
type UploadImageResponse struct {
	ObjectKey string `json:"object_key"`
}
