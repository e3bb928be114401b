package service

import (
	"context"
	"fmt"

	"github.com/yourusername/question-bank-api/internal/domain/entity"
	"github.com/yourusername/question-bank-api/internal/storage"
)

// ImageResolver подменяет ключи изображений подписанными ссылками
// в загруженных агрегатах. Значения в базе не трогаются: подмена
// происходит в памяти на каждое чтение, поэтому ссылки всегда свежие.
type ImageResolver struct {
	storage storage.ObjectStorage
}

// NewImageResolver создает новый резолвер изображений
func NewImageResolver(objectStorage storage.ObjectStorage) *ImageResolver {
	return &ImageResolver{storage: objectStorage}
}

// ResolveQuestion подписывает все изображения агрегата.
// Ошибка подписи прерывает обход: чтение либо отдает полностью
// подписанный агрегат, либо завершается ошибкой хранилища.
// В кратком представлении вложенные коллекции пусты, лишних
// обращений к хранилищу не происходит.
func (r *ImageResolver) ResolveQuestion(ctx context.Context, question *entity.Question) error {
	for i := range question.Contents {
		if err := r.resolve(ctx, &question.Contents[i].ContentData); err != nil {
			return err
		}
	}
	for i := range question.Choices {
		for j := range question.Choices[i].Contents {
			if err := r.resolve(ctx, &question.Choices[i].Contents[j].ContentData); err != nil {
				return err
			}
		}
	}
	for i := range question.Solutions {
		for j := range question.Solutions[i].Contents {
			if err := r.resolve(ctx, &question.Solutions[i].Contents[j].ContentData); err != nil {
				return err
			}
		}
	}
	return nil
}

// ResolveContent подписывает изображение одного блока контента вопроса
func (r *ImageResolver) ResolveContent(ctx context.Context, content *entity.QuestionContent) error {
	return r.resolve(ctx, &content.ContentData)
}

// ResolveChoice подписывает изображения варианта ответа
func (r *ImageResolver) ResolveChoice(ctx context.Context, choice *entity.Choice) error {
	for i := range choice.Contents {
		if err := r.resolve(ctx, &choice.Contents[i].ContentData); err != nil {
			return err
		}
	}
	return nil
}

// ResolveSolution подписывает изображения решения
func (r *ImageResolver) ResolveSolution(ctx context.Context, solution *entity.Solution) error {
	for i := range solution.Contents {
		if err := r.resolve(ctx, &solution.Contents[i].ContentData); err != nil {
			return err
		}
	}
	return nil
}

// ResolveQuestions подписывает изображения у набора агрегатов
func (r *ImageResolver) ResolveQuestions(ctx context.Context, questions []entity.Question) error {
	for i := range questions {
		if err := r.ResolveQuestion(ctx, &questions[i]); err != nil {
			return err
		}
	}
	return nil
}

// resolve подменяет значение изображения подписанной ссылкой,
// текстовые блоки не изменяет
func (r *ImageResolver) resolve(ctx context.Context, content *entity.ContentData) error {
	if content.Type != entity.ContentTypeImage {
		return nil
	}
	url, err := r.storage.SignURL(ctx, content.Value)
	if err != nil {
		return fmt.Errorf("не удалось подписать ссылку для объекта %s: %w", content.Value, err)
	}
	content.Value = url
	return nil
}
