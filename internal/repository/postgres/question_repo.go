package postgres

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/yourusername/question-bank-api/internal/domain/entity"
	"github.com/yourusername/question-bank-api/internal/domain/repository"
	apperrors "github.com/yourusername/question-bank-api/internal/pkg/errors"
)

// Ключ и время жизни кеша общего количества вопросов.
const (
	totalCountCacheKey = "questions:total_count"
	totalCountCacheTTL = 5 * time.Minute
)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db    *gorm.DB
	cache repository.CacheRepository
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB, cache repository.CacheRepository) *QuestionRepo {
	return &QuestionRepo{db: db, cache: cache}
}

// CreateAggregate сохраняет вопрос вместе со всеми дочерними коллекциями
// в одной транзакции. После успешной записи сбрасывает кеш счетчика.
func (r *QuestionRepo) CreateAggregate(question *entity.Question) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(question).Error
	})
	if err != nil {
		return translatePgError(err, apperrors.ErrPersistence)
	}
	r.invalidateTotalCount()
	return nil
}

// GetPage возвращает страницу вопросов и общее количество записей.
// Количество берется из кеша, при промахе считается заново.
func (r *QuestionRepo) GetPage(page, limit int, view repository.QuestionView) ([]entity.Question, int64, error) {
	total, err := r.totalCount()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", apperrors.ErrRetrieval, err)
	}

	offset := (page - 1) * limit
	var questions []entity.Question
	query := r.applyPreloads(r.db, view)
	if err := query.Order("id").Offset(offset).Limit(limit).Find(&questions).Error; err != nil {
		return nil, 0, fmt.Errorf("%w: %v", apperrors.ErrRetrieval, err)
	}
	return questions, total, nil
}

// GetByID возвращает вопрос по ID с набором связей согласно представлению
func (r *QuestionRepo) GetByID(id uint, view repository.QuestionView) (*entity.Question, error) {
	var question entity.Question
	err := r.applyPreloads(r.db, view).First(&question, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrRetrieval, err)
	}
	return &question, nil
}

// GetAllFull возвращает все вопросы с полным набором связей.
// Используется выгрузкой в файл, пагинация здесь не нужна.
func (r *QuestionRepo) GetAllFull() ([]entity.Question, error) {
	var questions []entity.Question
	err := r.applyPreloads(r.db, repository.QuestionViewFull).Order("id").Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrRetrieval, err)
	}
	return questions, nil
}

// UpdateFields обновляет скалярные поля вопроса и возвращает свежую
// запись. Возвращает apperrors.ErrNotFound, если вопроса нет.
func (r *QuestionRepo) UpdateFields(id uint, fields map[string]interface{}) (*entity.Question, error) {
	result := r.db.Model(&entity.Question{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, translatePgError(result.Error, apperrors.ErrPersistence)
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.ErrNotFound
	}
	return r.GetByID(id, repository.QuestionViewSummary)
}

// ReplaceAreas полностью заменяет набор областей вопроса
func (r *QuestionRepo) ReplaceAreas(id uint, areas []entity.Area) error {
	question := entity.Question{ID: id}
	err := r.db.Model(&question).Association("Areas").Replace(areas)
	if err != nil {
		return translatePgError(err, apperrors.ErrPersistence)
	}
	return nil
}

// Delete удаляет вопрос. Дочерние записи удаляет база по каскаду.
// Возвращает false, если вопроса не было.
func (r *QuestionRepo) Delete(id uint) (bool, error) {
	result := r.db.Delete(&entity.Question{}, id)
	if result.Error != nil {
		return false, fmt.Errorf("%w: %v", apperrors.ErrDelete, result.Error)
	}
	if result.RowsAffected == 0 {
		return false, nil
	}
	r.invalidateTotalCount()
	return true, nil
}

// Exists проверяет существование вопроса без загрузки связей
func (r *QuestionRepo) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&entity.Question{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("%w: %v", apperrors.ErrRetrieval, err)
	}
	return count > 0, nil
}

// applyPreloads настраивает загрузку связей под представление.
// Краткое представление не тащит содержимое вариантов и решений.
func (r *QuestionRepo) applyPreloads(db *gorm.DB, view repository.QuestionView) *gorm.DB {
	query := db.
		Preload("Contents").
		Preload("Sources.Source.Institution").
		Preload("Areas")
	if view == repository.QuestionViewFull {
		query = query.
			Preload("Choices.Contents").
			Preload("Solutions.Contents")
	}
	return query
}

func (r *QuestionRepo) totalCount() (int64, error) {
	if r.cache != nil {
		if cached, err := r.cache.Get(totalCountCacheKey); err == nil {
			if total, convErr := strconv.ParseInt(cached, 10, 64); convErr == nil {
				return total, nil
			}
		}
	}

	var total int64
	if err := r.db.Model(&entity.Question{}).Count(&total).Error; err != nil {
		return 0, err
	}
	if r.cache != nil {
		if err := r.cache.Set(totalCountCacheKey, strconv.FormatInt(total, 10), totalCountCacheTTL); err != nil {
			// Кеш не критичен: значение уже получено из базы
			log.Printf("[QuestionRepo] Не удалось записать кеш счетчика: %v", err)
		}
	}
	return total, nil
}

func (r *QuestionRepo) invalidateTotalCount() {
	if r.cache == nil {
		return
	}
	if err := r.cache.Delete(totalCountCacheKey); err != nil {
		log.Printf("[QuestionRepo] Не удалось сбросить кеш счетчика: %v", err)
	}
}
