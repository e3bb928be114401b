package errors

import "errors"

// Доменные ошибки (исправимые клиентом, 4xx)
var (
	// ErrNotFound используется, когда запись или ресурс не найдены.
	ErrNotFound = errors.New("resource not found")

	// ErrDuplicateValue используется при нарушении уникальности
	// (например, коллизия question_hash).
	ErrDuplicateValue = errors.New("duplicate value")

	// ErrForeignKeyViolation используется, когда внешний ключ указывает
	// на несуществующую запись (запасной вариант после предварительной проверки).
	ErrForeignKeyViolation = errors.New("foreign key violation")

	// ErrNoCorrectChoice используется, когда у вопроса не остаётся ни одной
	// правильной альтернативы.
	ErrNoCorrectChoice = errors.New("no correct choice")

	// ErrMultipleCorrectChoices используется, когда помечено более одной
	// правильной альтернативы.
	ErrMultipleCorrectChoices = errors.New("multiple correct choices")

	// ErrDuplicateChoiceContent используется при дублировании нормализованного
	// текста среди альтернатив одного вопроса.
	ErrDuplicateChoiceContent = errors.New("duplicate choice content")

	// ErrContentType используется при недопустимом MIME-типе изображения.
	ErrContentType = errors.New("content type not allowed")

	// ErrValidation используется для прочих ошибок валидации входных данных.
	ErrValidation = errors.New("validation failed")
)

// Технические ошибки (сбои инфраструктуры, 5xx)
var (
	// ErrPersistence оборачивает некатегоризированный сбой хранилища при записи.
	ErrPersistence = errors.New("persistence error")

	// ErrRetrieval оборачивает сбой хранилища при чтении.
	ErrRetrieval = errors.New("retrieval error")

	// ErrDelete оборачивает сбой хранилища при удалении.
	ErrDelete = errors.New("delete error")

	// ErrStorage оборачивает сбой объектного хранилища.
	ErrStorage = errors.New("storage error")

	// ErrStorageBucketNotFound означает, что бакет объектного хранилища не найден.
	ErrStorageBucketNotFound = errors.New("storage bucket not found")

	// ErrStoragePermissionDenied означает отсутствие прав доступа к объектному хранилищу.
	ErrStoragePermissionDenied = errors.New("storage permission denied")
)

// Code возвращает стабильный машиночитаемый код для известной ошибки.
// Клиенты используют его для ветвления, поэтому значения менять нельзя.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "resource_not_found"
	case errors.Is(err, ErrDuplicateValue):
		return "duplicate_value"
	case errors.Is(err, ErrForeignKeyViolation):
		return "foreign_key_violation"
	case errors.Is(err, ErrNoCorrectChoice):
		return "no_correct_choice"
	case errors.Is(err, ErrMultipleCorrectChoices):
		return "multiple_correct_choices"
	case errors.Is(err, ErrDuplicateChoiceContent):
		return "duplicate_choice_content"
	case errors.Is(err, ErrContentType):
		return "content_type_error"
	case errors.Is(err, ErrValidation):
		return "validation_error"
	case errors.Is(err, ErrStorageBucketNotFound):
		return "storage_bucket_not_found"
	case errors.Is(err, ErrStoragePermissionDenied):
		return "storage_permission_denied"
	case errors.Is(err, ErrStorage):
		return "storage_error"
	case errors.Is(err, ErrPersistence):
		return "persistence_error"
	case errors.Is(err, ErrRetrieval):
		return "retrieval_error"
	case errors.Is(err, ErrDelete):
		return "delete_error"
	default:
		return "internal_error"
	}
}
