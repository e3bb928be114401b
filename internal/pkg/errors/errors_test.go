package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode_KnownErrors(t *testing.T) {
	cases := []struct {
		err  error
		code string
	}{
		{ErrNotFound, "resource_not_found"},
		{ErrDuplicateValue, "duplicate_value"},
		{ErrForeignKeyViolation, "foreign_key_violation"},
		{ErrNoCorrectChoice, "no_correct_choice"},
		{ErrMultipleCorrectChoices, "multiple_correct_choices"},
		{ErrDuplicateChoiceContent, "duplicate_choice_content"},
		{ErrContentType, "content_type_error"},
		{ErrValidation, "validation_error"},
		{ErrPersistence, "persistence_error"},
		{ErrRetrieval, "retrieval_error"},
		{ErrDelete, "delete_error"},
		{ErrStorage, "storage_error"},
		{ErrStorageBucketNotFound, "storage_bucket_not_found"},
		{ErrStoragePermissionDenied, "storage_permission_denied"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.code, Code(tc.err), "Код для %v", tc.err)
	}
}

func TestCode_WrappedError(t *testing.T) {
	// Обёртки не должны менять машинный код
	wrapped := fmt.Errorf("%w: question 42", ErrNotFound)
	assert.Equal(t, "resource_not_found", Code(wrapped))

	doubleWrapped := fmt.Errorf("context: %w", wrapped)
	assert.Equal(t, "resource_not_found", Code(doubleWrapped))
}

func TestCode_UnknownError(t *testing.T) {
	assert.Equal(t, "internal_error", Code(errors.New("что-то пошло не так")))
}
