package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination_RoundsUp(t *testing.T) {
	// Act
	p := NewPagination(101, 1, 20)

	// Assert
	assert.Equal(t, 6, p.TotalPages, "101 записей по 20 - это 6 страниц")
	assert.True(t, p.HasNext)
	assert.False(t, p.HasPrev)
}

func TestNewPagination_EmptyCollection(t *testing.T) {
	// Act
	p := NewPagination(0, 1, 20)

	// Assert: даже для пустой коллекции страниц минимум одна
	assert.Equal(t, 1, p.TotalPages, "Пустая коллекция - всё равно одна страница")
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}

func TestNewPagination_ExactMultiple(t *testing.T) {
	// Act
	p := NewPagination(100, 5, 20)

	// Assert
	assert.Equal(t, 5, p.TotalPages)
	assert.False(t, p.HasNext, "Последняя страница не имеет следующей")
	assert.True(t, p.HasPrev)
}

func TestNewPagination_MiddlePage(t *testing.T) {
	// Act
	p := NewPagination(50, 2, 10)

	// Assert
	assert.Equal(t, 5, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)
	assert.Equal(t, int64(50), p.Total)
	assert.Equal(t, 2, p.Page)
}
