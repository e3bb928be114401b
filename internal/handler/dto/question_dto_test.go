package dto

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentRequest_OrderMustBePositive(t *testing.T) {
	var req ContentRequest

	// Нулевой порядок отклоняется на этапе привязки
	err := binding.JSON.BindBody([]byte(`{"type":"text","value":"Лима","order":0}`), &req)
	assert.Error(t, err)

	err = binding.JSON.BindBody([]byte(`{"type":"text","value":"Лима","order":-3}`), &req)
	assert.Error(t, err)

	err = binding.JSON.BindBody([]byte(`{"type":"text","value":"Лима","order":1}`), &req)
	require.NoError(t, err)
	assert.Equal(t, 1, req.Order)
}

func TestSourceRefRequest_PageMustBePositive(t *testing.T) {
	var req SourceRefRequest

	err := binding.JSON.BindBody([]byte(`{"source_id":3,"page":0}`), &req)
	assert.Error(t, err)

	err = binding.JSON.BindBody([]byte(`{"source_id":3,"page":12}`), &req)
	require.NoError(t, err)
	assert.Equal(t, 12, req.Page)
}

func TestUpdateContentRequest_OrderOptionalButPositive(t *testing.T) {
	var req UpdateContentRequest

	// Поле можно не передавать вовсе
	err := binding.JSON.BindBody([]byte(`{"value":"новый текст"}`), &req)
	require.NoError(t, err)
	assert.Nil(t, req.Order)

	err = binding.JSON.BindBody([]byte(`{"order":0}`), &req)
	assert.Error(t, err)
}

func TestUpdateQuestionSourceRequest_PageOptionalButPositive(t *testing.T) {
	var req UpdateQuestionSourceRequest

	err := binding.JSON.BindBody([]byte(`{"source_id":5}`), &req)
	require.NoError(t, err)
	assert.Nil(t, req.Page)

	err = binding.JSON.BindBody([]byte(`{"page":-1}`), &req)
	assert.Error(t, err)
}
