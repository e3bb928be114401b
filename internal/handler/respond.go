package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/question-bank-api/internal/handler/dto"
	apperrors "github.com/yourusername/question-bank-api/internal/pkg/errors"
)

// respondData отправляет успешный ответ в едином конверте
func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, dto.DataResponse{Data: data})
}

// respondPage отправляет страницу данных с метаданными пагинации
func respondPage(c *gin.Context, data interface{}, meta *dto.PageMeta) {
	c.JSON(http.StatusOK, dto.DataResponse{Data: data, Meta: meta})
}

// respondError переводит доменные ошибки в HTTP-статусы.
// Машинный код ошибки стабилен и не зависит от текста сообщения.
// Технические ошибки наружу не детализируются.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	body := dto.ErrorBody{Code: apperrors.Code(err), Message: err.Error()}
	if status >= http.StatusInternalServerError {
		log.Printf("ERROR: Internal server error: %v", err)
		body.Message = "Internal server error"
	}
	c.JSON(status, dto.ErrorResponse{Error: body})
}

// respondBindError оформляет ошибку разбора запроса
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: dto.ErrorBody{
		Code:    "validation_error",
		Message: err.Error(),
	}})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicateValue):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrForeignKeyViolation),
		errors.Is(err, apperrors.ErrNoCorrectChoice),
		errors.Is(err, apperrors.ErrMultipleCorrectChoices),
		errors.Is(err, apperrors.ErrDuplicateChoiceContent),
		errors.Is(err, apperrors.ErrContentType),
		errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
