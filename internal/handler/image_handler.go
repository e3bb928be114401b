package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/question-bank-api/internal/handler/dto"
	"github.com/yourusername/question-bank-api/internal/service"
)

// Максимальный размер загружаемого изображения
const maxImageSize = 10 << 20 // 10 MiB

// ImageHandler обрабатывает загрузку изображений
type ImageHandler struct {
	imageService *service.ImageService
}

// NewImageHandler создает новый обработчик изображений
func NewImageHandler(imageService *service.ImageService) *ImageHandler {
	return &ImageHandler{imageService: imageService}
}

// UploadImage принимает изображение через multipart-форму и возвращает
// ключ объекта в хранилище. Именно этот ключ кладут в блоки контента
// типа image, а не временную ссылку.
// POST /api/v1/images
func (h *ImageHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondBindError(c, err)
		return
	}
	if fileHeader.Size > maxImageSize {
		c.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{Error: dto.ErrorBody{
			Code:    "validation_error",
			Message: "file is too large",
		}})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	objectKey, err := h.imageService.UploadImage(c.Request.Context(), file, fileHeader.Size, contentType)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, dto.UploadImageResponse{ObjectKey: objectKey})
}
