package handler

import (
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/question-bank-api/internal/domain/entity"
)

// ExportQuestions экспортирует банк вопросов в CSV или Excel формате
// GET /api/v1/questions/export?format=csv|xlsx
func (h *QuestionHandler) ExportQuestions(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")

	// Получаем ВСЕ вопросы без пагинации для экспорта
	questions, err := h.questionService.GetAllQuestionsFull()
	if err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("questions_%s", time.Now().Format("2006-01-02"))

	switch format {
	case "xlsx":
		h.exportXLSX(c, questions, filename)
	default:
		h.exportCSV(c, questions, filename)
	}
}

// Заголовки колонок выгрузки
var exportHeaders = []string{"ID", "Хеш", "Тип", "Подтема", "Сложность", "Формулировка", "Правильный вариант", "Вариантов", "Решений", "Областей"}

// exportCSV экспортирует вопросы в CSV с правильным экранированием спецсимволов
func (h *QuestionHandler) exportCSV(c *gin.Context, questions []entity.Question, filename string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.csv\"", filename))

	// BOM для корректного отображения UTF-8 в Excel
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	// Используем encoding/csv для правильного экранирования запятых/кавычек
	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(exportHeaders)

	for i := range questions {
		q := &questions[i]
		writer.Write([]string{
			strconv.FormatUint(uint64(q.ID), 10),
			q.QuestionHash,
			strconv.FormatUint(uint64(q.QuestionTypeID), 10),
			strconv.FormatUint(uint64(q.SubtopicID), 10),
			strconv.FormatUint(uint64(q.DifficultyID), 10),
			sanitizeForExcel(questionText(q)),
			correctChoiceLabel(q),
			strconv.Itoa(len(q.Choices)),
			strconv.Itoa(len(q.Solutions)),
			strconv.Itoa(len(q.Areas)),
		})
	}
}

// exportXLSX экспортирует вопросы в Excel с использованием StreamWriter
func (h *QuestionHandler) exportXLSX(c *gin.Context, questions []entity.Question, filename string) {
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Вопросы"
	f.SetSheetName("Sheet1", sheetName)

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		log.Printf("[QuestionHandler] Ошибка создания StreamWriter: %v", err)
		respondError(c, err)
		return
	}

	headers := make([]interface{}, len(exportHeaders))
	for i, h := range exportHeaders {
		headers[i] = h
	}
	if err := sw.SetRow("A1", headers); err != nil {
		log.Printf("[QuestionHandler] Ошибка записи заголовков: %v", err)
	}

	for i := range questions {
		q := &questions[i]
		rowNum := i + 2 // Начинаем со 2 строки (1 - заголовки)
		cell := fmt.Sprintf("A%d", rowNum)

		row := []interface{}{
			q.ID,
			q.QuestionHash,
			q.QuestionTypeID,
			q.SubtopicID,
			q.DifficultyID,
			sanitizeForExcel(questionText(q)),
			correctChoiceLabel(q),
			len(q.Choices),
			len(q.Solutions),
			len(q.Areas),
		}
		if err := sw.SetRow(cell, row); err != nil {
			log.Printf("[QuestionHandler] Ошибка записи строки %d: %v", rowNum, err)
		}
	}

	if err := sw.Flush(); err != nil {
		log.Printf("[QuestionHandler] Ошибка при Flush: %v", err)
	}

	if err := f.Write(c.Writer); err != nil {
		log.Printf("[QuestionHandler] Ошибка записи Excel в response: %v", err)
	}
	c.Status(http.StatusOK)
}

// questionText склеивает текстовые блоки формулировки для выгрузки.
// Изображения обозначаются ключом объекта в квадратных скобках.
func questionText(q *entity.Question) string {
	var parts []string
	for _, content := range q.Contents {
		if content.Type == entity.ContentTypeImage {
			parts = append(parts, "["+content.Value+"]")
			continue
		}
		parts = append(parts, content.Value)
	}
	return strings.Join(parts, " ")
}

func correctChoiceLabel(q *entity.Question) string {
	for _, choice := range q.Choices {
		if choice.IsCorrect {
			return choice.Label
		}
	}
	return ""
}

// sanitizeForExcel экранирует данные для защиты от formula injection в Excel/CSV
func sanitizeForExcel(s string) string {
	if len(s) == 0 {
		return s
	}
	// Символы, начинающие формулу в Excel/LibreOffice: = + - @ \t \r
	if s[0] == '=' || s[0] == '+' || s[0] == '-' || s[0] == '@' || s[0] == '\t' || s[0] == '\r' {
		return "'" + s
	}
	return s
}
