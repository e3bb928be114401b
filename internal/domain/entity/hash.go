package entity

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// GenerateQuestionHash вычисляет детерминированный отпечаток формулировки
// вопроса для обнаружения дубликатов.
//
// Алгоритм: блоки сортируются по order по возрастанию; значения текстовых
// блоков (trim + lower) конкатенируются по порядку до первого блока-изображения
// - изображения и всё, что после них, в хеш не входят. От полученной строки
// берётся SHA-256 в hex-кодировке.
//
// Вопрос, состоящий только из изображений, даёт хеш пустой строки: любые два
// таких вопроса коллидируют по хешу. Поведение сохранено как есть до решения
// на уровне продукта.
func GenerateQuestionHash(contents []QuestionContent) string {
	ordered := make([]QuestionContent, len(contents))
	copy(ordered, contents)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Order < ordered[j].Order
	})

	var base strings.Builder
	for _, item := range ordered {
		if item.Type == ContentTypeImage {
			break
		}
		base.WriteString(strings.ToLower(strings.TrimSpace(item.Value)))
	}

	sum := sha256.Sum256([]byte(base.String()))
	return hex.EncodeToString(sum[:])
}
