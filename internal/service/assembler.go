package service

import (
	"sort"

	"github.com/yourusername/question-bank-api/internal/domain/entity"
)

// AssembleQuestion приводит агрегат к каноничной форме перед записью:
// сортирует все коллекции контента по порядку отображения и
// фиксирует хеш вопроса. Хеш считается по уже упорядоченному тексту,
// поэтому сортировка обязана идти первой.
func AssembleQuestion(question *entity.Question) {
	sortQuestionContents(question.Contents)
	for i := range question.Choices {
		sortChoiceContents(question.Choices[i].Contents)
	}
	for i := range question.Solutions {
		sortSolutionContents(question.Solutions[i].Contents)
	}
	question.QuestionHash = entity.GenerateQuestionHash(question.Contents)
}

func sortQuestionContents(contents []entity.QuestionContent) {
	sort.SliceStable(contents, func(i, j int) bool {
		return contents[i].Order < contents[j].Order
	})
}

func sortChoiceContents(contents []entity.ChoiceContent) {
	sort.SliceStable(contents, func(i, j int) bool {
		return contents[i].Order < contents[j].Order
	})
}

func sortSolutionContents(contents []entity.SolutionContent) {
	sort.SliceStable(contents, func(i, j int) bool {
		return contents[i].Order < contents[j].Order
	})
}
