package entity

import "time"

// Question представляет вопрос банка - корень агрегата.
// Владеет (cascade delete) контентом, альтернативами, решениями и
// ссылками на источники; области связаны через many-to-many и живут отдельно.
type Question struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	QuestionHash   string    `gorm:"size:64;uniqueIndex;not null" json:"question_hash"`
	QuestionTypeID uint      `gorm:"not null" json:"question_type_id"`
	SubtopicID     uint      `gorm:"not null" json:"subtopic_id"`
	DifficultyID   uint      `gorm:"not null" json:"difficulty_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Contents  []QuestionContent `gorm:"foreignKey:QuestionID" json:"contents"`
	Choices   []Choice          `gorm:"foreignKey:QuestionID" json:"choices,omitempty"`
	Solutions []Solution        `gorm:"foreignKey:QuestionID" json:"solutions,omitempty"`
	Sources   []QuestionSource  `gorm:"foreignKey:QuestionID" json:"sources"`
	Areas     []Area            `gorm:"many2many:question_areas" json:"areas"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// CorrectChoiceCount возвращает количество альтернатив, помеченных как правильные
func (q *Question) CorrectChoiceCount() int {
	count := 0
	for _, c := range q.Choices {
		if c.IsCorrect {
			count++
		}
	}
	return count
}
