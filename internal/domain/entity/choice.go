package entity

// Choice представляет альтернативу ответа на вопрос.
// Метка label только для отображения; корректность задаётся is_correct.
type Choice struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	QuestionID uint   `gorm:"not null;index" json:"question_id"`
	Label      string `gorm:"size:1;not null" json:"label"`
	IsCorrect  bool   `gorm:"not null" json:"is_correct"`

	Contents []ChoiceContent `gorm:"foreignKey:ChoiceID" json:"contents"`
}

// TableName определяет имя таблицы для GORM
func (Choice) TableName() string {
	return "choices"
}
