package entity

// Solution представляет решение вопроса.
// У вопроса может быть несколько решений (альтернативные объяснения).
type Solution struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	QuestionID uint `gorm:"not null;index" json:"question_id"`

	Contents []SolutionContent `gorm:"foreignKey:SolutionID" json:"contents"`
}

// TableName определяет имя таблицы для GORM
func (Solution) TableName() string {
	return "solutions"
}
