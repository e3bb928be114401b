package entity

// QuestionSource - ссылка вопроса на источник с указанием страницы
type QuestionSource struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	QuestionID uint `gorm:"not null;index" json:"question_id"`
	SourceID   uint `gorm:"not null;index" json:"source_id"`
	Page       int  `gorm:"not null" json:"page"`

	Source *Source `gorm:"foreignKey:SourceID" json:"source,omitempty"`
}

// TableName определяет имя таблицы для GORM
func (QuestionSource) TableName() string {
	return "question_sources"
}
