package entity

// ContentType - тип блока контента (закрытый набор вариантов)
type ContentType string

const (
	// ContentTypeText - текстовый блок
	ContentTypeText ContentType = "text"
	// ContentTypeImage - блок с изображением; value хранит ключ объекта
	// в объектном хранилище, никогда публичный URL
	ContentTypeImage ContentType = "image"
)

// IsValid проверяет, что тип контента входит в допустимый набор
func (t ContentType) IsValid() bool {
	return t == ContentTypeText || t == ContentTypeImage
}

// ContentData - общая форма блока контента. Используется одинаково для
// контента вопроса, альтернативы и решения (разные таблицы-владельцы).
// Поле Order задаёт строгий порядок отображения и порядок хеширования.
type ContentData struct {
	Type  ContentType `gorm:"size:10;not null" json:"type"`
	Value string      `gorm:"type:text;not null" json:"value"`
	Order int         `gorm:"column:display_order;not null" json:"order"`
	Label string      `gorm:"size:1" json:"label,omitempty"`
}

// QuestionContent - блок контента формулировки вопроса
type QuestionContent struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	QuestionID uint `gorm:"not null;index" json:"question_id"`
	ContentData
}

// TableName определяет имя таблицы для GORM
func (QuestionContent) TableName() string {
	return "question_content"
}

// ChoiceContent - блок контента альтернативы
type ChoiceContent struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	ChoiceID uint `gorm:"not null;index" json:"choice_id"`
	ContentData
}

// TableName определяет имя таблицы для GORM
func (ChoiceContent) TableName() string {
	return "choice_content"
}

// SolutionContent - блок контента решения
type SolutionContent struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	SolutionID uint `gorm:"not null;index" json:"solution_id"`
	ContentData
}

// TableName определяет имя таблицы для GORM
func (SolutionContent) TableName() string {
	return "solution_content"
}
