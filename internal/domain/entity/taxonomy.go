package entity

// Таксономические сущности: курс -> тема -> подтема, плюс справочники
// сложности и типа вопроса. Обслуживаются единообразным CRUD.

// Course - учебный курс
type Course struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:50;not null" json:"name"`
	Code string `gorm:"size:2;uniqueIndex;not null" json:"code"`
}

// TableName определяет имя таблицы для GORM
func (Course) TableName() string {
	return "courses"
}

// Topic - тема внутри курса
type Topic struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:150;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	CourseID    uint   `gorm:"not null;index" json:"course_id"`
}

// TableName определяет имя таблицы для GORM
func (Topic) TableName() string {
	return "topics"
}

// Subtopic - подтема внутри темы; на неё ссылаются вопросы
type Subtopic struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:200;not null" json:"name"`
	TopicID uint   `gorm:"not null;index" json:"topic_id"`
}

// TableName определяет имя таблицы для GORM
func (Subtopic) TableName() string {
	return "subtopics"
}

// Difficulty - справочник уровней сложности
type Difficulty struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:50;not null" json:"name"`
	Code string `gorm:"size:20;uniqueIndex;not null" json:"code"`
}

// TableName определяет имя таблицы для GORM
func (Difficulty) TableName() string {
	return "difficulties"
}

// QuestionType - справочник типов вопросов (прямой, верно/неверно, сопоставление и т.д.)
type QuestionType struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:20;not null" json:"name"`
	Code string `gorm:"size:20;uniqueIndex;not null" json:"code"`
}

// TableName определяет имя таблицы для GORM
func (QuestionType) TableName() string {
	return "question_types"
}
