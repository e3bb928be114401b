package entity

// Source - источник вопросов (экзамен, учебник и т.д.), привязан к учреждению
type Source struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Name          string `gorm:"size:150;not null" json:"name"`
	Year          int    `gorm:"not null" json:"year"`
	InstitutionID uint   `gorm:"not null;index" json:"institution_id"`

	Institution *Institution `gorm:"foreignKey:InstitutionID" json:"institution,omitempty"`
}

// TableName определяет имя таблицы для GORM
func (Source) TableName() string {
	return "sources"
}
