package entity

// Area - область знаний (лёгкая таксономическая сущность).
// Связана с вопросами через many-to-many и живёт независимо от них.
type Area struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:50;not null" json:"name"`
	Code string `gorm:"size:1;uniqueIndex;not null" json:"code"`
}

// TableName определяет имя таблицы для GORM
func (Area) TableName() string {
	return "areas"
}
