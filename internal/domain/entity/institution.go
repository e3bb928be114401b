package entity

// InstitutionType - тип учреждения
type InstitutionType string

const (
	InstitutionTypeUniversity InstitutionType = "university"
	InstitutionTypeEditorial  InstitutionType = "editorial"
	InstitutionTypeAcademy    InstitutionType = "academy"
	InstitutionTypeOther      InstitutionType = "other"
)

// IsValid проверяет, что тип учреждения входит в допустимый набор
func (t InstitutionType) IsValid() bool {
	switch t {
	case InstitutionTypeUniversity, InstitutionTypeEditorial, InstitutionTypeAcademy, InstitutionTypeOther:
		return true
	}
	return false
}

// Institution - учреждение, которому принадлежат источники
type Institution struct {
	ID   uint            `gorm:"primaryKey" json:"id"`
	Name string          `gorm:"size:150;not null" json:"name"`
	Code string          `gorm:"size:10;uniqueIndex;not null" json:"code"`
	Type InstitutionType `gorm:"size:20;not null" json:"type"`
}

// TableName определяет имя таблицы для GORM
func (Institution) TableName() string {
	return "institutions"
}
