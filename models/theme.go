package models

// Category temaları katalogda gruplar.
type Category struct {
	BaseModel
	Name string `gorm:"type:varchar(100);uniqueIndex;not null"`
}

// Theme bir görsel şablon. TemplateName render katmanındaki varyant kimliğidir.
type Theme struct {
	BaseModel
	Name         string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	TemplateName string    `gorm:"type:varchar(100);not null"`
	Description  string    `gorm:"type:text"`
	CoverImage   string    `gorm:"type:varchar(255)"`
	CategoryID   *uint     `gorm:"index"`
	Category     *Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}
