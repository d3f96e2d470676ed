package models

import "time"

// GiftAccount amplop digital için banka hesabı.
type GiftAccount struct {
	BaseModel
	TenantID      uint   `gorm:"index;not null"`
	BankName      string `gorm:"type:varchar(100);not null"`
	AccountNumber string `gorm:"type:varchar(50);not null"`
	AccountHolder string `gorm:"type:varchar(100);not null"`
}

// GalleryItem galeri fotoğrafı.
type GalleryItem struct {
	BaseModel
	TenantID  uint   `gorm:"index;not null"`
	ImagePath string `gorm:"type:varchar(255);not null"`
	Alt       string `gorm:"type:varchar(255)"`
}

// StoryEntry "kisah cinta" zaman çizelgesi girdisi.
type StoryEntry struct {
	BaseModel
	TenantID  uint   `gorm:"index;not null"`
	Title     string `gorm:"type:varchar(150);not null"`
	EventDate *time.Time
	Body      string `gorm:"type:text"`
}
