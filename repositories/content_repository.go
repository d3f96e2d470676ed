package repositories

import (
	"undangan.link/models"

	"gorm.io/gorm"
)

// IGiftAccountRepository rekening kayıtları.
type IGiftAccountRepository interface {
	IBaseRepository[models.GiftAccount]
}

// IGalleryRepository galeri kayıtları.
type IGalleryRepository interface {
	IBaseRepository[models.GalleryItem]
}

// IStoryRepository hikaye kayıtları. Tarihsiz girdiler sona, eşitlikte ekleme sırası.
type IStoryRepository interface {
	IBaseRepository[models.StoryEntry]
}

func NewGiftAccountRepository(db *gorm.DB) IGiftAccountRepository {
	return NewBaseRepository[models.GiftAccount](db, "id ASC")
}

func NewGalleryRepository(db *gorm.DB) IGalleryRepository {
	return NewBaseRepository[models.GalleryItem](db, "id ASC")
}

func NewStoryRepository(db *gorm.DB) IStoryRepository {
	return NewBaseRepository[models.StoryEntry](db,
		"CASE WHEN event_date IS NULL THEN 1 ELSE 0 END ASC, event_date ASC, id ASC")
}
