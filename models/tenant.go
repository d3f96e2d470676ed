package models

import "time"

// DefaultCoupleName yeni açılan undangan için yer tutucu çift adı.
const DefaultCoupleName = "Admin & Mimin"

// Tenant slug ile yayınlanan tek bir düğün davetiyesi (undangan).
type Tenant struct {
	BaseModel
	Slug       string `gorm:"type:varchar(50);uniqueIndex;not null"`
	ThemeID    uint   `gorm:"index;not null"`
	Theme      *Theme `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	CoupleName string `gorm:"type:varchar(100);not null"`

	GroomName      string `gorm:"type:varchar(100)"`
	GroomBio       string `gorm:"type:text"`
	GroomParents   string `gorm:"type:varchar(200)"`
	GroomInstagram string `gorm:"type:varchar(100)"`
	BrideName      string `gorm:"type:varchar(100)"`
	BrideBio       string `gorm:"type:text"`
	BrideParents   string `gorm:"type:varchar(200)"`
	BrideInstagram string `gorm:"type:varchar(100)"`

	AkadDate         *time.Time
	AkadPlace        string `gorm:"type:varchar(200)"`
	AkadAddress      string `gorm:"type:text"`
	AkadMapsURL      string `gorm:"type:varchar(500)"`
	ReceptionDate    *time.Time
	ReceptionPlace   string `gorm:"type:varchar(200)"`
	ReceptionAddress string `gorm:"type:text"`
	ReceptionMapsURL string `gorm:"type:varchar(500)"`

	GiftRecipient string `gorm:"type:varchar(100)"`
	GiftAddress   string `gorm:"type:text"`
	WhatsApp      string `gorm:"type:varchar(30)"`

	GroomPhoto           string `gorm:"type:varchar(255)"`
	BridePhoto           string `gorm:"type:varchar(255)"`
	Audio                string `gorm:"type:varchar(255)"`
	CoverBackground      string `gorm:"type:varchar(255)"`
	InvitationBackground string `gorm:"type:varchar(255)"`
}
