package models

// Admin panele giriş yapabilen hesap. Superadmin hiçbir undangan'a bağlı değildir,
// tenant admininin tam olarak bir undangan'ı vardır.
type Admin struct {
	BaseModel
	Username     string `gorm:"type:varchar(50);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	IsSuperadmin bool   `gorm:"not null;default:false"`
	TenantID     *uint  `gorm:"uniqueIndex"`
}
