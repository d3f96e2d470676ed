package models

import "time"

// RSVPStatus misafirin kehadiran yanıtı.
type RSVPStatus string

const (
	RSVPStatusAttending    RSVPStatus = "attending"
	RSVPStatusNotAttending RSVPStatus = "not_attending"
	RSVPStatusUndecided    RSVPStatus = "undecided"
)

// RSVPStatuses formda gösterilen sırayla geçerli yanıtlar.
var RSVPStatuses = []RSVPStatus{RSVPStatusAttending, RSVPStatusNotAttending, RSVPStatusUndecided}

// Valid kapalı kümede mi?
func (s RSVPStatus) Valid() bool {
	switch s {
	case RSVPStatusAttending, RSVPStatusNotAttending, RSVPStatusUndecided:
		return true
	}
	return false
}

// Label misafire gösterilen etiket.
func (s RSVPStatus) Label() string {
	switch s {
	case RSVPStatusAttending:
		return "Hadir"
	case RSVPStatusNotAttending:
		return "Tidak Hadir"
	case RSVPStatusUndecided:
		return "Masih Ragu"
	}
	return ""
}

// ParseRSVPStatus form değerini (kod veya etiket) durum değerine çevirir.
func ParseRSVPStatus(v string) (RSVPStatus, bool) {
	for _, s := range RSVPStatuses {
		if v == string(s) || v == s.Label() {
			return s, true
		}
	}
	return "", false
}

// Guest bir undangan'a ait davetli. Code tüm sistemde tekildir ve kişisel linkte kullanılır.
// RSVPStatus nil iken misafir henüz yanıt vermemiştir.
type Guest struct {
	BaseModel
	TenantID    uint        `gorm:"index;not null"`
	Name        string      `gorm:"type:varchar(100);not null"`
	Code        string      `gorm:"type:varchar(8);uniqueIndex;not null"`
	RSVPStatus  *RSVPStatus `gorm:"column:rsvp_status;type:varchar(20)"`
	Message     *string     `gorm:"type:text"`
	RespondedAt *time.Time
}

// HasResponded misafir yanıt vermiş mi?
func (g *Guest) HasResponded() bool { return g.RSVPStatus != nil }
