package services

import (
	"time"

	"undangan.link/models"
)

func sampleDate(y int, m time.Month, d, h int) *time.Time {
	t := time.Date(y, m, d, h, 0, 0, 0, time.Local)
	return &t
}

// samplePreview tema kataloğunda gösterilen örnek undangan.
func samplePreview() *PublicInvitation {
	message := "Selamat menempuh hidup baru!"
	attending := models.RSVPStatusAttending
	return &PublicInvitation{
		Preview: true,
		Tenant: models.Tenant{
			Slug:             "preview",
			CoupleName:       "Budi & Ani",
			GroomName:        "Budi Santoso",
			GroomBio:         "Lulusan Teknik Informatika, pecinta kopi.",
			GroomParents:     "Bapak Sutarno & Ibu Siti Aminah",
			GroomInstagram:   "https://instagram.com/budi_santoso",
			BrideName:        "Ani Lestari",
			BrideBio:         "Desainer grafis, suka traveling.",
			BrideParents:     "Bapak Hadi Wijaya & Ibu Rina Susanti",
			BrideInstagram:   "https://instagram.com/ani_lestari",
			AkadDate:         sampleDate(2026, time.December, 25, 10),
			AkadPlace:        "Masjid Al-Hikmah",
			AkadAddress:      "Jl. Raya No. 123, Jakarta",
			AkadMapsURL:      "https://maps.google.com",
			ReceptionDate:    sampleDate(2026, time.December, 25, 18),
			ReceptionPlace:   "Gedung Serbaguna",
			ReceptionAddress: "Jl. Raya No. 456, Jakarta",
			ReceptionMapsURL: "https://maps.google.com",
			GiftRecipient:    "Budi & Ani",
			GiftAddress:      "Jl. Bahagia No. 789, Jakarta",
			WhatsApp:         "+6281234567890",
		},
		Guest: models.Guest{Name: "Tamu Preview", Code: "PREVIEW1"},
		Gifts: []models.GiftAccount{
			{BankName: "BCA", AccountNumber: "1234567890", AccountHolder: "Budi Santoso"},
			{BankName: "Mandiri", AccountNumber: "0987654321", AccountHolder: "Ani Lestari"},
		},
		Stories: []models.StoryEntry{
			{Title: "Pertemuan Pertama", EventDate: sampleDate(2023, time.January, 15, 0), Body: "Kami bertemu di kafe favorit."},
			{Title: "Lamaran", EventDate: sampleDate(2024, time.June, 20, 0), Body: "Budi melamar Ani di tepi pantai."},
		},
		Greetings: []models.Guest{
			{Name: "Sahabat Budi", RSVPStatus: &attending, Message: &message},
		},
	}
}
