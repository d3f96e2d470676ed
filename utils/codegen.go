package utils

import "github.com/google/uuid"

// GuestCodeLength kişisel linkteki misafir kodu uzunluğu.
const GuestCodeLength = 8

// NewGuestCode rastgele UUID'nin ilk 8 karakteri. Tekillik çağıran tarafından kontrol edilir.
func NewGuestCode() string {
	return uuid.New().String()[:GuestCodeLength]
}
