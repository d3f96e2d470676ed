package services

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 50
	minSlugLen     = 3
	maxSlugLen     = 50
	minPasswordLen = 6
)

var slugPattern = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)

// reservedSlugs uygulama rotalarıyla çakışan slug'lar.
var reservedSlugs = map[string]bool{
	"admin":   true,
	"katalog": true,
	"static":  true,
	"uploads": true,
	"metrics": true,
}

func validateUsername(username string) error {
	n := utf8.RuneCountInString(username)
	if n < minUsernameLen || n > maxUsernameLen {
		return validationError("username harus %d-%d karakter", minUsernameLen, maxUsernameLen)
	}
	return nil
}

func validatePassword(password string) error {
	if utf8.RuneCountInString(password) < minPasswordLen {
		return validationError("password minimal %d karakter", minPasswordLen)
	}
	return nil
}

func validateSlug(slug string) error {
	n := len(slug)
	if n < minSlugLen || n > maxSlugLen {
		return validationError("slug harus %d-%d karakter", minSlugLen, maxSlugLen)
	}
	if !slugPattern.MatchString(slug) {
		return validationError("slug hanya boleh berisi huruf, angka, dan tanda hubung (-)")
	}
	if reservedSlugs[strings.ToLower(slug)] {
		return validationError("slug %s tidak dapat digunakan", slug)
	}
	return nil
}

var dateLayouts = []string{"2006-01-02T15:04", "2006-01-02 15:04", "2006-01-02"}

// parseOptionalDate boş metin nil döner.
func parseOptionalDate(field, value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return &t, nil
		}
	}
	return nil, validationError("format tanggal %s tidak valid", field)
}
