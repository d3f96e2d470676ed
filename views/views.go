// Package views uygulamanın gömülü HTML şablonları.
package views

import (
	"embed"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/template/html/v2"
)

//go:embed layouts admin public themes errors partials
var files embed.FS

const (
	dateLayout     = "02 January 2006"
	dateTimeLayout = "02 January 2006 15:04"
	inputLayout    = "2006-01-02T15:04"
)

// NewEngine gömülü şablonlar için fiber html engine'i kurar.
func NewEngine(reload bool) *html.Engine {
	engine := html.NewFileSystem(http.FS(files), ".html")
	engine.Reload(reload)
	engine.AddFunc("formatDate", func(t *time.Time) string { return formatTime(t, dateLayout) })
	engine.AddFunc("formatDateTime", func(t *time.Time) string { return formatTime(t, dateTimeLayout) })
	engine.AddFunc("inputDate", func(t *time.Time) string { return formatTime(t, inputLayout) })
	engine.AddFunc("deref", func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	})
	engine.AddFunc("derefID", func(id *uint) uint {
		if id == nil {
			return 0
		}
		return *id
	})
	engine.AddFunc("eqID", func(a *uint, b uint) bool { return a != nil && *a == b })
	engine.AddFunc("formValue", formValue)
	engine.AddFunc("assetURL", assetURL)
	return engine
}

// formValue flash'lenmiş form verisinden alanı okur; veri yoksa boş döner.
func formValue(data map[string]interface{}, key string) string {
	v, ok := data[key]
	if !ok || v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}

// assetURL yerel yolları köke göre, MinIO URL'lerini olduğu gibi döndürür.
func assetURL(stored string) string {
	if stored == "" || strings.HasPrefix(stored, "http://") || strings.HasPrefix(stored, "https://") {
		return stored
	}
	return "/" + strings.TrimPrefix(stored, "/")
}

func formatTime(t *time.Time, layout string) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Local().Format(layout)
}
