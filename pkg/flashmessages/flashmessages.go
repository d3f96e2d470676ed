// Package flashmessages PRG akışında bir sonraki isteğe taşınan session mesajları.
package flashmessages

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const (
	FlashSuccessKey = "flash_success"
	FlashErrorKey   = "flash_error"
	FlashInfoKey    = "flash_info"
	FlashWarningKey = "flash_warning"
	flashFormKey    = "flash_form"
)

var allKeys = []string{FlashSuccessKey, FlashErrorKey, FlashInfoKey, FlashWarningKey}

// FlashMessages view'a aktarılan mesajlar.
type FlashMessages struct {
	Success string
	Error   string
	Info    string
	Warning string
}

// HasAny en az bir mesaj var mı?
func (f FlashMessages) HasAny() bool {
	return f.Success != "" || f.Error != "" || f.Info != "" || f.Warning != ""
}

func getSession(c *fiber.Ctx) (*session.Session, error) {
	store, ok := c.Locals("session_store").(*session.Store)
	if !ok || store == nil {
		return nil, errors.New("session store bulunamadı")
	}
	return store.Get(c)
}

// SetFlashMessage mesajı session'a yazar.
func SetFlashMessage(c *fiber.Ctx, key, message string) error {
	sess, err := getSession(c)
	if err != nil {
		return err
	}
	sess.Set(key, message)
	return sess.Save()
}

// GetFlashMessages mesajları okur ve siler.
func GetFlashMessages(c *fiber.Ctx) (FlashMessages, error) {
	var msgs FlashMessages
	sess, err := getSession(c)
	if err != nil {
		return msgs, err
	}
	read := func(key string) string {
		v, _ := sess.Get(key).(string)
		return v
	}
	msgs.Success = read(FlashSuccessKey)
	msgs.Error = read(FlashErrorKey)
	msgs.Info = read(FlashInfoKey)
	msgs.Warning = read(FlashWarningKey)

	if !msgs.HasAny() {
		return msgs, nil
	}
	for _, key := range allKeys {
		sess.Delete(key)
	}
	return msgs, sess.Save()
}

// SetFlashFormData hatalı form verisini bir sonraki gösterim için saklar.
func SetFlashFormData(c *fiber.Ctx, data interface{}) error {
	sess, err := getSession(c)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	sess.Set(flashFormKey, string(raw))
	return sess.Save()
}

// GetFlashFormData saklanan form verisini okur ve siler.
func GetFlashFormData(c *fiber.Ctx) map[string]interface{} {
	sess, err := getSession(c)
	if err != nil {
		return nil
	}
	raw, ok := sess.Get(flashFormKey).(string)
	if !ok || raw == "" {
		return nil
	}
	sess.Delete(flashFormKey)
	_ = sess.Save()

	var data map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil
	}
	return data
}
