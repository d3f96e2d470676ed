package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const (
	SessionAdminIDKey = "admin_id"
)

var ErrNoSessionStore = errors.New("session store bulunamadı")

// SessionStart isteğin session'ını açar.
func SessionStart(c *fiber.Ctx) (*session.Session, error) {
	store, ok := c.Locals("session_store").(*session.Store)
	if !ok || store == nil {
		return nil, ErrNoSessionStore
	}
	return store.Get(c)
}

// GetAdminIDFromSession oturumdaki admin ID'si.
func GetAdminIDFromSession(sess *session.Session) (uint, error) {
	switch v := sess.Get(SessionAdminIDKey).(type) {
	case uint:
		if v != 0 {
			return v, nil
		}
	case int:
		if v > 0 {
			return uint(v), nil
		}
	}
	return 0, errors.New("oturumda admin bulunamadı")
}

// LoginSession oturum kimliğini yeniler ve admini yazar.
func LoginSession(c *fiber.Ctx, adminID uint) error {
	sess, err := SessionStart(c)
	if err != nil {
		return err
	}
	if err := sess.Regenerate(); err != nil {
		return err
	}
	sess.Set(SessionAdminIDKey, adminID)
	return sess.Save()
}

// LogoutSession oturumu tamamen siler.
func LogoutSession(c *fiber.Ctx) error {
	sess, err := SessionStart(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}

// ClientAddr giriş denemesi sayacı için istemci adresi.
func ClientAddr(c *fiber.Ctx) string {
	if ip := c.IP(); ip != "" {
		return ip
	}
	return "unknown"
}
