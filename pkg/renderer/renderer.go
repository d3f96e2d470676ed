// Package renderer ortak view verisiyle (flash, csrf, oturum) şablon render eder.
package renderer

import (
	"net/http"

	"undangan.link/pkg/flashmessages"

	"github.com/gofiber/fiber/v2"
)

const (
	FlashSuccessKeyView = "Success"
	FlashErrorKeyView   = "Error"
	FlashInfoKeyView    = "Info"
	FlashWarningKeyView = "Warning"
)

// SetFlashMessages flash mesajlarını view verisine ekler.
func SetFlashMessages(data fiber.Map, msgs flashmessages.FlashMessages) {
	if msgs.Success != "" {
		data[FlashSuccessKeyView] = msgs.Success
	}
	if msgs.Error != "" {
		data[FlashErrorKeyView] = msgs.Error
	}
	if msgs.Info != "" {
		data[FlashInfoKeyView] = msgs.Info
	}
	if msgs.Warning != "" {
		data[FlashWarningKeyView] = msgs.Warning
	}
}

// Render şablonu layout içinde render eder. status verilmezse 200.
func Render(c *fiber.Ctx, template, layout string, data fiber.Map, status ...int) error {
	if data == nil {
		data = fiber.Map{}
	}
	if _, ok := data["CsrfToken"]; !ok {
		data["CsrfToken"] = c.Locals("csrf")
	}
	if _, ok := data["AdminUsername"]; !ok {
		data["AdminUsername"] = c.Locals("adminUsername")
	}
	if _, ok := data["IsSuperadmin"]; !ok {
		data["IsSuperadmin"] = c.Locals("isSuperadmin")
	}
	if msgs, err := flashmessages.GetFlashMessages(c); err == nil {
		SetFlashMessages(data, msgs)
	}

	code := http.StatusOK
	if len(status) > 0 {
		code = status[0]
	}
	c.Status(code)
	if layout == "" {
		return c.Render(template, data)
	}
	return c.Render(template, data, layout)
}
