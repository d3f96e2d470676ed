// Package handlers alt paketlerdeki handler'ların ortak form ve flash yardımcıları.
package handlers

import (
	"errors"
	"strconv"
	"strings"

	"undangan.link/configs/configslog"
	"undangan.link/pkg/filestorage"
	"undangan.link/pkg/flashmessages"
	"undangan.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrInvalidID geçersiz rota parametresi.
var ErrInvalidID = errors.New("ID tidak valid")

// FlashServiceError servis hatasını kullanıcı mesajına çevirir. Depolama hataları yalnızca loglanır.
func FlashServiceError(c *fiber.Ctx, err error, op string) {
	if errors.Is(err, services.ErrStorageFailure) {
		configslog.Log.Error(op, zap.String("path", c.Path()), zap.Error(err))
	}
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, services.PublicMessage(err))
}

// FlashWarnings dosya kaydı gibi işlemi durdurmayan uyarıları tek mesajda toplar.
func FlashWarnings(c *fiber.Ctx, warnings []string) {
	if len(warnings) == 0 {
		return
	}
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashWarningKey, strings.Join(warnings, "; "))
}

// FlashSuccess başarı mesajı.
func FlashSuccess(c *fiber.Ctx, msg string) {
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, msg)
}

// ParamID ":id" parametresini pozitif uint olarak okur.
func ParamID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, ErrInvalidID
	}
	return uint(id), nil
}

// FormUpload multipart alanındaki dosya. Alan yoksa veya boşsa nil.
func FormUpload(c *fiber.Ctx, field string) *filestorage.Upload {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil
	}
	return filestorage.FromFileHeader(fh)
}

// SeeOther PRG yönlendirmesi.
func SeeOther(c *fiber.Ctx, path string) error {
	return c.Redirect(path, fiber.StatusSeeOther)
}
