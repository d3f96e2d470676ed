package services

import (
	"context"
	"io"

	"undangan.link/configs/configslog"
	"undangan.link/pkg/filestorage"
	"undangan.link/pkg/metrics"
	"undangan.link/pkg/spreadsheet"
	"undangan.link/repositories"

	"go.uber.org/zap"
)

// ExportHeader dışa aktarılan tablonun başlık satırı.
var ExportHeader = []string{"Name", "Code", "RSVPStatus", "Message", "RespondedAt"}

const exportTimeLayout = "2006-01-02 15:04:05"

// ImportGuests xlsx dosyasının ilk sütunundaki isimleri ekler. Başlık satırı ve boş isimler atlanır.
// Tüm satırlar tek transaction içinde yazılır; bir satır başarısız olursa hiçbiri kalmaz.
func (s *GuestService) ImportGuests(ctx context.Context, p Principal, upload *filestorage.Upload) (int, error) {
	tenantID, err := p.TenantScope()
	if err != nil {
		return 0, err
	}
	if upload == nil {
		return 0, validationError("file wajib diunggah")
	}
	if upload.Ext() != "xlsx" {
		return 0, validationError("hanya file .xlsx yang didukung")
	}
	if upload.Size > s.maxImportBytes {
		return 0, validationError("ukuran file %s melebihi %d MB", upload.Filename, s.maxImportBytes>>20)
	}

	rc, err := upload.Open()
	if err != nil {
		return 0, storageError(err)
	}
	defer rc.Close()

	names, err := spreadsheet.ReadFirstColumn(rc)
	if err != nil {
		configslog.Log.Warn("Misafir dosyası okunamadı", zap.Uint("tenant_id", tenantID), zap.Error(err))
		return 0, validationError("file xlsx tidak dapat dibaca")
	}

	ctx = p.auditContext(ctx)
	imported := 0
	err = repositories.Transaction(ctx, s.db, func(txCtx context.Context) error {
		for _, raw := range names {
			name, err := normalizeGuestName(raw)
			if err != nil {
				continue
			}
			if _, err := s.addGuest(txCtx, tenantID, name); err != nil {
				return err
			}
			imported++
		}
		return nil
	})
	if err != nil {
		configslog.Log.Error("Misafir içe aktarma geri alındı", zap.Uint("tenant_id", tenantID), zap.Error(err))
		return 0, storageError(err)
	}

	metrics.GuestsImported.Add(float64(imported))
	configslog.Log.Info("Misafirler içe aktarıldı", zap.Uint("tenant_id", tenantID), zap.Int("count", imported))
	return imported, nil
}

// ExportGuests çağıranın misafirlerini kayıt sırasıyla xlsx olarak yazar.
func (s *GuestService) ExportGuests(ctx context.Context, p Principal, w io.Writer) error {
	guests, err := s.ListGuests(ctx, p)
	if err != nil {
		return err
	}

	rows := make([][]interface{}, 0, len(guests))
	for _, g := range guests {
		status, message, respondedAt := "", "", ""
		if g.RSVPStatus != nil {
			status = g.RSVPStatus.Label()
		}
		if g.Message != nil {
			message = *g.Message
		}
		if g.RespondedAt != nil {
			respondedAt = g.RespondedAt.Format(exportTimeLayout)
		}
		rows = append(rows, []interface{}{g.Name, g.Code, status, message, respondedAt})
	}

	if err := spreadsheet.Write(w, ExportHeader, rows); err != nil {
		return storageError(err)
	}
	return nil
}
