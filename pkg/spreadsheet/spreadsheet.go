// Package spreadsheet misafir listesinin xlsx okuma/yazma işlemleri.
package spreadsheet

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

// ReadFirstColumn aktif sayfanın ilk sütununu başlık satırı hariç döndürür.
// Boş hücreler "" olarak korunur; ayıklama çağırana aittir.
func ReadFirstColumn(r io.Reader) ([]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("xlsx açılamadı: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("satırlar okunamadı: %w", err)
	}
	if len(rows) <= 1 {
		return []string{}, nil
	}

	values := make([]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) == 0 {
			values = append(values, "")
			continue
		}
		values = append(values, row[0])
	}
	return values, nil
}

// Write başlık ve satırlardan tek sayfalık bir çalışma kitabı yazar.
func Write(w io.Writer, header []string, rows [][]interface{}) error {
	f := excelize.NewFile()
	defer f.Close()

	headerRow := make([]interface{}, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(defaultSheet, "A1", &headerRow); err != nil {
		return err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := row
		if err := f.SetSheetRow(defaultSheet, cell, &row); err != nil {
			return err
		}
	}
	_, err := f.WriteTo(w)
	return err
}
