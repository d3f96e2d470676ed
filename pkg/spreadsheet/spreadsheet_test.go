package spreadsheet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteThenReadFirstColumn(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, []string{"Name", "Code"}, [][]interface{}{
		{"Budi", "ab12cd34"},
		{"Ani", "ef56gh78"},
	})
	require.NoError(t, err)

	names, err := ReadFirstColumn(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, []string{"Budi", "Ani"}, names)
}

func TestReadFirstColumnKeepsBlankRows(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "Nama"))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", "Budi"))
	require.NoError(t, f.SetCellValue("Sheet1", "B3", "tanpa nama"))
	require.NoError(t, f.SetCellValue("Sheet1", "A4", "Ani"))
	var buf bytes.Buffer
	_, err := f.WriteTo(&buf)
	require.NoError(t, err)

	names, err := ReadFirstColumn(&buf)
	require.NoError(t, err)
	assert.Equal(t, []string{"Budi", "", "Ani"}, names)
}

func TestReadFirstColumnRejectsNonXLSX(t *testing.T) {
	_, err := ReadFirstColumn(bytes.NewReader([]byte("Nama\nBudi\n")))
	assert.Error(t, err)
}
