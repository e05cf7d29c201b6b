package importer

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook builds a temporary .xlsx with the given sheets, each sheet
// given as raw cell rows (title row included, matching the real workbooks).
func writeWorkbook(t *testing.T, sheets map[string][][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	first := true
	for name, rows := range sheets {
		if first {
			require.NoError(t, f.SetSheetName("Sheet1", name))
			first = false
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(name, cell, &row))
		}
	}

	path := filepath.Join(t.TempDir(), "registry.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func TestReadSheet(t *testing.T) {
	path := writeWorkbook(t, map[string][][]interface{}{
		SheetSpecialties: {
			{"Cadastro de Especialidades"},
			{"Nome", "Descrição"},
			{"Cardiologia", "Coração"},
			{"Ortopedia", ""},
		},
	})

	wb, err := OpenWorkbook(path)
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.ReadSheet(SheetSpecialties, HeaderOffset, sheetColumns[SheetSpecialties])
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Cardiologia", rows[0][KeyName])
	assert.Equal(t, "Coração", rows[0][KeyDescription])
	assert.Equal(t, "Ortopedia", rows[1][KeyName])
	assert.Equal(t, "", rows[1][KeyDescription])
}

func TestReadSheetFoldsHeaders(t *testing.T) {
	// Headers typed without accents and in odd case still match.
	path := writeWorkbook(t, map[string][][]interface{}{
		SheetSpecialties: {
			{"título"},
			{" NOME ", "descricao"},
			{"Cardiologia", "Coração"},
		},
	})

	wb, err := OpenWorkbook(path)
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.ReadSheet(SheetSpecialties, HeaderOffset, sheetColumns[SheetSpecialties])
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Cardiologia", rows[0][KeyName])
}

func TestReadSheetMissingColumn(t *testing.T) {
	path := writeWorkbook(t, map[string][][]interface{}{
		SheetSpecialties: {
			{"título"},
			{"Nome"}, // Descrição column missing entirely
			{"Cardiologia"},
		},
	})

	wb, err := OpenWorkbook(path)
	require.NoError(t, err)
	defer wb.Close()

	_, err = wb.ReadSheet(SheetSpecialties, HeaderOffset, sheetColumns[SheetSpecialties])
	var missing *MissingColumnError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, SheetSpecialties, missing.Sheet)
	assert.Equal(t, "Descrição", missing.Column)
}

func TestReadSheetSkipsBlankRows(t *testing.T) {
	path := writeWorkbook(t, map[string][][]interface{}{
		SheetSpecialties: {
			{"título"},
			{"Nome", "Descrição"},
			{"Cardiologia", "Coração"},
			{"", ""},
			{"Ortopedia", "Ossos"},
		},
	})

	wb, err := OpenWorkbook(path)
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.ReadSheet(SheetSpecialties, HeaderOffset, sheetColumns[SheetSpecialties])
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Cardiologia", rows[0][KeyName])
	assert.Equal(t, "Ortopedia", rows[1][KeyName])
}

func TestReadSheetHeaderOnly(t *testing.T) {
	path := writeWorkbook(t, map[string][][]interface{}{
		SheetSpecialties: {
			{"título"},
			{"Nome", "Descrição"},
		},
	})

	wb, err := OpenWorkbook(path)
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.ReadSheet(SheetSpecialties, HeaderOffset, sheetColumns[SheetSpecialties])
	require.NoError(t, err)
	assert.Empty(t, rows)
}
