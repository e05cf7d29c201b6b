package importer

import (
	"fmt"
	"strings"

	"clinic-registry/pkg/utils"

	"github.com/xuri/excelize/v2"
)

// Row is one spreadsheet row keyed by canonical column key. A key that is
// missing from the map means the field is absent; an empty string never
// survives normalization.
type Row map[string]string

// Canonical column keys. Workbook headers arrive in the source locale
// ("Nome", "Descrição", "Especialidade Relacionada", …) and are folded onto
// these before anything downstream sees them.
const (
	KeyName        = "name"
	KeyDescription = "description"
	KeyCode        = "code"
	KeyPatients    = "patients"
	KeyEmail       = "email"
	KeyPhone       = "phone"
	KeySpecialty   = "specialty"
	KeyType        = "type"
)

// Column binds a workbook header (as entered by humans, accents and all) to
// its canonical key.
type Column struct {
	Header string
	Key    string
}

// Workbook wraps one open workbook file.
type Workbook struct {
	file *excelize.File
}

func OpenWorkbook(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	return &Workbook{file: f}, nil
}

func (w *Workbook) Close() error { return w.file.Close() }

// ReadSheet parses one named sheet into ordered row records. headerOffset is
// the number of leading rows before the header row (the workbooks carry a
// title row above the real headers). Headers are matched case- and
// accent-insensitively against the expected column list; any expected column
// not found fails the sheet with MissingColumnError.
func (w *Workbook) ReadSheet(sheet string, headerOffset int, columns []Column) ([]Row, error) {
	raw, err := w.file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(raw) <= headerOffset {
		return nil, &MissingColumnError{Sheet: sheet, Column: columns[0].Header}
	}

	header := raw[headerOffset]
	colIdx := make(map[string]int, len(columns))
	for _, col := range columns {
		idx := -1
		want := utils.FoldHeader(col.Header)
		for i, cell := range header {
			if utils.FoldHeader(cell) == want {
				idx = i
				break
			}
		}
		if idx == -1 {
			return nil, &MissingColumnError{Sheet: sheet, Column: col.Header}
		}
		colIdx[col.Key] = idx
	}

	rows := make([]Row, 0, len(raw)-headerOffset-1)
	for i := headerOffset + 1; i < len(raw); i++ {
		record := make(Row, len(columns))
		empty := true
		for key, idx := range colIdx {
			cell := safeCell(raw[i], idx)
			if cell != "" {
				empty = false
			}
			record[key] = cell
		}
		// Trailing blank rows are common in hand-maintained workbooks.
		if empty {
			continue
		}
		rows = append(rows, record)
	}
	return rows, nil
}

func safeCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
