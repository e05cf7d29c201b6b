package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRow(t *testing.T) {
	row := Row{
		KeyName:      "  Dr. João SILVA ",
		KeySpecialty: " CARDIOLOGIA",
		KeyPhone:     "(11) 98888-7766",
		KeyPatients:  " 12 ",
	}
	normalizeRow(row)

	assert.Equal(t, "dr. joão silva", row[KeyName])
	assert.Equal(t, "cardiologia", row[KeySpecialty])
	assert.Equal(t, "11988887766", row[KeyPhone])
	assert.Equal(t, "12", row[KeyPatients])
}

func TestNormalizeRowAbsentMarkers(t *testing.T) {
	for _, marker := range []string{"", "  ", "nan", "NaN", "null", "None", "N/A", "-"} {
		row := Row{KeyName: "ok", KeyDescription: marker}
		normalizeRow(row)

		_, present := row[KeyDescription]
		assert.False(t, present, "marker %q should be removed", marker)
		assert.Equal(t, "ok", row[KeyName])
	}
}

func TestNormalizeRowsIdempotent(t *testing.T) {
	rows := []Row{
		{KeyName: " Cardiologia ", KeyPhone: "(11) 1234-5678"},
		{KeyName: "Ortopedia", KeyDescription: "nan"},
	}
	NormalizeRows(rows)

	want := []Row{
		{KeyName: "cardiologia", KeyPhone: "1112345678"},
		{KeyName: "ortopedia"},
	}
	assert.Equal(t, want, rows)

	NormalizeRows(rows)
	assert.Equal(t, want, rows)
}
