package importer

import (
	"strings"

	"clinic-registry/pkg/utils"
)

// Markers pandas-style exports and humans leave in place of real values.
var absentMarkers = map[string]struct{}{
	"nan":  {},
	"null": {},
	"none": {},
	"n/a":  {},
	"-":    {},
}

// NormalizeRows applies the per-column normalization rules in place:
// names and reference text are lower-cased and trimmed, phones reduced to
// digits, and every blank or not-a-value marker collapses into the single
// absent sentinel (the key is removed from the record).
func NormalizeRows(rows []Row) {
	for _, row := range rows {
		normalizeRow(row)
	}
}

func normalizeRow(row Row) {
	for key, value := range row {
		value = strings.TrimSpace(value)

		switch key {
		case KeyName, KeySpecialty:
			value = utils.NormalizeName(value)
		case KeyPhone:
			value = utils.DigitsOnly(value)
		}

		if isAbsent(value) {
			delete(row, key)
			continue
		}
		row[key] = value
	}
}

func isAbsent(value string) bool {
	if value == "" {
		return true
	}
	_, ok := absentMarkers[strings.ToLower(value)]
	return ok
}
