package importer

import (
	"strconv"

	"clinic-registry/internal/entities"
)

// The workbooks carry one title row above the real column headers.
const HeaderOffset = 1

// Recognized sheet names, exactly as they appear in the workbook.
const (
	SheetSpecialties  = "Especialidades"
	SheetPlans        = "Planos"
	SheetResponsibles = "Responsáveis"
	SheetDoctors      = "Médicos"
	SheetSurgeries    = "Cirurgias"
)

// SheetOrder is the fixed topological import order: entities with no
// outbound references first, then the ones referencing them. Reordering
// would leave doctor/surgery specialty references permanently unresolved on
// a first run.
var SheetOrder = []string{
	SheetSpecialties,
	SheetPlans,
	SheetResponsibles,
	SheetDoctors,
	SheetSurgeries,
}

var sheetColumns = map[string][]Column{
	SheetSpecialties: {
		{Header: "Nome", Key: KeyName},
		{Header: "Descrição", Key: KeyDescription},
	},
	SheetPlans: {
		{Header: "Nome", Key: KeyName},
		{Header: "Sigla", Key: KeyCode},
		{Header: "Pacientes", Key: KeyPatients},
	},
	SheetResponsibles: {
		{Header: "Nome", Key: KeyName},
		{Header: "Email", Key: KeyEmail},
		{Header: "Telefone", Key: KeyPhone},
		{Header: "Pacientes", Key: KeyPatients},
	},
	SheetDoctors: {
		{Header: "Nome", Key: KeyName},
		{Header: "Especialidade", Key: KeySpecialty},
		{Header: "Tipo", Key: KeyType},
		{Header: "Pacientes", Key: KeyPatients},
	},
	SheetSurgeries: {
		{Header: "Nome", Key: KeyName},
		{Header: "Especialidade Relacionada", Key: KeySpecialty},
	},
}

func buildSpecialty(sheet string, rowNum int, row Row) (entities.Specialty, error) {
	name, ok := row[KeyName]
	if !ok {
		return entities.Specialty{}, &RowError{Sheet: sheet, Row: rowNum, Reason: "name is required"}
	}
	return entities.Specialty{
		Name:        name,
		Description: optional(row, KeyDescription),
		Active:      true,
	}, nil
}

func buildPlan(sheet string, rowNum int, row Row) (entities.Plan, error) {
	name, ok := row[KeyName]
	if !ok {
		return entities.Plan{}, &RowError{Sheet: sheet, Row: rowNum, Reason: "name is required"}
	}
	patients, err := optionalCount(sheet, rowNum, row)
	if err != nil {
		return entities.Plan{}, err
	}
	return entities.Plan{
		Name:         name,
		Code:         optional(row, KeyCode),
		PatientCount: patients,
		Active:       true,
	}, nil
}

func buildResponsible(sheet string, rowNum int, row Row) (entities.Responsible, error) {
	name, ok := row[KeyName]
	if !ok {
		return entities.Responsible{}, &RowError{Sheet: sheet, Row: rowNum, Reason: "name is required"}
	}
	patients, err := optionalCount(sheet, rowNum, row)
	if err != nil {
		return entities.Responsible{}, err
	}
	return entities.Responsible{
		Name:         name,
		Email:        optional(row, KeyEmail),
		Phone:        optional(row, KeyPhone),
		PatientCount: patients,
		Active:       true,
	}, nil
}

func buildDoctor(sheet string, rowNum int, row Row, specialtyID *uint64) (entities.Doctor, error) {
	name, ok := row[KeyName]
	if !ok {
		return entities.Doctor{}, &RowError{Sheet: sheet, Row: rowNum, Reason: "name is required"}
	}
	doctorType, ok := row[KeyType]
	if !ok {
		return entities.Doctor{}, &RowError{Sheet: sheet, Row: rowNum, Reason: "type is required"}
	}
	patients, err := optionalCount(sheet, rowNum, row)
	if err != nil {
		return entities.Doctor{}, err
	}
	return entities.Doctor{
		Name:         name,
		Type:         doctorType,
		PatientCount: patients,
		SpecialtyID:  specialtyID,
		Active:       true,
	}, nil
}

func buildSurgery(sheet string, rowNum int, row Row, specialtyID *uint64) (entities.Surgery, error) {
	name, ok := row[KeyName]
	if !ok {
		return entities.Surgery{}, &RowError{Sheet: sheet, Row: rowNum, Reason: "name is required"}
	}
	return entities.Surgery{
		Name:        name,
		SpecialtyID: specialtyID,
		Active:      true,
	}, nil
}

func optional(row Row, key string) *string {
	if value, ok := row[key]; ok {
		return &value
	}
	return nil
}

// optionalCount parses the patients column. Spreadsheet numeric cells often
// come back as "10" or "10.0" depending on cell formatting.
func optionalCount(sheet string, rowNum int, row Row) (*int, error) {
	value, ok := row[KeyPatients]
	if !ok {
		return nil, nil
	}
	if n, err := strconv.Atoi(value); err == nil {
		return &n, nil
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		n := int(f)
		return &n, nil
	}
	return nil, &RowError{Sheet: sheet, Row: rowNum, Reason: "patients is not a number: " + value}
}
