package entities

type Doctor struct {
	ID           uint64
	Name         string
	Type         string
	PatientCount *int
	SpecialtyID  *uint64
	Active       bool
}
