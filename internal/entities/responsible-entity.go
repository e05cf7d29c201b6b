package entities

type Responsible struct {
	ID           uint64
	Name         string
	Email        *string
	Phone        *string
	PatientCount *int
	Active       bool
}
