package entities

type Plan struct {
	ID           uint64
	Name         string
	Code         *string
	PatientCount *int
	Active       bool
}
