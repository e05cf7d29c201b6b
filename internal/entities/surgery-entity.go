package entities

type Surgery struct {
	ID          uint64
	Name        string
	SpecialtyID *uint64
	Active      bool
}
