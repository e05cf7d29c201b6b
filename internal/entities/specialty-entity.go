package entities

type Specialty struct {
	ID          uint64
	Name        string
	Description *string
	Active      bool
}
