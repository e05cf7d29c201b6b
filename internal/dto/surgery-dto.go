package dto

import "github.com/aarondl/null/v8"

type CreateSurgeryDTO struct {
	Name        string    `json:"name" validate:"required,min=1,max=100"`
	SpecialtyID null.Int  `json:"specialty_id" validate:"omitempty,gt=0"`
	Active      null.Bool `json:"active"`
}

type UpdateSurgeryDTO struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=100"`
	SpecialtyID null.Int `json:"specialty_id" validate:"omitempty,gt=0"`
	Active      *bool    `json:"active"`
}

type SurgeryDTO struct {
	ID          uint64   `json:"id"`
	Name        string   `json:"name"`
	SpecialtyID null.Int `json:"specialty_id"`
	Active      bool     `json:"active"`
}
