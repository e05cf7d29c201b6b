package dto

import "github.com/aarondl/null/v8"

type CreateSpecialtyDTO struct {
	Name        string      `json:"name" validate:"required,min=1,max=100"`
	Description null.String `json:"description" validate:"omitempty,max=500"`
	Active      null.Bool   `json:"active"`
}

type UpdateSpecialtyDTO struct {
	Name        *string     `json:"name" validate:"omitempty,min=1,max=100"`
	Description null.String `json:"description" validate:"omitempty,max=500"`
	Active      *bool       `json:"active"`
}

type SpecialtyDTO struct {
	ID          uint64      `json:"id"`
	Name        string      `json:"name"`
	Description null.String `json:"description"`
	Active      bool        `json:"active"`
}
