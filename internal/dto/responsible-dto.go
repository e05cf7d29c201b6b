package dto

import "github.com/aarondl/null/v8"

type CreateResponsibleDTO struct {
	Name         string      `json:"name" validate:"required,min=1,max=100"`
	Email        null.String `json:"email" validate:"omitempty,email"`
	Phone        null.String `json:"phone" validate:"omitempty,max=50"`
	PatientCount null.Int    `json:"patient_count" validate:"omitempty,gte=0"`
	Active       null.Bool   `json:"active"`
}

type UpdateResponsibleDTO struct {
	Name         *string     `json:"name" validate:"omitempty,min=1,max=100"`
	Email        null.String `json:"email" validate:"omitempty,email"`
	Phone        null.String `json:"phone" validate:"omitempty,max=50"`
	PatientCount null.Int    `json:"patient_count" validate:"omitempty,gte=0"`
	Active       *bool       `json:"active"`
}

type ResponsibleDTO struct {
	ID           uint64      `json:"id"`
	Name         string      `json:"name"`
	Email        null.String `json:"email"`
	Phone        null.String `json:"phone"`
	PatientCount null.Int    `json:"patient_count"`
	Active       bool        `json:"active"`
}
