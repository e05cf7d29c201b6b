package dto

import "github.com/aarondl/null/v8"

type CreateDoctorDTO struct {
	Name         string    `json:"name" validate:"required,min=1,max=100"`
	Type         string    `json:"type" validate:"required,min=1,max=100"`
	PatientCount null.Int  `json:"patient_count" validate:"omitempty,gte=0"`
	SpecialtyID  null.Int  `json:"specialty_id" validate:"omitempty,gt=0"`
	Active       null.Bool `json:"active"`
}

type UpdateDoctorDTO struct {
	Name         *string  `json:"name" validate:"omitempty,min=1,max=100"`
	Type         *string  `json:"type" validate:"omitempty,min=1,max=100"`
	PatientCount null.Int `json:"patient_count" validate:"omitempty,gte=0"`
	SpecialtyID  null.Int `json:"specialty_id" validate:"omitempty,gt=0"`
	Active       *bool    `json:"active"`
}

type DoctorDTO struct {
	ID           uint64   `json:"id"`
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	PatientCount null.Int `json:"patient_count"`
	SpecialtyID  null.Int `json:"specialty_id"`
	Active       bool     `json:"active"`
}
