package dto

import "github.com/aarondl/null/v8"

type CreatePlanDTO struct {
	Name         string      `json:"name" validate:"required,min=1,max=100"`
	Code         null.String `json:"code" validate:"omitempty,max=10"`
	PatientCount null.Int    `json:"patient_count" validate:"omitempty,gte=0"`
	Active       null.Bool   `json:"active"`
}

type UpdatePlanDTO struct {
	Name         *string     `json:"name" validate:"omitempty,min=1,max=100"`
	Code         null.String `json:"code" validate:"omitempty,max=10"`
	PatientCount null.Int    `json:"patient_count" validate:"omitempty,gte=0"`
	Active       *bool       `json:"active"`
}

type PlanDTO struct {
	ID           uint64      `json:"id"`
	Name         string      `json:"name"`
	Code         null.String `json:"code"`
	PatientCount null.Int    `json:"patient_count"`
	Active       bool        `json:"active"`
}
