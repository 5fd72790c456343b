package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type SaveVetRequest struct {
	FirstName            string `json:"first_name" validate:"required,max=60"`
	LastName             string `json:"last_name" validate:"required,max=60"`
	IdentificationNumber string `json:"identification_number" validate:"omitempty,len=10,numeric"`
}

type AssignShelterRequest struct {
	ShelterUserID uuid.UUID `json:"shelter_user_id" validate:"required"`
}

// Response DTOs

type VetResponse struct {
	UserID               uuid.UUID `json:"user_id"`
	FirstName            string    `json:"first_name"`
	LastName             string    `json:"last_name"`
	IdentificationNumber string    `json:"identification_number,omitempty"`
	Authorized           bool      `json:"authorized"`
}

// VetListResponse also carries the authorized shelters so the admin
// view can offer the assignment choices alongside the vets.
type VetListResponse struct {
	Vets     []VetResponse     `json:"vets"`
	Shelters []ShelterResponse `json:"shelters"`
	Total    int               `json:"total"`
}
