package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type SaveShelterRequest struct {
	Name    string `json:"name" validate:"required,max=150"`
	Address string `json:"address" validate:"omitempty,max=255"`
	City    string `json:"city" validate:"omitempty,max=60"`
	Phone   string `json:"phone" validate:"omitempty,max=30"`
}

// Response DTOs

type ShelterResponse struct {
	UserID     uuid.UUID  `json:"user_id"`
	Name       string     `json:"name"`
	Address    string     `json:"address,omitempty"`
	City       string     `json:"city,omitempty"`
	Phone      string     `json:"phone,omitempty"`
	Authorized bool       `json:"authorized"`
	VetID      *uuid.UUID `json:"vet_id,omitempty"`
}

type ShelterListResponse struct {
	Shelters []ShelterResponse `json:"shelters"`
	Total    int               `json:"total"`
}

// PendingVisitRow pairs an animal in the requested state with the
// visitor planning the visit and that visitor's account id, so the
// shelter can act on the queue in one pass.
type PendingVisitRow struct {
	Animal        AnimalResponse  `json:"animal"`
	Visitor       VisitorResponse `json:"visitor"`
	VisitorUserID uuid.UUID       `json:"visitor_user_id"`
}

type PendingVisitListResponse struct {
	Rows  []PendingVisitRow `json:"rows"`
	Total int               `json:"total"`
}
