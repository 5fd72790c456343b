package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type CreateAnimalRequest struct {
	Name        string `json:"name" validate:"required,max=120"`
	Species     string `json:"species" validate:"required,max=60"`
	Breed       string `json:"breed" validate:"omitempty,max=120"`
	AgeYears    int    `json:"age_years" validate:"gte=0,lte=60"`
	AgeMonths   int    `json:"age_months" validate:"gte=0,lte=11"`
	Sex         string `json:"sex" validate:"omitempty,oneof=MALE FEMALE UNKNOWN"`
	Vaccinated  bool   `json:"vaccinated"`
	Neutered    bool   `json:"neutered"`
	PhotoURL    string `json:"photo_url" validate:"omitempty,max=2048,url"`
	Description string `json:"description" validate:"omitempty,max=4000"`
}

// UpdateAnimalRequest is interpreted per actor role: shelters edit the
// descriptive fields and may move the status forward, vets and
// visitors trigger their toggles and the payload fields are ignored.
type UpdateAnimalRequest struct {
	Name        string `json:"name" validate:"omitempty,max=120"`
	Species     string `json:"species" validate:"omitempty,max=60"`
	Breed       string `json:"breed" validate:"omitempty,max=120"`
	AgeYears    int    `json:"age_years" validate:"gte=0,lte=60"`
	AgeMonths   int    `json:"age_months" validate:"gte=0,lte=11"`
	Sex         string `json:"sex" validate:"omitempty,oneof=MALE FEMALE UNKNOWN"`
	Status      string `json:"status" validate:"omitempty,oneof=AVAILABLE PENDING ADOPTED"`
	Vaccinated  bool   `json:"vaccinated"`
	Neutered    bool   `json:"neutered"`
	PhotoURL    string `json:"photo_url" validate:"omitempty,max=2048,url"`
	Description string `json:"description" validate:"omitempty,max=4000"`
}

// Response DTOs

type AnimalResponse struct {
	ID                 uuid.UUID  `json:"id"`
	Name               string     `json:"name"`
	Species            string     `json:"species"`
	Breed              string     `json:"breed,omitempty"`
	AgeYears           int        `json:"age_years"`
	AgeMonths          int        `json:"age_months"`
	Sex                string     `json:"sex,omitempty"`
	Status             string     `json:"status"`
	Vaccinated         bool       `json:"vaccinated"`
	Neutered           bool       `json:"neutered"`
	PhotoURL           string     `json:"photo_url,omitempty"`
	Description        string     `json:"description,omitempty"`
	Accepted           bool       `json:"accepted"`
	ShelterID          uuid.UUID  `json:"shelter_id"`
	VisitorID          *uuid.UUID `json:"visitor_id,omitempty"`
	PlanningVisitorID  *uuid.UUID `json:"planning_visitor_id,omitempty"`
	RequestToBeVisited bool       `json:"request_to_be_visited"`
	ToBeVisited        bool       `json:"to_be_visited"`
}

type AnimalListResponse struct {
	Animals []AnimalResponse `json:"animals"`
	Total   int              `json:"total"`
}
