package converter

import (
	"shelternet/internal/delivery/dto"
	"shelternet/internal/domain/entity"
)

// AnimalToResponse converts an Animal entity to AnimalResponse DTO
func AnimalToResponse(animal *entity.Animal) *dto.AnimalResponse {
	if animal == nil {
		return nil
	}

	return &dto.AnimalResponse{
		ID:                 animal.ID,
		Name:               animal.Name,
		Species:            animal.Species,
		Breed:              animal.Breed,
		AgeYears:           animal.AgeYears,
		AgeMonths:          animal.AgeMonths,
		Sex:                string(animal.Sex),
		Status:             string(animal.Status),
		Vaccinated:         animal.Vaccinated,
		Neutered:           animal.Neutered,
		PhotoURL:           animal.PhotoURL,
		Description:        animal.Description,
		Accepted:           animal.Accepted,
		ShelterID:          animal.ShelterID,
		VisitorID:          animal.VisitorID,
		PlanningVisitorID:  animal.PlanningVisitorID,
		RequestToBeVisited: animal.RequestToBeVisited,
		ToBeVisited:        animal.ToBeVisited,
	}
}

// AnimalsToResponses converts a slice of Animal entities to AnimalResponse DTOs
func AnimalsToResponses(animals []entity.Animal) []dto.AnimalResponse {
	responses := make([]dto.AnimalResponse, len(animals))
	for i := range animals {
		responses[i] = *AnimalToResponse(&animals[i])
	}
	return responses
}

// CreateAnimalRequestToEntity maps the creation form into a new Animal.
// Lifecycle flags start at their zero values: AVAILABLE, not accepted,
// no visit activity.
func CreateAnimalRequestToEntity(req *dto.CreateAnimalRequest) *entity.Animal {
	return &entity.Animal{
		Name:        req.Name,
		Species:     req.Species,
		Breed:       req.Breed,
		AgeYears:    req.AgeYears,
		AgeMonths:   req.AgeMonths,
		Sex:         entity.AnimalSex(req.Sex),
		Status:      entity.AnimalStatusAvailable,
		Vaccinated:  req.Vaccinated,
		Neutered:    req.Neutered,
		PhotoURL:    req.PhotoURL,
		Description: req.Description,
	}
}

// UpdateAnimalRequestToEntity maps the shelter edit form into a
// transient Animal used as the copy source for descriptive fields.
func UpdateAnimalRequestToEntity(req *dto.UpdateAnimalRequest) *entity.Animal {
	return &entity.Animal{
		Name:        req.Name,
		Species:     req.Species,
		Breed:       req.Breed,
		AgeYears:    req.AgeYears,
		AgeMonths:   req.AgeMonths,
		Sex:         entity.AnimalSex(req.Sex),
		Vaccinated:  req.Vaccinated,
		Neutered:    req.Neutered,
		PhotoURL:    req.PhotoURL,
		Description: req.Description,
	}
}
