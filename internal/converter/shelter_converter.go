package converter

import (
	"shelternet/internal/delivery/dto"
	"shelternet/internal/domain/entity"
)

// ShelterToResponse converts a Shelter entity to ShelterResponse DTO
func ShelterToResponse(shelter *entity.Shelter) *dto.ShelterResponse {
	if shelter == nil {
		return nil
	}

	return &dto.ShelterResponse{
		UserID:     shelter.UserID,
		Name:       shelter.Name,
		Address:    shelter.Address,
		City:       shelter.City,
		Phone:      shelter.Phone,
		Authorized: shelter.Authorized,
		VetID:      shelter.VetID,
	}
}

// SheltersToResponses converts a slice of Shelter entities to ShelterResponse DTOs
func SheltersToResponses(shelters []entity.Shelter) []dto.ShelterResponse {
	responses := make([]dto.ShelterResponse, len(shelters))
	for i := range shelters {
		responses[i] = *ShelterToResponse(&shelters[i])
	}
	return responses
}

// SaveShelterRequestToEntity maps the owner-editable form fields into a
// transient Shelter used as the copy source for the upsert.
func SaveShelterRequestToEntity(req *dto.SaveShelterRequest) *entity.Shelter {
	return &entity.Shelter{
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		Phone:   req.Phone,
	}
}
