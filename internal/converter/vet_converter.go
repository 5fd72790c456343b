package converter

import (
	"shelternet/internal/delivery/dto"
	"shelternet/internal/domain/entity"
)

// VetToResponse converts a Vet entity to VetResponse DTO
func VetToResponse(vet *entity.Vet) *dto.VetResponse {
	if vet == nil {
		return nil
	}

	return &dto.VetResponse{
		UserID:               vet.UserID,
		FirstName:            vet.FirstName,
		LastName:             vet.LastName,
		IdentificationNumber: vet.IdentificationNumber,
		Authorized:           vet.Authorized,
	}
}

// VetsToResponses converts a slice of Vet entities to VetResponse DTOs
func VetsToResponses(vets []entity.Vet) []dto.VetResponse {
	responses := make([]dto.VetResponse, len(vets))
	for i := range vets {
		responses[i] = *VetToResponse(&vets[i])
	}
	return responses
}

// SaveVetRequestToEntity maps the owner-editable form fields into a
// transient Vet used as the copy source for the upsert.
func SaveVetRequestToEntity(req *dto.SaveVetRequest) *entity.Vet {
	return &entity.Vet{
		FirstName:            req.FirstName,
		LastName:             req.LastName,
		IdentificationNumber: req.IdentificationNumber,
	}
}
