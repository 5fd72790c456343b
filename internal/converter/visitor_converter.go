package converter

import (
	"shelternet/internal/delivery/dto"
	"shelternet/internal/domain/entity"
)

// VisitorToResponse converts a Visitor entity to VisitorResponse DTO
func VisitorToResponse(visitor *entity.Visitor) *dto.VisitorResponse {
	if visitor == nil {
		return nil
	}

	return &dto.VisitorResponse{
		UserID:    visitor.UserID,
		FirstName: visitor.FirstName,
		LastName:  visitor.LastName,
		Phone:     visitor.Phone,
		Address:   visitor.Address,
		Sex:       string(visitor.Sex),
		Age:       visitor.Age,
		Bio:       visitor.Bio,
	}
}

// VisitorsToResponses converts a slice of Visitor entities to VisitorResponse DTOs
func VisitorsToResponses(visitors []entity.Visitor) []dto.VisitorResponse {
	responses := make([]dto.VisitorResponse, len(visitors))
	for i := range visitors {
		responses[i] = *VisitorToResponse(&visitors[i])
	}
	return responses
}

// SaveVisitorRequestToEntity maps the owner-editable form fields into a
// transient Visitor used as the copy source for the upsert.
func SaveVisitorRequestToEntity(req *dto.SaveVisitorRequest) *entity.Visitor {
	return &entity.Visitor{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Address:   req.Address,
		Sex:       entity.VisitorSex(req.Sex),
		Age:       req.Age,
		Bio:       req.Bio,
	}
}
