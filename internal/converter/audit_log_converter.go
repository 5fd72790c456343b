package converter

import (
	"shelternet/internal/delivery/dto"
	"shelternet/internal/domain/entity"
)

// AuditLogsToResponses converts AuditLog entities to AuditLogResponse DTOs
func AuditLogsToResponses(logs []entity.AuditLog) []dto.AuditLogResponse {
	responses := make([]dto.AuditLogResponse, len(logs))
	for i, log := range logs {
		responses[i] = dto.AuditLogResponse{
			ID:        log.ID,
			UserID:    log.UserID,
			Action:    log.Action,
			Metadata:  log.Metadata,
			CreatedAt: log.CreatedAt,
		}
		if log.User != nil {
			responses[i].Username = log.User.Username
		}
	}
	return responses
}
