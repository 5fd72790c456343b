package handler

import (
	"net/http"

	"shelternet/internal/delivery/http/middleware"
	"shelternet/internal/usecase"
	"shelternet/pkg/response"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
	}
}

func (h *AuditLogHandler) GetAuditLogs(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	logs, err := h.auditLogUsecase.GetAuditLogs(r.Context(), actorID)
	if err != nil {
		switch err {
		case usecase.ErrForbidden:
			response.Forbidden(w, "")
		default:
			response.InternalServerError(w, "Failed to list audit logs")
		}
		return
	}

	response.Success(w, http.StatusOK, "Audit logs retrieved successfully", logs)
}
