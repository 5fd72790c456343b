package handler

import (
	"encoding/json"
	"net/http"

	"shelternet/internal/delivery/dto"
	"shelternet/internal/delivery/http/middleware"
	"shelternet/internal/usecase"
	"shelternet/pkg/response"
	"shelternet/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type VisitorHandler struct {
	visitorUsecase usecase.VisitorUsecase
	validator      *validator.CustomValidator
}

func NewVisitorHandler(visitorUsecase usecase.VisitorUsecase, validator *validator.CustomValidator) *VisitorHandler {
	return &VisitorHandler{
		visitorUsecase: visitorUsecase,
		validator:      validator,
	}
}

func (h *VisitorHandler) GetVisitors(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	visitors, err := h.visitorUsecase.GetVisitors(r.Context(), actorID)
	if err != nil {
		switch err {
		case usecase.ErrForbidden:
			response.Forbidden(w, "")
		default:
			response.InternalServerError(w, "Failed to list visitors")
		}
		return
	}

	response.Success(w, http.StatusOK, "Visitors retrieved successfully", visitors)
}

func (h *VisitorHandler) GetVisitor(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	targetUserID, err := uuid.Parse(mux.Vars(r)["userId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	visitor, err := h.visitorUsecase.GetVisitorForUser(r.Context(), actorID, targetUserID)
	if err != nil {
		switch err {
		case usecase.ErrVisitorNotFound:
			response.NotFound(w, "Visitor not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "")
		default:
			response.InternalServerError(w, "Failed to get visitor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Visitor retrieved successfully", visitor)
}

func (h *VisitorHandler) SaveVisitor(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	targetUserID, err := uuid.Parse(mux.Vars(r)["userId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	var req dto.SaveVisitorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	visitor, err := h.visitorUsecase.SaveVisitor(r.Context(), actorID, targetUserID, &req)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "")
		case usecase.ErrPhoneAlreadyExists:
			response.Conflict(w, "Phone number already exists")
		default:
			response.InternalServerError(w, "Failed to save visitor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Visitor saved successfully", visitor)
}

func (h *VisitorHandler) SearchAnimals(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	animals, err := h.visitorUsecase.SearchAnimals(r.Context(), actorID)
	if err != nil {
		switch err {
		case usecase.ErrForbidden:
			response.Forbidden(w, "")
		default:
			response.InternalServerError(w, "Failed to search animals")
		}
		return
	}

	response.Success(w, http.StatusOK, "Animals retrieved successfully", animals)
}

func (h *VisitorHandler) ListPlannedVisits(w http.ResponseWriter, r *http.Request) {
	h.listVisitorAnimals(w, r, true)
}

func (h *VisitorHandler) ListAdoptedAnimals(w http.ResponseWriter, r *http.Request) {
	h.listVisitorAnimals(w, r, false)
}

func (h *VisitorHandler) listVisitorAnimals(w http.ResponseWriter, r *http.Request, planned bool) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	visitorUserID, err := uuid.Parse(mux.Vars(r)["userId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	var animals *dto.AnimalListResponse
	if planned {
		animals, err = h.visitorUsecase.ListPlannedVisits(r.Context(), actorID, visitorUserID)
	} else {
		animals, err = h.visitorUsecase.ListAdoptedAnimals(r.Context(), actorID, visitorUserID)
	}
	if err != nil {
		switch err {
		case usecase.ErrVisitorNotFound:
			response.NotFound(w, "Visitor not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "")
		default:
			response.InternalServerError(w, "Failed to list animals")
		}
		return
	}

	response.Success(w, http.StatusOK, "Animals retrieved successfully", animals)
}
