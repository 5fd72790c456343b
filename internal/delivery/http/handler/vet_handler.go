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

type VetHandler struct {
	vetUsecase usecase.VetUsecase
	validator  *validator.CustomValidator
}

func NewVetHandler(vetUsecase usecase.VetUsecase, validator *validator.CustomValidator) *VetHandler {
	return &VetHandler{
		vetUsecase: vetUsecase,
		validator:  validator,
	}
}

func (h *VetHandler) GetVets(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vets, err := h.vetUsecase.GetVets(r.Context(), actorID)
	if err != nil {
		switch err {
		case usecase.ErrForbidden:
			response.Forbidden(w, "")
		default:
			response.InternalServerError(w, "Failed to list vets")
		}
		return
	}

	response.Success(w, http.StatusOK, "Vets retrieved successfully", vets)
}

func (h *VetHandler) GetVet(w http.ResponseWriter, r *http.Request) {
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

	vet, err := h.vetUsecase.GetVetForUser(r.Context(), actorID, targetUserID)
	if err != nil {
		switch err {
		case usecase.ErrVetNotFound:
			response.NotFound(w, "Vet not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "")
		default:
			response.InternalServerError(w, "Failed to get vet")
		}
		return
	}

	response.Success(w, http.StatusOK, "Vet retrieved successfully", vet)
}

func (h *VetHandler) SaveVet(w http.ResponseWriter, r *http.Request) {
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

	var req dto.SaveVetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	vet, err := h.vetUsecase.SaveVet(r.Context(), actorID, targetUserID, &req)
	if err != nil {
		switch err {
		case usecase.ErrVetNotFound:
			response.NotFound(w, "Vet not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "")
		case usecase.ErrIdentificationAlreadyTaken:
			response.Conflict(w, "Identification number already exists")
		default:
			response.InternalServerError(w, "Failed to save vet")
		}
		return
	}

	response.Success(w, http.StatusOK, "Vet saved successfully", vet)
}

func (h *VetHandler) AssignShelter(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vetUserID, err := uuid.Parse(mux.Vars(r)["userId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	var req dto.AssignShelterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	shelter, err := h.vetUsecase.AssignShelter(r.Context(), actorID, vetUserID, &req)
	if err != nil {
		switch err {
		case usecase.ErrVetNotFound:
			response.NotFound(w, "Vet not found")
		case usecase.ErrShelterNotFound:
			response.NotFound(w, "Shelter not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "")
		case usecase.ErrVetNotAuthorized:
			response.Conflict(w, "Vet is not authorized")
		case usecase.ErrShelterNotAuthorized:
			response.Conflict(w, "Shelter is not authorized")
		case usecase.ErrVetAlreadyAssigned:
			response.Conflict(w, "Vet is already assigned to this shelter")
		default:
			response.InternalServerError(w, "Failed to assign shelter")
		}
		return
	}

	response.Success(w, http.StatusOK, "Shelter assigned successfully", shelter)
}

func (h *VetHandler) ListVetAnimals(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vetUserID, err := uuid.Parse(mux.Vars(r)["userId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	animals, err := h.vetUsecase.ListVetAnimals(r.Context(), actorID, vetUserID)
	if err != nil {
		switch err {
		case usecase.ErrVetNotFound:
			response.NotFound(w, "Vet not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "")
		default:
			response.InternalServerError(w, "Failed to list animals")
		}
		return
	}

	response.Success(w, http.StatusOK, "Animals retrieved successfully", animals)
}
