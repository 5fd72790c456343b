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

type ShelterHandler struct {
	shelterUsecase usecase.ShelterUsecase
	validator      *validator.CustomValidator
}

func NewShelterHandler(shelterUsecase usecase.ShelterUsecase, validator *validator.CustomValidator) *ShelterHandler {
	return &ShelterHandler{
		shelterUsecase: shelterUsecase,
		validator:      validator,
	}
}

func (h *ShelterHandler) GetShelters(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	shelters, err := h.shelterUsecase.GetShelters(r.Context(), actorID)
	if err != nil {
		switch err {
		case usecase.ErrForbidden:
			response.Forbidden(w, "")
		default:
			response.InternalServerError(w, "Failed to list shelters")
		}
		return
	}

	response.Success(w, http.StatusOK, "Shelters retrieved successfully", shelters)
}

func (h *ShelterHandler) GetShelter(w http.ResponseWriter, r *http.Request) {
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

	shelter, err := h.shelterUsecase.GetShelterForUser(r.Context(), actorID, targetUserID)
	if err != nil {
		switch err {
		case usecase.ErrShelterNotFound:
			response.NotFound(w, "Shelter not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "")
		default:
			response.InternalServerError(w, "Failed to get shelter")
		}
		return
	}

	response.Success(w, http.StatusOK, "Shelter retrieved successfully", shelter)
}

func (h *ShelterHandler) SaveShelter(w http.ResponseWriter, r *http.Request) {
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

	var req dto.SaveShelterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	shelter, err := h.shelterUsecase.SaveShelter(r.Context(), actorID, targetUserID, &req)
	if err != nil {
		switch err {
		case usecase.ErrShelterNotFound:
			response.NotFound(w, "Shelter not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "")
		default:
			response.InternalServerError(w, "Failed to save shelter")
		}
		return
	}

	response.Success(w, http.StatusOK, "Shelter saved successfully", shelter)
}

func (h *ShelterHandler) ListPendingVisits(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	shelterUserID, err := uuid.Parse(mux.Vars(r)["userId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	visits, err := h.shelterUsecase.ListPendingVisits(r.Context(), actorID, shelterUserID)
	if err != nil {
		switch err {
		case usecase.ErrShelterNotFound:
			response.NotFound(w, "Shelter not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "")
		case usecase.ErrVisitWithoutVisitor:
			response.InternalServerError(w, "Visit queue is inconsistent")
		default:
			response.InternalServerError(w, "Failed to list pending visits")
		}
		return
	}

	response.Success(w, http.StatusOK, "Pending visits retrieved successfully", visits)
}

func (h *ShelterHandler) AcceptVisit(w http.ResponseWriter, r *http.Request) {
	h.resolveVisit(w, r, true)
}

func (h *ShelterHandler) DenyVisit(w http.ResponseWriter, r *http.Request) {
	h.resolveVisit(w, r, false)
}

func (h *ShelterHandler) resolveVisit(w http.ResponseWriter, r *http.Request, accept bool) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	shelterUserID, err := uuid.Parse(vars["userId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}
	animalID, err := uuid.Parse(vars["animalId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid animal ID", nil)
		return
	}

	var animal *dto.AnimalResponse
	if accept {
		animal, err = h.shelterUsecase.AcceptVisit(r.Context(), actorID, shelterUserID, animalID)
	} else {
		animal, err = h.shelterUsecase.DenyVisit(r.Context(), actorID, shelterUserID, animalID)
	}
	if err != nil {
		switch err {
		case usecase.ErrShelterNotFound:
			response.NotFound(w, "Shelter not found")
		case usecase.ErrAnimalNotFound:
			response.NotFound(w, "Animal not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "")
		case usecase.ErrAnimalNotInShelter:
			response.Conflict(w, "Animal does not belong to this shelter")
		case usecase.ErrVisitNotRequested:
			response.Conflict(w, "No visit has been requested for this animal")
		case usecase.ErrVisitWithoutVisitor:
			response.InternalServerError(w, "Visit request is inconsistent")
		default:
			response.InternalServerError(w, "Failed to resolve visit request")
		}
		return
	}

	message := "Visit denied successfully"
	if accept {
		message = "Visit accepted successfully"
	}
	response.Success(w, http.StatusOK, message, animal)
}
