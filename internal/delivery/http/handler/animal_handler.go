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

type AnimalHandler struct {
	animalUsecase usecase.AnimalUsecase
	validator     *validator.CustomValidator
}

func NewAnimalHandler(animalUsecase usecase.AnimalUsecase, validator *validator.CustomValidator) *AnimalHandler {
	return &AnimalHandler{
		animalUsecase: animalUsecase,
		validator:     validator,
	}
}

func (h *AnimalHandler) CreateAnimal(w http.ResponseWriter, r *http.Request) {
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

	var req dto.CreateAnimalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	animal, err := h.animalUsecase.CreateAnimal(r.Context(), actorID, shelterUserID, &req)
	if err != nil {
		switch err {
		case usecase.ErrShelterNotFound:
			response.NotFound(w, "Shelter not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "")
		default:
			response.InternalServerError(w, "Failed to create animal")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Animal created successfully", animal)
}

func (h *AnimalHandler) GetAnimal(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	animalID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid animal ID", nil)
		return
	}

	animal, err := h.animalUsecase.GetAnimal(r.Context(), actorID, animalID)
	if err != nil {
		switch err {
		case usecase.ErrAnimalNotFound:
			response.NotFound(w, "Animal not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "")
		default:
			response.InternalServerError(w, "Failed to get animal")
		}
		return
	}

	response.Success(w, http.StatusOK, "Animal retrieved successfully", animal)
}

func (h *AnimalHandler) ListByShelter(w http.ResponseWriter, r *http.Request) {
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

	animals, err := h.animalUsecase.ListByShelter(r.Context(), actorID, shelterUserID)
	if err != nil {
		switch err {
		case usecase.ErrShelterNotFound:
			response.NotFound(w, "Shelter not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "")
		default:
			response.InternalServerError(w, "Failed to list animals")
		}
		return
	}

	response.Success(w, http.StatusOK, "Animals retrieved successfully", animals)
}

func (h *AnimalHandler) UpdateAnimal(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	animalID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid animal ID", nil)
		return
	}

	var req dto.UpdateAnimalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	animal, err := h.animalUsecase.UpdateAnimal(r.Context(), actorID, animalID, &req)
	if err != nil {
		switch err {
		case usecase.ErrAnimalNotFound:
			response.NotFound(w, "Animal not found")
		case usecase.ErrVisitorNotFound:
			response.NotFound(w, "Visitor profile not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "")
		case usecase.ErrStatusBackward:
			response.Conflict(w, "Animal status cannot move backward")
		case usecase.ErrAnimalAdopted:
			response.Conflict(w, "Animal has already been adopted")
		default:
			response.InternalServerError(w, "Failed to update animal")
		}
		return
	}

	response.Success(w, http.StatusOK, "Animal updated successfully", animal)
}
