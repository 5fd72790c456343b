package usecase

import (
	"context"

	"shelternet/internal/converter"
	"shelternet/internal/delivery/dto"
	"shelternet/internal/domain/entity"
	"shelternet/internal/domain/repository"
	"shelternet/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AnimalUsecase interface {
	CreateAnimal(ctx context.Context, actorID, shelterUserID uuid.UUID, req *dto.CreateAnimalRequest) (*dto.AnimalResponse, error)
	GetAnimal(ctx context.Context, actorID, animalID uuid.UUID) (*dto.AnimalResponse, error)
	ListByShelter(ctx context.Context, actorID, shelterUserID uuid.UUID) (*dto.AnimalListResponse, error)
	UpdateAnimal(ctx context.Context, actorID, animalID uuid.UUID, req *dto.UpdateAnimalRequest) (*dto.AnimalResponse, error)
}

type animalUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	shelterRepo  repository.ShelterRepository
	visitorRepo  repository.VisitorRepository
	animalRepo   repository.AnimalRepository
	accessPolicy *service.AccessPolicy
	auditService service.AuditService
}

func NewAnimalUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	shelterRepo repository.ShelterRepository,
	visitorRepo repository.VisitorRepository,
	animalRepo repository.AnimalRepository,
	accessPolicy *service.AccessPolicy,
	auditService service.AuditService,
) AnimalUsecase {
	return &animalUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		shelterRepo:  shelterRepo,
		visitorRepo:  visitorRepo,
		animalRepo:   animalRepo,
		accessPolicy: accessPolicy,
		auditService: auditService,
	}
}

func (u *animalUsecase) CreateAnimal(ctx context.Context, actorID, shelterUserID uuid.UUID, req *dto.CreateAnimalRequest) (*dto.AnimalResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	actor, err := loadActor(tx, u.userRepo, actorID)
	if err != nil {
		return nil, err
	}

	shelter, err := u.shelterRepo.FindByUserID(tx, shelterUserID)
	if err != nil {
		u.log.Warnf("Failed to find shelter: %+v", err)
		return nil, err
	}
	if shelter == nil {
		return nil, ErrShelterNotFound
	}

	// Listing animals is reserved to the owning shelter and admins;
	// browsing access is not enough.
	if !actor.IsAdmin() && !(shelter.UserID == actorID && actor.IsShelter()) {
		return nil, ErrForbidden
	}

	animal := converter.CreateAnimalRequestToEntity(req)
	animal.ShelterID = shelter.UserID

	if err := u.animalRepo.Create(tx, animal); err != nil {
		u.log.Warnf("Failed to create animal: %+v", err)
		return nil, err
	}

	u.auditService.LogCreate(tx, &actorID, entity.AuditActionAnimalCreate, "animal", animal.ID.String(), animal)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AnimalToResponse(animal), nil
}

func (u *animalUsecase) GetAnimal(ctx context.Context, actorID, animalID uuid.UUID) (*dto.AnimalResponse, error) {
	db := u.db.WithContext(ctx)

	actor, err := loadActor(db, u.userRepo, actorID)
	if err != nil {
		return nil, err
	}

	animal, err := u.animalRepo.FindByID(db, animalID)
	if err != nil {
		u.log.Warnf("Failed to find animal: %+v", err)
		return nil, err
	}
	if animal == nil {
		return nil, ErrAnimalNotFound
	}

	if !u.accessPolicy.CanMutateAnimal(actor, animal) {
		return nil, ErrForbidden
	}

	return converter.AnimalToResponse(animal), nil
}

func (u *animalUsecase) ListByShelter(ctx context.Context, actorID, shelterUserID uuid.UUID) (*dto.AnimalListResponse, error) {
	db := u.db.WithContext(ctx)

	actor, err := loadActor(db, u.userRepo, actorID)
	if err != nil {
		return nil, err
	}

	shelter, err := u.shelterRepo.FindByUserID(db, shelterUserID)
	if err != nil {
		u.log.Warnf("Failed to find shelter: %+v", err)
		return nil, err
	}
	if shelter == nil {
		return nil, ErrShelterNotFound
	}

	if !u.accessPolicy.CanAccessShelter(actor, shelter) {
		return nil, ErrForbidden
	}

	animals, err := u.animalRepo.FindByShelterID(db, shelter.UserID)
	if err != nil {
		u.log.Warnf("Failed to list animals: %+v", err)
		return nil, err
	}

	return &dto.AnimalListResponse{
		Animals: converter.AnimalsToResponses(animals),
		Total:   len(animals),
	}, nil
}

// UpdateAnimal is interpreted per actor. The assigned vet toggles the
// acceptance gate. The owning shelter (or an admin) edits the
// descriptive fields and may move the status forward, with ADOPTED
// consuming the planning visitor as the adopter. A visitor toggles its
// own visit request. Anything else is rejected outright.
func (u *animalUsecase) UpdateAnimal(ctx context.Context, actorID, animalID uuid.UUID, req *dto.UpdateAnimalRequest) (*dto.AnimalResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	actor, err := loadActor(tx, u.userRepo, actorID)
	if err != nil {
		return nil, err
	}

	animal, err := u.animalRepo.FindByID(tx, animalID)
	if err != nil {
		u.log.Warnf("Failed to find animal: %+v", err)
		return nil, err
	}
	if animal == nil {
		return nil, ErrAnimalNotFound
	}

	if !u.accessPolicy.CanMutateAnimal(actor, animal) {
		return nil, ErrForbidden
	}

	var action string
	metadata := map[string]interface{}{}

	switch {
	case animal.Shelter.VetID != nil && *animal.Shelter.VetID == actorID && actor.IsVet():
		animal.ToggleAccepted()
		action = entity.AuditActionAnimalUpdate
		metadata["accepted"] = animal.Accepted

	case actor.IsAdmin() || (animal.Shelter.UserID == actorID && actor.IsShelter()):
		action = entity.AuditActionAnimalUpdate

		if req.Status != "" {
			next := entity.AnimalStatus(req.Status)
			if !animal.Status.CanTransitionTo(next) {
				return nil, ErrStatusBackward
			}
			if next == entity.AnimalStatusAdopted && !animal.IsAdopted() {
				animal.FinalizeAdoption()
				action = entity.AuditActionAnimalAdopt
				if animal.VisitorID != nil {
					metadata["adopter_id"] = animal.VisitorID.String()
				}
			} else {
				animal.Status = next
			}
		}

		animal.CopyEditableFields(converter.UpdateAnimalRequestToEntity(req))
		metadata["status"] = string(animal.Status)

	case actor.IsVisitor():
		visitor, err := u.visitorRepo.FindByUserID(tx, actorID)
		if err != nil {
			u.log.Warnf("Failed to find visitor: %+v", err)
			return nil, err
		}
		if visitor == nil {
			return nil, ErrVisitorNotFound
		}
		if err := visitToggleGuard(animal, visitor.UserID); err != nil {
			return nil, err
		}

		animal.ToggleVisitRequest(visitor.UserID)
		action = entity.AuditActionVisitRequest
		metadata["requested"] = animal.RequestToBeVisited

	default:
		return nil, ErrForbidden
	}

	if err := u.animalRepo.Save(tx, animal); err != nil {
		u.log.Warnf("Failed to save animal: %+v", err)
		return nil, err
	}

	u.auditService.LogUpdate(tx, &actorID, action, "animal", animal.ID.String(), nil, metadata)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AnimalToResponse(animal), nil
}

// visitToggleGuard decides whether a visitor may flip the visit
// request on the animal. Adopted animals are closed for good, and a
// request raised by a different visitor locks the animal until the
// shelter resolves it. Vet acceptance is not a precondition here; it
// only narrows the search view.
func visitToggleGuard(animal *entity.Animal, visitorID uuid.UUID) error {
	if animal.IsAdopted() {
		return ErrAnimalAdopted
	}
	if animal.RequestToBeVisited && (animal.PlanningVisitorID == nil || *animal.PlanningVisitorID != visitorID) {
		return ErrForbidden
	}
	return nil
}
