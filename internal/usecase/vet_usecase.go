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

type VetUsecase interface {
	GetVets(ctx context.Context, actorID uuid.UUID) (*dto.VetListResponse, error)
	GetVetForUser(ctx context.Context, actorID, targetUserID uuid.UUID) (*dto.VetResponse, error)
	SaveVet(ctx context.Context, actorID, targetUserID uuid.UUID, req *dto.SaveVetRequest) (*dto.VetResponse, error)
	AssignShelter(ctx context.Context, actorID, vetUserID uuid.UUID, req *dto.AssignShelterRequest) (*dto.ShelterResponse, error)
	ListVetAnimals(ctx context.Context, actorID, vetUserID uuid.UUID) (*dto.AnimalListResponse, error)
}

type vetUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	roleRepo     repository.RoleRepository
	vetRepo      repository.VetRepository
	shelterRepo  repository.ShelterRepository
	animalRepo   repository.AnimalRepository
	accessPolicy *service.AccessPolicy
	auditService service.AuditService
}

func NewVetUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	vetRepo repository.VetRepository,
	shelterRepo repository.ShelterRepository,
	animalRepo repository.AnimalRepository,
	accessPolicy *service.AccessPolicy,
	auditService service.AuditService,
) VetUsecase {
	return &vetUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		roleRepo:     roleRepo,
		vetRepo:      vetRepo,
		shelterRepo:  shelterRepo,
		animalRepo:   animalRepo,
		accessPolicy: accessPolicy,
		auditService: auditService,
	}
}

// GetVets returns every vet together with the authorized shelters, so
// the admin view can offer assignment targets in the same screen.
func (u *vetUsecase) GetVets(ctx context.Context, actorID uuid.UUID) (*dto.VetListResponse, error) {
	db := u.db.WithContext(ctx)

	actor, err := loadActor(db, u.userRepo, actorID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	vets, err := u.vetRepo.FindAll(db)
	if err != nil {
		u.log.Warnf("Failed to list vets: %+v", err)
		return nil, err
	}

	shelters, err := u.shelterRepo.FindAuthorized(db)
	if err != nil {
		u.log.Warnf("Failed to list authorized shelters: %+v", err)
		return nil, err
	}

	return &dto.VetListResponse{
		Vets:     converter.VetsToResponses(vets),
		Shelters: converter.SheltersToResponses(shelters),
		Total:    len(vets),
	}, nil
}

func (u *vetUsecase) GetVetForUser(ctx context.Context, actorID, targetUserID uuid.UUID) (*dto.VetResponse, error) {
	db := u.db.WithContext(ctx)

	actor, err := loadActor(db, u.userRepo, actorID)
	if err != nil {
		return nil, err
	}

	vet, err := u.vetRepo.FindByUserID(db, targetUserID)
	if err != nil {
		u.log.Warnf("Failed to find vet: %+v", err)
		return nil, err
	}
	if vet == nil {
		if actor.IsAdmin() || actorID == targetUserID {
			return nil, ErrVetNotFound
		}
		return nil, ErrForbidden
	}

	if !u.accessPolicy.CanAccessVet(actor, vet) {
		return nil, ErrForbidden
	}

	return converter.VetToResponse(vet), nil
}

// SaveVet serves two callers. The owner upserts its own profile and
// receives the vet role on first save. An admin saving someone else's
// vet toggles the authorization gate; de-authorizing also severs the
// vet from every shelter it was assigned to.
func (u *vetUsecase) SaveVet(ctx context.Context, actorID, targetUserID uuid.UUID, req *dto.SaveVetRequest) (*dto.VetResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	actor, err := loadActor(tx, u.userRepo, actorID)
	if err != nil {
		return nil, err
	}

	vet, err := u.vetRepo.FindByUserID(tx, targetUserID)
	if err != nil {
		u.log.Warnf("Failed to find vet: %+v", err)
		return nil, err
	}

	switch {
	case actor.IsAdmin() && actorID != targetUserID:
		if vet == nil {
			return nil, ErrVetNotFound
		}

		oldAuthorized := vet.Authorized
		vet.ToggleAuthorization()

		if err := u.vetRepo.Save(tx, vet); err != nil {
			u.log.Warnf("Failed to save vet: %+v", err)
			return nil, err
		}

		var cleared int64
		if !vet.Authorized {
			cleared, err = u.shelterRepo.ClearVetAssignments(tx, vet.UserID)
			if err != nil {
				u.log.Warnf("Failed to clear vet assignments: %+v", err)
				return nil, err
			}
		}

		// The vet role tracks the authorization gate.
		owner, err := loadActor(tx, u.userRepo, targetUserID)
		if err != nil {
			return nil, err
		}
		if vet.Authorized && !owner.IsVet() {
			if err := grantRole(tx, u.log, u.roleRepo, u.userRepo, owner, entity.RoleVet); err != nil {
				return nil, err
			}
		}
		if !vet.Authorized && owner.IsVet() {
			if err := revokeRole(tx, u.log, u.roleRepo, u.userRepo, owner, entity.RoleVet); err != nil {
				return nil, err
			}
		}

		u.auditService.LogUpdate(tx, &actorID, entity.AuditActionVetAuthorize, "vet", vet.UserID.String(),
			map[string]interface{}{"authorized": oldAuthorized},
			map[string]interface{}{"authorized": vet.Authorized, "cleared_assignments": cleared},
		)

	case actorID == targetUserID:
		if vet == nil {
			vet = converter.SaveVetRequestToEntity(req)
			vet.UserID = actorID

			if err := u.vetRepo.Create(tx, vet); err != nil {
				if isDuplicateKeyError(err, "identification_number") {
					return nil, ErrIdentificationAlreadyTaken
				}
				u.log.Warnf("Failed to create vet: %+v", err)
				return nil, err
			}

			u.auditService.LogCreate(tx, &actorID, entity.AuditActionVetSave, "vet", vet.UserID.String(), vet)
		} else {
			vet.CopyEditableFields(converter.SaveVetRequestToEntity(req))

			if err := u.vetRepo.Save(tx, vet); err != nil {
				if isDuplicateKeyError(err, "identification_number") {
					return nil, ErrIdentificationAlreadyTaken
				}
				u.log.Warnf("Failed to save vet: %+v", err)
				return nil, err
			}

			u.auditService.LogUpdate(tx, &actorID, entity.AuditActionVetSave, "vet", vet.UserID.String(), nil, vet)
		}

		if !actor.IsVet() {
			if err := grantRole(tx, u.log, u.roleRepo, u.userRepo, actor, entity.RoleVet); err != nil {
				return nil, err
			}
		}

	default:
		return nil, ErrForbidden
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.VetToResponse(vet), nil
}

// AssignShelter attaches a vet to a shelter. Both parties must be
// authorized; assigning over a different vet replaces the assignment.
func (u *vetUsecase) AssignShelter(ctx context.Context, actorID, vetUserID uuid.UUID, req *dto.AssignShelterRequest) (*dto.ShelterResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	actor, err := loadActor(tx, u.userRepo, actorID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	vet, err := u.vetRepo.FindByUserID(tx, vetUserID)
	if err != nil {
		u.log.Warnf("Failed to find vet: %+v", err)
		return nil, err
	}
	if vet == nil {
		return nil, ErrVetNotFound
	}

	shelter, err := u.shelterRepo.FindByUserID(tx, req.ShelterUserID)
	if err != nil {
		u.log.Warnf("Failed to find shelter: %+v", err)
		return nil, err
	}
	if shelter == nil {
		return nil, ErrShelterNotFound
	}

	if err := attachVet(shelter, vet); err != nil {
		return nil, err
	}

	if err := u.shelterRepo.Save(tx, shelter); err != nil {
		u.log.Warnf("Failed to save shelter: %+v", err)
		return nil, err
	}

	u.auditService.LogUpdate(tx, &actorID, entity.AuditActionVetAssignShelter, "shelter", shelter.UserID.String(), nil, map[string]interface{}{
		"vet_id": vet.UserID.String(),
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ShelterToResponse(shelter), nil
}

// attachVet wires the vet into the shelter's assignment slot. Both
// parties must be authorized. Re-assigning the vet the shelter already
// has is a conflict; a different vet replaces the current assignment.
func attachVet(shelter *entity.Shelter, vet *entity.Vet) error {
	if !vet.Authorized {
		return ErrVetNotAuthorized
	}
	if !shelter.Authorized {
		return ErrShelterNotAuthorized
	}
	if shelter.VetID != nil && *shelter.VetID == vet.UserID {
		return ErrVetAlreadyAssigned
	}
	shelter.VetID = &vet.UserID
	shelter.Vet = nil
	return nil
}

// ListVetAnimals returns the animals of every shelter the vet is
// assigned to, the vet's review queue.
func (u *vetUsecase) ListVetAnimals(ctx context.Context, actorID, vetUserID uuid.UUID) (*dto.AnimalListResponse, error) {
	db := u.db.WithContext(ctx)

	actor, err := loadActor(db, u.userRepo, actorID)
	if err != nil {
		return nil, err
	}

	vet, err := u.vetRepo.FindByUserID(db, vetUserID)
	if err != nil {
		u.log.Warnf("Failed to find vet: %+v", err)
		return nil, err
	}
	if vet == nil {
		if actor.IsAdmin() || actorID == vetUserID {
			return nil, ErrVetNotFound
		}
		return nil, ErrForbidden
	}

	if !u.accessPolicy.CanAccessVet(actor, vet) {
		return nil, ErrForbidden
	}

	shelters, err := u.shelterRepo.FindByVetID(db, vet.UserID)
	if err != nil {
		u.log.Warnf("Failed to list assigned shelters: %+v", err)
		return nil, err
	}

	var animals []entity.Animal
	for _, shelter := range shelters {
		batch, err := u.animalRepo.FindByShelterID(db, shelter.UserID)
		if err != nil {
			u.log.Warnf("Failed to list animals for shelter %s: %+v", shelter.UserID, err)
			return nil, err
		}
		animals = append(animals, batch...)
	}

	return &dto.AnimalListResponse{
		Animals: converter.AnimalsToResponses(animals),
		Total:   len(animals),
	}, nil
}
