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

type ShelterUsecase interface {
	GetShelters(ctx context.Context, actorID uuid.UUID) (*dto.ShelterListResponse, error)
	GetShelterForUser(ctx context.Context, actorID, targetUserID uuid.UUID) (*dto.ShelterResponse, error)
	SaveShelter(ctx context.Context, actorID, targetUserID uuid.UUID, req *dto.SaveShelterRequest) (*dto.ShelterResponse, error)
	ListPendingVisits(ctx context.Context, actorID, shelterUserID uuid.UUID) (*dto.PendingVisitListResponse, error)
	AcceptVisit(ctx context.Context, actorID, shelterUserID, animalID uuid.UUID) (*dto.AnimalResponse, error)
	DenyVisit(ctx context.Context, actorID, shelterUserID, animalID uuid.UUID) (*dto.AnimalResponse, error)
}

type shelterUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	roleRepo     repository.RoleRepository
	shelterRepo  repository.ShelterRepository
	animalRepo   repository.AnimalRepository
	accessPolicy *service.AccessPolicy
	auditService service.AuditService
}

func NewShelterUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	shelterRepo repository.ShelterRepository,
	animalRepo repository.AnimalRepository,
	accessPolicy *service.AccessPolicy,
	auditService service.AuditService,
) ShelterUsecase {
	return &shelterUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		roleRepo:     roleRepo,
		shelterRepo:  shelterRepo,
		animalRepo:   animalRepo,
		accessPolicy: accessPolicy,
		auditService: auditService,
	}
}

func (u *shelterUsecase) GetShelters(ctx context.Context, actorID uuid.UUID) (*dto.ShelterListResponse, error) {
	db := u.db.WithContext(ctx)

	actor, err := loadActor(db, u.userRepo, actorID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	shelters, err := u.shelterRepo.FindAll(db)
	if err != nil {
		u.log.Warnf("Failed to list shelters: %+v", err)
		return nil, err
	}

	return &dto.ShelterListResponse{
		Shelters: converter.SheltersToResponses(shelters),
		Total:    len(shelters),
	}, nil
}

func (u *shelterUsecase) GetShelterForUser(ctx context.Context, actorID, targetUserID uuid.UUID) (*dto.ShelterResponse, error) {
	db := u.db.WithContext(ctx)

	actor, err := loadActor(db, u.userRepo, actorID)
	if err != nil {
		return nil, err
	}

	shelter, err := u.shelterRepo.FindByUserID(db, targetUserID)
	if err != nil {
		u.log.Warnf("Failed to find shelter: %+v", err)
		return nil, err
	}
	if shelter == nil {
		// Only the prospective owner and admins learn that no profile
		// exists yet.
		if actor.IsAdmin() || actorID == targetUserID {
			return nil, ErrShelterNotFound
		}
		return nil, ErrForbidden
	}

	if !u.accessPolicy.CanAccessShelter(actor, shelter) {
		return nil, ErrForbidden
	}

	return converter.ShelterToResponse(shelter), nil
}

// SaveShelter serves two callers. The owner upserts its own profile and
// receives the shelter role on first save. An admin saving someone
// else's shelter toggles the authorization gate instead; de-authorizing
// also severs the assigned vet.
func (u *shelterUsecase) SaveShelter(ctx context.Context, actorID, targetUserID uuid.UUID, req *dto.SaveShelterRequest) (*dto.ShelterResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	actor, err := loadActor(tx, u.userRepo, actorID)
	if err != nil {
		return nil, err
	}

	shelter, err := u.shelterRepo.FindByUserID(tx, targetUserID)
	if err != nil {
		u.log.Warnf("Failed to find shelter: %+v", err)
		return nil, err
	}

	switch {
	case actor.IsAdmin() && actorID != targetUserID:
		if shelter == nil {
			return nil, ErrShelterNotFound
		}

		oldAuthorized := shelter.Authorized
		shelter.ToggleAuthorization()

		if err := u.shelterRepo.Save(tx, shelter); err != nil {
			u.log.Warnf("Failed to save shelter: %+v", err)
			return nil, err
		}

		// The shelter role tracks the authorization gate.
		owner, err := loadActor(tx, u.userRepo, targetUserID)
		if err != nil {
			return nil, err
		}
		if shelter.Authorized && !owner.IsShelter() {
			if err := grantRole(tx, u.log, u.roleRepo, u.userRepo, owner, entity.RoleShelter); err != nil {
				return nil, err
			}
		}
		if !shelter.Authorized && owner.IsShelter() {
			if err := revokeRole(tx, u.log, u.roleRepo, u.userRepo, owner, entity.RoleShelter); err != nil {
				return nil, err
			}
		}

		u.auditService.LogUpdate(tx, &actorID, entity.AuditActionShelterAuthorize, "shelter", shelter.UserID.String(),
			map[string]interface{}{"authorized": oldAuthorized},
			map[string]interface{}{"authorized": shelter.Authorized},
		)

	case actorID == targetUserID:
		if shelter == nil {
			shelter = converter.SaveShelterRequestToEntity(req)
			shelter.UserID = actorID

			if err := u.shelterRepo.Create(tx, shelter); err != nil {
				u.log.Warnf("Failed to create shelter: %+v", err)
				return nil, err
			}

			u.auditService.LogCreate(tx, &actorID, entity.AuditActionShelterSave, "shelter", shelter.UserID.String(), shelter)
		} else {
			shelter.CopyEditableFields(converter.SaveShelterRequestToEntity(req))

			if err := u.shelterRepo.Save(tx, shelter); err != nil {
				u.log.Warnf("Failed to save shelter: %+v", err)
				return nil, err
			}

			u.auditService.LogUpdate(tx, &actorID, entity.AuditActionShelterSave, "shelter", shelter.UserID.String(), nil, shelter)
		}

		if !actor.IsShelter() {
			if err := grantRole(tx, u.log, u.roleRepo, u.userRepo, actor, entity.RoleShelter); err != nil {
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

	return converter.ShelterToResponse(shelter), nil
}

func (u *shelterUsecase) ListPendingVisits(ctx context.Context, actorID, shelterUserID uuid.UUID) (*dto.PendingVisitListResponse, error) {
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

	// The visit queue is shelter management, not browsing: visitors and
	// the assigned vet stay out.
	if !actor.IsAdmin() && !(shelter.UserID == actorID && actor.IsShelter()) {
		return nil, ErrForbidden
	}

	animals, err := u.animalRepo.FindRequestedByShelterID(db, shelter.UserID)
	if err != nil {
		u.log.Warnf("Failed to list requested animals: %+v", err)
		return nil, err
	}

	rows, err := buildPendingVisitRows(animals)
	if err != nil {
		u.log.Warnf("Pending visit queue for shelter %s is inconsistent: %+v", shelter.UserID, err)
		return nil, err
	}

	return &dto.PendingVisitListResponse{
		Rows:  rows,
		Total: len(rows),
	}, nil
}

func (u *shelterUsecase) AcceptVisit(ctx context.Context, actorID, shelterUserID, animalID uuid.UUID) (*dto.AnimalResponse, error) {
	return u.resolveVisit(ctx, actorID, shelterUserID, animalID, true)
}

func (u *shelterUsecase) DenyVisit(ctx context.Context, actorID, shelterUserID, animalID uuid.UUID) (*dto.AnimalResponse, error) {
	return u.resolveVisit(ctx, actorID, shelterUserID, animalID, false)
}

func (u *shelterUsecase) resolveVisit(ctx context.Context, actorID, shelterUserID, animalID uuid.UUID, accept bool) (*dto.AnimalResponse, error) {
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

	if !actor.IsAdmin() && !(shelter.UserID == actorID && actor.IsShelter()) {
		return nil, ErrForbidden
	}

	animal, err := u.animalRepo.FindByID(tx, animalID)
	if err != nil {
		u.log.Warnf("Failed to find animal: %+v", err)
		return nil, err
	}
	if animal == nil {
		return nil, ErrAnimalNotFound
	}
	if animal.ShelterID != shelter.UserID {
		return nil, ErrAnimalNotInShelter
	}
	if !animal.VisitRequested() {
		return nil, ErrVisitNotRequested
	}
	if animal.PlanningVisitorID == nil {
		return nil, ErrVisitWithoutVisitor
	}

	action := entity.AuditActionVisitAccept
	if accept {
		animal.ApproveVisit()
	} else {
		action = entity.AuditActionVisitDeny
		animal.DenyVisit()
	}

	if err := u.animalRepo.Save(tx, animal); err != nil {
		u.log.Warnf("Failed to save animal: %+v", err)
		return nil, err
	}

	u.auditService.LogUpdate(tx, &actorID, action, "animal", animal.ID.String(), nil, map[string]interface{}{
		"to_be_visited":         animal.ToBeVisited,
		"request_to_be_visited": animal.RequestToBeVisited,
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AnimalToResponse(animal), nil
}

// buildPendingVisitRows pairs each requested animal with its planning
// visitor. A raised request without an attached visitor is a stored
// inconsistency and fails the whole listing rather than being skipped.
func buildPendingVisitRows(animals []entity.Animal) ([]dto.PendingVisitRow, error) {
	rows := make([]dto.PendingVisitRow, 0, len(animals))
	for i := range animals {
		animal := &animals[i]
		if animal.PlanningVisitorID == nil || animal.PlanningVisitor == nil {
			return nil, ErrVisitWithoutVisitor
		}
		rows = append(rows, dto.PendingVisitRow{
			Animal:        *converter.AnimalToResponse(animal),
			Visitor:       *converter.VisitorToResponse(animal.PlanningVisitor),
			VisitorUserID: animal.PlanningVisitor.UserID,
		})
	}
	return rows, nil
}
