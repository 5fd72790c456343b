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

type VisitorUsecase interface {
	GetVisitors(ctx context.Context, actorID uuid.UUID) (*dto.VisitorListResponse, error)
	GetVisitorForUser(ctx context.Context, actorID, targetUserID uuid.UUID) (*dto.VisitorResponse, error)
	SaveVisitor(ctx context.Context, actorID, targetUserID uuid.UUID, req *dto.SaveVisitorRequest) (*dto.VisitorResponse, error)
	SearchAnimals(ctx context.Context, actorID uuid.UUID) (*dto.AnimalListResponse, error)
	ListPlannedVisits(ctx context.Context, actorID, visitorUserID uuid.UUID) (*dto.AnimalListResponse, error)
	ListAdoptedAnimals(ctx context.Context, actorID, visitorUserID uuid.UUID) (*dto.AnimalListResponse, error)
}

type visitorUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	roleRepo     repository.RoleRepository
	visitorRepo  repository.VisitorRepository
	animalRepo   repository.AnimalRepository
	accessPolicy *service.AccessPolicy
	auditService service.AuditService
}

func NewVisitorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	visitorRepo repository.VisitorRepository,
	animalRepo repository.AnimalRepository,
	accessPolicy *service.AccessPolicy,
	auditService service.AuditService,
) VisitorUsecase {
	return &visitorUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		roleRepo:     roleRepo,
		visitorRepo:  visitorRepo,
		animalRepo:   animalRepo,
		accessPolicy: accessPolicy,
		auditService: auditService,
	}
}

func (u *visitorUsecase) GetVisitors(ctx context.Context, actorID uuid.UUID) (*dto.VisitorListResponse, error) {
	db := u.db.WithContext(ctx)

	actor, err := loadActor(db, u.userRepo, actorID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	visitors, err := u.visitorRepo.FindAll(db)
	if err != nil {
		u.log.Warnf("Failed to list visitors: %+v", err)
		return nil, err
	}

	return &dto.VisitorListResponse{
		Visitors: converter.VisitorsToResponses(visitors),
		Total:    len(visitors),
	}, nil
}

func (u *visitorUsecase) GetVisitorForUser(ctx context.Context, actorID, targetUserID uuid.UUID) (*dto.VisitorResponse, error) {
	db := u.db.WithContext(ctx)

	actor, err := loadActor(db, u.userRepo, actorID)
	if err != nil {
		return nil, err
	}

	visitor, err := u.visitorRepo.FindByUserID(db, targetUserID)
	if err != nil {
		u.log.Warnf("Failed to find visitor: %+v", err)
		return nil, err
	}
	if visitor == nil {
		if actor.IsAdmin() || actor.IsShelter() || actorID == targetUserID {
			return nil, ErrVisitorNotFound
		}
		return nil, ErrForbidden
	}

	if !u.accessPolicy.CanAccessVisitor(actor, visitor) {
		return nil, ErrForbidden
	}

	return converter.VisitorToResponse(visitor), nil
}

// SaveVisitor upserts the profile of the target user. Completing a
// visitor profile is what grants the visitor role; there is no admin
// authorization gate on visitors.
func (u *visitorUsecase) SaveVisitor(ctx context.Context, actorID, targetUserID uuid.UUID, req *dto.SaveVisitorRequest) (*dto.VisitorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	actor, err := loadActor(tx, u.userRepo, actorID)
	if err != nil {
		return nil, err
	}
	if actorID != targetUserID && !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	target := actor
	if actorID != targetUserID {
		target, err = loadActor(tx, u.userRepo, targetUserID)
		if err != nil {
			return nil, err
		}
	}

	visitor, err := u.visitorRepo.FindByUserID(tx, targetUserID)
	if err != nil {
		u.log.Warnf("Failed to find visitor: %+v", err)
		return nil, err
	}

	if visitor == nil {
		visitor = converter.SaveVisitorRequestToEntity(req)
		visitor.UserID = targetUserID

		if err := u.visitorRepo.Create(tx, visitor); err != nil {
			if isDuplicateKeyError(err, "phone") {
				return nil, ErrPhoneAlreadyExists
			}
			u.log.Warnf("Failed to create visitor: %+v", err)
			return nil, err
		}

		u.auditService.LogCreate(tx, &actorID, entity.AuditActionVisitorSave, "visitor", visitor.UserID.String(), visitor)
	} else {
		visitor.CopyEditableFields(converter.SaveVisitorRequestToEntity(req))

		if err := u.visitorRepo.Save(tx, visitor); err != nil {
			if isDuplicateKeyError(err, "phone") {
				return nil, ErrPhoneAlreadyExists
			}
			u.log.Warnf("Failed to save visitor: %+v", err)
			return nil, err
		}

		u.auditService.LogUpdate(tx, &actorID, entity.AuditActionVisitorSave, "visitor", visitor.UserID.String(), nil, visitor)
	}

	if !target.IsVisitor() {
		if err := grantRole(tx, u.log, u.roleRepo, u.userRepo, target, entity.RoleVisitor); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.VisitorToResponse(visitor), nil
}

// SearchAnimals returns the animals a visitor may request a visit for.
func (u *visitorUsecase) SearchAnimals(ctx context.Context, actorID uuid.UUID) (*dto.AnimalListResponse, error) {
	db := u.db.WithContext(ctx)

	actor, err := loadActor(db, u.userRepo, actorID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && !actor.IsVisitor() {
		return nil, ErrForbidden
	}

	animals, err := u.animalRepo.FindAll(db)
	if err != nil {
		u.log.Warnf("Failed to list animals: %+v", err)
		return nil, err
	}

	visible := filterSearchableAnimals(animals, actorID)

	return &dto.AnimalListResponse{
		Animals: converter.AnimalsToResponses(visible),
		Total:   len(visible),
	}, nil
}

func (u *visitorUsecase) ListPlannedVisits(ctx context.Context, actorID, visitorUserID uuid.UUID) (*dto.AnimalListResponse, error) {
	return u.listVisitorAnimals(ctx, actorID, visitorUserID, true)
}

func (u *visitorUsecase) ListAdoptedAnimals(ctx context.Context, actorID, visitorUserID uuid.UUID) (*dto.AnimalListResponse, error) {
	return u.listVisitorAnimals(ctx, actorID, visitorUserID, false)
}

func (u *visitorUsecase) listVisitorAnimals(ctx context.Context, actorID, visitorUserID uuid.UUID, planned bool) (*dto.AnimalListResponse, error) {
	db := u.db.WithContext(ctx)

	actor, err := loadActor(db, u.userRepo, actorID)
	if err != nil {
		return nil, err
	}

	visitor, err := u.visitorRepo.FindByUserID(db, visitorUserID)
	if err != nil {
		u.log.Warnf("Failed to find visitor: %+v", err)
		return nil, err
	}
	if visitor == nil {
		if actor.IsAdmin() || actorID == visitorUserID {
			return nil, ErrVisitorNotFound
		}
		return nil, ErrForbidden
	}

	if !u.accessPolicy.CanAccessVisitor(actor, visitor) {
		return nil, ErrForbidden
	}

	var animals []entity.Animal
	if planned {
		animals, err = u.animalRepo.FindPlannedByVisitorID(db, visitor.UserID)
	} else {
		animals, err = u.animalRepo.FindAdoptedByVisitorID(db, visitor.UserID)
	}
	if err != nil {
		u.log.Warnf("Failed to list visitor animals: %+v", err)
		return nil, err
	}

	return &dto.AnimalListResponse{
		Animals: converter.AnimalsToResponses(animals),
		Total:   len(animals),
	}, nil
}

// filterSearchableAnimals keeps the animals a visitor can act on:
// vet-accepted, not yet adopted, listed by a shelter whose owner still
// holds the shelter role, and not locked by another visitor's pending
// request. The visitor's own requests stay visible so they can be
// withdrawn.
func filterSearchableAnimals(animals []entity.Animal, visitorID uuid.UUID) []entity.Animal {
	visible := make([]entity.Animal, 0, len(animals))
	for _, animal := range animals {
		if !animal.Accepted || animal.IsAdopted() {
			continue
		}
		if !animal.Shelter.User.IsShelter() {
			continue
		}
		if animal.RequestToBeVisited && (animal.PlanningVisitorID == nil || *animal.PlanningVisitorID != visitorID) {
			continue
		}
		visible = append(visible, animal)
	}
	return visible
}
