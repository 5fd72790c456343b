package repository

import (
	"shelternet/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShelterRepository interface {
	Create(db *gorm.DB, shelter *entity.Shelter) error
	Save(db *gorm.DB, shelter *entity.Shelter) error
	// FindByUserID loads the shelter with its owner (and roles) and the
	// assigned vet (and that vet's user), the shape the access policy
	// evaluates against.
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Shelter, error)
	FindAll(db *gorm.DB) ([]entity.Shelter, error)
	FindAuthorized(db *gorm.DB) ([]entity.Shelter, error)
	FindByVetID(db *gorm.DB, vetID uuid.UUID) ([]entity.Shelter, error)
	// ClearVetAssignments severs every shelter's reference to the vet in
	// a single statement and reports how many rows it touched.
	ClearVetAssignments(db *gorm.DB, vetID uuid.UUID) (int64, error)
}
