package repository

import (
	"shelternet/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AnimalRepository interface {
	Create(db *gorm.DB, animal *entity.Animal) error
	Save(db *gorm.DB, animal *entity.Animal) error
	// FindByID loads the animal with its shelter, the shelter's owner
	// (and roles) and assigned vet, the shape the access policy needs.
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Animal, error)
	FindAll(db *gorm.DB) ([]entity.Animal, error)
	FindByShelterID(db *gorm.DB, shelterID uuid.UUID) ([]entity.Animal, error)
	// FindRequestedByShelterID returns the shelter's animals with an
	// active visit request, planning visitor (and its user) preloaded.
	FindRequestedByShelterID(db *gorm.DB, shelterID uuid.UUID) ([]entity.Animal, error)
	FindPlannedByVisitorID(db *gorm.DB, visitorID uuid.UUID) ([]entity.Animal, error)
	FindAdoptedByVisitorID(db *gorm.DB, visitorID uuid.UUID) ([]entity.Animal, error)
}
