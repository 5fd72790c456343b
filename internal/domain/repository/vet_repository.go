package repository

import (
	"shelternet/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VetRepository interface {
	Create(db *gorm.DB, vet *entity.Vet) error
	Save(db *gorm.DB, vet *entity.Vet) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Vet, error)
	FindAll(db *gorm.DB) ([]entity.Vet, error)
}
