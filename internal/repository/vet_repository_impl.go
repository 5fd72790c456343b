package repository

import (
	"errors"

	"shelternet/internal/domain/entity"
	domainRepo "shelternet/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type vetRepository struct{}

func NewVetRepository() domainRepo.VetRepository {
	return &vetRepository{}
}

func (r *vetRepository) Create(db *gorm.DB, vet *entity.Vet) error {
	return db.Omit(clause.Associations).Create(vet).Error
}

func (r *vetRepository) Save(db *gorm.DB, vet *entity.Vet) error {
	return db.Omit(clause.Associations).Save(vet).Error
}

func (r *vetRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Vet, error) {
	var vet entity.Vet
	err := db.Preload("User.Roles").Where("user_id = ?", userID).First(&vet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vet, nil
}

func (r *vetRepository) FindAll(db *gorm.DB) ([]entity.Vet, error) {
	var vets []entity.Vet
	err := db.Preload("User.Roles").Find(&vets).Error
	if err != nil {
		return nil, err
	}
	return vets, nil
}
