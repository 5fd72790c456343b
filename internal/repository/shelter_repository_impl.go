package repository

import (
	"errors"

	"shelternet/internal/domain/entity"
	domainRepo "shelternet/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type shelterRepository struct{}

func NewShelterRepository() domainRepo.ShelterRepository {
	return &shelterRepository{}
}

func (r *shelterRepository) Create(db *gorm.DB, shelter *entity.Shelter) error {
	return db.Omit(clause.Associations).Create(shelter).Error
}

func (r *shelterRepository) Save(db *gorm.DB, shelter *entity.Shelter) error {
	return db.Omit(clause.Associations).Save(shelter).Error
}

func (r *shelterRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Shelter, error) {
	var shelter entity.Shelter
	err := db.
		Preload("User.Roles").
		Preload("Vet").
		Where("user_id = ?", userID).
		First(&shelter).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &shelter, nil
}

func (r *shelterRepository) FindAll(db *gorm.DB) ([]entity.Shelter, error) {
	var shelters []entity.Shelter
	err := db.Preload("User.Roles").Preload("Vet").Find(&shelters).Error
	if err != nil {
		return nil, err
	}
	return shelters, nil
}

func (r *shelterRepository) FindAuthorized(db *gorm.DB) ([]entity.Shelter, error) {
	var shelters []entity.Shelter
	err := db.Preload("User.Roles").Where("authorized = ?", true).Find(&shelters).Error
	if err != nil {
		return nil, err
	}
	return shelters, nil
}

func (r *shelterRepository) FindByVetID(db *gorm.DB, vetID uuid.UUID) ([]entity.Shelter, error) {
	var shelters []entity.Shelter
	err := db.Where("vet_id = ?", vetID).Find(&shelters).Error
	if err != nil {
		return nil, err
	}
	return shelters, nil
}

func (r *shelterRepository) ClearVetAssignments(db *gorm.DB, vetID uuid.UUID) (int64, error) {
	result := db.Model(&entity.Shelter{}).
		Where("vet_id = ?", vetID).
		Update("vet_id", nil)
	return result.RowsAffected, result.Error
}
