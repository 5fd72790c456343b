package repository

import (
	"errors"

	"shelternet/internal/domain/entity"
	domainRepo "shelternet/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type animalRepository struct{}

func NewAnimalRepository() domainRepo.AnimalRepository {
	return &animalRepository{}
}

func (r *animalRepository) Create(db *gorm.DB, animal *entity.Animal) error {
	return db.Omit(clause.Associations).Create(animal).Error
}

func (r *animalRepository) Save(db *gorm.DB, animal *entity.Animal) error {
	return db.Omit(clause.Associations).Save(animal).Error
}

func (r *animalRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Animal, error) {
	var animal entity.Animal
	err := db.
		Preload("Shelter.User.Roles").
		Preload("Shelter.Vet").
		Preload("PlanningVisitor").
		Preload("Visitor").
		Where("id = ?", id).
		First(&animal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &animal, nil
}

func (r *animalRepository) FindAll(db *gorm.DB) ([]entity.Animal, error) {
	var animals []entity.Animal
	err := db.
		Preload("Shelter.User.Roles").
		Preload("PlanningVisitor.User").
		Find(&animals).Error
	if err != nil {
		return nil, err
	}
	return animals, nil
}

func (r *animalRepository) FindByShelterID(db *gorm.DB, shelterID uuid.UUID) ([]entity.Animal, error) {
	var animals []entity.Animal
	err := db.Where("shelter_id = ?", shelterID).Find(&animals).Error
	if err != nil {
		return nil, err
	}
	return animals, nil
}

func (r *animalRepository) FindRequestedByShelterID(db *gorm.DB, shelterID uuid.UUID) ([]entity.Animal, error) {
	var animals []entity.Animal
	err := db.
		Preload("PlanningVisitor.User").
		Where("shelter_id = ? AND request_to_be_visited = ?", shelterID, true).
		Find(&animals).Error
	if err != nil {
		return nil, err
	}
	return animals, nil
}

func (r *animalRepository) FindPlannedByVisitorID(db *gorm.DB, visitorID uuid.UUID) ([]entity.Animal, error) {
	var animals []entity.Animal
	err := db.
		Preload("Shelter.User.Roles").
		Where("planning_visitor_id = ?", visitorID).
		Find(&animals).Error
	if err != nil {
		return nil, err
	}
	return animals, nil
}

func (r *animalRepository) FindAdoptedByVisitorID(db *gorm.DB, visitorID uuid.UUID) ([]entity.Animal, error) {
	var animals []entity.Animal
	err := db.Where("visitor_id = ?", visitorID).Find(&animals).Error
	if err != nil {
		return nil, err
	}
	return animals, nil
}
