package repository

import (
	"errors"

	"shelternet/internal/domain/entity"
	domainRepo "shelternet/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type visitorRepository struct{}

func NewVisitorRepository() domainRepo.VisitorRepository {
	return &visitorRepository{}
}

func (r *visitorRepository) Create(db *gorm.DB, visitor *entity.Visitor) error {
	return db.Omit(clause.Associations).Create(visitor).Error
}

func (r *visitorRepository) Save(db *gorm.DB, visitor *entity.Visitor) error {
	return db.Omit(clause.Associations).Save(visitor).Error
}

func (r *visitorRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Visitor, error) {
	var visitor entity.Visitor
	err := db.Preload("User.Roles").Where("user_id = ?", userID).First(&visitor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &visitor, nil
}

func (r *visitorRepository) FindAll(db *gorm.DB) ([]entity.Visitor, error) {
	var visitors []entity.Visitor
	err := db.Preload("User.Roles").Find(&visitors).Error
	if err != nil {
		return nil, err
	}
	return visitors, nil
}
