package repository

import (
	"shelternet/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VisitorRepository interface {
	Create(db *gorm.DB, visitor *entity.Visitor) error
	Save(db *gorm.DB, visitor *entity.Visitor) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Visitor, error)
	FindAll(db *gorm.DB) ([]entity.Visitor, error)
}
